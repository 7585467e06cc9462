// Package check verifies that recorded sessions replay to identical canvases.
package check

import (
	"fmt"
	"slices"

	"layerpaint/internal/layer"
	"layerpaint/internal/session"
	"layerpaint/pkg/core"
)

// Op is a session operation kind.
type Op uint8

// Operations a synthetic session draws from.
const (
	OpPaint Op = iota
	OpErase
	OpSpecial
	OpUndo
	OpRedo
	OpBrushUp
	OpBrushDown
)

var opNames = [...]string{"paint", "erase", "special", "undo", "redo", "brush+", "brush-"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// opWeights biases generation towards drawing.
var opWeights = []struct {
	op     Op
	weight int
}{
	{OpPaint, 10},
	{OpErase, 3},
	{OpSpecial, 1},
	{OpUndo, 3},
	{OpRedo, 2},
	{OpBrushUp, 1},
	{OpBrushDown, 1},
}

// Result summarises one verified session.
type Result struct {
	Seed     int64
	Ops      map[Op]int
	Recorded int
	Played   int
	Match    bool
	Diff     int // cells whose replayed color differs
}

func (r Result) String() string {
	return fmt.Sprintf("seed=%d ops=%d recorded=%d played=%d match=%v diff=%d",
		r.Seed, r.total(), r.Recorded, r.Played, r.Match, r.Diff)
}

func (r Result) total() int {
	n := 0
	for _, c := range r.Ops {
		n += c
	}
	return n
}

// Run drives a random session of steps operations derived from seed, then
// replays it on a fresh grid and compares every cell at time t.
func Run(cfg session.Config, reg *layer.Registry, seed int64, steps int, background layer.Color, t int) (Result, error) {
	s, err := session.New(cfg, reg)
	if err != nil {
		return Result{}, err
	}
	rng := core.NewRNG(seed)
	layers := reg.Layers()
	if len(layers) == 0 {
		return Result{}, fmt.Errorf("seed %d: registry has no layers", seed)
	}
	res := Result{Seed: seed, Ops: map[Op]int{}}
	size := s.Grid().Size()
	for i := 0; i < steps; i++ {
		op := pick(rng)
		res.Ops[op]++
		var recorded bool
		switch op {
		case OpPaint:
			recorded = s.Paint(rng.IntN(size.W), rng.IntN(size.H), layers[rng.IntN(len(layers))])
		case OpErase:
			recorded = s.Erase(rng.IntN(size.W), rng.IntN(size.H), layers[rng.IntN(len(layers))])
		case OpSpecial:
			s.Special()
			recorded = true
		case OpUndo:
			recorded = s.Undo()
		case OpRedo:
			recorded = s.Redo()
		case OpBrushUp:
			s.IncreaseBrushSize()
		case OpBrushDown:
			s.DecreaseBrushSize()
		}
		if recorded {
			res.Recorded++
		}
	}

	live := s.Grid().Colors(nil, background, t)
	if err := s.StartReplay(); err != nil {
		return res, err
	}
	for !s.Step() {
		res.Played++
	}
	replayed := s.Grid().Colors(nil, background, t)
	for i := range live {
		if live[i] != replayed[i] {
			res.Diff++
		}
	}
	res.Match = slices.Equal(live, replayed)
	return res, nil
}

func pick(rng *core.RNG) Op {
	total := 0
	for _, w := range opWeights {
		total += w.weight
	}
	n := rng.IntN(total)
	for _, w := range opWeights {
		if n < w.weight {
			return w.op
		}
		n -= w.weight
	}
	return OpPaint
}
