package core

import (
	"layerpaint/internal/layer"
	"layerpaint/internal/store"
)

// Point addresses a grid cell.
type Point struct {
	X, Y int
}

// Grid stores one LayerStore per cell in row-major order.
type Grid struct {
	cfg   GridConfig
	cells []store.LayerStore
	brush int
}

// NewGrid allocates a grid whose cells all use cfg.Policy. resolver is handed
// to stores that look layers up by name.
func NewGrid(cfg GridConfig, resolver layer.Resolver) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Grid{cfg: cfg, cells: make([]store.LayerStore, cfg.Width*cfg.Height), brush: DefaultBrushSize}
	for i := range g.cells {
		s, err := store.New(cfg.Policy, cfg.StoreCapacity, resolver)
		if err != nil {
			return nil, err
		}
		g.cells[i] = s
	}
	return g, nil
}

// Config returns the construction parameters.
func (g *Grid) Config() GridConfig { return g.cfg }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.cfg.Width, H: g.cfg.Height} }

// Policy returns the composition policy shared by every cell.
func (g *Grid) Policy() store.Policy { return g.cfg.Policy }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.cfg.Width + x }

// In reports whether (x, y) lies on the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.cfg.Width && y < g.cfg.Height
}

// Cell returns the store at (x, y), or nil when out of bounds.
func (g *Grid) Cell(x, y int) store.LayerStore {
	if !g.In(x, y) {
		return nil
	}
	return g.cells[g.Index(x, y)]
}

// BrushSize returns the current brush radius.
func (g *Grid) BrushSize() int { return g.brush }

// IncreaseBrushSize grows the brush by one, saturating at MaxBrushSize.
func (g *Grid) IncreaseBrushSize() {
	if g.brush < MaxBrushSize {
		g.brush++
	}
}

// DecreaseBrushSize shrinks the brush by one, saturating at MinBrushSize.
func (g *Grid) DecreaseBrushSize() {
	if g.brush > MinBrushSize {
		g.brush--
	}
}

// Special runs special mode on every cell, row by row. Empty stores are
// included so their mode state stays in step with the rest of the grid.
func (g *Grid) Special() {
	for _, s := range g.cells {
		s.Special()
	}
}

// Brush returns the in-bounds cells within Manhattan distance BrushSize of
// (x, y), row by row.
func (g *Grid) Brush(x, y int) []Point {
	r := g.brush
	var pts []Point
	for dy := -r; dy <= r; dy++ {
		span := r - abs(dy)
		for dx := -span; dx <= span; dx++ {
			if g.In(x+dx, y+dy) {
				pts = append(pts, Point{X: x + dx, Y: y + dy})
			}
		}
	}
	return pts
}

// Colors composites every cell over start at time t into dst (row-major),
// growing it as needed, and returns it.
func (g *Grid) Colors(dst []layer.Color, start layer.Color, t int) []layer.Color {
	if cap(dst) < len(g.cells) {
		dst = make([]layer.Color, len(g.cells))
	}
	dst = dst[:len(g.cells)]
	w := g.cfg.Width
	for i, s := range g.cells {
		dst[i] = s.Color(start, t, i%w, i/w)
	}
	return dst
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
