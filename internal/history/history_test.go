package history

import (
	"slices"
	"testing"

	"layerpaint/internal/action"
	"layerpaint/internal/core"
	"layerpaint/internal/layer"
	"layerpaint/internal/store"
)

var white = layer.RGB(255, 255, 255)

func newGrid(t *testing.T, p store.Policy) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(core.GridConfig{Policy: p, Width: 5, Height: 5}, layer.Default())
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func mustLayer(t *testing.T, name string) *layer.Layer {
	t.Helper()
	l, ok := layer.Default().Lookup(name)
	if !ok {
		t.Fatalf("layer %q not registered", name)
	}
	return l
}

func snapshot(g *core.Grid) []layer.Color {
	return g.Colors(nil, white, 7)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	for _, p := range []store.Policy{store.Overwrite, store.Additive, store.TypeToggle} {
		g := newGrid(t, p)
		u := NewUndoTracker(0)
		strokes := []struct {
			x, y int
			name string
		}{
			{1, 1, layer.Red},
			{2, 2, layer.Lighten},
			{3, 1, layer.Blue},
			{2, 1, layer.Darken},
		}
		for _, s := range strokes {
			if !u.AddAction(action.Stroke(g, s.x, s.y, mustLayer(t, s.name), false)) {
				t.Fatalf("%s: add action rejected", p)
			}
		}
		u.AddAction(action.Special(g))
		after := snapshot(g)

		n := u.UndoLen()
		for i := 0; i < n; i++ {
			if _, ok := u.Undo(g); !ok {
				t.Fatalf("%s: undo %d failed", p, i)
			}
		}
		if _, ok := u.Undo(g); ok {
			t.Fatalf("%s: undo on empty stack should report nothing", p)
		}
		for i := 0; i < n; i++ {
			if _, ok := u.Redo(g); !ok {
				t.Fatalf("%s: redo %d failed", p, i)
			}
		}
		if _, ok := u.Redo(g); ok {
			t.Fatalf("%s: redo on empty stack should report nothing", p)
		}
		if !slices.Equal(after, snapshot(g)) {
			t.Fatalf("%s: undo/redo round trip changed the canvas", p)
		}
	}
}

func TestUndoReturnsActionAndMovesIt(t *testing.T) {
	g := newGrid(t, store.Overwrite)
	u := NewUndoTracker(4)
	a := action.Stroke(g, 0, 0, mustLayer(t, layer.Red), false)
	u.AddAction(a)

	got, ok := u.Undo(g)
	if !ok || got != a {
		t.Fatalf("Undo = %v, %v", got, ok)
	}
	if u.UndoLen() != 0 || u.RedoLen() != 1 {
		t.Fatalf("stacks = %d/%d, want 0/1", u.UndoLen(), u.RedoLen())
	}
	if g.Cell(0, 0).Color(white, 0, 0, 0) != white {
		t.Fatal("undo should clear the painted cell")
	}
	got, ok = u.Redo(g)
	if !ok || got != a || u.UndoLen() != 1 || u.RedoLen() != 0 {
		t.Fatalf("Redo = %v, %v stacks %d/%d", got, ok, u.UndoLen(), u.RedoLen())
	}
}

func TestAddActionClearsRedo(t *testing.T) {
	g := newGrid(t, store.Additive)
	u := NewUndoTracker(4)
	u.AddAction(action.Stroke(g, 0, 0, mustLayer(t, layer.Red), false))
	u.AddAction(action.Stroke(g, 4, 4, mustLayer(t, layer.Green), false))
	u.Undo(g)
	u.Undo(g)
	if u.RedoLen() != 2 {
		t.Fatalf("redo len = %d", u.RedoLen())
	}
	u.AddAction(action.Stroke(g, 2, 2, mustLayer(t, layer.Blue), false))
	if u.RedoLen() != 0 {
		t.Fatalf("redo len after new action = %d, want 0", u.RedoLen())
	}
	if _, ok := u.Redo(g); ok {
		t.Fatal("redo should have nothing after a new action")
	}
}

func TestUndoCapacityDropsOverflow(t *testing.T) {
	g := newGrid(t, store.Overwrite)
	u := NewUndoTracker(3)
	actions := make([]*action.PaintAction, 4)
	for i := range actions {
		actions[i] = &action.PaintAction{Steps: []action.PaintStep{{X: i, Y: 0, Layer: mustLayer(t, layer.Red)}}}
	}
	for i := 0; i < 3; i++ {
		if !u.AddAction(actions[i]) {
			t.Fatalf("add %d rejected", i)
		}
	}
	u.Undo(g)
	u.Redo(g)
	if u.AddAction(actions[3]) {
		t.Fatal("add past capacity should be rejected")
	}
	if u.UndoLen() != 3 || u.RedoLen() != 0 {
		t.Fatalf("stacks = %d/%d", u.UndoLen(), u.RedoLen())
	}
	for i := 2; i >= 0; i-- {
		got, _ := u.Undo(g)
		if got != actions[i] {
			t.Fatalf("undo returned %v, want action %d", got, i)
		}
	}
}

func TestReplayReproducesLiveSession(t *testing.T) {
	live := newGrid(t, store.Additive)
	r := NewReplayTracker(0)

	a := action.Stroke(live, 1, 1, mustLayer(t, layer.Red), false)
	r.AddAction(a, false)
	b := action.Stroke(live, 2, 2, mustLayer(t, layer.Lighten), false)
	r.AddAction(b, false)
	b.Revert(live)
	r.AddAction(b, true)

	if r.Mode() != Recording {
		t.Fatalf("mode = %s, want recording", r.Mode())
	}
	r.StartReplay()
	if r.Mode() != Replaying {
		t.Fatalf("mode = %s, want replaying", r.Mode())
	}

	fresh := newGrid(t, store.Additive)
	for i := 0; i < 3; i++ {
		if r.PlayNextAction(fresh) {
			t.Fatalf("step %d reported done", i)
		}
	}
	want := snapshot(live)
	if !slices.Equal(want, snapshot(fresh)) {
		t.Fatal("replayed canvas differs from live canvas")
	}
	if !r.PlayNextAction(fresh) {
		t.Fatal("fourth step should report done")
	}
	if !slices.Equal(want, snapshot(fresh)) {
		t.Fatal("finished replay should not change the canvas")
	}
}

func TestStartReplayTwiceClearsRemainder(t *testing.T) {
	g := newGrid(t, store.Overwrite)
	r := NewReplayTracker(0)
	r.AddAction(&action.PaintAction{Special: true}, false)
	r.AddAction(&action.PaintAction{Special: true}, false)
	r.StartReplay()
	r.PlayNextAction(g)
	if r.Len() != 1 {
		t.Fatalf("len = %d, want 1", r.Len())
	}

	r.StartReplay()
	if r.Len() != 0 {
		t.Fatalf("second start left %d stale actions", r.Len())
	}
	r.AddAction(&action.PaintAction{Special: true}, false)
	if r.PlayNextAction(g) {
		t.Fatal("new recording should play")
	}
	if !r.PlayNextAction(g) {
		t.Fatal("queue should be drained")
	}
}

func TestReplayCapacity(t *testing.T) {
	r := NewReplayTracker(2)
	a := &action.PaintAction{Special: true}
	if !r.AddAction(a, false) || !r.AddAction(a, true) {
		t.Fatal("adds within capacity should succeed")
	}
	if r.AddAction(a, false) {
		t.Fatal("add past capacity should be rejected")
	}
}
