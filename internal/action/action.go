// Package action provides the paint actions recorded by the undo and replay
// trackers.
package action

import (
	"layerpaint/internal/core"
	"layerpaint/internal/layer"
)

// PaintStep is a single layer edit on one cell.
type PaintStep struct {
	X, Y  int
	Layer *layer.Layer
	Erase bool
}

// Apply performs the edit. Cells outside g are skipped.
func (s PaintStep) Apply(g *core.Grid) bool {
	cell := g.Cell(s.X, s.Y)
	if cell == nil {
		return false
	}
	if s.Erase {
		return cell.Erase(s.Layer)
	}
	return cell.Add(s.Layer)
}

// Revert performs the opposite edit.
func (s PaintStep) Revert(g *core.Grid) bool {
	s.Erase = !s.Erase
	return s.Apply(g)
}

// PaintAction groups the steps produced by one brush stroke, or a grid-wide
// special when Special is set.
type PaintAction struct {
	Steps   []PaintStep
	Special bool
}

// Apply runs every step in order, then the grid special if requested.
func (a *PaintAction) Apply(g *core.Grid) {
	for _, s := range a.Steps {
		s.Apply(g)
	}
	if a.Special {
		g.Special()
	}
}

// Revert undoes the grid special first, then reverts the steps last to
// first.
func (a *PaintAction) Revert(g *core.Grid) {
	if a.Special {
		g.Special()
	}
	for i := len(a.Steps) - 1; i >= 0; i-- {
		a.Steps[i].Revert(g)
	}
}

// Empty reports whether applying the action would do nothing.
func (a *PaintAction) Empty() bool { return len(a.Steps) == 0 && !a.Special }

// Stroke applies l (or erases it) on every cell of the brush footprint at
// (x, y) and returns an action holding only the steps that changed a store.
func Stroke(g *core.Grid, x, y int, l *layer.Layer, erase bool) *PaintAction {
	a := &PaintAction{}
	for _, p := range g.Brush(x, y) {
		step := PaintStep{X: p.X, Y: p.Y, Layer: l, Erase: erase}
		if step.Apply(g) {
			a.Steps = append(a.Steps, step)
		}
	}
	return a
}

// Special runs the grid special and returns the matching action.
func Special(g *core.Grid) *PaintAction {
	g.Special()
	return &PaintAction{Special: true}
}
