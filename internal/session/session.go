// Package session drives a canvas the way an interactive front end does:
// strokes, specials, undo and redo are applied to the grid and recorded for
// undo and replay.
package session

import (
	"layerpaint/internal/action"
	"layerpaint/internal/core"
	"layerpaint/internal/history"
	"layerpaint/internal/layer"
)

// Config sizes a session.
type Config struct {
	Grid           core.GridConfig
	UndoCapacity   int
	ReplayCapacity int
}

// DefaultConfig returns the standard capacities around the default grid.
func DefaultConfig() Config {
	return Config{
		Grid:           core.DefaultGridConfig(),
		UndoCapacity:   history.DefaultUndoCapacity,
		ReplayCapacity: history.DefaultReplayCapacity,
	}
}

// Session owns a grid and its trackers.
type Session struct {
	cfg      Config
	resolver layer.Resolver
	grid     *core.Grid
	undo     *history.UndoTracker
	replay   *history.ReplayTracker
}

// New builds a session with a fresh grid.
func New(cfg Config, resolver layer.Resolver) (*Session, error) {
	g, err := core.NewGrid(cfg.Grid, resolver)
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:      cfg,
		resolver: resolver,
		grid:     g,
		undo:     history.NewUndoTracker(cfg.UndoCapacity),
		replay:   history.NewReplayTracker(cfg.ReplayCapacity),
	}, nil
}

// Grid returns the grid currently being drawn on or replayed into.
func (s *Session) Grid() *core.Grid { return s.grid }

// Mode reports whether the session is recording or replaying.
func (s *Session) Mode() history.Mode { return s.replay.Mode() }

// Paint applies l across the brush footprint at (x, y). It returns false when
// no cell changed, in which case nothing is recorded.
func (s *Session) Paint(x, y int, l *layer.Layer) bool {
	return s.record(action.Stroke(s.grid, x, y, l, false))
}

// Erase erases with l across the brush footprint at (x, y).
func (s *Session) Erase(x, y int, l *layer.Layer) bool {
	return s.record(action.Stroke(s.grid, x, y, l, true))
}

// Special runs special mode on every cell.
func (s *Session) Special() {
	s.record(action.Special(s.grid))
}

func (s *Session) record(a *action.PaintAction) bool {
	if a.Empty() {
		return false
	}
	s.undo.AddAction(a)
	s.replay.AddAction(a, false)
	return true
}

// Undo reverts the last action and records the undo for replay.
func (s *Session) Undo() bool {
	a, ok := s.undo.Undo(s.grid)
	if !ok {
		return false
	}
	s.replay.AddAction(a, true)
	return true
}

// Redo re-applies the last undone action and records it for replay.
func (s *Session) Redo() bool {
	a, ok := s.undo.Redo(s.grid)
	if !ok {
		return false
	}
	s.replay.AddAction(a, false)
	return true
}

// IncreaseBrushSize grows the brush.
func (s *Session) IncreaseBrushSize() { s.grid.IncreaseBrushSize() }

// DecreaseBrushSize shrinks the brush.
func (s *Session) DecreaseBrushSize() { s.grid.DecreaseBrushSize() }

// StartReplay swaps in a freshly built grid and starts playback of the
// recorded actions. The brush size carries over.
func (s *Session) StartReplay() error {
	g, err := core.NewGrid(s.cfg.Grid, s.resolver)
	if err != nil {
		return err
	}
	for g.BrushSize() < s.grid.BrushSize() {
		g.IncreaseBrushSize()
	}
	for g.BrushSize() > s.grid.BrushSize() {
		g.DecreaseBrushSize()
	}
	s.grid = g
	s.replay.StartReplay()
	return nil
}

// Step plays one recorded action and reports whether playback is finished.
func (s *Session) Step() bool {
	return s.replay.PlayNextAction(s.grid)
}
