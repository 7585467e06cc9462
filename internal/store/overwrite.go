package store

import "layerpaint/internal/layer"

// OverwriteStore holds at most one layer.
type OverwriteStore struct {
	slot     *layer.Layer
	inverted bool
}

// NewOverwrite returns an empty single-slot store.
func NewOverwrite() *OverwriteStore { return &OverwriteStore{} }

// Add replaces the slot when l is a different handle.
func (s *OverwriteStore) Add(l *layer.Layer) bool {
	if l == s.slot {
		return false
	}
	s.slot = l
	return true
}

// Erase clears the slot whatever l is.
func (s *OverwriteStore) Erase(*layer.Layer) bool {
	if s.slot == nil {
		return false
	}
	s.slot = nil
	return true
}

// Special toggles output inversion.
func (s *OverwriteStore) Special() { s.inverted = !s.inverted }

// Color applies the slot layer, complemented when inverted. An empty slot
// returns start untouched.
func (s *OverwriteStore) Color(start layer.Color, t int, x, y int) layer.Color {
	if s.slot == nil {
		return start
	}
	c := s.slot.Apply(start, t, x, y)
	if s.inverted {
		return c.Invert()
	}
	return c
}

// Layer returns the current slot occupant.
func (s *OverwriteStore) Layer() *layer.Layer { return s.slot }

// Inverted reports whether special mode is active.
func (s *OverwriteStore) Inverted() bool { return s.inverted }
