package store

import "layerpaint/internal/layer"

// AdditiveStore applies layers in insertion order on top of each other. It
// is a bounded ring; Erase serves the oldest layer.
type AdditiveStore struct {
	ring []*layer.Layer
	head int
	n    int
}

// NewAdditive returns an empty store holding at most capacity layers.
func NewAdditive(capacity int) *AdditiveStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &AdditiveStore{ring: make([]*layer.Layer, capacity)}
}

// at maps a logical position (0 = oldest) to a ring slot.
func (s *AdditiveStore) at(i int) int { return (s.head + i) % len(s.ring) }

// Add appends l. It reports false for a nil layer or a full store.
func (s *AdditiveStore) Add(l *layer.Layer) bool {
	if l == nil || s.n == len(s.ring) {
		return false
	}
	s.ring[s.at(s.n)] = l
	s.n++
	return true
}

// Erase removes the oldest layer regardless of l.
func (s *AdditiveStore) Erase(*layer.Layer) bool {
	if s.n == 0 {
		return false
	}
	s.ring[s.head] = nil
	s.head = (s.head + 1) % len(s.ring)
	s.n--
	return true
}

// Special reverses the application order in place.
func (s *AdditiveStore) Special() {
	for i, j := 0, s.n-1; i < j; i, j = i+1, j-1 {
		a, b := s.at(i), s.at(j)
		s.ring[a], s.ring[b] = s.ring[b], s.ring[a]
	}
}

// Color folds every layer over start in the current order.
func (s *AdditiveStore) Color(start layer.Color, t int, x, y int) layer.Color {
	c := start
	for i := 0; i < s.n; i++ {
		c = s.ring[s.at(i)].Apply(c, t, x, y)
	}
	return c
}

// Len reports how many layers are stored.
func (s *AdditiveStore) Len() int { return s.n }

// Layers returns the stored layers in application order.
func (s *AdditiveStore) Layers() []*layer.Layer {
	out := make([]*layer.Layer, s.n)
	for i := range out {
		out[i] = s.ring[s.at(i)]
	}
	return out
}
