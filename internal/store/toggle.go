package store

import (
	"cmp"
	"slices"

	"layerpaint/internal/layer"
)

// member identifies a layer type by registry name and index.
type member struct {
	name  string
	index int
}

func compareMember(a, b member) int {
	if c := cmp.Compare(a.index, b.index); c != 0 {
		return c
	}
	return cmp.Compare(a.name, b.name)
}

// TypeToggleStore applies each layer type at most once, in registry index
// order.
type TypeToggleStore struct {
	members  []member // sorted by index
	capacity int
	resolver layer.Resolver
}

// NewTypeToggle returns an empty store. resolver maps members back to their
// transforms during Color; nil selects layer.Default().
func NewTypeToggle(capacity int, resolver layer.Resolver) *TypeToggleStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if resolver == nil {
		resolver = layer.Default()
	}
	return &TypeToggleStore{capacity: capacity, resolver: resolver}
}

// Add ensures the layer type is applied.
func (s *TypeToggleStore) Add(l *layer.Layer) bool {
	if l == nil {
		return false
	}
	m := member{name: l.Name, index: l.Index}
	i, found := slices.BinarySearchFunc(s.members, m, compareMember)
	if found || len(s.members) >= s.capacity {
		return false
	}
	s.members = slices.Insert(s.members, i, m)
	return true
}

// Erase ensures the layer type is not applied.
func (s *TypeToggleStore) Erase(l *layer.Layer) bool {
	if l == nil {
		return false
	}
	i, found := slices.BinarySearchFunc(s.members, member{name: l.Name, index: l.Index}, compareMember)
	if !found {
		return false
	}
	s.members = slices.Delete(s.members, i, i+1)
	return true
}

// Special removes the member with the median name. With an even count the
// lexicographically smaller of the two middle names is removed.
func (s *TypeToggleStore) Special() {
	n := len(s.members)
	if n == 0 {
		return
	}
	byName := slices.Clone(s.members)
	slices.SortFunc(byName, func(a, b member) int {
		if c := cmp.Compare(a.name, b.name); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})
	pos := n / 2
	if n%2 == 0 {
		pos = n/2 - 1
	}
	target := byName[pos]
	i, _ := slices.BinarySearchFunc(s.members, target, compareMember)
	s.members = slices.Delete(s.members, i, i+1)
}

// Color folds the member layers over start in index order. Members the
// resolver no longer knows are skipped.
func (s *TypeToggleStore) Color(start layer.Color, t int, x, y int) layer.Color {
	c := start
	for _, m := range s.members {
		l, ok := s.resolver.Lookup(m.name)
		if !ok || l.Index != m.index {
			continue
		}
		c = l.Apply(c, t, x, y)
	}
	return c
}

// Len reports the number of applied layer types.
func (s *TypeToggleStore) Len() int { return len(s.members) }

// Names returns the applied layer names in index order.
func (s *TypeToggleStore) Names() []string {
	out := make([]string, len(s.members))
	for i, m := range s.members {
		out[i] = m.name
	}
	return out
}
