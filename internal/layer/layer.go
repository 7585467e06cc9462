package layer

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDuplicateLayer is returned when a name is registered twice.
var ErrDuplicateLayer = errors.New("layer already registered")

// Func transforms the color a cell would show at time t and position (x, y).
// Implementations must be pure.
type Func func(c Color, t int, x, y int) Color

// Layer is an immutable, registry-issued effect handle. Handles are compared
// by identity.
type Layer struct {
	Name  string
	Index int
	fn    Func
}

// Apply runs the layer transform.
func (l *Layer) Apply(c Color, t int, x, y int) Color {
	if l == nil || l.fn == nil {
		return c
	}
	return l.fn(c, t, x, y)
}

func (l *Layer) String() string {
	if l == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%d", l.Name, l.Index)
}

// Resolver looks up layers by name.
type Resolver interface {
	Lookup(name string) (*Layer, bool)
}

// Registry is an ordered catalogue of layers. Indices are assigned in
// registration order starting at zero.
type Registry struct {
	byName map[string]*Layer
	layers []*Layer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]*Layer{}}
}

// Register adds a layer under the provided name and returns its handle.
func (r *Registry) Register(name string, fn Func) (*Layer, error) {
	if name == "" || fn == nil {
		return nil, fmt.Errorf("register %q: name and transform are required", name)
	}
	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("register %q: %w", name, ErrDuplicateLayer)
	}
	l := &Layer{Name: name, Index: len(r.layers), fn: fn}
	r.byName[name] = l
	r.layers = append(r.layers, l)
	return l, nil
}

// MustRegister is like Register but panics on error. Intended for init-time
// catalogues.
func (r *Registry) MustRegister(name string, fn Func) *Layer {
	l, err := r.Register(name, fn)
	if err != nil {
		panic(err)
	}
	return l
}

// Lookup returns the layer registered under name.
func (r *Registry) Lookup(name string) (*Layer, bool) {
	l, ok := r.byName[name]
	return l, ok
}

// Layers returns every registered layer ordered by index.
func (r *Registry) Layers() []*Layer {
	out := append([]*Layer(nil), r.layers...)
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Len reports the number of registered layers.
func (r *Registry) Len() int { return len(r.layers) }

var defaultRegistry = NewRegistry()

// Default exposes the registry holding the built-in effects.
func Default() *Registry { return defaultRegistry }
