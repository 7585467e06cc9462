// Package store implements the per-cell layer composition policies.
package store

import (
	"errors"
	"fmt"
	"strings"

	"layerpaint/internal/layer"
)

// DefaultCapacity bounds the number of layers an additive or type-toggle
// store retains.
const DefaultCapacity = 100

// ErrInvalidPolicy reports an unrecognised composition policy.
var ErrInvalidPolicy = errors.New("invalid composition policy")

// LayerStore holds the composited state of one grid cell.
type LayerStore interface {
	// Add applies layer to the store and reports whether the store changed.
	Add(l *layer.Layer) bool
	// Erase performs the policy's erase action and reports whether the store
	// changed.
	Erase(l *layer.Layer) bool
	// Special runs the policy-specific special mode.
	Special()
	// Color returns the color the cell shows. It depends only on the current
	// state and its arguments.
	Color(start layer.Color, t int, x, y int) layer.Color
}

// Policy selects the LayerStore implementation used by every cell of a grid.
type Policy uint8

const (
	// Overwrite keeps a single layer; special inverts the output.
	Overwrite Policy = iota + 1
	// Additive folds layers in insertion order; special reverses the order.
	Additive
	// TypeToggle applies each layer type at most once in registry order;
	// special evicts the name-median member.
	TypeToggle
)

var policyNames = map[Policy]string{
	Overwrite:  "overwrite",
	Additive:   "additive",
	TypeToggle: "type-toggle",
}

// aliases accepted by ParsePolicy in addition to the canonical names.
var policyAliases = map[string]Policy{
	"set":      Overwrite,
	"add":      Additive,
	"sequence": TypeToggle,
	"toggle":   TypeToggle,
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// Valid reports whether p is one of the three recognised policies.
func (p Policy) Valid() bool {
	_, ok := policyNames[p]
	return ok
}

// ParsePolicy resolves a policy name, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for p, name := range policyNames {
		if name == key {
			return p, nil
		}
	}
	if p, ok := policyAliases[key]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolicy, uint8(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// New constructs an empty store for the policy. capacity bounds the additive
// and type-toggle variants (values <= 0 select DefaultCapacity); resolver is
// used by type-toggle to map members back to their transforms.
func New(p Policy, capacity int, resolver layer.Resolver) (LayerStore, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	switch p {
	case Overwrite:
		return NewOverwrite(), nil
	case Additive:
		return NewAdditive(capacity), nil
	case TypeToggle:
		return NewTypeToggle(capacity, resolver), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolicy, uint8(p))
	}
}
