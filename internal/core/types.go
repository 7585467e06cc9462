package core

import (
	"errors"
	"fmt"

	"layerpaint/internal/store"
)

// Brush size bounds.
const (
	DefaultBrushSize = 2
	MinBrushSize     = 0
	MaxBrushSize     = 5
)

// ErrInvalidSize reports non-positive grid dimensions.
var ErrInvalidSize = errors.New("invalid grid size")

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// GridConfig is fixed when a grid is built.
type GridConfig struct {
	Policy        store.Policy
	Width         int
	Height        int
	StoreCapacity int
}

// DefaultGridConfig returns a small additive canvas.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Policy:        store.Additive,
		Width:         64,
		Height:        64,
		StoreCapacity: store.DefaultCapacity,
	}
}

// Validate reports configuration errors.
func (c GridConfig) Validate() error {
	if !c.Policy.Valid() {
		return fmt.Errorf("%w: %s", store.ErrInvalidPolicy, c.Policy)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	return nil
}
