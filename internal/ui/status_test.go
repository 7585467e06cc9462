package ui

import (
	"slices"
	"testing"

	"layerpaint/internal/core"
	"layerpaint/internal/layer"
)

func TestStatusLines(t *testing.T) {
	s := Status{
		Layers:   layer.Default().Layers(),
		Selected: 4,
		Erase:    true,
		Mode:     "recording",
		Params: core.ParameterSnapshot{Groups: []core.ParameterGroup{
			{Name: "Brush", Params: []core.Parameter{{Key: "brush", Label: "Brush size", Value: "2"}}},
		}},
	}
	want := []string{"Mode: recording", "Tool: erase", "Brush size: 2"}
	if got := s.Lines(); !slices.Equal(got, want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	if l := s.SelectedLayer(); l == nil || l.Name != layer.Red {
		t.Fatalf("SelectedLayer() = %v", l)
	}
	s.Selected = 99
	if s.SelectedLayer() != nil {
		t.Fatal("out-of-range selection should be nil")
	}
}

func TestPaletteIndexAt(t *testing.T) {
	if got := PaletteIndexAt(paletteTop-1, 9); got != -1 {
		t.Fatalf("above palette = %d", got)
	}
	if got := PaletteIndexAt(paletteTop, 9); got != 0 {
		t.Fatalf("first row = %d", got)
	}
	if got := PaletteIndexAt(paletteTop+2*rowHeight+3, 9); got != 2 {
		t.Fatalf("third row = %d", got)
	}
	if got := PaletteIndexAt(paletteTop+9*rowHeight, 9); got != -1 {
		t.Fatalf("below palette = %d", got)
	}
}
