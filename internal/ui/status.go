package ui

import (
	"fmt"

	"layerpaint/internal/core"
	"layerpaint/internal/layer"
)

// Status is the state the HUD presents each frame.
type Status struct {
	Layers   []*layer.Layer
	Selected int
	Erase    bool
	Mode     string
	Params   core.ParameterSnapshot
}

// SelectedLayer returns the highlighted palette entry, or nil.
func (s Status) SelectedLayer() *layer.Layer {
	if s.Selected < 0 || s.Selected >= len(s.Layers) {
		return nil
	}
	return s.Layers[s.Selected]
}

// Lines renders the status block shown under the palette.
func (s Status) Lines() []string {
	tool := "paint"
	if s.Erase {
		tool = "erase"
	}
	lines := []string{fmt.Sprintf("Mode: %s", s.Mode), fmt.Sprintf("Tool: %s", tool)}
	for _, group := range s.Params.Groups {
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// PaletteIndexAt maps a y coordinate inside the HUD panel to a palette
// entry, or -1 when it falls outside the list.
func PaletteIndexAt(y, count int) int {
	if y < paletteTop {
		return -1
	}
	i := (y - paletteTop) / rowHeight
	if i >= count {
		return -1
	}
	return i
}

const (
	panelPadding   = 12
	headerBaseline = 14
	paletteTop     = panelPadding + headerBaseline + 10
	rowHeight      = 18
	swatchSize     = 12
)
