//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"layerpaint/internal/layer"
)

// HUD renders the layer palette and status panel to the right of the canvas.
type HUD struct {
	width        int
	panel        *ebiten.Image
	lastHeight   int
	status       Status
	panelOffsetX int
	swatch       *ebiten.Image
}

// NewHUD constructs a HUD with the provided panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.swatch = ebiten.NewImage(swatchSize, swatchSize)
	}
	return h
}

// Update stores the status to draw and returns the palette entry clicked this
// frame, or -1.
func (h *HUD) Update(panelOffsetX int, status Status) int {
	if h == nil {
		return -1
	}
	h.panelOffsetX = panelOffsetX
	h.status = status
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return -1
	}
	mx, my := ebiten.CursorPosition()
	if mx < panelOffsetX {
		return -1
	}
	return PaletteIndexAt(my, len(status.Layers))
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawPalette()
	h.drawStatus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawPalette() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Layers", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i, l := range h.status.Layers {
		top := paletteTop + i*rowHeight
		h.swatch.Fill(l.Apply(layer.RGB(128, 128, 128), 0, 0, 0).RGBA())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(panelPadding), float64(top+2))
		h.panel.DrawImage(h.swatch, op)

		label := l.Name
		fg := color.RGBA{R: 160, G: 160, B: 170, A: 255}
		if i == h.status.Selected {
			label = "> " + label
			fg = color.RGBA{R: 255, G: 230, B: 120, A: 255}
		}
		text.Draw(h.panel, label, face, panelPadding+swatchSize+8, top+swatchSize, fg)
	}
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	top := paletteTop + (len(h.status.Layers)+1)*rowHeight
	body := strings.Join(h.status.Lines(), "\n")
	text.Draw(h.panel, body, face, panelPadding, top, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}
