//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"layerpaint/internal/core"
	"layerpaint/internal/layer"
)

// GridPainter keeps a single RGBA image in sync with a grid's colors.
type GridPainter struct {
	w, h   int
	img    *ebiten.Image
	buf    []byte
	colors []layer.Color
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit composites g at time t over background, marks the brush cells and
// draws the result scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, background layer.Color, t int, brush []core.Point, scale int) {
	size := g.Size()
	if size.W != gp.w || size.H != gp.h {
		return
	}
	gp.colors = g.Colors(gp.colors, background, t)
	fillRGBA(gp.buf, gp.colors)
	idx := make([]int, 0, len(brush))
	for _, p := range brush {
		idx = append(idx, g.Index(p.X, p.Y))
	}
	highlightRGBA(gp.buf, idx)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
