//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const helpText = `left drag  paint / erase
1-9        select layer
e          toggle erase
s          special
z / y      undo / redo
+ / -      brush size
r          replay session
h          hide help`

// Overlay draws the key help on top of the canvas.
type Overlay struct {
	show  bool
	shade *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{show: true}
	o.shade = ebiten.NewImage(1, 1)
	o.shade.Fill(color.RGBA{A: 160})
	return o
}

// Update toggles the overlay.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw renders the help block in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(200, 130)
	screen.DrawImage(o.shade, op)
	ebitenutil.DebugPrintAt(screen, helpText, 6, 4)
}
