//go:build ebiten

package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"layerpaint/internal/core"
	"layerpaint/internal/history"
	"layerpaint/internal/layer"
	"layerpaint/internal/render"
	"layerpaint/internal/session"
	"layerpaint/internal/ui"
)

const hudWidth = 180

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a paint session to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	session *session.Session
	layers  []*layer.Layer
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	selected int
	erase    bool
	tick     int
	lastCell core.Point
	stroking bool
	finished bool
}

// New constructs a Game for the provided session.
func New(cfg *Config, s *session.Session, reg *layer.Registry) *Game {
	size := s.Grid().Size()
	return &Game{
		cfg:     cfg,
		session: s,
		layers:  reg.Layers(),
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(hudWidth),
		overlay: ui.NewOverlay(),
		pacer:   core.NewFixedStep(cfg.ReplayRate),
	}
}

// Update handles input while recording and advances playback while
// replaying.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.tick++
	g.overlay.Update()

	size := g.session.Grid().Size()
	if i := g.hud.Update(size.W*g.cfg.Scale, g.status()); i >= 0 {
		g.selected = i
	}

	if g.session.Mode() == history.Replaying {
		if !g.finished && g.pacer.ShouldStep() && g.session.Step() {
			g.finished = true
			log.Printf("replay finished")
		}
		return nil
	}

	for i, k := range digitKeys {
		if i < len(g.layers) && inpututil.IsKeyJustPressed(k) {
			g.selected = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.erase = !g.erase
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Special()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.session.Undo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		g.session.Redo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.session.IncreaseBrushSize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.session.DecreaseBrushSize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.StartReplay(); err != nil {
			return err
		}
		g.pacer.Reset()
		log.Printf("replaying recorded session")
		return nil
	}
	g.handleStroke()
	return nil
}

// handleStroke paints while the left button is held, once per cell entered.
func (g *Game) handleStroke() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.stroking = false
		return
	}
	p, ok := g.cursorCell()
	if !ok || (g.stroking && p == g.lastCell) {
		return
	}
	g.stroking = true
	g.lastCell = p
	l := g.status().SelectedLayer()
	if l == nil {
		return
	}
	if g.erase {
		g.session.Erase(p.X, p.Y, l)
	} else {
		g.session.Paint(p.X, p.Y, l)
	}
}

func (g *Game) cursorCell() (core.Point, bool) {
	mx, my := ebiten.CursorPosition()
	x, y := mx/g.cfg.Scale, my/g.cfg.Scale
	if mx < 0 || my < 0 || !g.session.Grid().In(x, y) {
		return core.Point{}, false
	}
	return core.Point{X: x, Y: y}, true
}

func (g *Game) status() ui.Status {
	grid := g.session.Grid()
	return ui.Status{
		Layers:   g.layers,
		Selected: g.selected,
		Erase:    g.erase,
		Mode:     g.session.Mode().String(),
		Params:   grid.Parameters(),
	}
}

// Draw renders the canvas, HUD and help overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.session.Grid()
	var brush []core.Point
	if p, ok := g.cursorCell(); ok && g.session.Mode() == history.Recording {
		brush = grid.Brush(p.X, p.Y)
	}
	g.painter.Blit(screen, grid, g.cfg.Background, g.tick, brush, g.cfg.Scale)
	size := grid.Size()
	g.hud.Draw(screen, size.W*g.cfg.Scale, size.H*g.cfg.Scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Grid().Size()
	return s.W*g.cfg.Scale + hudWidth, s.H * g.cfg.Scale
}
