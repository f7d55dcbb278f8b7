//go:build ebiten

package app

import (
	"image/color"

	"aoc-ca/internal/core"
	"aoc-ca/internal/render"
	"aoc-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.FixedStep
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		clock:   core.NewFixedStep(cfg.TPS),
		scale:   max(cfg.Scale, 1),
	}
	if p, ok := sim.(core.PaletteProvider); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset returns the simulation to its starting grid and pauses it.
func (g *Game) Reset() {
	g.sim.Reset()
	g.paused = true
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation at the
// configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.clock.SetTPS(g.clock.TPS() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.clock.SetTPS(max(g.clock.TPS()/2, 1))
	}

	settled := false
	if s, ok := g.sim.(core.Settler); ok {
		settled = s.Stable()
	}
	due := g.clock.ShouldStep()
	if g.tickOnce || (!g.paused && !settled && due) {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.Update(ui.Status{Paused: g.paused, TPS: g.clock.TPS()})
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

// ScreenSize returns the window size needed for the grid and the panel.
func (g *Game) ScreenSize() (int, int) {
	s := g.sim.Size()
	h := s.H * g.scale
	if g.hud.Width() > 0 {
		h = max(h, ui.MinPanelHeight)
	}
	return s.W*g.scale + g.hud.Width(), h
}
