//go:build ebiten

package app

import (
	"fmt"
	"time"

	"sandfall/internal/core"
	"sandfall/internal/render"
	"sandfall/internal/sims/sand"
	"sandfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sand simulation to the ebiten.Game interface.
type Game struct {
	sim     *sand.Simulation
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	brush   *Brush
	clock   *core.FixedStep

	scale    int
	hudWidth int
	maxTicks int
	paused   bool
	tickOnce bool
	seed     int64

	stroking bool
	lastX    int
	lastY    int
}

// New constructs a Game for the provided simulation.
func New(sim *sand.Simulation, cfg *Config) *Game {
	brush := NewBrush(cfg.Brush)
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Width(), sim.Height()),
		hud:      ui.NewHUD(sim, brush, cfg.HUDWidth),
		overlay:  ui.NewOverlay(sim.Width(), sim.Height(), cfg.Scale),
		brush:    brush,
		clock:    core.NewFixedStep(cfg.TPS),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		maxTicks: cfg.MaxTicks,
		seed:     cfg.Seed,
	}
}

// Reset rebuilds the scene with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.stroking = false
}

// Update handles per-frame input and advances the simulation.
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
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.handleBrushKeys()

	g.hud.Update(g.sim.Width() * g.scale)
	g.handleMouse()

	switch {
	case g.tickOnce:
		g.sim.Step(1)
		g.tickOnce = false
		g.clock.Due(g.maxTicks)
	case g.paused:
		g.clock.Due(g.maxTicks)
	default:
		g.sim.Step(uint(g.clock.Due(g.maxTicks)))
	}

	state := "running"
	if g.paused {
		state = "paused"
	}
	g.hud.SetStatus(fmt.Sprintf("%s  seed %d", state, g.seed))
	return nil
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func (g *Game) handleBrushKeys() {
	for d, key := range digitKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if m, ok := materialForDigit(d); ok {
			g.brush.Material = m
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.brush.SetIntParameter("radius", g.brush.Radius-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.brush.SetIntParameter("radius", g.brush.Radius+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.brush.SetFloatParameter("density", g.brush.Density-minDensity)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.brush.SetFloatParameter("density", g.brush.Density+minDensity)
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	x, y, ok := cellAt(mx, my, g.scale, g.sim.Width(), g.sim.Height())
	g.overlay.SetBrush(x, y, g.brush.Radius, ok)

	paint := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	erase := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !ok || g.hud.Contains(mx, my) || (!paint && !erase) {
		g.stroking = false
		return
	}
	cells := [][2]int{{x, y}}
	if g.stroking {
		cells = strokeCells(g.lastX, g.lastY, x, y, max(1, g.brush.Radius/2))
	}
	for _, c := range cells {
		if erase {
			g.brush.Erase(g.sim, c[0], c[1])
			continue
		}
		g.brush.Apply(g.sim, c[0], c[1])
	}
	g.stroking = true
	g.lastX, g.lastY = x, y
}

// Draw renders the grid, the HUD panel and the brush outline.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.RebuildPixels()
	if pix, err := g.sim.Pixels().Bytes(); err == nil {
		g.painter.Blit(screen, pix, g.scale)
	}
	g.hud.Draw(screen, g.sim.Width()*g.scale, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sim.Width()*g.scale + g.hudWidth, g.sim.Height() * g.scale
}
