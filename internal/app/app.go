//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mad-caves/internal/core"
	"mad-caves/internal/render"
	"mad-caves/internal/ui"
	"mad-caves/pkg/astar"
	"mad-caves/pkg/cave"
)

// Game adapts a cave build to the ebiten.Game interface.
type Game struct {
	sim       *cave.Sim
	painter   *render.GridPainter
	hud       *ui.HUD
	overlay   *ui.Overlay
	pacer     *core.FixedStep
	selection *Selection
	log       *slog.Logger

	buf        []uint8
	scale      int
	animate    bool
	showBorder bool
	wasDone    bool
}

// New constructs a Game for the provided sim.
func New(sim *cave.Sim, cfg *Config, logger *slog.Logger) *Game {
	size := sim.Size()
	g := &Game{
		sim:       sim,
		painter:   render.NewGridPainter(size.W, size.H),
		hud:       ui.NewHUD(sim, cfg.Panel),
		overlay:   ui.NewOverlay(),
		pacer:     core.NewFixedStep(cfg.StageTPS),
		selection: NewSelection(astar.New()),
		log:       logger,
		scale:     cfg.Scale,
		animate:   cfg.Animate,
	}
	if !g.animate {
		g.sim.Finish()
	}
	return g
}

// Reset rebuilds the map from seed and drops the path selection.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	g.restart()
}

func (g *Game) restart() {
	g.selection.Clear()
	g.pacer.Reset()
	g.wasDone = false
	if !g.animate {
		g.sim.Finish()
	}
}

// Update handles per-frame input and advances generation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.sim.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.animate = !g.animate
		if !g.animate {
			g.sim.Finish()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.showBorder = !g.showBorder
	}

	size := g.sim.Size()
	if g.hud.Update(size.W * g.scale) {
		g.restart()
	}

	if g.animate && !g.sim.Done() && g.pacer.ShouldStep() {
		g.sim.Step()
	}
	if g.sim.Done() && !g.wasDone {
		g.wasDone = true
		st := g.sim.Stats()
		g.log.Info("map ready",
			"seed", g.sim.Seed(),
			"rooms", st.Rooms,
			"passages", st.Passages,
			"forced", st.Forced,
		)
	}

	g.handleMouse(size.W, size.H)

	g.overlay.Update(g.status())
	return nil
}

func (g *Game) handleMouse(w, h int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.selection.Clear()
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || !g.sim.Done() {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= w*g.scale || my >= h*g.scale {
		return
	}
	if !g.selection.ClickAt(g.sim.Grid(), mx/g.scale, my/g.scale) {
		return
	}
	if g.selection.Goal() != nil {
		res := g.selection.Result()
		g.log.Debug("path",
			"start", g.selection.Start().String(),
			"goal", g.selection.Goal().String(),
			"found", res.Found,
			"cells", res.Len(),
			"cost", res.Cost,
		)
	}
}

func (g *Game) status() ui.Status {
	st := g.sim.Stats()
	res := g.selection.Result()
	return ui.Status{
		Seed:      g.sim.Seed(),
		Stage:     g.sim.Stage().String(),
		Animate:   g.animate,
		Rooms:     st.Rooms,
		Passages:  st.Passages,
		Removed:   st.IslandsRemoved + st.CavesRemoved,
		Path:      g.selection.State(),
		PathCells: res.Len(),
		PathCost:  res.Cost,
	}
}

// Draw renders the map, path and panels.
func (g *Game) Draw(screen *ebiten.Image) {
	g.buf = render.Compose(g.buf, render.Scene{
		Grid:       g.sim.Grid(),
		Path:       g.selection.Result().Path,
		Start:      g.selection.Start(),
		Goal:       g.selection.Goal(),
		ShowBorder: g.showBorder,
	})
	g.painter.Blit(screen, g.buf, render.CavePalette, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
