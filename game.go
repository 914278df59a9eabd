package main

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rampball/common"
	"github.com/milk9111/rampball/ecs/render"
	"github.com/milk9111/rampball/prefabs"
	"github.com/milk9111/rampball/session"
	"github.com/milk9111/rampball/sim"
	"github.com/milk9111/rampball/ui"
)

type Game struct {
	sim      *sim.Simulation
	input    *TouchInput
	renderer *render.RenderSystem
	overlay  *ui.Overlay
	watcher  *prefabs.Watcher
	logger   *log.Logger

	debug     bool
	wireframe bool
}

func NewGame(s *sim.Simulation, watcher *prefabs.Watcher, logger *log.Logger, debug bool) *Game {
	g := &Game{
		sim:      s,
		input:    NewTouchInput(),
		renderer: render.NewRenderSystem(prefabs.ColorOr(s.Tuning().World.Background, nil)),
		watcher:  watcher,
		logger:   logger,
		debug:    debug,
	}
	s.Session.Input = g.input.Touches()
	g.overlay = ui.New(ui.Actions{
		Continue: func() { s.Session.Game.Set(session.MainMenu) },
		Revive:   func() { logger.Info("revive is not available") },
		Resume:   func() { s.SetPaused(false) },
	})
	return g
}

func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sim.SetPaused(!g.sim.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.wireframe = !g.wireframe
	}

	g.input.Update()
	g.overlay.Update(g.sim.Session, g.sim.Paused())
	g.sim.Tick()
	return nil
}

// pollWatcher reloads the tuning files when any of them changed on disk.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		g.logger.Error("tuning watch", "err", err)
	default:
	}
	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	for _, path := range changed {
		g.logger.Debug("tuning file changed", "file", filepath.Base(path))
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		g.logger.Error("reload tuning", "err", err)
		return
	}
	g.sim.QueueTuning(tuning)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.sim.World, screen)
	if g.wireframe {
		render.DrawWireframe(g.sim.Physics.Space(), g.sim.World, screen)
	}
	if g.debug {
		render.DrawPlatformDebug(g.sim.World, screen)
	}
	g.overlay.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	zoom := g.sim.Tuning().World.CameraZoom
	if zoom <= 0 {
		zoom = 1
	}
	g.sim.SetViewport(common.BaseWidth/zoom, common.BaseHeight/zoom)
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
