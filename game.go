package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/carrig/ecs/system"
	"github.com/milk9111/carrig/scenarios"
	"github.com/milk9111/carrig/sim"
	"go.uber.org/zap"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var background = color.NRGBA{R: 0x18, G: 0x1c, B: 0x24, A: 0xff}

type Options struct {
	Scenario string
	Script   string
	Debug    bool
	Watch    bool
}

type Game struct {
	opts   Options
	logger *zap.Logger

	session  *sim.Session
	view     system.Viewbox
	keyboard *system.Keyboard

	paused  bool
	pauseUI *ebitenui.UI
	watcher *scenarios.Watcher
}

func NewGame(opts Options, logger *zap.Logger) (*Game, error) {
	g := &Game{
		opts:     opts,
		logger:   logger,
		keyboard: &system.Keyboard{},
	}
	if err := g.load(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := scenarios.NewWatcher()
		if err != nil {
			// Embedded scenarios still work without a scenarios/ directory.
			logger.Warn("scenario watcher disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) load() error {
	session, err := sim.Load(sim.Options{
		Scenario: g.opts.Scenario,
		Script:   g.opts.Script,
		Keys:     g.keyboard,
	}, g.logger)
	if err != nil {
		return err
	}
	g.session = session
	view := session.Spec.View
	g.view = system.Viewbox{Width: view.Width, Height: view.Height, Align: view.Align}
	return nil
}

// reload rebuilds the scene, keeping the running one if the new spec is bad.
func (g *Game) reload(reason string) {
	if err := g.load(); err != nil {
		g.logger.Error("reload failed", zap.String("reason", reason), zap.Error(err))
		return
	}
	fields := []zap.Field{zap.String("scenario", g.session.Spec.Name), zap.String("reason", reason)}
	if modified, ok := scenarios.ModTime(g.opts.Scenario); ok {
		fields = append(fields, zap.Time("modified", modified))
	}
	g.logger.Info("scenario reloaded", fields...)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.watcher != nil {
		if changed := g.watcher.Drain(); len(changed) > 0 {
			g.reload(changed[len(changed)-1])
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload("key")
	}

	g.session.Tick()
	return nil
}

// setPaused also lets go of the throttle on pause, since key releases are not
// read while the menu is up.
func (g *Game) setPaused(paused bool) {
	if paused && !g.paused {
		g.session.Pause()
	}
	g.paused = paused
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	system.DrawPhysics(g.session.World, screen, g.view, g.opts.Debug)
	system.DrawHUD(g.session.World, screen, g.session.Spec.Name)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
