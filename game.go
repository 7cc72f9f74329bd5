package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pong/internal/clock"
	"pong/internal/config"
	"pong/internal/gamemode"
	"pong/internal/input"
	"pong/internal/render"
	"pong/internal/session"
	"pong/internal/window"
)

// Game adapts a session loop to ebiten.
type Game struct {
	cfg     config.Config
	loop    *session.Loop
	keys    window.Keys
	started bool

	showHUD   bool
	showDebug bool
}

func NewGame(cfg config.Config, v gamemode.Variant) *Game {
	s := session.New(cfg, v)
	sampler := input.NewSampler(&window.Events{}, window.Keys{}, v.Bindings())
	clk := clock.New(clock.System, cfg.Timing.FrameInterval, cfg.Timing.MaxDelta)

	g := &Game{
		cfg:       cfg,
		loop:      session.NewLoop(s, sampler, clk),
		showHUD:   cfg.Display.HUD,
		showDebug: cfg.Display.Debug,
	}
	if cfg.Display.Sound {
		g.loop.OnStep = window.NewSounds().Play
	}
	return g
}

// Update: Input, frame wait and physics (60 TPS)
func (g *Game) Update() error {
	// Window setup may take longer than a frame; start timing here.
	if !g.started {
		g.loop.Clock.Reset()
		g.started = true
	}

	// Overlay toggles
	if g.keys.JustPressed(input.KeyF1) {
		g.showHUD = !g.showHUD
	}
	if g.keys.JustPressed(input.KeyF3) {
		g.showDebug = !g.showDebug
	}

	if !g.loop.Advance() {
		return ebiten.Termination
	}
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	surf := window.Screen{Image: screen}
	g.loop.Render(surf)

	geom := g.cfg.Geometry
	s := g.loop.Session
	if g.showHUD {
		surf.DrawHUD(s.HUD(), geom.WallThickness, s.Variant().Foreground)
	}
	if g.showDebug {
		surf.DrawDebug(render.Debug{
			TPS:   ebiten.ActualTPS(),
			FPS:   ebiten.ActualFPS(),
			Delta: g.loop.LastDelta(),
			Balls: len(s.Balls),
		}, geom.ScreenHeight-geom.WallThickness)
	}
}

// Layout: the playfield is always drawn at its configured size and scaled by ebiten.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Geometry.ScreenWidth), int(g.cfg.Geometry.ScreenHeight)
}
