// Package session owns the paddles and balls of one game and advances them
// frame by frame.
package session

import (
	"log"

	"pong/internal/config"
	"pong/internal/entity"
	"pong/internal/gamemode"
	"pong/internal/input"
	"pong/internal/physics"
	"pong/internal/render"
)

// StopReason says why a session is no longer running.
type StopReason int

const (
	Running StopReason = iota
	Quit
	BallLost
)

func (r StopReason) String() string {
	switch r {
	case Quit:
		return "quit"
	case BallLost:
		return "ball lost"
	default:
		return "running"
	}
}

// Session is one game from startup to shutdown.
type Session struct {
	cfg     config.Config
	variant gamemode.Variant

	Paddles []*entity.Paddle
	Balls   []*entity.Ball

	reason  StopReason
	elapsed float64
	frames  int
}

// New places the variant's paddles at mid height and serves its balls.
func New(cfg config.Config, v gamemode.Variant) *Session {
	g := cfg.Geometry
	s := &Session{cfg: cfg, variant: v, Balls: v.Serve(cfg)}
	for _, ps := range v.Paddles {
		x := g.LeftPaddleX()
		if ps.Side == entity.SideRight {
			x = g.RightPaddleX()
		}
		s.Paddles = append(s.Paddles, entity.NewPaddle(ps.Side, x, g.ScreenHeight/2, g.PaddleHalfHeight))
	}
	return s
}

func (s *Session) Running() bool          { return s.reason == Running }
func (s *Session) StopReason() StopReason { return s.reason }
func (s *Session) Elapsed() float64       { return s.elapsed }
func (s *Session) Frames() int            { return s.frames }
func (s *Session) Variant() gamemode.Variant {
	return s.variant
}

// Stop ends the session. Only the first reason is kept.
func (s *Session) Stop(r StopReason) {
	if s.reason != Running || r == Running {
		return
	}
	s.reason = r
	log.Printf("%s: session over (%s) after %.1fs, %d frames", s.variant.Name, r, s.elapsed, s.frames)
}

// ApplyInput stores the sampled intents on the paddles.
func (s *Session) ApplyInput(in input.Intent) {
	if in.Quit {
		s.Stop(Quit)
	}
	if len(in.Dirs) != len(s.Paddles) {
		return
	}
	for i, p := range s.Paddles {
		p.SetDir(in.Dirs[i])
	}
}

// Update advances the world by dt seconds.
func (s *Session) Update(dt float64) physics.Report {
	s.frames++
	s.elapsed += dt
	report := physics.Step(s.cfg.Geometry, s.variant.Rules, physics.World{Paddles: s.Paddles, Balls: s.Balls}, dt)
	if report.Ended {
		s.Stop(BallLost)
	}
	return report
}

// Scene describes the current frame for the renderer.
func (s *Session) Scene() render.Scene {
	return render.Scene{
		Geometry:   s.cfg.Geometry,
		Background: s.variant.Background,
		Foreground: s.variant.Foreground,
		RightWall:  s.variant.RightWall(),
		Paddles:    s.Paddles,
		Balls:      s.Balls,
	}
}

// HUD describes the text overlay for the current frame.
func (s *Session) HUD() render.HUD {
	return render.HUD{
		Title:    s.variant.Title,
		Elapsed:  s.elapsed,
		Bindings: s.variant.Bindings(),
	}
}
