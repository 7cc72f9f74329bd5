package session

import (
	"pong/internal/clock"
	"pong/internal/input"
	"pong/internal/physics"
	"pong/internal/render"
)

// Loop runs frames in the fixed order input, clock, physics, render.
type Loop struct {
	Session *Session
	Sampler *input.Sampler
	Clock   *clock.FrameClock

	// OnStep, if set, sees every physics report.
	OnStep func(physics.Report)

	lastDelta float64
}

func NewLoop(s *Session, sampler *input.Sampler, clk *clock.FrameClock) *Loop {
	return &Loop{Session: s, Sampler: sampler, Clock: clk}
}

// Advance samples input, waits for the frame interval and steps physics.
// It reports whether the session is still running.
func (l *Loop) Advance() bool {
	l.Session.ApplyInput(l.Sampler.Sample())

	l.lastDelta = l.Clock.Tick()
	report := l.Session.Update(l.lastDelta)
	if l.OnStep != nil {
		l.OnStep(report)
	}
	return l.Session.Running()
}

// Render draws the current frame onto surf.
func (l *Loop) Render(surf render.Surface) {
	render.DrawFrame(surf, l.Session.Scene())
}

// Run advances and renders until the session stops.
func (l *Loop) Run(surf render.Surface) {
	for l.Session.Running() {
		l.Advance()
		l.Render(surf)
	}
}

// LastDelta is the dt used by the most recent Advance.
func (l *Loop) LastDelta() float64 {
	return l.lastDelta
}
