// Package terminal plays the game in a text terminal through termbox.
package terminal

import (
	"errors"
	"fmt"
	"time"

	"github.com/nsf/termbox-go"

	"pong/internal/clock"
	"pong/internal/config"
	"pong/internal/gamemode"
	"pong/internal/input"
	"pong/internal/session"
)

// ErrInit is returned when the terminal cannot be put into full-screen mode.
var ErrInit = errors.New("terminal init")

// Run plays one session in the terminal and returns when it ends.
func Run(cfg config.Config, v gamemode.Variant) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrInit, err)
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)

	events := make(chan termbox.Event, 64)
	done := make(chan struct{})
	go pump(events, done)
	defer func() {
		close(done)
		termbox.Interrupt()
	}()

	s := session.New(cfg, v)
	keys := NewHeldKeys(cfg.Timing.KeyHold, time.Now)
	sampler := input.NewSampler(NewInput(events, keys), keys, v.Bindings())
	loop := session.NewLoop(s, sampler, clock.New(clock.System, cfg.Timing.FrameInterval, cfg.Timing.MaxDelta))
	surf := NewSurface(termboxScreen{}, cfg.Geometry)

	for s.Running() {
		loop.Advance()
		if cfg.Display.HUD {
			surf.Overlay = s.HUD().Lines()
		}
		loop.Render(surf)
	}
	return nil
}

// pump forwards termbox events until interrupted. PollEvent blocks, so it
// lives on its own goroutine; all game state stays on the loop goroutine.
func pump(out chan<- termbox.Event, done <-chan struct{}) {
	for {
		ev := termbox.PollEvent()
		if ev.Type == termbox.EventInterrupt {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
