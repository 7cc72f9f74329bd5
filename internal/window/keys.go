package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pong/internal/input"
)

var keymap = map[input.Key]ebiten.Key{
	input.KeyEscape: ebiten.KeyEscape,
	input.KeyW:      ebiten.KeyW,
	input.KeyS:      ebiten.KeyS,
	input.KeyI:      ebiten.KeyI,
	input.KeyK:      ebiten.KeyK,
	input.KeyF1:     ebiten.KeyF1,
	input.KeyF3:     ebiten.KeyF3,
}

// Keys reads held keys from ebiten.
type Keys struct{}

func (Keys) Pressed(k input.Key) bool {
	ek, ok := keymap[k]
	return ok && ebiten.IsKeyPressed(ek)
}

// JustPressed reports whether k went down this tick.
func (Keys) JustPressed(k input.Key) bool {
	ek, ok := keymap[k]
	return ok && inpututil.IsKeyJustPressed(ek)
}

// Events reports a window close request as a single quit event.
// The game must call ebiten.SetWindowClosingHandled(true) for this to fire.
type Events struct {
	delivered bool
}

func (e *Events) Poll() (input.Event, bool) {
	if !e.delivered && ebiten.IsWindowBeingClosed() {
		e.delivered = true
		return input.Event{Kind: input.EventQuit}, true
	}
	return input.Event{}, false
}
