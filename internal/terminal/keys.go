package terminal

import (
	"time"
	"unicode"

	"github.com/nsf/termbox-go"

	"pong/internal/input"
)

// HeldKeys approximates keyboard state from press events: a key counts as held
// for the hold window after its most recent press. Terminals repeat presses
// while a key is down, so a window a little longer than the repeat interval
// reads as a continuous hold.
type HeldKeys struct {
	hold time.Duration
	now  func() time.Time
	last map[input.Key]time.Time
}

func NewHeldKeys(hold time.Duration, now func() time.Time) *HeldKeys {
	return &HeldKeys{hold: hold, now: now, last: make(map[input.Key]time.Time)}
}

// Press records k as pressed at the current time.
func (h *HeldKeys) Press(k input.Key) {
	h.last[k] = h.now()
}

func (h *HeldKeys) Pressed(k input.Key) bool {
	at, ok := h.last[k]
	return ok && h.now().Sub(at) < h.hold
}

// Input turns raw termbox events into quit events and key presses.
type Input struct {
	events  <-chan termbox.Event
	keys    *HeldKeys
	pending []input.Event
}

func NewInput(events <-chan termbox.Event, keys *HeldKeys) *Input {
	return &Input{events: events, keys: keys}
}

// Poll first moves everything the terminal has delivered into the key state
// and the pending queue, then pops one pending event.
func (in *Input) Poll() (input.Event, bool) {
	in.drain()
	if len(in.pending) == 0 {
		return input.Event{}, false
	}
	ev := in.pending[0]
	in.pending = in.pending[1:]
	return ev, true
}

func (in *Input) drain() {
	for {
		select {
		case ev := <-in.events:
			key, kind := translate(ev)
			if kind != input.EventNone {
				in.pending = append(in.pending, input.Event{Kind: kind})
			}
			if key != input.KeyUnknown {
				in.keys.Press(key)
			}
		default:
			return
		}
	}
}

var charKeys = map[rune]input.Key{
	'w': input.KeyW,
	's': input.KeyS,
	'i': input.KeyI,
	'k': input.KeyK,
}

func translate(ev termbox.Event) (input.Key, input.EventKind) {
	switch ev.Type {
	case termbox.EventError, termbox.EventInterrupt:
		return input.KeyUnknown, input.EventQuit
	case termbox.EventKey:
	default:
		return input.KeyUnknown, input.EventNone
	}

	switch ev.Key {
	case termbox.KeyCtrlC:
		return input.KeyUnknown, input.EventQuit
	case termbox.KeyEsc:
		return input.KeyEscape, input.EventNone
	case termbox.KeyF1:
		return input.KeyF1, input.EventNone
	case termbox.KeyF3:
		return input.KeyF3, input.EventNone
	}
	if k, ok := charKeys[unicode.ToLower(ev.Ch)]; ok {
		return k, input.EventNone
	}
	return input.KeyUnknown, input.EventNone
}
