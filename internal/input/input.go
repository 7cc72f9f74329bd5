// Package input turns the window's event queue and keyboard state into the
// per-frame intents the session consumes.
package input

// Key is a frontend-independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyW
	KeyS
	KeyI
	KeyK
	KeyF1
	KeyF3
)

var keyNames = map[Key]string{
	KeyEscape: "Esc",
	KeyW:      "W",
	KeyS:      "S",
	KeyI:      "I",
	KeyK:      "K",
	KeyF1:     "F1",
	KeyF3:     "F3",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "?"
}

// EventKind is a discrete window event.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
)

type Event struct {
	Kind EventKind
}

// EventSource is a queue of pending discrete events.
type EventSource interface {
	// Poll pops the next pending event. ok is false once the queue is empty.
	Poll() (ev Event, ok bool)
}

// KeyState is a snapshot of which keys are currently held.
type KeyState interface {
	Pressed(k Key) bool
}

// Binding maps one paddle's up and down keys.
type Binding struct {
	Up   Key
	Down Key
}

// Intent is the outcome of sampling input for one frame.
type Intent struct {
	Quit bool
	Dirs []int // one entry per binding, in binding order; nil without a key source
}

// Sampler reads input for a fixed set of paddle bindings.
type Sampler struct {
	events   EventSource
	keys     KeyState
	bindings []Binding
}

// NewSampler returns a sampler. Either source may be nil.
func NewSampler(events EventSource, keys KeyState, bindings []Binding) *Sampler {
	return &Sampler{events: events, keys: keys, bindings: bindings}
}

// Sample drains the event queue and reads the keyboard snapshot.
func (s *Sampler) Sample() Intent {
	var in Intent

	if s.events != nil {
		for {
			ev, ok := s.events.Poll()
			if !ok {
				break
			}
			if ev.Kind == EventQuit {
				in.Quit = true
			}
		}
	}

	if s.keys == nil {
		return in
	}
	if s.keys.Pressed(KeyEscape) {
		in.Quit = true
	}
	in.Dirs = make([]int, len(s.bindings))
	for i, b := range s.bindings {
		dir := 0
		if s.keys.Pressed(b.Up) {
			dir--
		}
		if s.keys.Pressed(b.Down) {
			dir++
		}
		in.Dirs[i] = dir
	}
	return in
}
