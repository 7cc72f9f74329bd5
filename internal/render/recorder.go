package render

import "image/color"

// Op is one recorded Surface call.
type Op struct {
	Kind  string // "clear", "fill" or "present"
	Rect  Rect
	Color color.Color
}

// Recorder is a Surface that remembers every call. Useful in tests and for
// frontends that replay a frame later.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "clear", Color: c})
}

func (r *Recorder) FillRect(rect Rect, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", Rect: rect, Color: c})
}

func (r *Recorder) Present() {
	r.Ops = append(r.Ops, Op{Kind: "present"})
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
