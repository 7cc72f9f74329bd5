package terminal

import (
	"image/color"
	"math"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"pong/internal/config"
	"pong/internal/render"
)

// Screen is the subset of termbox the surface draws through.
type Screen interface {
	Size() (cols, rows int)
	Clear(fg, bg termbox.Attribute) error
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Flush() error
}

type termboxScreen struct{}

func (termboxScreen) Size() (int, int)                     { return termbox.Size() }
func (termboxScreen) Clear(fg, bg termbox.Attribute) error { return termbox.Clear(fg, bg) }
func (termboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}
func (termboxScreen) Flush() error { return termbox.Flush() }

// Surface scales the playfield onto terminal cells.
type Surface struct {
	screen Screen
	geom   config.Geometry
	cols   int
	rows   int
	bg     termbox.Attribute
	fg     termbox.Attribute

	// Overlay lines are written from the second row down before each flush.
	Overlay []string
}

func NewSurface(screen Screen, g config.Geometry) *Surface {
	return &Surface{screen: screen, geom: g}
}

func (s *Surface) Clear(c color.Color) {
	s.cols, s.rows = s.screen.Size()
	s.bg = Attr(c)
	s.screen.Clear(termbox.ColorDefault, s.bg)
}

func (s *Surface) FillRect(r render.Rect, c color.Color) {
	a := Attr(c)
	s.fg = a
	x0, y0, x1, y1 := s.cells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetCell(x, y, ' ', a, a)
		}
	}
}

func (s *Surface) Present() {
	for i, line := range s.Overlay {
		s.text(1, i+1, line)
	}
	s.screen.Flush()
}

// cells returns the half-open cell range covered by r.
func (s *Surface) cells(r render.Rect) (x0, y0, x1, y1 int) {
	sx := float64(s.cols) / s.geom.ScreenWidth
	sy := float64(s.rows) / s.geom.ScreenHeight
	x0 = clamp(int(math.Floor(r.X*sx)), 0, s.cols)
	x1 = clamp(int(math.Ceil((r.X+r.W)*sx)), 0, s.cols)
	y0 = clamp(int(math.Floor(r.Y*sy)), 0, s.rows)
	y1 = clamp(int(math.Ceil((r.Y+r.H)*sy)), 0, s.rows)
	return x0, y0, x1, y1
}

func (s *Surface) text(x, y int, line string) {
	for _, ch := range line {
		if x >= s.cols {
			return
		}
		s.screen.SetCell(x, y, ch, s.fg, s.bg)
		x += runewidth.RuneWidth(ch)
	}
}

// Attr maps c onto the nearest of the eight basic terminal colours.
func Attr(c color.Color) termbox.Attribute {
	if c == nil {
		return termbox.ColorDefault
	}
	r, g, b, _ := c.RGBA()
	idx := 0
	if r >= 0x8000 {
		idx |= 1
	}
	if g >= 0x8000 {
		idx |= 2
	}
	if b >= 0x8000 {
		idx |= 4
	}
	return termbox.ColorBlack + termbox.Attribute(idx)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
