// Package render draws a frame as a fixed sequence of filled rectangles on a
// Surface supplied by the frontend.
package render

import (
	"image/color"

	"pong/internal/config"
	"pong/internal/entity"
)

// Rect is a screen rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// Surface is the drawing target of one frontend.
type Surface interface {
	Clear(c color.Color)
	FillRect(r Rect, c color.Color)
	Present()
}

// Scene is what DrawFrame needs to know about a session.
type Scene struct {
	Geometry   config.Geometry
	Background color.Color
	Foreground color.Color
	RightWall  bool
	Paddles    []*entity.Paddle
	Balls      []*entity.Ball
}

// DrawFrame clears the surface, draws walls, paddles and balls, and presents.
func DrawFrame(s Surface, sc Scene) {
	g := sc.Geometry
	t := g.WallThickness

	s.Clear(sc.Background)

	s.FillRect(Rect{X: 0, Y: 0, W: g.ScreenWidth, H: t}, sc.Foreground)
	s.FillRect(Rect{X: 0, Y: g.ScreenHeight - t, W: g.ScreenWidth, H: t}, sc.Foreground)
	if sc.RightWall {
		s.FillRect(Rect{X: g.ScreenWidth - t, Y: 0, W: t, H: g.ScreenHeight}, sc.Foreground)
	}

	for _, p := range sc.Paddles {
		s.FillRect(PaddleRect(g, p), sc.Foreground)
	}
	for _, b := range sc.Balls {
		s.FillRect(BallRect(g, b), sc.Foreground)
	}

	s.Present()
}

// PaddleRect is the on-screen box of p.
func PaddleRect(g config.Geometry, p *entity.Paddle) Rect {
	return Rect{X: p.Pos.X, Y: p.Top(), W: g.WallThickness, H: 2 * p.HalfHeight}
}

// BallRect is the thickness-sized square centred on b.
func BallRect(g config.Geometry, b *entity.Ball) Rect {
	t := g.WallThickness
	return Rect{X: b.Pos.X - t/2, Y: b.Pos.Y - t/2, W: t, H: t}
}
