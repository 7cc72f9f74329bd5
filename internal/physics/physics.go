// Package physics advances paddles and balls by one frame and resolves
// collisions against paddles and walls.
//
// Each ball gets at most one horizontal event per frame. ClassifyX checks the
// candidates in a fixed order and the first match wins:
//
//  1. left paddle face
//  2. right paddle face (only when a right paddle exists)
//  3. left screen edge, which ends the session
//  4. right edge, which bounces or ends the session depending on the variant
//
// The vertical check against the top and bottom walls runs every frame on its
// own. Paddle contact is tested against a narrow x band, so a ball moving more
// than the band depth in a single frame can pass through a paddle.
package physics

import (
	"math"

	"pong/internal/config"
	"pong/internal/entity"
)

// Outcome tags what happened to a ball on one axis this frame.
type Outcome int

const (
	NoHit Outcome = iota
	PaddleBounce
	WallBounce
	SessionEnd
)

func (o Outcome) String() string {
	switch o {
	case PaddleBounce:
		return "paddle-bounce"
	case WallBounce:
		return "wall-bounce"
	case SessionEnd:
		return "session-end"
	default:
		return "no-hit"
	}
}

// EdgeRule is what the right screen edge does to a ball.
type EdgeRule int

const (
	// EdgeBounce treats the right edge as a solid wall.
	EdgeBounce EdgeRule = iota
	// EdgeExit treats the right edge as a goal line behind a paddle.
	EdgeExit
)

// Rules are the variant-specific parts of the step.
type Rules struct {
	RightEdge EdgeRule
}

// World is the mutable state the step operates on.
type World struct {
	Paddles []*entity.Paddle
	Balls   []*entity.Ball
}

// BallReport is the per-ball result of one step.
type BallReport struct {
	X Outcome
	Y Outcome
}

// Report summarises one step.
type Report struct {
	Balls []BallReport
	Ended bool
}

// Count returns how many axis outcomes equal o.
func (r Report) Count(o Outcome) int {
	n := 0
	for _, b := range r.Balls {
		if b.X == o {
			n++
		}
		if b.Y == o {
			n++
		}
	}
	return n
}

// Step advances w by dt seconds.
func Step(g config.Geometry, rules Rules, w World, dt float64) Report {
	for _, p := range w.Paddles {
		MovePaddle(g, p, dt)
	}

	left, right := paddleOn(w.Paddles, entity.SideLeft), paddleOn(w.Paddles, entity.SideRight)
	report := Report{Balls: make([]BallReport, len(w.Balls))}
	for i, b := range w.Balls {
		b.Integrate(dt)

		x := ClassifyX(g, rules, left, right, b)
		switch x {
		case PaddleBounce, WallBounce:
			b.BounceX()
		case SessionEnd:
			report.Ended = true
		}

		y := ClassifyY(g, b)
		if y == WallBounce {
			b.BounceY()
		}
		report.Balls[i] = BallReport{X: x, Y: y}
	}
	return report
}

// MovePaddle applies the paddle's intent and keeps it between the walls.
func MovePaddle(g config.Geometry, p *entity.Paddle, dt float64) {
	p.Move(g.PaddleSpeed, dt, g.PaddleMinY(), g.PaddleMaxY())
}

// ClassifyX decides the single horizontal event for b. left or right may be nil.
func ClassifyX(g config.Geometry, rules Rules, left, right *entity.Paddle, b *entity.Ball) Outcome {
	leftLo, leftHi := g.LeftBand()
	rightLo, rightHi := g.RightBand()

	switch {
	case left != nil && reaches(left, b) &&
		b.Pos.X >= leftLo && b.Pos.X <= leftHi && b.Vel.X < 0:
		return PaddleBounce
	case right != nil && reaches(right, b) &&
		b.Pos.X >= rightLo && b.Pos.X <= rightHi && b.Vel.X > 0:
		return PaddleBounce
	case b.Pos.X <= 0:
		return SessionEnd
	case b.Pos.X >= g.RightEdge() && b.Vel.X > 0:
		if rules.RightEdge == EdgeExit {
			return SessionEnd
		}
		return WallBounce
	}
	return NoHit
}

// ClassifyY decides the vertical event for b.
func ClassifyY(g config.Geometry, b *entity.Ball) Outcome {
	switch {
	case b.Pos.Y <= g.WallThickness && b.Vel.Y < 0:
		return WallBounce
	case b.Pos.Y >= g.ScreenHeight-g.WallThickness && b.Vel.Y > 0:
		return WallBounce
	}
	return NoHit
}

func reaches(p *entity.Paddle, b *entity.Ball) bool {
	return math.Abs(p.Pos.Y-b.Pos.Y) <= p.HalfHeight
}

func paddleOn(paddles []*entity.Paddle, side entity.Side) *entity.Paddle {
	for _, p := range paddles {
		if p.Side == side {
			return p
		}
	}
	return nil
}
