package physics

import (
	"math"
	"math/rand"
	"testing"

	"pong/internal/config"
	"pong/internal/entity"
)

const frame = 0.016

var (
	survival = Rules{RightEdge: EdgeBounce}
	versus   = Rules{RightEdge: EdgeExit}
)

func geometry() config.Geometry {
	return config.Default().Geometry
}

func leftPaddle(y float64) *entity.Paddle {
	g := geometry()
	return entity.NewPaddle(entity.SideLeft, g.LeftPaddleX(), y, g.PaddleHalfHeight)
}

func rightPaddle(y float64) *entity.Paddle {
	g := geometry()
	return entity.NewPaddle(entity.SideRight, g.RightPaddleX(), y, g.PaddleHalfHeight)
}

func ball(x, y, vx, vy float64) *entity.Ball {
	return entity.NewBall(entity.Vector2{X: x, Y: y}, entity.Vector2{X: vx, Y: vy})
}

// follow steers p toward b the way a player holding up/down would.
func follow(p *entity.Paddle, b *entity.Ball) {
	switch {
	case b.Pos.Y > p.Pos.Y:
		p.SetDir(1)
	case b.Pos.Y < p.Pos.Y:
		p.SetDir(-1)
	default:
		p.SetDir(0)
	}
}

func TestPaddleStaysBetweenWalls(t *testing.T) {
	g := geometry()
	rng := rand.New(rand.NewSource(1))
	p := leftPaddle(g.ScreenHeight / 2)

	for i := 0; i < 5000; i++ {
		p.SetDir(rng.Intn(3) - 1)
		MovePaddle(g, p, rng.Float64()*0.05)
		if p.Pos.Y < g.PaddleMinY() || p.Pos.Y > g.PaddleMaxY() {
			t.Fatalf("step %d: paddle y %v outside [%v,%v]", i, p.Pos.Y, g.PaddleMinY(), g.PaddleMaxY())
		}
	}
}

func TestStillPaddleDoesNotMove(t *testing.T) {
	g := geometry()
	p := leftPaddle(200)
	MovePaddle(g, p, 0.05)
	if p.Pos.Y != 200 {
		t.Fatalf("expected y 200, got %v", p.Pos.Y)
	}
}

func TestZeroDeltaIsIdempotent(t *testing.T) {
	g := geometry()
	l, r := leftPaddle(300), rightPaddle(400)
	l.SetDir(1)
	r.SetDir(-1)
	b := ball(512, 384, -200, 235)
	w := World{Paddles: []*entity.Paddle{l, r}, Balls: []*entity.Ball{b}}

	report := Step(g, versus, w, 0)

	if l.Pos.Y != 300 || r.Pos.Y != 400 {
		t.Fatalf("expected paddles unchanged, got %v and %v", l.Pos.Y, r.Pos.Y)
	}
	if b.Pos != (entity.Vector2{X: 512, Y: 384}) || b.Vel != (entity.Vector2{X: -200, Y: 235}) {
		t.Fatalf("expected ball unchanged, got %+v", *b)
	}
	if report.Ended || report.Balls[0].X != NoHit || report.Balls[0].Y != NoHit {
		t.Fatalf("expected no events, got %+v", report)
	}
}

func TestClassifyX(t *testing.T) {
	g := geometry()
	tests := []struct {
		name  string
		rules Rules
		left  *entity.Paddle
		right *entity.Paddle
		ball  *entity.Ball
		want  Outcome
	}{
		{"left paddle face", survival, leftPaddle(384), nil, ball(22, 384, -200, 0), PaddleBounce},
		{"left paddle band low edge", survival, leftPaddle(384), nil, ball(20, 434, -200, 0), PaddleBounce},
		{"left paddle moving away", survival, leftPaddle(384), nil, ball(22, 384, 200, 0), NoHit},
		{"left paddle missed", survival, leftPaddle(384), nil, ball(22, 435, -200, 0), NoHit},
		{"right paddle face", versus, leftPaddle(384), rightPaddle(384), ball(1000, 384, 200, 0), PaddleBounce},
		{"right paddle ignored when absent", survival, leftPaddle(384), nil, ball(1000, 384, 200, 0), NoHit},
		{"left edge", survival, leftPaddle(384), nil, ball(0, 100, -200, 0), SessionEnd},
		{"left edge even when moving right", survival, leftPaddle(384), nil, ball(-1, 100, 200, 0), SessionEnd},
		{"right wall bounce", survival, leftPaddle(384), nil, ball(1009, 100, 200, 0), WallBounce},
		{"right edge exit", versus, leftPaddle(384), rightPaddle(384), ball(1009, 100, 200, 0), SessionEnd},
		{"right edge moving away", versus, leftPaddle(384), rightPaddle(384), ball(1010, 100, -200, 0), NoHit},
		{"open field", versus, leftPaddle(384), rightPaddle(384), ball(512, 384, 200, 0), NoHit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyX(g, tt.rules, tt.left, tt.right, tt.ball); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClassifyXPriority(t *testing.T) {
	// Bands widened until they overlap the screen edges.
	g := geometry()
	g.PaddleInset = 0
	g.HitDepth = g.WallThickness
	l := entity.NewPaddle(entity.SideLeft, g.LeftPaddleX(), 384, g.PaddleHalfHeight)
	r := entity.NewPaddle(entity.SideRight, g.RightPaddleX(), 384, g.PaddleHalfHeight)

	if got := ClassifyX(g, versus, l, r, ball(0, 384, -200, 0)); got != PaddleBounce {
		t.Fatalf("left paddle must win over left edge, got %v", got)
	}
	if got := ClassifyX(g, versus, l, r, ball(g.RightEdge(), 384, 200, 0)); got != PaddleBounce {
		t.Fatalf("right paddle must win over right edge, got %v", got)
	}
	if got := ClassifyX(g, versus, l, r, ball(g.RightEdge(), 100, 200, 0)); got != SessionEnd {
		t.Fatalf("expected right edge exit away from paddle, got %v", got)
	}
}

func TestClassifyY(t *testing.T) {
	g := geometry()
	tests := []struct {
		name string
		ball *entity.Ball
		want Outcome
	}{
		{"top wall exactly", ball(500, 15, 0, -235), WallBounce},
		{"top wall moving away", ball(500, 10, 0, 235), NoHit},
		{"bottom wall", ball(500, 754, 0, 235), WallBounce},
		{"bottom wall exactly", ball(500, 753, 0, 235), WallBounce},
		{"bottom wall moving away", ball(500, 760, 0, -235), NoHit},
		{"middle", ball(500, 384, 0, 235), NoHit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyY(g, tt.ball); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBounceKeepsSpeed(t *testing.T) {
	g := geometry()
	tests := []struct {
		name  string
		rules Rules
		ball  *entity.Ball
		axis  string
	}{
		{"top", survival, ball(500, 16, 120, -235), "y"},
		{"bottom", survival, ball(500, 752, 120, 235), "y"},
		{"left paddle", survival, ball(24, 384, -200, 10), "x"},
		{"right paddle", versus, ball(1000, 384, 200, 10), "x"},
		{"right wall", survival, ball(1008, 200, 200, 10), "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := World{
				Paddles: []*entity.Paddle{leftPaddle(384)},
				Balls:   []*entity.Ball{tt.ball},
			}
			if tt.rules == versus {
				w.Paddles = append(w.Paddles, rightPaddle(384))
			}
			before := tt.ball.Vel

			Step(g, tt.rules, w, frame)

			after := tt.ball.Vel
			switch tt.axis {
			case "x":
				if after.X != -before.X || after.Y != before.Y {
					t.Fatalf("expected only x flipped: before %+v after %+v", before, after)
				}
			case "y":
				if after.Y != -before.Y || after.X != before.X {
					t.Fatalf("expected only y flipped: before %+v after %+v", before, after)
				}
			}
			if math.Hypot(after.X, after.Y) != math.Hypot(before.X, before.Y) {
				t.Fatalf("speed changed: before %+v after %+v", before, after)
			}
		})
	}
}

func TestBothAxesCanBounceInOneFrame(t *testing.T) {
	g := geometry()
	b := ball(23, 17, -32, -32)
	p := leftPaddle(g.PaddleMinY())
	report := Step(g, survival, World{Paddles: []*entity.Paddle{p}, Balls: []*entity.Ball{b}}, 0.0625)

	if report.Balls[0].X != PaddleBounce || report.Balls[0].Y != WallBounce {
		t.Fatalf("expected paddle and wall bounce, got %+v", report.Balls[0])
	}
	if b.Vel.X != 32 || b.Vel.Y != 32 {
		t.Fatalf("expected (32, 32), got %+v", b.Vel)
	}
}

func TestSurvivalBallReturnsOffLeftPaddle(t *testing.T) {
	g := geometry()
	p := leftPaddle(384)
	b := ball(512, 384, 200, 235)
	w := World{Paddles: []*entity.Paddle{p}, Balls: []*entity.Ball{b}}

	sawWall := false
	for i := 0; i < 2000; i++ {
		follow(p, b)
		report := Step(g, survival, w, frame)
		if report.Ended {
			t.Fatalf("frame %d: ball lost at %+v with paddle at %v", i, b.Pos, p.Pos.Y)
		}
		switch report.Balls[0].X {
		case WallBounce:
			sawWall = true
		case PaddleBounce:
			lo, hi := g.LeftBand()
			if b.Pos.X < lo || b.Pos.X > hi {
				t.Fatalf("paddle bounce outside band at x %v", b.Pos.X)
			}
			if math.Abs(p.Pos.Y-b.Pos.Y) > g.PaddleHalfHeight {
				t.Fatalf("paddle bounce with y diff %v", math.Abs(p.Pos.Y-b.Pos.Y))
			}
			if b.Vel.X != 200 {
				t.Fatalf("expected vel.x 200 after bounce, got %v", b.Vel.X)
			}
			if !sawWall {
				t.Fatal("expected the right wall bounce before the paddle bounce")
			}
			return
		}
	}
	t.Fatal("ball never came back to the paddle")
}

func TestVersusLeftPaddleReturnsBall(t *testing.T) {
	g := geometry()
	l, r := leftPaddle(384), rightPaddle(384)
	b := ball(512, 384, -200, 235)
	w := World{Paddles: []*entity.Paddle{l, r}, Balls: []*entity.Ball{b}}

	for i := 0; i < 1000; i++ {
		follow(l, b)
		report := Step(g, versus, w, frame)
		if report.Ended {
			t.Fatalf("frame %d: ball lost at %+v", i, b.Pos)
		}
		if report.Balls[0].X == PaddleBounce {
			if b.Vel.X != 200 {
				t.Fatalf("expected vel.x 200, got %v", b.Vel.X)
			}
			return
		}
	}
	t.Fatal("left paddle never returned the ball")
}

func TestVersusMissedBallEndsSession(t *testing.T) {
	g := geometry()
	l, r := leftPaddle(g.PaddleMinY()), rightPaddle(384)
	b := ball(512, 384, -200, 235)
	w := World{Paddles: []*entity.Paddle{l, r}, Balls: []*entity.Ball{b}}

	for i := 0; i < 1000; i++ {
		report := Step(g, versus, w, frame)
		if report.Balls[0].X == PaddleBounce {
			t.Fatalf("frame %d: unexpected paddle bounce", i)
		}
		if report.Ended {
			if b.Pos.X > 0 {
				t.Fatalf("session ended with ball at x %v", b.Pos.X)
			}
			return
		}
	}
	t.Fatal("session never ended")
}

func TestFastBallTunnelsThroughPaddle(t *testing.T) {
	// Known limitation: the contact band is only HitDepth wide.
	g := geometry()
	p := leftPaddle(384)
	b := ball(27, 384, -400, 0)
	w := World{Paddles: []*entity.Paddle{p}, Balls: []*entity.Ball{b}}

	first := Step(g, survival, w, 0.05)
	if first.Balls[0].X != NoHit {
		t.Fatalf("expected ball to skip the band, got %v at x %v", first.Balls[0].X, b.Pos.X)
	}
	second := Step(g, survival, w, 0.05)
	if !second.Ended {
		t.Fatalf("expected the tunnelled ball to end the session, got %+v", second)
	}
}

func TestEveryBallCanEndTheSession(t *testing.T) {
	g := geometry()
	balls := []*entity.Ball{ball(1, 100, -200, 0), ball(2, 600, -200, 0), ball(500, 384, 200, 0)}
	report := Step(g, survival, World{Paddles: []*entity.Paddle{leftPaddle(384)}, Balls: balls}, frame)

	if !report.Ended {
		t.Fatal("expected session end")
	}
	if got := report.Count(SessionEnd); got != 2 {
		t.Fatalf("expected 2 session-end outcomes, got %d", got)
	}
}
