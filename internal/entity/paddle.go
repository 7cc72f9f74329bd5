package entity

// Side is the screen edge a paddle defends.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Paddle is a player bat. X never changes after construction.
type Paddle struct {
	Side       Side
	Pos        Vector2
	Dir        int // -1 up, 0 still, +1 down
	HalfHeight float64
}

func NewPaddle(side Side, x, y, halfHeight float64) *Paddle {
	return &Paddle{
		Side:       side,
		Pos:        Vector2{X: x, Y: y},
		HalfHeight: halfHeight,
	}
}

// SetDir stores a direction intent, folding anything else onto -1/0/+1.
func (p *Paddle) SetDir(dir int) {
	switch {
	case dir < 0:
		p.Dir = -1
	case dir > 0:
		p.Dir = 1
	default:
		p.Dir = 0
	}
}

// Move advances the paddle along its intent and keeps its centre in [minY, maxY].
// A still paddle is left untouched.
func (p *Paddle) Move(speed, dt, minY, maxY float64) {
	if p.Dir == 0 {
		return
	}
	p.Pos.Y += float64(p.Dir) * speed * dt
	if p.Pos.Y < minY {
		p.Pos.Y = minY
	} else if p.Pos.Y > maxY {
		p.Pos.Y = maxY
	}
}

// Top is the y of the paddle's upper edge.
func (p *Paddle) Top() float64 {
	return p.Pos.Y - p.HalfHeight
}
