package entity

type Ball struct {
	Pos Vector2
	Vel Vector2
}

func NewBall(pos, vel Vector2) *Ball {
	return &Ball{Pos: pos, Vel: vel}
}

// Integrate advances the ball by its velocity over dt seconds.
func (b *Ball) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// BounceX reverses horizontal direction.
func (b *Ball) BounceX() {
	b.Vel.X = -b.Vel.X
}

// BounceY reverses vertical direction.
func (b *Ball) BounceY() {
	b.Vel.Y = -b.Vel.Y
}
