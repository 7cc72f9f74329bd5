package gamemode

import (
	"pong/internal/config"
	"pong/internal/entity"
)

// fanServe spreads BallCount balls diagonally from the centre, each one
// Spacing further down-right, slower across and faster down than the last.
func fanServe(cfg config.Config) []*entity.Ball {
	g, s := cfg.Geometry, cfg.Serve
	balls := make([]*entity.Ball, 0, s.BallCount)
	for i := 0; i < s.BallCount; i++ {
		inc := s.Spacing * float64(i)
		balls = append(balls, entity.NewBall(
			entity.Vector2{X: g.ScreenWidth/2 + inc, Y: g.ScreenHeight/2 + inc},
			entity.Vector2{X: s.VelX - inc, Y: s.VelY + inc},
		))
	}
	return balls
}

// centreServe puts a single ball in the centre heading for the left player.
func centreServe(cfg config.Config) []*entity.Ball {
	g, s := cfg.Geometry, cfg.Serve
	return []*entity.Ball{entity.NewBall(
		entity.Vector2{X: g.ScreenWidth / 2, Y: g.ScreenHeight / 2},
		entity.Vector2{X: -s.VelX, Y: s.VelY},
	)}
}
