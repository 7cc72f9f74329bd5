// Package config holds the startup configuration of both game variants.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned by Validate when a value cannot produce a playable field.
var ErrInvalid = errors.New("invalid config")

// Frontends
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

// Geometry is the fixed playfield layout shared by physics and rendering.
type Geometry struct {
	ScreenWidth      float64 `toml:"screen_width" env:"SCREEN_WIDTH"`
	ScreenHeight     float64 `toml:"screen_height" env:"SCREEN_HEIGHT"`
	WallThickness    float64 `toml:"wall_thickness" env:"WALL_THICKNESS"`
	PaddleHalfHeight float64 `toml:"paddle_half_height" env:"PADDLE_HALF_HEIGHT"`
	PaddleSpeed      float64 `toml:"paddle_speed" env:"PADDLE_SPEED"`
	PaddleInset      float64 `toml:"paddle_inset" env:"PADDLE_INSET"`
	HitDepth         float64 `toml:"hit_depth" env:"HIT_DEPTH"`
}

// Serve describes the balls put into play at startup.
type Serve struct {
	BallCount int     `toml:"ball_count" env:"BALL_COUNT"`
	Spacing   float64 `toml:"spacing" env:"BALL_SPACING"`
	VelX      float64 `toml:"vel_x" env:"BALL_VEL_X"`
	VelY      float64 `toml:"vel_y" env:"BALL_VEL_Y"`
}

// Timing controls the frame cadence.
type Timing struct {
	FrameInterval time.Duration `toml:"frame_interval" env:"FRAME_INTERVAL"`
	MaxDelta      float64       `toml:"max_delta" env:"MAX_DELTA"`
	// KeyHold is how long a terminal key press counts as held.
	KeyHold time.Duration `toml:"key_hold" env:"KEY_HOLD"`
}

// Display toggles optional presentation features.
type Display struct {
	HUD   bool `toml:"hud" env:"HUD"`
	Debug bool `toml:"debug" env:"DEBUG"`
	Sound bool `toml:"sound" env:"SOUND"`
}

// Config is the full startup configuration.
type Config struct {
	Variant  string   `toml:"variant" env:"VARIANT"`
	Frontend string   `toml:"frontend" env:"FRONTEND"`
	Geometry Geometry `toml:"geometry"`
	Serve    Serve    `toml:"serve"`
	Timing   Timing   `toml:"timing"`
	Display  Display  `toml:"display"`
}

// Default returns the literal values the game was tuned with.
func Default() Config {
	return Config{
		Variant:  "survival",
		Frontend: FrontendWindow,
		Geometry: Geometry{
			ScreenWidth:      1024,
			ScreenHeight:     768,
			WallThickness:    15,
			PaddleHalfHeight: 50,
			PaddleSpeed:      300,
			PaddleInset:      10,
			HitDepth:         5,
		},
		Serve: Serve{
			BallCount: 10,
			Spacing:   30,
			VelX:      200,
			VelY:      235,
		},
		Timing: Timing{
			FrameInterval: 16 * time.Millisecond,
			MaxDelta:      0.05,
			KeyHold:       150 * time.Millisecond,
		},
	}
}

// Validate reports the first value that cannot produce a playable field.
func (c Config) Validate() error {
	g := c.Geometry
	switch {
	case g.ScreenWidth <= 0 || g.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %vx%v", ErrInvalid, g.ScreenWidth, g.ScreenHeight)
	case g.WallThickness <= 0:
		return fmt.Errorf("%w: wall thickness %v", ErrInvalid, g.WallThickness)
	case g.PaddleHalfHeight <= 0:
		return fmt.Errorf("%w: paddle half height %v", ErrInvalid, g.PaddleHalfHeight)
	case g.PaddleMinY() > g.PaddleMaxY():
		return fmt.Errorf("%w: paddle does not fit between walls", ErrInvalid)
	case g.PaddleSpeed < 0:
		return fmt.Errorf("%w: paddle speed %v", ErrInvalid, g.PaddleSpeed)
	case g.HitDepth <= 0 || g.HitDepth > g.WallThickness:
		return fmt.Errorf("%w: hit depth %v", ErrInvalid, g.HitDepth)
	case g.PaddleInset < 0 || 2*(g.PaddleInset+g.WallThickness) >= g.ScreenWidth:
		return fmt.Errorf("%w: paddle inset %v", ErrInvalid, g.PaddleInset)
	case c.Serve.BallCount < 1:
		return fmt.Errorf("%w: ball count %d", ErrInvalid, c.Serve.BallCount)
	case c.Timing.FrameInterval <= 0:
		return fmt.Errorf("%w: frame interval %v", ErrInvalid, c.Timing.FrameInterval)
	case c.Timing.MaxDelta <= 0:
		return fmt.Errorf("%w: max delta %v", ErrInvalid, c.Timing.MaxDelta)
	case c.Timing.KeyHold < 0:
		return fmt.Errorf("%w: key hold %v", ErrInvalid, c.Timing.KeyHold)
	case c.Frontend != FrontendWindow && c.Frontend != FrontendTerminal:
		return fmt.Errorf("%w: frontend %q", ErrInvalid, c.Frontend)
	}
	return nil
}

// PaddleMinY is the lowest legal paddle centre.
func (g Geometry) PaddleMinY() float64 {
	return g.PaddleHalfHeight + g.WallThickness
}

// PaddleMaxY is the highest legal paddle centre.
func (g Geometry) PaddleMaxY() float64 {
	return g.ScreenHeight - g.PaddleHalfHeight - g.WallThickness
}

// PaddleHeight is the full paddle height.
func (g Geometry) PaddleHeight() float64 {
	return 2 * g.PaddleHalfHeight
}

// LeftPaddleX is the stored x of the left paddle.
func (g Geometry) LeftPaddleX() float64 {
	return g.PaddleInset
}

// RightPaddleX is the stored x of the right paddle.
func (g Geometry) RightPaddleX() float64 {
	return g.ScreenWidth - g.WallThickness - g.PaddleInset
}

// LeftBand is the x window in which a ball meets the left paddle face.
func (g Geometry) LeftBand() (lo, hi float64) {
	hi = g.PaddleInset + g.WallThickness
	return hi - g.HitDepth, hi
}

// RightBand is the x window in which a ball meets the right paddle face.
func (g Geometry) RightBand() (lo, hi float64) {
	lo = g.RightPaddleX()
	return lo, lo + g.HitDepth
}

// RightEdge is the x at which a ball reaches the right wall.
func (g Geometry) RightEdge() float64 {
	return g.ScreenWidth - g.WallThickness
}
