package gamemode

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"pong/internal/config"
	"pong/internal/entity"
	"pong/internal/input"
	"pong/internal/physics"
)

// ErrUnknownVariant is returned by Lookup for a name that is not registered.
var ErrUnknownVariant = errors.New("unknown variant")

// Variant names
const (
	Survival = "survival"
	Versus   = "versus"
)

// PaddleSpec places one player paddle and binds its keys.
type PaddleSpec struct {
	Side    entity.Side
	Binding input.Binding
}

// Variant is everything that differs between the two games.
type Variant struct {
	Name       string
	Title      string
	Paddles    []PaddleSpec
	Rules      physics.Rules
	Background color.RGBA
	Foreground color.RGBA
	// Serve builds the balls in play at startup.
	Serve func(cfg config.Config) []*entity.Ball
}

// RightWall reports whether the right edge is drawn as a wall.
func (v Variant) RightWall() bool {
	for _, p := range v.Paddles {
		if p.Side == entity.SideRight {
			return false
		}
	}
	return true
}

// Bindings returns the paddle bindings in paddle order.
func (v Variant) Bindings() []input.Binding {
	out := make([]input.Binding, len(v.Paddles))
	for i, p := range v.Paddles {
		out[i] = p.Binding
	}
	return out
}

var (
	blue   = color.RGBA{0x00, 0x00, 0xff, 0xff}
	white  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	yellow = color.RGBA{0xff, 0xff, 0x00, 0xff}

	leftKeys  = input.Binding{Up: input.KeyW, Down: input.KeyS}
	rightKeys = input.Binding{Up: input.KeyI, Down: input.KeyK}
)

var registry = map[string]Variant{
	Survival: {
		Name:       Survival,
		Title:      "Chapter 1, Exercise 2",
		Paddles:    []PaddleSpec{{Side: entity.SideLeft, Binding: leftKeys}},
		Rules:      physics.Rules{RightEdge: physics.EdgeBounce},
		Background: blue,
		Foreground: white,
		Serve:      fanServe,
	},
	Versus: {
		Name:  Versus,
		Title: "Chapter 1's Practice 1",
		Paddles: []PaddleSpec{
			{Side: entity.SideLeft, Binding: leftKeys},
			{Side: entity.SideRight, Binding: rightKeys},
		},
		Rules:      physics.Rules{RightEdge: physics.EdgeExit},
		Background: blue,
		Foreground: yellow,
		Serve:      centreServe,
	},
}

// Lookup returns the variant registered under name.
func Lookup(name string) (Variant, error) {
	v, ok := registry[name]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q (have %v)", ErrUnknownVariant, name, Names())
	}
	return v, nil
}

// Names lists the registered variants.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
