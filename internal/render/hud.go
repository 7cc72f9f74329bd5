package render

import (
	"fmt"
	"strings"

	"pong/internal/input"
)

// HUD is the text overlay shown on top of the playfield.
type HUD struct {
	Title    string
	Elapsed  float64 // seconds survived
	Bindings []input.Binding
}

// Lines returns the overlay text, one entry per line.
func (h HUD) Lines() []string {
	lines := []string{h.Title, fmt.Sprintf("TIME %6.1fs", h.Elapsed)}
	keys := make([]string, 0, len(h.Bindings))
	for i, b := range h.Bindings {
		keys = append(keys, fmt.Sprintf("P%d %s/%s", i+1, b.Up, b.Down))
	}
	keys = append(keys, "QUIT "+input.KeyEscape.String())
	return append(lines, strings.Join(keys, "  "))
}

// Debug is the developer overlay.
type Debug struct {
	TPS, FPS float64
	Delta    float64
	Balls    int
}

func (d Debug) String() string {
	return fmt.Sprintf("TPS %.1f  FPS %.1f\ndt %.3f  balls %d", d.TPS, d.FPS, d.Delta, d.Balls)
}
