// Package window adapts ebiten to the frontend-independent render and input
// interfaces.
package window

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"pong/internal/render"
)

// Screen draws onto an ebiten image. Ebiten presents the image itself once
// Draw returns, so Present does nothing.
type Screen struct {
	Image *ebiten.Image
}

func (s Screen) Clear(c color.Color) {
	s.Image.Fill(c)
}

func (s Screen) FillRect(r render.Rect, c color.Color) {
	vector.DrawFilledRect(s.Image, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (Screen) Present() {}

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// DrawHUD writes the overlay just below y.
func (s Screen) DrawHUD(h render.HUD, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(24, y+8)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = 16
	text.Draw(s.Image, strings.Join(h.Lines(), "\n"), hudFace, op)
}

// DrawDebug prints the developer overlay above y.
func (s Screen) DrawDebug(d render.Debug, y float64) {
	ebitenutil.DebugPrintAt(s.Image, d.String(), 24, int(y)-40)
}
