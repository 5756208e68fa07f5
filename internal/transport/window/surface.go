//go:build ebiten

package window

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Surface draws onto the ebiten screen image handed to Draw.
type Surface struct {
	target *ebiten.Image
	face   *text.GoTextFace
}

func NewSurface(fontSize float64) (*Surface, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	return &Surface{face: &text.GoTextFace{Source: source, Size: fontSize}}, nil
}

func (that *Surface) Fill(c color.RGBA) {
	that.target.Fill(c)
}

func (that *Surface) FillRect(r image.Rectangle, c color.RGBA) {
	vector.DrawFilledRect(that.target,
		float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func (that *Surface) DrawText(s string, center image.Point, fg color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(center.X), float64(center.Y))
	op.ColorScale.ScaleWithColor(fg)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter

	text.Draw(that.target, s, that.face, op)
}
