package terminal

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface draws onto a tcell screen. One screen cell is one unit of the layout geometry.
type Surface struct {
	screen tcell.Screen
}

func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (that *Surface) Fill(c color.RGBA) {
	style := tcell.StyleDefault.Background(toColor(c))
	that.screen.Fill(' ', style)
}

func (that *Surface) FillRect(r image.Rectangle, c color.RGBA) {
	width, height := that.screen.Size()
	r = r.Intersect(image.Rect(0, 0, width, height))
	style := tcell.StyleDefault.Background(toColor(c))

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			that.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText centres text on center, keeping the background already drawn underneath.
func (that *Surface) DrawText(text string, center image.Point, fg color.RGBA) {
	width, height := that.screen.Size()
	if center.Y < 0 || center.Y >= height {
		return
	}

	x := center.X - runewidth.StringWidth(text)/2
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if x >= 0 && x+w <= width {
			_, _, style, _ := that.screen.GetContent(x, center.Y)
			that.screen.SetContent(x, center.Y, r, nil, style.Foreground(toColor(fg)))
		}

		x += w
	}
}
