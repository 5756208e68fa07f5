package render

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/memory-cards/internal/apperror"
	"github.com/rocketscienceinc/memory-cards/internal/entity"
)

type Theme struct {
	Background color.RGBA
	Hidden     color.RGBA
	Revealed   color.RGBA
	Matched    color.RGBA
	Text       color.RGBA
}

// CardColor returns the background colour of a card in state.
func (that Theme) CardColor(state entity.CardState) color.RGBA {
	switch state {
	case entity.Revealed:
		return that.Revealed
	case entity.Matched:
		return that.Matched
	default:
		return that.Hidden
	}
}

// ParseColor accepts "#rrggbb" or a W3C colour name.
func ParseColor(value string) (color.RGBA, error) {
	c := tcell.GetColor(value)
	if !c.Valid() {
		return color.RGBA{}, fmt.Errorf("%w: unknown colour %q", apperror.ErrConfiguration, value)
	}

	r, g, b := c.RGB()

	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, nil
}

// ThemeSpec holds the textual colour settings of a theme.
type ThemeSpec struct {
	Background string
	Hidden     string
	Revealed   string
	Matched    string
	Text       string
}

func NewTheme(spec ThemeSpec) (Theme, error) {
	var theme Theme

	fields := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"background", spec.Background, &theme.Background},
		{"hidden", spec.Hidden, &theme.Hidden},
		{"revealed", spec.Revealed, &theme.Revealed},
		{"matched", spec.Matched, &theme.Matched},
		{"text", spec.Text, &theme.Text},
	}

	for _, field := range fields {
		c, err := ParseColor(field.value)
		if err != nil {
			return Theme{}, fmt.Errorf("theme %s: %w", field.name, err)
		}

		*field.dst = c
	}

	return theme, nil
}
