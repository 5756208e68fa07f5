package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/rocketscienceinc/memory-cards/internal/entity"
	"github.com/rocketscienceinc/memory-cards/internal/layout"
)

// Surface is a 2D drawing target provided by a frontend.
type Surface interface {
	Fill(c color.RGBA)
	FillRect(r image.Rectangle, c color.RGBA)
	DrawText(text string, center image.Point, fg color.RGBA)
}

// Board is the read-only view of a session needed to draw it.
type Board interface {
	Cards() []entity.Card
	Moves() int
	IsWon() bool
}

func MovesLabel(moves int) string {
	return fmt.Sprintf("Moves: %d", moves)
}

func VictoryBanner(moves int) string {
	return fmt.Sprintf("You Won in %d Moves!", moves)
}

// Render draws the current state of board. It never mutates the board.
func Render(board Board, surface Surface, geo layout.Geometry, theme Theme) {
	surface.Fill(theme.Background)

	for _, card := range board.Cards() {
		rect := geo.CardRect(card.Position)
		surface.FillRect(rect, theme.CardColor(card.State))

		if card.IsFaceUp() {
			surface.DrawText(card.Symbol, layout.Center(rect), theme.Text)
		}
	}

	surface.DrawText(MovesLabel(board.Moves()), geo.MovesAnchor(), theme.Text)

	if board.IsWon() {
		surface.DrawText(VictoryBanner(board.Moves()), geo.BannerAnchor(), theme.Text)
	}
}
