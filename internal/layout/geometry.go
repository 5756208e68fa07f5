// Package layout maps between screen coordinates and grid positions.
// Units are whatever the frontend draws in: pixels for the window, cells for the terminal.
package layout

import (
	"fmt"
	"image"

	"github.com/rocketscienceinc/memory-cards/internal/apperror"
	"github.com/rocketscienceinc/memory-cards/internal/entity"
)

type Geometry struct {
	Rows int
	Cols int

	Origin     image.Point // top-left corner of card (0,0)
	CardWidth  int
	CardHeight int
	Margin     int // gap between neighbouring cards

	ScreenWidth int
	MovesY      int
	BannerY     int
}

// Validate rejects card sizes and margins that cannot tile a grid.
func (that Geometry) Validate() error {
	if that.CardWidth <= 0 || that.CardHeight <= 0 {
		return fmt.Errorf("%w: card size %dx%d must be positive", apperror.ErrConfiguration, that.CardWidth, that.CardHeight)
	}

	if that.Margin < 0 {
		return fmt.Errorf("%w: card margin %d must not be negative", apperror.ErrConfiguration, that.Margin)
	}

	return nil
}

func (that Geometry) strideX() int { return that.CardWidth + that.Margin }

func (that Geometry) strideY() int { return that.CardHeight + that.Margin }

// CardRect returns the screen rectangle of the card at pos.
func (that Geometry) CardRect(pos entity.Position) image.Rectangle {
	minPt := that.Origin.Add(image.Pt(pos.Col*that.strideX(), pos.Row*that.strideY()))

	return image.Rectangle{Min: minPt, Max: minPt.Add(image.Pt(that.CardWidth, that.CardHeight))}
}

// CardAt translates a screen point to the card under it. Points in the gaps
// between cards or outside the grid report false.
func (that Geometry) CardAt(pt image.Point) (entity.Position, bool) {
	if that.Validate() != nil {
		return entity.Position{}, false
	}

	rel := pt.Sub(that.Origin)
	if rel.X < 0 || rel.Y < 0 {
		return entity.Position{}, false
	}

	pos := entity.Position{Row: rel.Y / that.strideY(), Col: rel.X / that.strideX()}
	if pos.Row >= that.Rows || pos.Col >= that.Cols {
		return entity.Position{}, false
	}

	if rel.X%that.strideX() >= that.CardWidth || rel.Y%that.strideY() >= that.CardHeight {
		return entity.Position{}, false
	}

	return pos, true
}

// Bounds is the rectangle covering the whole grid.
func (that Geometry) Bounds() image.Rectangle {
	last := that.CardRect(entity.Position{Row: that.Rows - 1, Col: that.Cols - 1})

	return image.Rectangle{Min: that.Origin, Max: last.Max}
}

// MovesAnchor is the centre point of the move counter.
func (that Geometry) MovesAnchor() image.Point {
	return image.Pt(that.ScreenWidth/2, that.MovesY)
}

// BannerAnchor is the centre point of the victory banner.
func (that Geometry) BannerAnchor() image.Point {
	return image.Pt(that.ScreenWidth/2, that.BannerY)
}

// Center returns the midpoint of r.
func Center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}
