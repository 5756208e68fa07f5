//go:build !ebiten

package window

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/memory-cards/internal/apperror"
	"github.com/rocketscienceinc/memory-cards/internal/usecase"
)

// Frontend is the placeholder used when the binary is built without the ebiten tag.
type Frontend struct{}

func New(*slog.Logger, usecase.GameUseCase, Options) *Frontend {
	return &Frontend{}
}

// Run always fails: the window frontend requires building with -tags ebiten.
func (that *Frontend) Run(context.Context) error {
	return apperror.ErrFrontendUnavailable
}
