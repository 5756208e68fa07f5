//go:build ebiten

package window

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rocketscienceinc/memory-cards/internal/usecase"
)

type Frontend struct {
	logger  *slog.Logger
	game    usecase.GameUseCase
	options Options
}

func New(logger *slog.Logger, game usecase.GameUseCase, options Options) *Frontend {
	return &Frontend{
		logger:  logger.With("component", "window"),
		game:    game,
		options: options,
	}
}

// Run - opens the window and blocks until the game finishes, the window is closed or ctx is done.
func (that *Frontend) Run(ctx context.Context) error {
	surface, err := NewSurface(that.options.FontSize)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(that.options.Width, that.options.Height)
	ebiten.SetWindowTitle(that.options.Title)
	ebiten.SetTPS(that.options.TickRate)

	that.logger.Info("Window frontend started", "width", that.options.Width, "height", that.options.Height)

	adapter := &gameAdapter{ctx: ctx, frontend: that, surface: surface}
	if err = ebiten.RunGame(adapter); err != nil {
		return fmt.Errorf("window loop failed: %w", err)
	}

	return nil
}

// gameAdapter implements ebiten.Game.
type gameAdapter struct {
	ctx      context.Context
	frontend *Frontend
	surface  *Surface
}

func (that *gameAdapter) Update() error {
	in := Input{
		Canceled: that.ctx.Err() != nil,
		Quit:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Clicked:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Cursor:   image.Pt(ebiten.CursorPosition()),
	}

	if in.Quit {
		that.frontend.logger.Info("Player quit")
	}

	if Step(that.frontend.game, in) {
		return ebiten.Termination
	}

	return nil
}

func (that *gameAdapter) Draw(screen *ebiten.Image) {
	that.surface.target = screen
	that.frontend.game.Draw(that.surface)
}

func (that *gameAdapter) Layout(_, _ int) (int, int) {
	return that.frontend.options.Width, that.frontend.options.Height
}
