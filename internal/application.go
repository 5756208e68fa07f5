package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/rocketscienceinc/memory-cards/internal/apperror"
	"github.com/rocketscienceinc/memory-cards/internal/config"
	"github.com/rocketscienceinc/memory-cards/internal/layout"
	"github.com/rocketscienceinc/memory-cards/internal/memory"
	"github.com/rocketscienceinc/memory-cards/internal/transport/terminal"
	"github.com/rocketscienceinc/memory-cards/internal/transport/window"
	"github.com/rocketscienceinc/memory-cards/internal/usecase"
)

const (
	windowFontSize = 36
	maxTickRate    = 1000
)

type frontend interface {
	Run(ctx context.Context) error
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	logger = logger.With("session_id", uuid.NewString())
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	game, front, err := setup(logger, conf, rand.New(rand.NewSource(time.Now().UnixNano()))) //nolint: gosec // card shuffling
	if err != nil {
		return err
	}

	log.Info("Game started", "frontend", conf.Frontend, "rows", conf.Board.Rows, "cols", conf.Board.Cols)

	if err = front.Run(ctx); err != nil {
		return fmt.Errorf("%s frontend failed: %w", conf.Frontend, err)
	}

	summary := game.Summary()
	log.Info("Game over",
		"won", summary.Won,
		"moves", summary.Moves,
		"matched_pairs", summary.MatchedPairs,
		"total_pairs", summary.TotalPairs,
	)

	return nil
}

// setup validates the configuration, deals the deck and builds the selected frontend.
func setup(logger *slog.Logger, conf *config.Config, rng *rand.Rand) (*usecase.GameManager, frontend, error) {
	if conf.Timing.TickRate <= 0 || conf.Timing.TickRate > maxTickRate {
		return nil, nil, fmt.Errorf("%w: tick rate must be within 1..%d, got %d",
			apperror.ErrConfiguration, maxTickRate, conf.Timing.TickRate)
	}

	theme, err := conf.RenderTheme()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid theme: %w", err)
	}

	session, err := memory.New(conf.MemoryBoard(), rng)
	if err != nil {
		return nil, nil, fmt.Errorf("could not deal the deck: %w", err)
	}

	newGame := func(geo layout.Geometry) (*usecase.GameManager, error) {
		if err := geo.Validate(); err != nil {
			return nil, fmt.Errorf("invalid %s layout: %w", conf.Frontend, err)
		}

		return usecase.NewGameManager(logger, session, geo, theme, conf.Timing.VictoryHold, time.Now), nil
	}

	switch conf.Frontend {
	case config.FrontendTerminal:
		game, err := newGame(conf.TerminalGeometry())
		if err != nil {
			return nil, nil, err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, fmt.Errorf("could not open terminal: %w", err)
		}

		return game, terminal.New(logger, screen, game, conf.Timing.TickRate), nil
	case config.FrontendWindow:
		game, err := newGame(conf.WindowGeometry())
		if err != nil {
			return nil, nil, err
		}

		if lo.SomeBy(conf.Board.Symbols, hasNonASCII) {
			logger.Warn("Window font has no glyphs for non-ASCII symbols, set BOARD_SYMBOLS (or board.symbols) to ASCII values such as A,B,C,D,E,F,G,H",
				"symbols", conf.Board.Symbols)
		}

		return game, window.New(logger, game, window.Options{
			Title:    conf.Window.Title,
			Width:    conf.Window.Width,
			Height:   conf.Window.Height,
			TickRate: conf.Timing.TickRate,
			FontSize: windowFontSize,
		}), nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownFrontend, conf.Frontend)
	}
}

func hasNonASCII(symbol string) bool {
	return lo.SomeBy([]rune(symbol), func(r rune) bool { return r > unicode.MaxASCII })
}
