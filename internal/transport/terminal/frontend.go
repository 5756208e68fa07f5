package terminal

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/memory-cards/internal/usecase"
)

const eventBuffer = 32

type Frontend struct {
	logger  *slog.Logger
	screen  tcell.Screen
	game    usecase.GameUseCase
	tick    time.Duration
	buttons tcell.ButtonMask
}

func New(logger *slog.Logger, screen tcell.Screen, game usecase.GameUseCase, tickRate int) *Frontend {
	return &Frontend{
		logger: logger.With("component", "terminal"),
		screen: screen,
		game:   game,
		tick:   time.Second / time.Duration(tickRate),
	}
}

// Run - owns the screen until the game finishes, the player quits or ctx is done.
func (that *Frontend) Run(ctx context.Context) error {
	if err := that.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer that.screen.Fini()

	that.screen.EnableMouse()
	that.screen.HideCursor()

	surface := NewSurface(that.screen)

	events := make(chan tcell.Event, eventBuffer)
	quit := make(chan struct{})
	defer close(quit)

	go that.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(that.tick)
	defer ticker.Stop()

	that.draw(surface)
	that.logger.Info("Terminal frontend started", "tick", that.tick.String())

	for {
		select {
		case <-ctx.Done():
			that.logger.Info("Context canceled, leaving terminal")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			if that.HandleEvent(ev) {
				that.logger.Info("Player quit")
				return nil
			}
		case <-ticker.C:
			finished := that.game.Tick()
			that.draw(surface)

			if finished {
				return nil
			}
		}
	}
}

// HandleEvent applies one terminal event and reports whether the player asked to quit.
func (that *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return isQuitKey(ev)
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && that.buttons&tcell.Button1 == 0
		that.buttons = buttons

		if pressed {
			that.game.Click(image.Pt(ev.Position()))
		}
	case *tcell.EventResize:
		that.screen.Sync()
	}

	return false
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	default:
		return false
	}
}

func (that *Frontend) draw(surface *Surface) {
	that.game.Draw(surface)
	that.screen.Show()
}
