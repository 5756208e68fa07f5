package window

import (
	"image"

	"github.com/rocketscienceinc/memory-cards/internal/usecase"
)

// Input is what the window saw during one frame.
type Input struct {
	Canceled bool // the run context is done
	Quit     bool // Esc was just pressed
	Clicked  bool // the left button was just pressed
	Cursor   image.Point
}

// Step applies one frame of input to game and reports whether the window should close.
func Step(game usecase.GameUseCase, in Input) bool {
	if in.Canceled || in.Quit {
		return true
	}

	if in.Clicked {
		game.Click(in.Cursor)
	}

	return game.Tick()
}
