package window

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/memory-cards/internal/render"
	"github.com/rocketscienceinc/memory-cards/internal/usecase"
)

type mockGame struct {
	mock.Mock
}

func (that *mockGame) Click(pt image.Point) {
	that.Called(pt)
}

func (that *mockGame) Tick() bool {
	return that.Called().Bool(0)
}

func (that *mockGame) Draw(surface render.Surface) {
	that.Called(surface)
}

func (that *mockGame) Summary() usecase.Summary {
	return that.Called().Get(0).(usecase.Summary)
}

func TestStep(t *testing.T) {
	t.Run("Left click is passed on before the tick", func(t *testing.T) {
		// Given: a game that keeps running
		game := &mockGame{}
		game.On("Click", image.Pt(250, 200)).Once()
		game.On("Tick").Return(false).Once()

		// When: a frame with a fresh left click
		done := Step(game, Input{Clicked: true, Cursor: image.Pt(250, 200)})

		// Then: the click lands and the window stays open
		assert.False(t, done)
		game.AssertExpectations(t)
	})

	t.Run("Cursor without a click only ticks", func(t *testing.T) {
		game := &mockGame{}
		game.On("Tick").Return(false).Once()

		done := Step(game, Input{Cursor: image.Pt(250, 200)})

		assert.False(t, done)
		game.AssertNotCalled(t, "Click", mock.Anything)
	})

	t.Run("Finished game closes the window", func(t *testing.T) {
		// Given: a game whose victory hold is over
		game := &mockGame{}
		game.On("Tick").Return(true).Once()

		// When: the next frame runs
		done := Step(game, Input{})

		// Then: the window terminates
		assert.True(t, done)
	})

	t.Run("Escape closes without touching the game", func(t *testing.T) {
		game := &mockGame{}

		done := Step(game, Input{Quit: true, Clicked: true, Cursor: image.Pt(1, 1)})

		assert.True(t, done)
		game.AssertNotCalled(t, "Click", mock.Anything)
		game.AssertNotCalled(t, "Tick")
	})

	t.Run("Canceled context closes the window", func(t *testing.T) {
		game := &mockGame{}

		assert.True(t, Step(game, Input{Canceled: true}))
		game.AssertNotCalled(t, "Tick")
	})
}
