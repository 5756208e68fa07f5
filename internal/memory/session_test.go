package memory_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/memory-cards/internal/apperror"
	"github.com/rocketscienceinc/memory-cards/internal/entity"
	"github.com/rocketscienceinc/memory-cards/internal/memory"
	"github.com/rocketscienceinc/memory-cards/testing/suite"
)

func TestNew(t *testing.T) {
	t.Run("Every symbol appears exactly twice", func(t *testing.T) {
		boards := []memory.Board{
			{Rows: 1, Cols: 2, Symbols: []string{"A"}},
			{Rows: 2, Cols: 3, Symbols: []string{"A", "B", "C"}},
			{Rows: 4, Cols: 4, Symbols: suite.Symbols},
			{Rows: 3, Cols: 6, Symbols: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}},
		}

		for _, board := range boards {
			for seed := int64(0); seed < 20; seed++ {
				// When: dealing the board
				session, err := memory.New(board, rand.New(rand.NewSource(seed)))
				require.NoError(t, err)

				// Then: each symbol is dealt exactly twice
				counts := lo.CountValues(lo.Map(session.Cards(), func(card entity.Card, _ int) string {
					return card.Symbol
				}))
				require.Len(t, counts, len(board.Symbols))
				for _, symbol := range board.Symbols {
					assert.Equal(t, 2, counts[symbol], "symbol %s seed %d", symbol, seed)
				}
			}
		}
	})

	t.Run("Fresh session is face-down with zero counters", func(t *testing.T) {
		s := suite.New(t)

		// When: a session is dealt
		session := s.ShuffledSession()

		// Then: all cards are hidden, row-major, and nothing is counted yet
		cards := session.Cards()
		require.Len(t, cards, 16)
		for i, card := range cards {
			assert.Equal(t, entity.Hidden, card.State)
			assert.Equal(t, entity.Position{Row: i / 4, Col: i % 4}, card.Position)
		}

		assert.Equal(t, 0, session.Moves())
		assert.Equal(t, 0, session.MatchedPairs())
		assert.Equal(t, 8, session.TotalPairs())
		assert.Empty(t, session.Pending())
		assert.False(t, session.IsWon())
	})

	t.Run("Same seed deals the same deck", func(t *testing.T) {
		board := suite.Board()

		first, err := memory.New(board, rand.New(rand.NewSource(7)))
		require.NoError(t, err)
		second, err := memory.New(board, rand.New(rand.NewSource(7)))
		require.NoError(t, err)

		assert.Equal(t, first.Cards(), second.Cards())
	})

	t.Run("Configuration errors", func(t *testing.T) {
		cases := map[string]memory.Board{
			"odd card count":    {Rows: 3, Cols: 3, Symbols: []string{"A", "B", "C", "D"}},
			"too few symbols":   {Rows: 4, Cols: 4, Symbols: []string{"A", "B"}},
			"too many symbols":  {Rows: 2, Cols: 2, Symbols: []string{"A", "B", "C"}},
			"zero rows":         {Rows: 0, Cols: 4, Symbols: nil},
			"negative cols":     {Rows: 2, Cols: -2, Symbols: []string{"A", "B"}},
			"duplicate symbols": {Rows: 2, Cols: 2, Symbols: []string{"A", "A"}},
			"empty symbol":      {Rows: 2, Cols: 2, Symbols: []string{"A", ""}},
			"negative delay":    {Rows: 1, Cols: 2, Symbols: []string{"A"}, RevealDelay: -time.Second},
		}

		for name, board := range cases {
			t.Run(name, func(t *testing.T) {
				// When: dealing an invalid board
				session, err := memory.New(board, rand.New(rand.NewSource(1)))

				// Then: a configuration error is reported
				require.ErrorIs(t, err, apperror.ErrConfiguration)
				assert.Nil(t, session)
			})
		}
	})
}

func TestNewWithDeck(t *testing.T) {
	t.Run("Lays the deck out row-major", func(t *testing.T) {
		s := suite.New(t)

		session := s.ArrangedSession()

		card, ok := session.CardAt(entity.Position{Row: 3, Col: 2})
		require.True(t, ok)
		assert.Equal(t, "H", card.Symbol)
	})

	t.Run("Rejects a deck that does not pair the symbols", func(t *testing.T) {
		board := memory.Board{Rows: 2, Cols: 2, Symbols: []string{"A", "B"}}

		_, err := memory.NewWithDeck(board, []string{"A", "A", "A", "B"})
		require.ErrorIs(t, err, apperror.ErrConfiguration)

		_, err = memory.NewWithDeck(board, []string{"A", "A", "B"})
		require.ErrorIs(t, err, apperror.ErrConfiguration)
	})
}

func TestDeal(t *testing.T) {
	// Given: a palette
	symbols := []string{"A", "B", "C"}

	// When: dealing it
	deck := memory.Deal(symbols, rand.New(rand.NewSource(3)))

	// Then: it holds every symbol twice and leaves the palette untouched
	assert.ElementsMatch(t, []string{"A", "A", "B", "B", "C", "C"}, deck)
	assert.Equal(t, []string{"A", "B", "C"}, symbols)
}

func TestSession_SelectCard(t *testing.T) {
	t.Run("Single selection reveals without counting a move", func(t *testing.T) {
		s := suite.New(t)
		session := s.ArrangedSession()
		pos := entity.Position{Row: 0, Col: 0}

		// When: one card is selected
		ok := session.SelectCard(pos, s.Clock.Now())

		// Then: it is revealed and pending, but no move is counted
		require.True(t, ok)
		card, _ := session.CardAt(pos)
		assert.Equal(t, entity.Revealed, card.State)
		assert.Equal(t, []entity.Position{pos}, session.Pending())
		assert.Equal(t, 0, session.Moves())
		assert.False(t, session.AwaitingEvaluation())
	})

	t.Run("Second selection counts one move", func(t *testing.T) {
		s := suite.New(t)
		session := s.ArrangedSession()

		s.Pick(session, entity.Position{Row: 0, Col: 0}, entity.Position{Row: 1, Col: 0})

		assert.Equal(t, 1, session.Moves())
		assert.True(t, session.AwaitingEvaluation())
		assert.Len(t, session.Pending(), 2)
	})

	t.Run("Selecting a revealed card is a no-op", func(t *testing.T) {
		s := suite.New(t)
		session := s.ArrangedSession()
		pos := entity.Position{Row: 2, Col: 1}
		require.True(t, session.SelectCard(pos, s.Clock.Now()))

		// When: the same card is selected again
		ok := session.SelectCard(pos, s.Clock.Now())

		// Then: nothing changes
		assert.False(t, ok)
		assert.Equal(t, []entity.Position{pos}, session.Pending())
		assert.Equal(t, 0, session.Moves())
	})

	t.Run("Selecting a matched card is a no-op", func(t *testing.T) {
		s := suite.New(t)
		session := s.ArrangedSession()
		s.Pick(session, entity.Position{Row: 0, Col: 0}, entity.Position{Row: 0, Col: 1})
		session.EvaluatePendingPair()
		before := session.Cards()

		// When: a matched card is selected
		ok := session.SelectCard(entity.Position{Row: 0, Col: 0}, s.Clock.Now())

		// Then: state and moves are unchanged
		assert.False(t, ok)
		assert.Equal(t, before, session.Cards())
		assert.Equal(t, 1, session.Moves())
		assert.Empty(t, session.Pending())
	})

	t.Run("Third selection while a pair pends is a no-op", func(t *testing.T) {
		s := suite.New(t)
		session := s.ArrangedSession()
		s.Pick(session, entity.Position{Row: 0, Col: 0}, entity.Position{Row: 1, Col: 0})
		third := entity.Position{Row: 2, Col: 0}

		// When: a third card is selected before evaluation
		ok := session.SelectCard(third, s.Clock.Now())

		// Then: it stays hidden
		assert.False(t, ok)
		card, _ := session.CardAt(third)
		assert.Equal(t, entity.Hidden, card.State)
		assert.Equal(t, 1, session.Moves())

		// When: the pair is evaluated
		session.EvaluatePendingPair()

		// Then: the third card can be selected
		assert.True(t, session.SelectCard(third, s.Clock.Now()))
	})

	t.Run("Out of grid positions are ignored", func(t *testing.T) {
		s := suite.New(t)
		session := s.ArrangedSession()

		for _, pos := range []entity.Position{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 4, Col: 0}, {Row: 0, Col: 4}} {
			assert.False(t, session.SelectCard(pos, s.Clock.Now()), "position %s", pos)
		}

		assert.Empty(t, session.Pending())
		_, ok := session.CardAt(entity.Position{Row: 4, Col: 4})
		assert.False(t, ok)
	})
}

func TestSession_EvaluatePendingPair(t *testing.T) {
	t.Run("Matching pair", func(t *testing.T) {
		s := suite.New(t)
		session := s.ArrangedSession()
		a, b := entity.Position{Row: 0, Col: 0}, entity.Position{Row: 0, Col: 1}
		s.Pick(session, a, b)

		// When: the pair is evaluated
		session.EvaluatePendingPair()

		// Then: both are matched and the pair is counted
		first, _ := session.CardAt(a)
		second, _ := session.CardAt(b)
		assert.Equal(t, entity.Matched, first.State)
		assert.Equal(t, entity.Matched, second.State)
		assert.Equal(t, 1, session.MatchedPairs())
		assert.Equal(t, 1, session.Moves())
		assert.Empty(t, session.Pending())

		outcome, ok := session.LastOutcome()
		require.True(t, ok)
		assert.Equal(t, memory.Outcome{First: a, Second: b, Symbol: "A", Matched: true}, outcome)
	})

	t.Run("Mismatched pair", func(t *testing.T) {
		s := suite.New(t)
		session := s.ArrangedSession()
		s.Pick(session, entity.Position{Row: 0, Col: 0}, entity.Position{Row: 0, Col: 1})
		session.EvaluatePendingPair()
		a, b := entity.Position{Row: 1, Col: 0}, entity.Position{Row: 2, Col: 0}
		s.Pick(session, a, b)

		// When: the pair is evaluated
		session.EvaluatePendingPair()

		// Then: both go back face-down and the match count is unchanged
		first, _ := session.CardAt(a)
		second, _ := session.CardAt(b)
		assert.Equal(t, entity.Hidden, first.State)
		assert.Equal(t, entity.Hidden, second.State)
		assert.Equal(t, 1, session.MatchedPairs())
		assert.Equal(t, 2, session.Moves())
		assert.Empty(t, session.Pending())

		outcome, ok := session.LastOutcome()
		require.True(t, ok)
		assert.False(t, outcome.Matched)
	})

	t.Run("Nothing happens without a full pair", func(t *testing.T) {
		s := suite.New(t)
		session := s.ArrangedSession()
		pos := entity.Position{Row: 3, Col: 3}
		require.True(t, session.SelectCard(pos, s.Clock.Now()))

		session.EvaluatePendingPair()

		card, _ := session.CardAt(pos)
		assert.Equal(t, entity.Revealed, card.State)
		assert.Equal(t, []entity.Position{pos}, session.Pending())
		_, ok := session.LastOutcome()
		assert.False(t, ok)
	})
}

func TestSession_Update(t *testing.T) {
	t.Run("Pair stays visible until the reveal delay elapses", func(t *testing.T) {
		s := suite.New(t)
		session := s.ArrangedSession()
		a, b := entity.Position{Row: 0, Col: 0}, entity.Position{Row: 1, Col: 1}
		s.Pick(session, a, b)

		// When: ticking before the delay
		s.Clock.Advance(suite.RevealDelay - time.Millisecond)
		evaluated := session.Update(s.Clock.Now())

		// Then: the pair is still face-up
		assert.False(t, evaluated)
		card, _ := session.CardAt(a)
		assert.Equal(t, entity.Revealed, card.State)

		// When: ticking once the delay is over
		s.Clock.Advance(time.Millisecond)
		evaluated = session.Update(s.Clock.Now())

		// Then: the mismatched pair is turned back
		assert.True(t, evaluated)
		card, _ = session.CardAt(a)
		assert.Equal(t, entity.Hidden, card.State)
		assert.Empty(t, session.Pending())
	})

	t.Run("Nothing to do without a pending pair", func(t *testing.T) {
		s := suite.New(t)
		session := s.ArrangedSession()
		require.True(t, session.SelectCard(entity.Position{}, s.Clock.Now()))

		s.Clock.Advance(time.Hour)

		assert.False(t, session.Update(s.Clock.Now()))
		assert.Len(t, session.Pending(), 1)
	})

	t.Run("Zero delay evaluates on the next tick", func(t *testing.T) {
		s := suite.New(t)
		board := suite.Board()
		board.RevealDelay = 0
		session, err := memory.NewWithDeck(board, suite.ArrangedDeck)
		require.NoError(t, err)
		s.Pick(session, entity.Position{Row: 0, Col: 2}, entity.Position{Row: 0, Col: 3})

		assert.True(t, session.Update(s.Clock.Now()))
		assert.Equal(t, 1, session.MatchedPairs())
	})
}

func TestSession_IsWon(t *testing.T) {
	s := suite.New(t)
	session := s.ShuffledSession()
	pairs := suite.Pairs(session)

	// Given: a wrong guess first
	first := session.Cards()[0]
	other, _ := lo.Find(session.Cards(), func(card entity.Card) bool { return card.Symbol != first.Symbol })
	s.Pick(session, first.Position, other.Position)
	session.EvaluatePendingPair()
	assert.False(t, session.IsWon())

	// When: every pair is found one by one
	found := 0
	for _, symbol := range suite.Symbols {
		positions := pairs[symbol]
		require.Len(t, positions, 2)

		// Then: the game is not won until the last pair
		assert.False(t, session.IsWon())

		s.Pick(session, positions[0], positions[1])
		s.Clock.Advance(suite.RevealDelay)
		require.True(t, session.Update(s.Clock.Now()))
		found++
		assert.Equal(t, found, session.MatchedPairs())
	}

	assert.True(t, session.IsWon())
	assert.Equal(t, len(suite.Symbols)+1, session.Moves())
}

func TestSession_Example(t *testing.T) {
	// Given: an 8-symbol 4x4 deck where (0,0) and (0,1) share a symbol
	s := suite.New(t)
	session := s.ArrangedSession()

	// When: the matching cards are picked
	s.Pick(session, entity.Position{Row: 0, Col: 0}, entity.Position{Row: 0, Col: 1})
	session.EvaluatePendingPair()

	// Then: one pair, one move
	assert.Equal(t, 1, session.MatchedPairs())
	assert.Equal(t, 1, session.Moves())

	// When: two differing cards are picked
	s.Pick(session, entity.Position{Row: 0, Col: 2}, entity.Position{Row: 1, Col: 0})
	session.EvaluatePendingPair()

	// Then: they go back face-down and the move is still counted
	assert.Equal(t, 1, session.MatchedPairs())
	assert.Equal(t, 2, session.Moves())
	for _, pos := range []entity.Position{{Row: 0, Col: 2}, {Row: 1, Col: 0}} {
		card, _ := session.CardAt(pos)
		assert.Equal(t, entity.Hidden, card.State)
	}
}
