package memory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/memory-cards/internal/apperror"
	"github.com/rocketscienceinc/memory-cards/internal/entity"
)

const pairSize = 2

// Board describes the deal: grid size, symbol palette and how long a
// mismatched pair stays visible.
type Board struct {
	Rows        int
	Cols        int
	Symbols     []string
	RevealDelay time.Duration
}

// Outcome is the result of evaluating a pending pair.
type Outcome struct {
	First   entity.Position
	Second  entity.Position
	Symbol  string
	Matched bool
}

// Session holds one game: the deck, the move counter and the pending pair.
// It is not safe for concurrent use; the frontend loop owns it.
type Session struct {
	rows        int
	cols        int
	cards       []*entity.Card
	pending     []int
	revealedAt  time.Time
	revealDelay time.Duration
	moves       int
	matched     int
	last        *Outcome
}

// New deals a shuffled deck for board using rng.
func New(board Board, rng *rand.Rand) (*Session, error) {
	if err := validateBoard(board); err != nil {
		return nil, err
	}

	return newSession(board, Deal(board.Symbols, rng)), nil
}

// NewWithDeck lays out a pre-arranged deck row-major. Every symbol of board
// must appear exactly twice in deck.
func NewWithDeck(board Board, deck []string) (*Session, error) {
	if err := validateBoard(board); err != nil {
		return nil, err
	}

	if len(deck) != board.Rows*board.Cols {
		return nil, fmt.Errorf("%w: deck has %d cards, grid holds %d",
			apperror.ErrConfiguration, len(deck), board.Rows*board.Cols)
	}

	counts := lo.CountValues(deck)
	for _, symbol := range board.Symbols {
		if counts[symbol] != pairSize {
			return nil, fmt.Errorf("%w: symbol %q appears %d times in deck",
				apperror.ErrConfiguration, symbol, counts[symbol])
		}
	}

	return newSession(board, deck), nil
}

func newSession(board Board, deck []string) *Session {
	cards := make([]*entity.Card, 0, len(deck))
	for i, symbol := range deck {
		pos := entity.Position{Row: i / board.Cols, Col: i % board.Cols}
		cards = append(cards, entity.NewCard(pos, symbol))
	}

	return &Session{
		rows:        board.Rows,
		cols:        board.Cols,
		cards:       cards,
		pending:     make([]int, 0, pairSize),
		revealDelay: board.RevealDelay,
	}
}

// Deal duplicates every symbol once and shuffles the result (Fisher-Yates).
func Deal(symbols []string, rng *rand.Rand) []string {
	deck := lo.FlatMap(symbols, func(symbol string, _ int) []string {
		return []string{symbol, symbol}
	})

	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}

	return deck
}

func validateBoard(board Board) error {
	if board.Rows <= 0 || board.Cols <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", apperror.ErrConfiguration, board.Rows, board.Cols)
	}

	total := board.Rows * board.Cols
	if total%pairSize != 0 {
		return fmt.Errorf("%w: grid %dx%d has an odd number of cards", apperror.ErrConfiguration, board.Rows, board.Cols)
	}

	if total != pairSize*len(board.Symbols) {
		return fmt.Errorf("%w: grid %dx%d needs %d symbols, got %d",
			apperror.ErrConfiguration, board.Rows, board.Cols, total/pairSize, len(board.Symbols))
	}

	if dups := lo.FindDuplicates(board.Symbols); len(dups) > 0 {
		return fmt.Errorf("%w: duplicate symbols %v", apperror.ErrConfiguration, dups)
	}

	if lo.Contains(board.Symbols, "") {
		return fmt.Errorf("%w: empty symbol", apperror.ErrConfiguration)
	}

	if board.RevealDelay < 0 {
		return fmt.Errorf("%w: negative reveal delay %s", apperror.ErrConfiguration, board.RevealDelay)
	}

	return nil
}

func (that *Session) Rows() int { return that.rows }

func (that *Session) Cols() int { return that.cols }

func (that *Session) Moves() int { return that.moves }

func (that *Session) MatchedPairs() int { return that.matched }

func (that *Session) TotalPairs() int { return len(that.cards) / pairSize }

// Cards returns copies of the cards in row-major order.
func (that *Session) Cards() []entity.Card {
	return lo.Map(that.cards, func(card *entity.Card, _ int) entity.Card {
		return *card
	})
}

// CardAt returns a copy of the card at pos.
func (that *Session) CardAt(pos entity.Position) (entity.Card, bool) {
	idx, ok := that.index(pos)
	if !ok {
		return entity.Card{}, false
	}

	return *that.cards[idx], true
}

// Pending returns the positions of the revealed, not yet evaluated cards.
func (that *Session) Pending() []entity.Position {
	return lo.Map(that.pending, func(idx int, _ int) entity.Position {
		return that.cards[idx].Position
	})
}

// LastOutcome returns the most recent evaluation, if any.
func (that *Session) LastOutcome() (Outcome, bool) {
	if that.last == nil {
		return Outcome{}, false
	}

	return *that.last, true
}

// SelectCard reveals the card at pos. Out-of-grid positions, face-up cards and
// selections made while a pair is pending are ignored and report false.
func (that *Session) SelectCard(pos entity.Position, now time.Time) bool {
	if len(that.pending) >= pairSize {
		return false
	}

	idx, ok := that.index(pos)
	if !ok {
		return false
	}

	if !that.cards[idx].Reveal() {
		return false
	}

	that.pending = append(that.pending, idx)

	if len(that.pending) == pairSize {
		that.moves++
		that.revealedAt = now
	}

	return true
}

// AwaitingEvaluation reports whether a full pair is waiting for its reveal delay.
func (that *Session) AwaitingEvaluation() bool {
	return len(that.pending) == pairSize
}

// Update evaluates the pending pair once the reveal delay has elapsed and
// reports whether it did.
func (that *Session) Update(now time.Time) bool {
	if !that.AwaitingEvaluation() {
		return false
	}

	if now.Sub(that.revealedAt) < that.revealDelay {
		return false
	}

	that.EvaluatePendingPair()

	return true
}

// EvaluatePendingPair matches or conceals the pending pair and clears it.
// It does nothing unless exactly two cards are pending.
func (that *Session) EvaluatePendingPair() {
	if len(that.pending) != pairSize {
		return
	}

	first, second := that.cards[that.pending[0]], that.cards[that.pending[1]]
	outcome := &Outcome{
		First:  first.Position,
		Second: second.Position,
		Symbol: first.Symbol,
	}

	if first.Symbol == second.Symbol {
		first.Match()
		second.Match()
		that.matched++
		outcome.Matched = true
	} else {
		first.Conceal()
		second.Conceal()
	}

	that.pending = that.pending[:0]
	that.last = outcome
}

// IsWon reports whether every pair has been found.
func (that *Session) IsWon() bool {
	return that.matched == that.TotalPairs()
}

func (that *Session) index(pos entity.Position) (int, bool) {
	if pos.Row < 0 || pos.Row >= that.rows || pos.Col < 0 || pos.Col >= that.cols {
		return 0, false
	}

	return pos.Row*that.cols + pos.Col, true
}
