package suite

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/memory-cards/internal/entity"
	"github.com/rocketscienceinc/memory-cards/internal/memory"
)

const (
	RevealDelay = 500 * time.Millisecond
	seed        = 42
)

// Symbols is the 8-symbol palette used by the 4x4 fixtures.
var Symbols = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// ArrangedDeck pairs neighbours: (0,0)/(0,1) hold "A", (0,2)/(0,3) hold "B" and so on.
var ArrangedDeck = []string{
	"A", "A", "B", "B",
	"C", "C", "D", "D",
	"E", "E", "F", "F",
	"G", "G", "H", "H",
}

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Clock  *Clock
}

func New(t *testing.T) *Suite {
	t.Helper()

	return &Suite{
		T:      t,
		Logger: slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Clock:  NewClock(time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)),
	}
}

// Board returns a 4x4 board over Symbols.
func Board() memory.Board {
	return memory.Board{
		Rows:        4,
		Cols:        4,
		Symbols:     append([]string(nil), Symbols...),
		RevealDelay: RevealDelay,
	}
}

// ShuffledSession deals Board with a fixed seed.
func (that *Suite) ShuffledSession() *memory.Session {
	that.Helper()

	session, err := memory.New(Board(), rand.New(rand.NewSource(seed))) //nolint: gosec // deterministic fixture
	require.NoError(that, err)

	return session
}

// ArrangedSession lays out ArrangedDeck.
func (that *Suite) ArrangedSession() *memory.Session {
	that.Helper()

	session, err := memory.NewWithDeck(Board(), ArrangedDeck)
	require.NoError(that, err)

	return session
}

// Pick reveals a and b at the current clock time and requires both selections to be accepted.
func (that *Suite) Pick(session *memory.Session, a, b entity.Position) {
	that.Helper()

	require.True(that, session.SelectCard(a, that.Clock.Now()), "select %s", a)
	require.True(that, session.SelectCard(b, that.Clock.Now()), "select %s", b)
}

// Pairs groups the positions of session by symbol.
func Pairs(session *memory.Session) map[string][]entity.Position {
	pairs := make(map[string][]entity.Position)
	for _, card := range session.Cards() {
		pairs[card.Symbol] = append(pairs[card.Symbol], card.Position)
	}

	return pairs
}

// Clock is a manually advanced time source.
type Clock struct {
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (that *Clock) Now() time.Time {
	return that.now
}

func (that *Clock) Advance(d time.Duration) {
	that.now = that.now.Add(d)
}
