package usecase

import (
	"image"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/memory-cards/internal/layout"
	"github.com/rocketscienceinc/memory-cards/internal/memory"
	"github.com/rocketscienceinc/memory-cards/internal/render"
)

// GameUseCase is what a frontend drives once per input event and once per tick.
type GameUseCase interface {
	Click(pt image.Point)
	Tick() bool
	Draw(surface render.Surface)
	Summary() Summary
}

type Summary struct {
	Moves        int
	MatchedPairs int
	TotalPairs   int
	Won          bool
}

type Clock func() time.Time

type GameManager struct {
	logger      *slog.Logger
	session     *memory.Session
	geometry    layout.Geometry
	theme       render.Theme
	now         Clock
	victoryHold time.Duration
	wonAt       time.Time
}

func NewGameManager(
	logger *slog.Logger,
	session *memory.Session,
	geometry layout.Geometry,
	theme render.Theme,
	victoryHold time.Duration,
	now Clock,
) *GameManager {
	if now == nil {
		now = time.Now
	}

	return &GameManager{
		logger:      logger.With("component", "game"),
		session:     session,
		geometry:    geometry,
		theme:       theme,
		now:         now,
		victoryHold: victoryHold,
	}
}

// Click selects the card under pt, if any. Clicks after the game is won are ignored.
func (that *GameManager) Click(pt image.Point) {
	if that.session.IsWon() {
		return
	}

	pos, ok := that.geometry.CardAt(pt)
	if !ok {
		return
	}

	if !that.session.SelectCard(pos, that.now()) {
		return
	}

	that.logger.Debug("card revealed", "position", pos.String(), "pending", len(that.session.Pending()))
}

// Tick advances timed transitions and reports true once the victory banner
// has been shown for the configured hold.
func (that *GameManager) Tick() bool {
	now := that.now()

	if that.session.Update(now) {
		if outcome, ok := that.session.LastOutcome(); ok {
			that.logger.Debug("pair evaluated",
				"first", outcome.First.String(),
				"second", outcome.Second.String(),
				"matched", outcome.Matched,
				"moves", that.session.Moves(),
			)
		}
	}

	if !that.session.IsWon() {
		return false
	}

	if that.wonAt.IsZero() {
		that.wonAt = now
		that.logger.Info("game won", "moves", that.session.Moves())
	}

	return now.Sub(that.wonAt) >= that.victoryHold
}

func (that *GameManager) Draw(surface render.Surface) {
	render.Render(that.session, surface, that.geometry, that.theme)
}

func (that *GameManager) Summary() Summary {
	return Summary{
		Moves:        that.session.Moves(),
		MatchedPairs: that.session.MatchedPairs(),
		TotalPairs:   that.session.TotalPairs(),
		Won:          that.session.IsWon(),
	}
}
