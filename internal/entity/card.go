package entity

import "fmt"

type CardState int

const (
	Hidden CardState = iota
	Revealed
	Matched
)

func (that CardState) String() string {
	switch that {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Matched:
		return "matched"
	default:
		return fmt.Sprintf("CardState(%d)", int(that))
	}
}

// Position is a grid coordinate, row-major.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Card is a single tile of the deck. Position and Symbol never change after the deal.
type Card struct {
	Position Position  `json:"position"`
	Symbol   string    `json:"symbol"`
	State    CardState `json:"state"`
}

func NewCard(pos Position, symbol string) *Card {
	return &Card{
		Position: pos,
		Symbol:   symbol,
		State:    Hidden,
	}
}

func (that *Card) IsHidden() bool {
	return that.State == Hidden
}

func (that *Card) IsRevealed() bool {
	return that.State == Revealed
}

func (that *Card) IsMatched() bool {
	return that.State == Matched
}

// IsFaceUp reports whether the symbol should be visible.
func (that *Card) IsFaceUp() bool {
	return that.State == Revealed || that.State == Matched
}

// Reveal flips a hidden card face-up. It reports false for any other state.
func (that *Card) Reveal() bool {
	if that.State != Hidden {
		return false
	}

	that.State = Revealed

	return true
}

// Conceal turns a revealed card back face-down. Matched cards stay matched.
func (that *Card) Conceal() bool {
	if that.State != Revealed {
		return false
	}

	that.State = Hidden

	return true
}

// Match locks a revealed card face-up for the rest of the session.
func (that *Card) Match() bool {
	if that.State != Revealed {
		return false
	}

	that.State = Matched

	return true
}
