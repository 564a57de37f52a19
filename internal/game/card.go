package game

import (
	"fmt"

	"github.com/lox/inbetween/internal/deck"
)

const (
	aceHighValue = 14
	aceLowValue  = 1
	aceHighLabel = "A (High)"
)

// DealtCard is a card on the table. Unlike deck.Card its value is mutable:
// an ace called low is re-valued to 1, and an ace that stays high is
// re-labelled for display.
type DealtCard struct {
	Suit  string `json:"suit"`
	Rank  string `json:"rank"`
	Value int    `json:"value"`
}

func newDealtCard(c deck.Card) *DealtCard {
	return &DealtCard{
		Suit:  c.Suit.String(),
		Rank:  c.Rank.String(),
		Value: c.Value(),
	}
}

// IsAce matches both display labels an ace can carry
func (d *DealtCard) IsAce() bool {
	return d.Rank == "A" || d.Rank == aceHighLabel
}

func (d *DealtCard) String() string {
	return fmt.Sprintf("%s%s", d.Rank, d.Suit)
}

// dollars formats a cent amount for user-facing messages
func dollars(cents int) string {
	if cents < 0 {
		return fmt.Sprintf("-$%d.%02d", -cents/100, (-cents)%100)
	}
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
