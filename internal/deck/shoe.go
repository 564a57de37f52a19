package deck

import rand "math/rand/v2"

// CardsPerDeck is the size of a single standard deck.
const CardsPerDeck = 52

// Shoe represents a shuffled multi-deck dealing shoe. It is not safe for
// concurrent use; the owning room serialises access.
type Shoe struct {
	cards []Card
	decks int
	rng   *rand.Rand
}

// NewShoe creates a shoe of numDecks standard decks, shuffled with a uniform
// Fisher-Yates permutation over the full multi-deck set.
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	if numDecks < 1 {
		numDecks = 1
	}
	s := &Shoe{
		cards: make([]Card, 0, numDecks*CardsPerDeck),
		decks: numDecks,
		rng:   rng,
	}
	s.fill()
	s.Shuffle()
	return s
}

func (s *Shoe) fill() {
	s.cards = s.cards[:0]
	for d := 0; d < s.decks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
}

// NewStacked returns a shoe that deals the given cards in the given order
// and never reshuffles on its own. Tests use it to script exact spreads.
func NewStacked(cards ...Card) *Shoe {
	s := &Shoe{cards: make([]Card, len(cards))}
	for i, c := range cards {
		s.cards[len(cards)-1-i] = c
	}
	return s
}

// Shuffle randomizes the order of the remaining cards in the shoe
func (s *Shoe) Shuffle() {
	if s.rng == nil {
		return
	}
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the top card from the shoe
func (s *Shoe) Draw() (Card, bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}
	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card, true
}

// Remaining returns the number of cards left in the shoe
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Low reports whether the shoe has fallen below the given low-water mark
// and should be replaced with a fresh shuffle.
func (s *Shoe) Low(mark int) bool {
	return len(s.cards) < mark
}

// Reset restores the shoe to its full multi-deck size and shuffles it.
// A stacked shoe has no deck count to refill from and stays as it is.
func (s *Shoe) Reset() {
	if s.decks == 0 {
		return
	}
	s.fill()
	s.Shuffle()
}
