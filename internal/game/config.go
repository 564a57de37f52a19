package game

import "time"

// Config holds the room tunables. All monetary amounts are in cents.
type Config struct {
	MinPlayers int
	MaxSeats   int

	NumDecks     int
	LowWaterMark int

	AnteCents          int // default pot rebuild charge
	PairPenaltyCents   int // auto-charge when both cards match
	ChallengeFineCents int // 6-7 challenge loser's fine
	DramaticBetCents   int // bets at or above this slow the reveal

	FirstCardDelay      time.Duration
	SecondCardDelay     time.Duration
	PlaceholderDelay    time.Duration
	AutoResolveDelay    time.Duration // pause after a pair penalty or skip
	ChallengeWindow     time.Duration
	RevealDelay         time.Duration
	DramaticRevealDelay time.Duration
	PassDelay           time.Duration
	ReseatDelay         time.Duration // pause before re-advancing after a disconnect
}

// DefaultConfig returns the standard table settings
func DefaultConfig() Config {
	return Config{
		MinPlayers:          3,
		MaxSeats:            15,
		NumDecks:            5,
		LowWaterMark:        20,
		AnteCents:           50,
		PairPenaltyCents:    100,
		ChallengeFineCents:  200,
		DramaticBetCents:    4000,
		FirstCardDelay:      500 * time.Millisecond,
		SecondCardDelay:     400 * time.Millisecond,
		PlaceholderDelay:    300 * time.Millisecond,
		AutoResolveDelay:    time.Second,
		ChallengeWindow:     5 * time.Second,
		RevealDelay:         700 * time.Millisecond,
		DramaticRevealDelay: 1500 * time.Millisecond,
		PassDelay:           600 * time.Millisecond,
		ReseatDelay:         150 * time.Millisecond,
	}
}
