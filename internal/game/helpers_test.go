package game

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/inbetween/internal/deck"
	"github.com/lox/inbetween/internal/randutil"
)

// recordingSink captures room events for assertions. Safe to read after the
// room has settled; the mutex covers the append from timer goroutines.
type recordingSink struct {
	mu      sync.Mutex
	events  []Event
	directs map[string][]Event
}

func newRecordingSink() *recordingSink {
	return &recordingSink{directs: make(map[string][]Event)}
}

func (s *recordingSink) Broadcast(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) SendToPlayer(playerID string, ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directs[playerID] = append(s.directs[playerID], ev)
}

func (s *recordingSink) ofType(t EventType) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Event
	for _, ev := range s.events {
		if ev.EventType() == t {
			out = append(out, ev)
		}
	}
	return out
}

func (s *recordingSink) directOfType(playerID string, t EventType) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Event
	for _, ev := range s.directs[playerID] {
		if ev.EventType() == t {
			out = append(out, ev)
		}
	}
	return out
}

func (s *recordingSink) messageTexts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, ev := range s.events {
		if m, ok := ev.(MessageEvent); ok {
			out = append(out, m.Text)
		}
	}
	return out
}

func (s *recordingSink) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
	s.directs = make(map[string][]Event)
}

// testRoom builds a room on a mock clock. When cards are given, the shoe
// deals exactly those (padded so the low-water reshuffle never triggers).
func testRoom(t *testing.T, cfg Config, cards ...deck.Card) (*Room, *recordingSink, *quartz.Mock) {
	t.Helper()

	mock := quartz.NewMock(t)
	sink := newRecordingSink()
	logger := log.New(io.Discard)
	room := newRoom("TEST42", cfg, logger, mock, sink, randutil.New(1))

	if len(cards) > 0 {
		stacked := make([]deck.Card, 0, len(cards)+cfg.LowWaterMark)
		stacked = append(stacked, cards...)
		for i := 0; i < cfg.LowWaterMark; i++ {
			// Filler beyond the scripted cards; tests never reach these.
			stacked = append(stacked, deck.NewCard(deck.Clubs, deck.Two))
		}
		room.newShoe = func() *deck.Shoe { return deck.NewStacked(stacked...) }
	}
	return room, sink, mock
}

// seatPlayers seats n players with $100.00 each. Player IDs are p1..pn and
// p1 is the admin.
func seatPlayers(r *Room, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("p%d", i+1)
		r.Join(ids[i], fmt.Sprintf("Player%d", i+1), 10000)
	}
	return ids
}

// step advances the mock clock and waits for any fired continuations.
func step(t *testing.T, mock *quartz.Mock, d time.Duration) {
	t.Helper()
	mock.Advance(d).MustWait(context.Background())
}

// dealSpread runs the clock through the first card, second card and
// placeholder delays of the current turn.
func dealSpread(t *testing.T, r *Room, mock *quartz.Mock) {
	t.Helper()
	step(t, mock, r.cfg.FirstCardDelay)
	step(t, mock, r.cfg.SecondCardDelay)
	step(t, mock, r.cfg.PlaceholderDelay)
}

// totalCents sums all seated chips plus the pot, for conservation checks.
func totalCents(r *Room) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := r.potCents
	for _, p := range r.players {
		total += p.Chips
	}
	return total
}

func chips(r *Room, id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.players[id].Chips
}

func pot(r *Room) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.potCents
}
