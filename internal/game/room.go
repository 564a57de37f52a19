package game

import (
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/inbetween/internal/deck"
)

// Room is the state aggregate for one table plus the turn engine that
// drives it. All mutation happens under mu, inside a single handler
// invocation per inbound intent or timer firing. Delayed continuations are
// scheduled through the injected clock and re-validate the captured turn
// sequence before touching anything, so a continuation from an abandoned
// turn can never corrupt a later one.
type Room struct {
	Code string

	mu     sync.Mutex
	cfg    Config
	logger *log.Logger
	clock  quartz.Clock
	sink   Sink
	rng    *rand.Rand

	players    map[string]*Player
	stats      map[string]*Stats
	waiting    map[string]*Player
	spectators map[string]*Spectator

	playerOrder        []string
	currentPlayerIndex int
	gameAdminID        string

	potCents  int
	anteCents int

	shoe         *deck.Shoe
	newShoe      func() *deck.Shoe
	currentCards []*DealtCard

	gameRunning         bool
	waitingForAceChoice bool
	turnInProgress      bool
	turnSequence        uint64

	challengeActive  bool
	challengePresses []string
	challengeTimer   *quartz.Timer

	closed bool
}

func newRoom(code string, cfg Config, logger *log.Logger, clock quartz.Clock, sink Sink, rng *rand.Rand) *Room {
	r := &Room{
		Code:               code,
		cfg:                cfg,
		logger:             logger.With("room", code),
		clock:              clock,
		sink:               sink,
		rng:                rng,
		players:            make(map[string]*Player),
		stats:              make(map[string]*Stats),
		waiting:            make(map[string]*Player),
		spectators:         make(map[string]*Spectator),
		currentPlayerIndex: -1,
		anteCents:          cfg.AnteCents,
	}
	r.newShoe = func() *deck.Shoe {
		return deck.NewShoe(cfg.NumDecks, rng)
	}
	return r
}

// Close marks the room dead and invalidates any in-flight turn work. The
// registry calls this under its own lock when deleting the room.
func (r *Room) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.invalidateTurnLocked()
}

// currentPlayerIDLocked returns the id of the seat holding the live turn,
// or "" when no turn is active.
func (r *Room) currentPlayerIDLocked() string {
	if r.currentPlayerIndex >= 0 && r.currentPlayerIndex < len(r.playerOrder) {
		return r.playerOrder[r.currentPlayerIndex]
	}
	return ""
}

// turnValidLocked is the stale-continuation guard. Every delayed step checks
// it before acting.
func (r *Room) turnValidLocked(seq uint64) bool {
	return !r.closed &&
		r.gameRunning &&
		len(r.playerOrder) >= r.cfg.MinPlayers &&
		seq == r.turnSequence
}

// scheduleLocked runs fn after d, re-validating the captured turn sequence
// under the room lock when the timer fires. A continuation whose turn was
// abandoned in the interim is dropped without touching state.
func (r *Room) scheduleLocked(d time.Duration, seq uint64, fn func()) {
	r.clock.AfterFunc(d, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if !r.turnValidLocked(seq) {
			return
		}
		fn()
	})
}

// invalidateTurnLocked supersedes all pending delayed work for the current
// turn. Must run synchronously within whatever event forced the
// invalidation.
func (r *Room) invalidateTurnLocked() {
	r.turnSequence++
	r.turnInProgress = false
	r.waitingForAceChoice = false
	r.stopChallengeLocked()
}

func (r *Room) broadcastStateLocked() {
	r.sink.Broadcast(r.snapshotLocked())
}

func (r *Room) broadcastMessageLocked(text string, emphasis bool) {
	r.sink.Broadcast(MessageEvent{Text: text, Emphasis: emphasis})
}

func (r *Room) broadcastOutcomeLocked(text, actorID, outcome string, amountCents int) {
	r.sink.Broadcast(MessageEvent{
		Text:        text,
		Emphasis:    true,
		ActorID:     actorID,
		Outcome:     outcome,
		AmountCents: amountCents,
	})
}

func (r *Room) systemChatLocked(text string) {
	r.sink.Broadcast(ChatEvent{Message: text, IsSystem: true})
}
