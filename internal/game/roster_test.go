package game

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/inbetween/internal/deck"
)

func TestJoinAssignsAdminToFirstSeat(t *testing.T) {
	t.Parallel()

	r, _, _ := testRoom(t, DefaultConfig())
	ids := seatPlayers(r, 3)

	snap := r.Snapshot()
	assert.Equal(t, ids[0], snap.GameAdminID)
	assert.Equal(t, ids, snap.PlayerOrder)
}

func TestJoinGeneratesFallbackNames(t *testing.T) {
	t.Parallel()

	r, _, _ := testRoom(t, DefaultConfig())

	res := r.Join("anon1", "", 10000)
	assert.Regexp(t, regexp.MustCompile(`^Player \d{4}$`), res.Name)

	res2 := r.Join("anon2", "", 10000)
	assert.NotEqual(t, res.Name, res2.Name, "generated names are unique within the room")

	res3 := r.Join("named", "Ada", 10000)
	assert.Equal(t, "Ada", res3.Name)
}

func TestDisconnectReassignsAdmin(t *testing.T) {
	t.Parallel()

	r, _, _ := testRoom(t, DefaultConfig())
	ids := seatPlayers(r, 3)

	r.Disconnect(ids[0])

	snap := r.Snapshot()
	assert.Equal(t, ids[1], snap.GameAdminID, "admin passes to the earliest remaining seat")
	assert.Equal(t, []string{ids[1], ids[2]}, snap.PlayerOrder)
}

func TestDisconnectOfTurnHolderReseats(t *testing.T) {
	t.Parallel()

	r, _, mock := testRoom(t, DefaultConfig(),
		deck.NewCard(deck.Spades, deck.Three),
		deck.NewCard(deck.Hearts, deck.Nine),
		deck.NewCard(deck.Spades, deck.Four),
		deck.NewCard(deck.Hearts, deck.Ten),
	)
	ids := seatPlayers(r, 4)
	r.StartGame(ids[0])
	dealSpread(t, r, mock)
	require.Equal(t, ids[0], r.Snapshot().CurrentPlayerID)

	r.Disconnect(ids[0])
	cfg := DefaultConfig()
	step(t, mock, cfg.ReseatDelay)

	snap := r.Snapshot()
	assert.Equal(t, ids[1], snap.CurrentPlayerID, "the seat after the leaver inherits the turn")
	assert.True(t, snap.IsGameRunning)
}

func TestDisconnectBeforeCurrentSeatKeepsRotation(t *testing.T) {
	t.Parallel()

	r, _, mock := testRoom(t, DefaultConfig(),
		deck.NewCard(deck.Spades, deck.Three),
		deck.NewCard(deck.Hearts, deck.Nine),
		deck.NewCard(deck.Spades, deck.Four),
		deck.NewCard(deck.Hearts, deck.Ten),
		deck.NewCard(deck.Diamonds, deck.Five),
	)
	ids := seatPlayers(r, 4)
	r.StartGame(ids[0])
	dealSpread(t, r, mock)

	r.Pass(ids[0])
	cfg := DefaultConfig()
	step(t, mock, cfg.PassDelay)
	dealSpread(t, r, mock)
	require.Equal(t, ids[1], r.Snapshot().CurrentPlayerID)

	r.Disconnect(ids[0]) // a seat before the live one leaves

	snap := r.Snapshot()
	assert.Equal(t, ids[1], snap.CurrentPlayerID, "the live turn must not shift")

	// The spread is still on the table and the turn still playable.
	r.PlaceBet(ids[1], 100)
	assert.Equal(t, 10050, chips(r, ids[1]), "five falls between four and ten")
}

func TestDisconnectDuringAceChoiceDefaultsHigh(t *testing.T) {
	t.Parallel()

	r, _, mock := testRoom(t, DefaultConfig(),
		deck.NewCard(deck.Spades, deck.Ace),
		deck.NewCard(deck.Hearts, deck.Five),
	)
	ids := seatPlayers(r, 4)
	r.StartGame(ids[0])
	cfg := DefaultConfig()
	step(t, mock, cfg.FirstCardDelay)
	require.True(t, r.Snapshot().IsWaitingForAceChoice)

	r.Disconnect(ids[0])

	snap := r.Snapshot()
	assert.False(t, snap.IsWaitingForAceChoice)
	require.Len(t, snap.CurrentCards, 2, "the spread completes for the inheriting seat")
	assert.Equal(t, 14, snap.CurrentCards[1].Value, "an abandoned ace defaults high")
	assert.Equal(t, ids[1], snap.CurrentPlayerID)
}

func TestLastSeatLeavingClearsTableState(t *testing.T) {
	t.Parallel()

	r, _, _ := testRoom(t, DefaultConfig())
	r.Join("p1", "Solo", 10000)
	r.Spectate("watcher", "Watcher")

	empty := r.Disconnect("p1")
	assert.False(t, empty, "a spectator keeps the room alive")

	snap := r.Snapshot()
	assert.Zero(t, snap.PotCents)
	assert.Empty(t, snap.PlayerOrder)
	assert.False(t, snap.IsGameRunning)

	assert.True(t, r.Disconnect("watcher"), "the last participant leaving empties the room")
}

func TestDisconnectUnknownIDIsIgnored(t *testing.T) {
	t.Parallel()

	r, _, _ := testRoom(t, DefaultConfig())
	seatPlayers(r, 3)

	assert.False(t, r.Disconnect("nobody"))
	assert.Len(t, r.Snapshot().PlayerOrder, 3)
}

func TestWaitingPlayerCanLeaveQueue(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.MaxSeats = 3
	r, _, _ := testRoom(t, cfg)
	seatPlayers(r, 3)
	r.Join("p4", "Queued", 10000)

	assert.False(t, r.Disconnect("p4"))
	r.StartGame("p1")
	assert.Len(t, r.Snapshot().PlayerOrder, 3, "a drained queue seats nobody on rebuild")
}

func TestChatRelaysForPlayersAndSpectators(t *testing.T) {
	t.Parallel()

	r, sink, _ := testRoom(t, DefaultConfig())
	seatPlayers(r, 3)
	r.Spectate("watcher", "Watcher")
	sink.reset()

	r.Chat("p1", "hello")
	r.Chat("watcher", "hi from the rail")
	r.Chat("stranger", "should be dropped")

	chats := sink.ofType(EventTypeChat)
	require.Len(t, chats, 2)
	assert.Equal(t, "Player1", chats[0].(ChatEvent).Name)
	assert.Equal(t, "Watcher", chats[1].(ChatEvent).Name)
	assert.False(t, chats[0].(ChatEvent).IsSystem)
}

func TestSpectatorCountInSnapshot(t *testing.T) {
	t.Parallel()

	r, _, _ := testRoom(t, DefaultConfig())
	seatPlayers(r, 3)
	r.Spectate("w1", "W1")
	r.Spectate("w2", "W2")

	assert.Equal(t, 2, r.Snapshot().SpectatorCount)
}
