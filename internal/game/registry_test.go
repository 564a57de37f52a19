package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/inbetween/internal/roomid"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry(DefaultConfig(), log.New(io.Discard), quartz.NewMock(t))
	reg.SetSeedFunc(func() int64 { return 1 })
	return reg
}

func nullSinkFor(code string) Sink { return nullSink{} }

type nullSink struct{}

func (nullSink) Broadcast(Event)            {}
func (nullSink) SendToPlayer(string, Event) {}

func TestRegistryCreateAssignsValidCodes(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		room := reg.Create(nullSinkFor)
		require.NoError(t, roomid.Validate(room.Code))
		require.False(t, seen[room.Code], "codes must be unique across live rooms")
		seen[room.Code] = true
	}
	assert.Equal(t, 50, reg.Count())
}

func TestRegistrySinkSeesRoomCode(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	var got string
	room := reg.Create(func(code string) Sink {
		got = code
		return nullSink{}
	})
	assert.Equal(t, room.Code, got, "the sink factory binds to the chosen code")
}

func TestRegistryGetAndDelete(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	room := reg.Create(nullSinkFor)

	found, ok := reg.Get(room.Code)
	require.True(t, ok)
	assert.Same(t, room, found)

	reg.Delete(room.Code)
	_, ok = reg.Get(room.Code)
	assert.False(t, ok)
	assert.Zero(t, reg.Count())

	// Deleting twice is harmless.
	reg.Delete(room.Code)
}

func TestDeletedRoomIgnoresIntents(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	room := reg.Create(nullSinkFor)
	room.Join("p1", "Ada", 10000)
	reg.Delete(room.Code)

	room.Join("p2", "Late", 10000)
	room.StartGame("p1")

	snap := room.Snapshot()
	assert.Len(t, snap.PlayerOrder, 1, "a closed room accepts no intents")
	assert.False(t, snap.IsGameRunning)
}
