package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRoundTrip(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(MessageTypePlaceBet, AmountData{AmountCents: 250})
	require.NoError(t, err)
	assert.False(t, msg.Timestamp.IsZero())

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	var decoded Message
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, MessageTypePlaceBet, decoded.Type)

	var amount AmountData
	require.NoError(t, json.Unmarshal(decoded.Data, &amount))
	assert.Equal(t, 250, amount.AmountCents)
}

func TestMessageDecodesClientPayloads(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"type":"join_room","data":{"code":"AB23CD","name":"Ada","buyInCents":5000}}`)

	var msg Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, MessageTypeJoinRoom, msg.Type)

	var data JoinRoomData
	require.NoError(t, json.Unmarshal(msg.Data, &data))
	assert.Equal(t, "AB23CD", data.Code)
	assert.Equal(t, "Ada", data.Name)
	assert.Equal(t, 5000, data.BuyInCents)
}
