package server

import (
	"encoding/json"
	"time"

	"github.com/lox/inbetween/internal/game"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(messageType MessageType, data interface{}) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: time.Now(),
	}, nil
}

// Client → Server intents

type CreateRoomData struct {
	Name       string `json:"name,omitempty"`
	BuyInCents int    `json:"buyInCents"`
}

type JoinRoomData struct {
	Code       string `json:"code"`
	Name       string `json:"name,omitempty"`
	BuyInCents int    `json:"buyInCents"`
}

type SpectateRoomData struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// AmountData carries a single cent amount (bets, antes, credit top-ups,
// admin pot additions).
type AmountData struct {
	AmountCents int `json:"amountCents"`
}

type AceChoiceData struct {
	Choice string `json:"choice"` // "low" or "high"
}

type ChatData struct {
	Message string `json:"message"`
}

// Server → Client responses

// Role of the requester within the room they just entered.
const (
	RolePlayer    = "player"
	RoleWaiting   = "waiting"
	RoleSpectator = "spectator"
)

type RoomCreatedData struct {
	Code  string        `json:"code"`
	Name  string        `json:"name"`
	State game.Snapshot `json:"state"`
}

type RoomJoinedData struct {
	Code  string        `json:"code"`
	Name  string        `json:"name"`
	Role  string        `json:"role"`
	State game.Snapshot `json:"state"`
}

type RoomErrorData struct {
	Text string `json:"text"`
}
