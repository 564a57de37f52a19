package server

// Note: outbound game events (game_state, card_dealt, etc.) are defined in
// internal/game/events.go and cross the wire with their EventType as the
// message type.

// MessageType represents a WebSocket message type with type safety
type MessageType string

// WebSocket message type constants
const (
	// Client to server intents
	MessageTypeCreateRoom    MessageType = "create_room"
	MessageTypeJoinRoom      MessageType = "join_room"
	MessageTypeSpectateRoom  MessageType = "spectate_room"
	MessageTypeStartGame     MessageType = "start_game"
	MessageTypeSetAnte       MessageType = "set_ante"
	MessageTypeAdminAddToPot MessageType = "admin_add_to_pot"
	MessageTypeEndGameSplit  MessageType = "end_game_split"
	MessageTypeAceChoice     MessageType = "ace_choice"
	MessageTypePlaceBet      MessageType = "place_bet"
	MessageTypePass          MessageType = "pass"
	MessageTypePress67       MessageType = "press_67"
	MessageTypeAddCredit     MessageType = "add_credit"
	MessageTypeChat          MessageType = "chat"

	// Server to client responses
	MessageTypeRoomCreated MessageType = "room_created"
	MessageTypeRoomJoined  MessageType = "room_joined"
	MessageTypeRoomError   MessageType = "room_error"
)

// String returns the string representation of the message type
func (mt MessageType) String() string {
	return string(mt)
}
