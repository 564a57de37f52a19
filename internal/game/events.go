package game

// EventType represents an outbound game event type with type safety
type EventType string

// EventType constants for room domain events. These cross the gateway
// boundary verbatim as WebSocket message types.
const (
	EventTypeGameState         EventType = "game_state"
	EventTypeCardDealt         EventType = "card_dealt"
	EventTypeMiddlePlaceholder EventType = "middle_placeholder"
	EventTypeAcePrompt         EventType = "ace_prompt"
	EventTypeBetPlaced         EventType = "bet_placed"
	EventTypeCardResult        EventType = "card_result"
	EventTypeChallengeStart    EventType = "challenge_start"
	EventTypeChallengeEnd      EventType = "challenge_end"
	EventTypeClearTable        EventType = "clear_table"
	EventTypeMessage           EventType = "message"
	EventTypeChat              EventType = "chat_message"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event represents any event a room emits toward its participants
type Event interface {
	EventType() EventType
}

// Sink receives room events for delivery. The gateway implements this; the
// engine never touches the transport directly. Both methods are called with
// the room lock held, so implementations must not call back into the room.
type Sink interface {
	Broadcast(ev Event)
	SendToPlayer(playerID string, ev Event)
}

// CardDealtEvent announces a card landing in one of the two outer slots
type CardDealtEvent struct {
	Card *DealtCard `json:"card"`
	Slot int        `json:"cardSlot"`
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }

// MiddlePlaceholderEvent tells clients to show the face-down middle slot
type MiddlePlaceholderEvent struct{}

func (e MiddlePlaceholderEvent) EventType() EventType { return EventTypeMiddlePlaceholder }

// AcePromptEvent asks the acting player to call the first-card ace low or
// high. Sent only to the acting player.
type AcePromptEvent struct{}

func (e AcePromptEvent) EventType() EventType { return EventTypeAcePrompt }

// BetPlacedEvent announces the acting player's wager before the reveal
type BetPlacedEvent struct {
	PlayerID string `json:"playerId"`
	BetCents int    `json:"betCents"`
}

func (e BetPlacedEvent) EventType() EventType { return EventTypeBetPlaced }

// CardResultEvent carries the revealed middle card and its outcome flags
type CardResultEvent struct {
	Card       *DealtCard `json:"card"`
	IsPost     bool       `json:"isPost"`
	IsDramatic bool       `json:"isDramatic"`
	BetCents   int        `json:"betCents"`
}

func (e CardResultEvent) EventType() EventType { return EventTypeCardResult }

// ChallengeStartEvent opens the 6-7 press window
type ChallengeStartEvent struct{}

func (e ChallengeStartEvent) EventType() EventType { return EventTypeChallengeStart }

// ChallengeEndEvent closes the 6-7 press window
type ChallengeEndEvent struct{}

func (e ChallengeEndEvent) EventType() EventType { return EventTypeChallengeEnd }

// ClearTableEvent tells clients to wipe the previous turn's visuals
type ClearTableEvent struct{}

func (e ClearTableEvent) EventType() EventType { return EventTypeClearTable }

// MessageEvent is a free-text status line. ActorID/Outcome/AmountCents are
// set on bet results so clients can drive per-player effects.
type MessageEvent struct {
	Text        string `json:"text"`
	Emphasis    bool   `json:"isEmphasis"`
	ActorID     string `json:"actorId,omitempty"`
	Outcome     string `json:"outcome,omitempty"`
	AmountCents int    `json:"amountCents,omitempty"`
}

func (e MessageEvent) EventType() EventType { return EventTypeMessage }

// ChatEvent relays player chat and system notices
type ChatEvent struct {
	Name     string `json:"name,omitempty"`
	Message  string `json:"message"`
	IsSystem bool   `json:"isSystem,omitempty"`
}

func (e ChatEvent) EventType() EventType { return EventTypeChat }
