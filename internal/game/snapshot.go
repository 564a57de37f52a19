package game

// Snapshot is the full serialized room state broadcast to every participant
// after each mutation. It carries value copies only, so it stays stable
// after the room lock is released.
type Snapshot struct {
	Code                  string           `json:"code"`
	Players               map[string]Player `json:"players"`
	PlayerStats           map[string]Stats  `json:"playerStats"`
	PlayerOrder           []string          `json:"playerOrder"`
	CurrentPlayerIndex    int               `json:"currentPlayerIndex"`
	PotCents              int               `json:"pot"`
	AnteCents             int               `json:"potRebuildAmount"`
	CurrentCards          []DealtCard       `json:"currentCards"`
	IsGameRunning         bool              `json:"isGameRunning"`
	IsWaitingForAceChoice bool              `json:"isWaitingForAceChoice"`
	Is67ChallengeActive   bool              `json:"is67ChallengeActive"`
	SixSevenPresses       []string          `json:"sixSevenPresses"`
	GameAdminID           string            `json:"gameAdminId"`
	CurrentPlayerID       string            `json:"currentPlayerId,omitempty"`
	SpectatorCount        int               `json:"spectatorsCount"`
}

// EventType makes a Snapshot broadcastable as a game_state event
func (s Snapshot) EventType() EventType { return EventTypeGameState }

// Snapshot returns a copy of the room's visible state.
func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Room) snapshotLocked() Snapshot {
	players := make(map[string]Player, len(r.players))
	for id, p := range r.players {
		players[id] = *p
	}
	stats := make(map[string]Stats, len(r.stats))
	for id, s := range r.stats {
		stats[id] = *s
	}
	order := make([]string, len(r.playerOrder))
	copy(order, r.playerOrder)
	cards := make([]DealtCard, len(r.currentCards))
	for i, c := range r.currentCards {
		cards[i] = *c
	}
	presses := make([]string, len(r.challengePresses))
	copy(presses, r.challengePresses)

	return Snapshot{
		Code:                  r.Code,
		Players:               players,
		PlayerStats:           stats,
		PlayerOrder:           order,
		CurrentPlayerIndex:    r.currentPlayerIndex,
		PotCents:              r.potCents,
		AnteCents:             r.anteCents,
		CurrentCards:          cards,
		IsGameRunning:         r.gameRunning,
		IsWaitingForAceChoice: r.waitingForAceChoice,
		Is67ChallengeActive:   r.challengeActive,
		SixSevenPresses:       presses,
		GameAdminID:           r.gameAdminID,
		CurrentPlayerID:       r.currentPlayerIDLocked(),
		SpectatorCount:        len(r.spectators),
	}
}
