package game

import "fmt"

// JoinResult reports how a join request landed.
type JoinResult struct {
	Name   string
	Seated bool // false means queued for the next pot rebuild
}

// Join seats a player, or queues them when the table is full or a live pot
// is in play (queued players migrate in at the next pot rebuild, so nobody
// slips into a funded pot without paying an ante). A blank name gets a
// unique generated fallback. The first seat to fill becomes admin.
func (r *Room) Join(playerID, name string, buyInCents int) JoinResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return JoinResult{Name: name}
	}

	finalName := r.ensureNameLocked(name)
	player := &Player{ID: playerID, Name: finalName, Chips: buyInCents, TotalBuyIn: buyInCents}

	if len(r.playerOrder) >= r.cfg.MaxSeats || (r.gameRunning && r.potCents > 0) {
		r.waiting[playerID] = player
		r.systemChatLocked(fmt.Sprintf(
			"%s is waiting and will join at the next pot rebuild.", finalName))
		r.broadcastStateLocked()
		return JoinResult{Name: finalName, Seated: false}
	}

	r.players[playerID] = player
	r.stats[playerID] = &Stats{}
	r.playerOrder = append(r.playerOrder, playerID)
	if r.gameAdminID == "" {
		r.gameAdminID = playerID
	}

	r.systemChatLocked(fmt.Sprintf("%s has joined the game.", finalName))
	if needed := r.cfg.MinPlayers - len(r.playerOrder); needed > 0 {
		r.broadcastMessageLocked(fmt.Sprintf("Waiting for %d more player(s)...", needed), false)
	} else if !r.gameRunning {
		r.broadcastMessageLocked("Ready to start when the admin clicks 'Start Game'.", false)
	}
	r.broadcastStateLocked()
	return JoinResult{Name: finalName, Seated: true}
}

// Spectate registers a non-seated observer.
func (r *Room) Spectate(playerID, name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return name
	}

	finalName := r.ensureNameLocked(name)
	r.spectators[playerID] = &Spectator{ID: playerID, Name: finalName}
	r.systemChatLocked(fmt.Sprintf("%s is spectating.", finalName))
	r.broadcastStateLocked()
	return finalName
}

// Chat relays a message from any seated player or spectator.
func (r *Room) Chat(playerID, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	var name string
	if p, ok := r.players[playerID]; ok {
		name = p.Name
	} else if s, ok := r.spectators[playerID]; ok {
		name = s.Name
	} else {
		return
	}
	r.sink.Broadcast(ChatEvent{Name: name, Message: text})
}

// Disconnect removes a departing participant and repairs the turn state
// around them. Returns true when the room is now completely empty and
// should be deleted by the registry.
func (r *Room) Disconnect(playerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}

	if w, ok := r.waiting[playerID]; ok {
		delete(r.waiting, playerID)
		r.systemChatLocked(fmt.Sprintf("%s left the waiting queue.", w.Name))
		return r.emptyLocked()
	}

	if s, ok := r.spectators[playerID]; ok {
		delete(r.spectators, playerID)
		r.systemChatLocked(fmt.Sprintf("%s stopped spectating.", s.Name))
		if r.emptyLocked() {
			return true
		}
		r.broadcastStateLocked()
		return false
	}

	p, ok := r.players[playerID]
	if !ok {
		return false
	}

	wasAdmin := playerID == r.gameAdminID
	idx := -1
	for i, id := range r.playerOrder {
		if id == playerID {
			idx = i
			break
		}
	}
	r.playerOrder = append(r.playerOrder[:idx], r.playerOrder[idx+1:]...)
	delete(r.players, playerID)
	delete(r.stats, playerID)
	r.systemChatLocked(fmt.Sprintf("%s has left the game.", p.Name))
	r.logger.Debug("player disconnected", "player", p.Name, "seats", len(r.playerOrder))

	if wasAdmin {
		r.gameAdminID = ""
		if len(r.playerOrder) > 0 {
			r.gameAdminID = r.playerOrder[0]
			if admin, ok := r.players[r.gameAdminID]; ok {
				r.systemChatLocked(fmt.Sprintf("%s is the new game admin.", admin.Name))
			}
		}
	}

	if len(r.playerOrder) == 0 {
		// Last seat gone: clear the volatile table state. Spectators and
		// queued joiners keep the room alive.
		r.potCents = 0
		r.currentCards = r.currentCards[:0]
		r.currentPlayerIndex = -1
		r.gameRunning = false
		r.invalidateTurnLocked()
		if r.emptyLocked() {
			return true
		}
		r.broadcastStateLocked()
		return false
	}

	if !r.gameRunning {
		r.broadcastStateLocked()
		return false
	}

	if len(r.playerOrder) < r.cfg.MinPlayers {
		r.pauseLocked("Not enough players. Game paused.")
		return false
	}

	wasTurn := idx == r.currentPlayerIndex
	if idx < r.currentPlayerIndex {
		// A seat before the live one vanished; pull the index back so the
		// rotation doesn't skip anyone.
		r.currentPlayerIndex = max(0, r.currentPlayerIndex-1)
	}

	if !wasTurn {
		r.broadcastStateLocked()
		return false
	}

	if r.waitingForAceChoice {
		// The turn holder left mid ace choice. The ace defaults to high
		// and the spread completes for the seat that inherits the turn.
		r.waitingForAceChoice = false
		r.currentPlayerIndex %= len(r.playerOrder)
		r.dealSecondCardLocked(r.turnSequence)
		return false
	}

	// The leaver held the live turn: invalidate whatever was in flight,
	// step the index back one so the advance lands on the seat after them.
	r.invalidateTurnLocked()
	r.currentPlayerIndex = (r.currentPlayerIndex - 1 + len(r.playerOrder)) % len(r.playerOrder)
	seq := r.turnSequence
	r.scheduleLocked(r.cfg.ReseatDelay, seq, r.advanceTurnLocked)
	return false
}

func (r *Room) emptyLocked() bool {
	return len(r.players) == 0 && len(r.waiting) == 0 && len(r.spectators) == 0
}

// ensureNameLocked returns the trimmed name, or a generated "Player NNNN"
// unique within the room when blank.
func (r *Room) ensureNameLocked(name string) string {
	if name != "" {
		return name
	}
	taken := make(map[string]bool, len(r.players)+len(r.spectators))
	for _, p := range r.players {
		taken[p.Name] = true
	}
	for _, s := range r.spectators {
		taken[s.Name] = true
	}
	for {
		candidate := fmt.Sprintf("Player %d", 1000+r.rng.IntN(9000))
		if !taken[candidate] {
			return candidate
		}
	}
}
