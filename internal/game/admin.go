package game

import "fmt"

// StartGame begins dealing. Admin only; the roster must meet the minimum
// and the game must not already be running. Any pot carried over from a
// pause is preserved; when it is empty the first turn's rebuild collects
// the antes.
func (r *Room) StartGame(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || playerID != r.gameAdminID {
		return
	}
	if r.gameRunning || len(r.playerOrder) < r.cfg.MinPlayers {
		return
	}

	r.gameRunning = true
	r.broadcastMessageLocked("Game started.", true)
	r.logger.Info("game started", "players", len(r.playerOrder), "pot", r.potCents)

	if r.shoe == nil {
		r.shoe = r.newShoe()
	}
	r.advanceTurnLocked()
}

// SetAnte updates the pot rebuild amount. Admin only.
func (r *Room) SetAnte(playerID string, cents int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || playerID != r.gameAdminID {
		return
	}
	if cents < 0 {
		r.sink.SendToPlayer(playerID, MessageEvent{Text: "Invalid ante amount."})
		return
	}
	r.anteCents = cents
	r.broadcastMessageLocked(
		fmt.Sprintf("Admin set pot rebuild amount to %s.", dollars(cents)), false)
	r.broadcastStateLocked()
}

// AdminAddToPot tops up the pot out of thin air. Admin only, and only while
// the game is paused so it can't race a live turn's economy.
func (r *Room) AdminAddToPot(playerID string, cents int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || playerID != r.gameAdminID {
		return
	}
	if r.gameRunning {
		r.sink.SendToPlayer(playerID, MessageEvent{Text: "You can only add to the pot before the game starts."})
		return
	}
	if cents <= 0 {
		r.sink.SendToPlayer(playerID, MessageEvent{Text: "Invalid pot amount."})
		return
	}
	r.potCents += cents
	r.systemChatLocked(fmt.Sprintf("Admin added %s to the pot.", dollars(cents)))
	r.broadcastStateLocked()
}

// EndGameSplit distributes the pot evenly across the seats, cent-exact with
// the remainder going to the earliest seats, then pauses the game. Admin
// only.
func (r *Room) EndGameSplit(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || playerID != r.gameAdminID {
		return
	}
	if !r.gameRunning || len(r.playerOrder) == 0 || r.potCents <= 0 {
		return
	}

	n := len(r.playerOrder)
	share := r.potCents / n
	rem := r.potCents % n
	for _, id := range r.playerOrder {
		p, ok := r.players[id]
		if !ok {
			continue
		}
		add := share
		if rem > 0 {
			add++
			rem--
		}
		p.Chips += add
	}

	r.systemChatLocked(fmt.Sprintf("Admin ended the game. Pot split evenly among %d player(s).", n))
	r.logger.Info("game ended by split", "players", n, "pot", r.potCents)

	r.potCents = 0
	r.gameRunning = false
	r.currentCards = r.currentCards[:0]
	r.currentPlayerIndex = -1
	r.invalidateTurnLocked()
	r.broadcastStateLocked()
}

// AddCredit lets a seated player top up their own chips.
func (r *Room) AddCredit(playerID string, cents int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || cents <= 0 {
		return
	}
	p, ok := r.players[playerID]
	if !ok {
		return
	}
	p.Chips += cents
	p.TotalBuyIn += cents
	r.systemChatLocked(fmt.Sprintf("%s added %s in credit.", p.Name, dollars(cents)))
	r.broadcastStateLocked()
}
