package game

import (
	"fmt"
	"sort"
)

// advanceTurnLocked moves the turn to the next seat and kicks off the deal
// chain. Order matters: clear visuals, rebuild the pot (migrating waiting
// players in), refresh a low shoe, reset per-turn flags, bump the turn
// sequence, then advance the index and announce.
func (r *Room) advanceTurnLocked() {
	if r.closed {
		return
	}
	if !r.gameRunning || len(r.playerOrder) < r.cfg.MinPlayers {
		r.pauseLocked("Game paused. Waiting for more players...")
		return
	}

	r.sink.Broadcast(ClearTableEvent{})

	if r.potCents <= 0 {
		r.rebuildPotLocked()
	}

	if r.shoe == nil || r.shoe.Low(r.cfg.LowWaterMark) {
		r.shoe = r.newShoe()
		r.broadcastMessageLocked("Deck is low, creating a fresh shuffle...", false)
	}

	r.stopChallengeLocked()
	r.waitingForAceChoice = false
	r.currentCards = r.currentCards[:0]
	r.turnSequence++
	r.turnInProgress = true

	r.currentPlayerIndex = (r.currentPlayerIndex + 1) % len(r.playerOrder)
	actor := r.players[r.currentPlayerIDLocked()]

	r.broadcastStateLocked()
	r.broadcastMessageLocked(fmt.Sprintf("%s's turn.", actor.Name), false)
	r.logger.Debug("turn advanced", "player", actor.Name, "seq", r.turnSequence, "pot", r.potCents)

	seq := r.turnSequence
	r.scheduleLocked(r.cfg.FirstCardDelay, seq, func() {
		r.dealFirstCardLocked(seq)
	})
}

// rebuildPotLocked charges every seated player still holding chips the ante
// and seats the waiting queue (who pay the same ante on the way in).
func (r *Room) rebuildPotLocked() {
	contributors := 0
	for _, id := range r.playerOrder {
		p, ok := r.players[id]
		if !ok || p.Chips <= 0 {
			continue
		}
		p.Chips -= r.anteCents
		r.potCents += r.anteCents
		contributors++
	}
	r.broadcastMessageLocked(
		fmt.Sprintf("Pot rebuilt! %d players add %s.", contributors, dollars(r.anteCents)), false)

	for id, w := range r.waiting {
		r.players[id] = w
		r.stats[id] = &Stats{}
		r.playerOrder = append(r.playerOrder, id)
		w.Chips -= r.anteCents
		r.potCents += r.anteCents
		r.systemChatLocked(fmt.Sprintf("%s has joined the game from the waiting list.", w.Name))
		delete(r.waiting, id)
	}
}

func (r *Room) dealFirstCardLocked(seq uint64) {
	card := r.drawLocked()
	r.currentCards = append(r.currentCards, card)
	r.sink.Broadcast(CardDealtEvent{Card: card, Slot: 1})

	if card.Value == aceHighValue {
		// No timeout here: the turn waits on the acting player
		// indefinitely.
		r.waitingForAceChoice = true
		r.broadcastStateLocked()
		r.sink.SendToPlayer(r.currentPlayerIDLocked(), AcePromptEvent{})
		return
	}

	r.scheduleLocked(r.cfg.SecondCardDelay, seq, func() {
		r.dealSecondCardLocked(seq)
	})
}

// dealSecondCardLocked completes the spread. Also the re-entry point after
// an ace choice resolves (or the ace holder disconnects, which defaults the
// ace high).
func (r *Room) dealSecondCardLocked(seq uint64) {
	card := r.drawLocked()
	if card.Value == aceHighValue {
		card.Rank = aceHighLabel
	}
	r.currentCards = append(r.currentCards, card)
	r.sink.Broadcast(CardDealtEvent{Card: card, Slot: 2})
	sort.Slice(r.currentCards, func(i, j int) bool {
		return r.currentCards[i].Value < r.currentCards[j].Value
	})

	r.scheduleLocked(r.cfg.PlaceholderDelay, seq, func() {
		r.evaluateSpreadLocked(seq)
	})
}

// evaluateSpreadLocked shows the middle placeholder and routes the turn:
// pair penalty, unwinnable skip, 6-7 challenge, or awaiting a bet.
func (r *Room) evaluateSpreadLocked(seq uint64) {
	r.sink.Broadcast(MiddlePlaceholderEvent{})

	low, high := r.currentCards[0], r.currentCards[1]
	actorID := r.currentPlayerIDLocked()
	actor := r.players[actorID]

	switch {
	case low.Value == high.Value:
		// Pair: automatic penalty, no bet collected.
		actor.Chips -= r.cfg.PairPenaltyCents
		r.potCents += r.cfg.PairPenaltyCents
		r.broadcastMessageLocked(
			fmt.Sprintf("Same cards! %s pays %s and passes.", actor.Name, dollars(r.cfg.PairPenaltyCents)), true)
		r.turnInProgress = false
		r.broadcastStateLocked()
		r.scheduleLocked(r.cfg.AutoResolveDelay, seq, r.advanceTurnLocked)
		return

	case high.Value-low.Value == 1 && !r.isSixSevenLocked():
		// No integer fits strictly between adjacent ranks; skip free.
		r.broadcastMessageLocked(
			fmt.Sprintf("No card can fall between. %s is skipped.", actor.Name), false)
		r.turnInProgress = false
		r.broadcastStateLocked()
		r.scheduleLocked(r.cfg.AutoResolveDelay, seq, r.advanceTurnLocked)
		return
	}

	if r.isSixSevenLocked() {
		r.startChallengeLocked(seq)
	}
	r.broadcastStateLocked()
}

func (r *Room) isSixSevenLocked() bool {
	if len(r.currentCards) != 2 {
		return false
	}
	return r.currentCards[0].Value == 6 && r.currentCards[1].Value == 7
}

// AceChoice resolves a pending first-card ace as low or high. Only the
// acting player's choice is accepted; anything else is ignored.
func (r *Room) AceChoice(playerID, choice string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || !r.waitingForAceChoice || playerID != r.currentPlayerIDLocked() {
		return
	}
	switch choice {
	case "low":
		for _, c := range r.currentCards {
			if c.IsAce() {
				c.Value = aceLowValue
				break
			}
		}
	case "high":
		// value stays 14
	default:
		return
	}
	r.waitingForAceChoice = false
	r.dealSecondCardLocked(r.turnSequence)
}

// PlaceBet resolves the acting player's wager against a freshly drawn
// middle card. Invalid bets are rejected with a message and no mutation;
// bets from anyone but the turn holder are silently ignored.
func (r *Room) PlaceBet(playerID string, betCents int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.canActLocked(playerID) {
		return
	}
	player := r.players[playerID]
	if betCents <= 0 || betCents > player.Chips || betCents > r.potCents {
		r.sink.SendToPlayer(playerID, MessageEvent{Text: "Invalid bet."})
		return
	}

	r.sink.Broadcast(BetPlacedEvent{PlayerID: playerID, BetCents: betCents})

	card := r.drawLocked()
	low, high := r.currentCards[0], r.currentCards[1]

	var (
		isPost  bool
		outcome string
		text    string
	)
	switch {
	case card.Value > low.Value && card.Value < high.Value:
		player.Chips += betCents
		r.potCents -= betCents
		outcome = "win"
		text = fmt.Sprintf("Winner! %s wins %s.", player.Name, dollars(betCents))
		r.stats[playerID].Wins++
	case card.Value == low.Value || card.Value == high.Value:
		penalty := betCents * 2
		player.Chips -= penalty
		r.potCents += penalty
		isPost = true
		outcome = "post"
		text = fmt.Sprintf("Hit the post! %s pays double (%s).", player.Name, dollars(penalty))
		r.stats[playerID].Posts++
	default:
		player.Chips -= betCents
		r.potCents += betCents
		outcome = "loss"
		text = fmt.Sprintf("Outside. %s loses %s.", player.Name, dollars(betCents))
		r.stats[playerID].Losses++
	}

	isDramatic := betCents >= r.cfg.DramaticBetCents
	r.sink.Broadcast(CardResultEvent{Card: card, IsPost: isPost, IsDramatic: isDramatic, BetCents: betCents})
	r.logger.Debug("bet resolved", "player", player.Name, "outcome", outcome, "bet", betCents, "pot", r.potCents)

	r.turnInProgress = false
	delay := r.cfg.RevealDelay
	if isDramatic {
		delay = r.cfg.DramaticRevealDelay
	}
	seq := r.turnSequence
	r.scheduleLocked(delay, seq, func() {
		r.broadcastOutcomeLocked(text, playerID, outcome, betCents)
		r.scheduleLocked(delay, seq, r.advanceTurnLocked)
	})
}

// Pass gives up the turn with no economic effect.
func (r *Room) Pass(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.canActLocked(playerID) {
		return
	}
	player := r.players[playerID]
	r.sink.Broadcast(MessageEvent{Text: fmt.Sprintf("%s passes.", player.Name), ActorID: playerID})

	r.turnInProgress = false
	r.scheduleLocked(r.cfg.PassDelay, r.turnSequence, r.advanceTurnLocked)
}

// canActLocked gates bet/pass: the game must be running, the caller must
// hold the live turn with a full spread on the table, and no ace choice may
// be pending.
func (r *Room) canActLocked(playerID string) bool {
	if r.closed || !r.gameRunning || r.waitingForAceChoice || !r.turnInProgress {
		return false
	}
	if _, ok := r.players[playerID]; !ok {
		return false
	}
	return playerID == r.currentPlayerIDLocked() && len(r.currentCards) == 2
}

// pauseLocked stops dealing and invalidates in-flight turn work.
func (r *Room) pauseLocked(text string) {
	r.gameRunning = false
	r.invalidateTurnLocked()
	r.broadcastMessageLocked(text, false)
	r.broadcastStateLocked()
}

// drawLocked pops the next card, refreshing the shoe if it somehow ran dry
// mid-turn.
func (r *Room) drawLocked() *DealtCard {
	card, ok := r.shoe.Draw()
	if !ok {
		r.shoe.Reset()
		card, _ = r.shoe.Draw()
	}
	return newDealtCard(card)
}
