package game

import "fmt"

// startChallengeLocked opens the 6-7 press window. The challenge runs in
// parallel with the main turn's bet and never re-fires for the same turn:
// the window timer carries the turn sequence it was opened under and any
// invalidation stops it synchronously.
func (r *Room) startChallengeLocked(seq uint64) {
	r.challengeActive = true
	r.challengePresses = r.challengePresses[:0]
	r.broadcastMessageLocked("6-7 CHALLENGE! Last to press pays a fine!", true)
	r.sink.Broadcast(ChallengeStartEvent{})

	if r.challengeTimer != nil {
		r.challengeTimer.Stop()
	}
	r.challengeTimer = r.clock.AfterFunc(r.cfg.ChallengeWindow, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.resolveChallengeLocked(seq)
	})
}

// stopChallengeLocked cancels the window without picking a loser
func (r *Room) stopChallengeLocked() {
	r.challengeActive = false
	if r.challengeTimer != nil {
		r.challengeTimer.Stop()
		r.challengeTimer = nil
	}
}

// resolveChallengeLocked closes the window and fines the loser: the last
// seat (by order) among those who never pressed, or when everyone pressed,
// whoever pressed last.
func (r *Room) resolveChallengeLocked(seq uint64) {
	if r.closed || !r.challengeActive || seq != r.turnSequence {
		return
	}
	r.challengeActive = false
	r.sink.Broadcast(ChallengeEndEvent{})

	pressed := make(map[string]bool, len(r.challengePresses))
	for _, id := range r.challengePresses {
		pressed[id] = true
	}

	var loserID string
	if len(r.challengePresses) < len(r.playerOrder) {
		var notPressed []string
		for _, id := range r.playerOrder {
			if _, ok := r.players[id]; ok && !pressed[id] {
				notPressed = append(notPressed, id)
			}
		}
		if len(notPressed) > 0 {
			loserID = notPressed[len(notPressed)-1]
		}
	} else if len(r.challengePresses) > 0 {
		loserID = r.challengePresses[len(r.challengePresses)-1]
	}

	loser, ok := r.players[loserID]
	if loserID == "" || !ok {
		r.broadcastMessageLocked("6-7 challenge ended with no loser.", false)
		return
	}

	fine := r.cfg.ChallengeFineCents
	loser.Chips -= fine
	r.potCents += fine
	r.broadcastMessageLocked(
		fmt.Sprintf("%s was last and is fined %s!", loser.Name, dollars(fine)), true)
	r.systemChatLocked(
		fmt.Sprintf("%s was too slow on the 6-7 challenge and paid %s.", loser.Name, dollars(fine)))
	r.broadcastStateLocked()
}

// PressChallenge records a seated player's press. A second press from the
// same player is a no-op.
func (r *Room) PressChallenge(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || !r.challengeActive {
		return
	}
	player, ok := r.players[playerID]
	if !ok {
		return
	}
	for _, id := range r.challengePresses {
		if id == playerID {
			return
		}
	}
	r.challengePresses = append(r.challengePresses, playerID)
	r.broadcastMessageLocked(fmt.Sprintf("%s pressed the button!", player.Name), false)
}
