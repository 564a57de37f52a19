package game

// Player represents a seated participant. Chips are in cents and may go
// negative while a penalty settles; the next ante or credit top-up works it
// off.
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Chips      int    `json:"chips"`
	TotalBuyIn int    `json:"totalBuyIn"`
}

// Stats tracks lifetime bet outcomes for one player
type Stats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Posts  int `json:"posts"`
}

// Spectator is a non-seated observer. Spectators keep a room alive but
// never appear in the turn rotation.
type Spectator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
