package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameStatus represents the current phase of a game.
// Transitions are monotonic: waiting -> in_progress -> completed.
type GameStatus string

const (
	GameStatusWaiting    GameStatus = "waiting"     // fewer than two players, or codes not yet locked
	GameStatusInProgress GameStatus = "in_progress" // both codes locked, guessing under way
	GameStatusCompleted  GameStatus = "completed"   // a winning guess has been recorded
)

// Game represents a single two-player code duel.
// CreatorID is always populated; JoinerID is empty until a second player
// joins. CurrentTurn is one of the two player ids while the game is in
// progress and empty otherwise. WinnerID is set exactly when the status is
// completed.
type Game struct {
	ID        GameID
	CreatorID PlayerID
	JoinerID  PlayerID

	Status      GameStatus
	CurrentTurn PlayerID
	WinnerID    PlayerID
	TurnCount   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasJoiner reports whether the second player slot is filled
func (g *Game) HasJoiner() bool {
	return g.JoinerID != ""
}

// HasPlayer reports whether the given player occupies one of the two slots
func (g *Game) HasPlayer(id PlayerID) bool {
	return id != "" && (id == g.CreatorID || id == g.JoinerID)
}

// Opponent returns the other player's id, or empty when id is not in the
// game or the second slot is unfilled
func (g *Game) Opponent(id PlayerID) PlayerID {
	switch id {
	case g.CreatorID:
		return g.JoinerID
	case g.JoinerID:
		return g.CreatorID
	}
	return ""
}

// PlayerIDs returns the filled player slots, creator first
func (g *Game) PlayerIDs() []PlayerID {
	ids := []PlayerID{g.CreatorID}
	if g.HasJoiner() {
		ids = append(ids, g.JoinerID)
	}
	return ids
}
