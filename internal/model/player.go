package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents one of the two participants in a game.
// SecretCode is empty until the player locks one; locking is one-way, so
// once Ready is set the code never changes for the lifetime of the game.
// The secret is only ever read by guess evaluation and must not appear in
// any API response.
type Player struct {
	ID         PlayerID
	Name       string
	SecretCode Code
	Ready      bool
	CreatedAt  time.Time
}
