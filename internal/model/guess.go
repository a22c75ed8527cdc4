package model

import "time"

// GuessID uniquely identifies a guess record
type GuessID string

// Guess is one recorded guess against the opponent's secret code.
// Records are append-only and immutable once stored. TurnNumber starts at 1
// and is strictly increasing within a game.
type Guess struct {
	ID               GuessID
	GameID           GameID
	GuesserID        PlayerID
	TargetID         PlayerID
	Code             Code
	CorrectDigits    int
	CorrectPositions int
	TurnNumber       int
	Timestamp        time.Time
}
