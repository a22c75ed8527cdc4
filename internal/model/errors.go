package model

import "errors"

// Common errors used across the application
var (
	// Lookup errors
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player not found")

	// Join errors
	ErrGameFull = errors.New("game already has two players")

	// Code locking errors
	ErrInvalidCodeFormat = errors.New("code must be exactly 4 digits")
	ErrCodeAlreadyLocked = errors.New("code is already locked")

	// Guessing errors
	ErrGameNotStarted  = errors.New("game has not started")
	ErrGameCompleted   = errors.New("game is already completed")
	ErrNotPlayerTurn   = errors.New("not this player's turn")
	ErrPlayerNotInGame = errors.New("player is not in this game")
)
