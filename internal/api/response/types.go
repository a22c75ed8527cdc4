package response

import (
	"fmt"
	"time"

	"github.com/jtoman/codeduel/internal/model"
	"github.com/jtoman/codeduel/internal/services/game"
)

// PlayerInfo represents a player in API responses. It never carries the
// secret code.
type PlayerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// PlayerInfoFromModel converts a model.Player to a response PlayerInfo
func PlayerInfoFromModel(p *model.Player) PlayerInfo {
	return PlayerInfo{
		ID:    string(p.ID),
		Name:  p.Name,
		Ready: p.Ready,
	}
}

// optionalID converts an id-like string to a nullable JSON field
func optionalID[T ~string](id T) *string {
	if id == "" {
		return nil
	}
	s := string(id)
	return &s
}

// CreateGameResponse is the response for creating a game
type CreateGameResponse struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// JoinGameResponse is the response for joining a game
type JoinGameResponse struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// LockCodeResponse is the response for locking a secret code
type LockCodeResponse struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Ready    bool   `json:"ready"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// GuessResponse is the response for submitting a guess
type GuessResponse struct {
	GuessID          string  `json:"guess_id"`
	Code             string  `json:"code"`
	CorrectDigits    int     `json:"correct_digits"`
	CorrectPositions int     `json:"correct_positions"`
	TurnNumber       int     `json:"turn_number"`
	IsWinner         bool    `json:"is_winner"`
	NextTurn         *string `json:"next_turn"`
	WinnerID         *string `json:"winner_id,omitempty"`
	Message          string  `json:"message"`
}

// GuessResponseFromOutcome converts a game.GuessOutcome
func GuessResponseFromOutcome(o *game.GuessOutcome) GuessResponse {
	message := fmt.Sprintf("%d correct digits, %d in position", o.Guess.CorrectDigits, o.Guess.CorrectPositions)
	if o.IsWinner {
		message = "You cracked the code!"
	}
	return GuessResponse{
		GuessID:          string(o.Guess.ID),
		Code:             string(o.Guess.Code),
		CorrectDigits:    o.Guess.CorrectDigits,
		CorrectPositions: o.Guess.CorrectPositions,
		TurnNumber:       o.Guess.TurnNumber,
		IsWinner:         o.IsWinner,
		NextTurn:         optionalID(o.NextTurn),
		WinnerID:         optionalID(o.WinnerID),
		Message:          message,
	}
}

// GameStatus represents the full public state of a game
type GameStatus struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	Creator     *PlayerInfo `json:"creator"`
	Joiner      *PlayerInfo `json:"joiner"`
	CurrentTurn *string     `json:"current_turn"`
	WinnerID    *string     `json:"winner_id"`
	TurnCount   int         `json:"turn_count"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// GameStatusFromModel converts a game and its players to a GameStatus.
// The joiner may be nil while the second slot is unfilled.
func GameStatusFromModel(g *model.Game, creator, joiner *model.Player) GameStatus {
	status := GameStatus{
		ID:          string(g.ID),
		Status:      string(g.Status),
		CurrentTurn: optionalID(g.CurrentTurn),
		WinnerID:    optionalID(g.WinnerID),
		TurnCount:   g.TurnCount,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	if creator != nil {
		info := PlayerInfoFromModel(creator)
		status.Creator = &info
	}
	if joiner != nil {
		info := PlayerInfoFromModel(joiner)
		status.Joiner = &info
	}
	return status
}

// GameSummary is a single entry in the game listing
type GameSummary struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	TurnCount int       `json:"turn_count"`
	CreatedAt time.Time `json:"created_at"`
}

// ListGamesResponse is the response for listing games
type ListGamesResponse struct {
	Games []GameSummary `json:"games"`
}

// ListGamesResponseFromModel converts a game listing
func ListGamesResponseFromModel(games []*model.Game) ListGamesResponse {
	summaries := make([]GameSummary, len(games))
	for i, g := range games {
		summaries[i] = GameSummary{
			ID:        string(g.ID),
			Status:    string(g.Status),
			TurnCount: g.TurnCount,
			CreatedAt: g.CreatedAt,
		}
	}
	return ListGamesResponse{Games: summaries}
}

// PlayersResponse is the response for listing a game's players
type PlayersResponse struct {
	Creator PlayerInfo  `json:"creator"`
	Joiner  *PlayerInfo `json:"joiner"`
}

// Guess is a single entry in a guess history. Guesser carries the
// display name resolved from the guesser id.
type Guess struct {
	ID               string    `json:"id"`
	GuesserID        string    `json:"guesser_id"`
	Guesser          string    `json:"guesser"`
	Code             string    `json:"code"`
	CorrectDigits    int       `json:"correct_digits"`
	CorrectPositions int       `json:"correct_positions"`
	TurnNumber       int       `json:"turn_number"`
	Timestamp        time.Time `json:"timestamp"`
}

// GuessFromModel converts a model.Guess
func GuessFromModel(g *model.Guess, guesserName string) Guess {
	return Guess{
		ID:               string(g.ID),
		GuesserID:        string(g.GuesserID),
		Guesser:          guesserName,
		Code:             string(g.Code),
		CorrectDigits:    g.CorrectDigits,
		CorrectPositions: g.CorrectPositions,
		TurnNumber:       g.TurnNumber,
		Timestamp:        g.Timestamp,
	}
}

// GuessHistoryResponse is the response for a game's guess history
type GuessHistoryResponse struct {
	GameID       string  `json:"game_id"`
	TotalGuesses int     `json:"total_guesses"`
	Guesses      []Guess `json:"guesses"`
}

// GuessHistoryFromModel converts a guess history, resolving guesser ids
// to display names through the given map
func GuessHistoryFromModel(gameID model.GameID, guesses []*model.Guess, names map[model.PlayerID]string) GuessHistoryResponse {
	entries := make([]Guess, len(guesses))
	for i, g := range guesses {
		entries[i] = GuessFromModel(g, names[g.GuesserID])
	}
	return GuessHistoryResponse{
		GameID:       string(gameID),
		TotalGuesses: len(entries),
		Guesses:      entries,
	}
}

// TurnInfoResponse is the response for the turn endpoint
type TurnInfoResponse struct {
	GameID            string  `json:"game_id"`
	Status            string  `json:"status"`
	CurrentTurn       *string `json:"current_turn"`
	CurrentPlayerName string  `json:"current_player_name,omitempty"`
	TurnCount         int     `json:"turn_count"`
}

// TurnInfoFromModel converts a game.TurnInfo
func TurnInfoFromModel(info *game.TurnInfo) TurnInfoResponse {
	return TurnInfoResponse{
		GameID:            string(info.GameID),
		Status:            string(info.Status),
		CurrentTurn:       optionalID(info.CurrentTurn),
		CurrentPlayerName: info.CurrentPlayerName,
		TurnCount:         info.TurnCount,
	}
}
