package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CreateGameResult:
		fmt.Printf("Game created: %s\n", v.GameID)
		fmt.Printf("Your player id: %s\n", v.PlayerID)
	case JoinGameResult:
		fmt.Printf("Joined game: %s\n", v.GameID)
		fmt.Printf("Your player id: %s\n", v.PlayerID)
	case LockCodeResult:
		fmt.Println(v.Message)
	case GuessResult:
		o.printGuessResult(v)
	case GameStatus:
		o.printGameStatus(v)
	case GameList:
		o.printGameList(v)
	case PlayerInfo:
		o.printPlayerInfo(v)
	case Players:
		o.printPlayers(v)
	case GuessHistory:
		o.printGuessHistory(v)
	case TurnInfo:
		o.printTurnInfo(v)
	case HealthResult:
		fmt.Printf("Server status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printGuessResult(g GuessResult) {
	fmt.Printf("Guess %s: %d correct digits, %d in position\n",
		g.Code, g.CorrectDigits, g.CorrectPositions)
	if g.IsWinner {
		fmt.Println("You cracked the code!")
	} else if g.NextTurn != nil {
		fmt.Printf("Next turn: %s\n", *g.NextTurn)
	}
}

func (o *Output) printGameStatus(g GameStatus) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Status: %s\n", g.Status)
	if g.Creator != nil {
		fmt.Printf("Creator: %s (%s) ready=%t\n", g.Creator.Name, g.Creator.ID, g.Creator.Ready)
	}
	if g.Joiner != nil {
		fmt.Printf("Joiner: %s (%s) ready=%t\n", g.Joiner.Name, g.Joiner.ID, g.Joiner.Ready)
	} else {
		fmt.Println("Joiner: <open slot>")
	}
	if g.CurrentTurn != nil {
		fmt.Printf("Current turn: %s\n", *g.CurrentTurn)
	}
	if g.WinnerID != nil {
		fmt.Printf("Winner: %s\n", *g.WinnerID)
	}
	fmt.Printf("Turns played: %d\n", g.TurnCount)
}

func (o *Output) printGameList(l GameList) {
	if len(l.Games) == 0 {
		fmt.Println("No games")
		return
	}
	for _, g := range l.Games {
		fmt.Printf("%s  %-12s turns=%-3d created=%s\n",
			g.ID, g.Status, g.TurnCount, g.CreatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printPlayerInfo(p PlayerInfo) {
	fmt.Printf("%s (%s) ready=%t\n", p.Name, p.ID, p.Ready)
}

func (o *Output) printPlayers(p Players) {
	fmt.Printf("Creator: %s (%s) ready=%t\n", p.Creator.Name, p.Creator.ID, p.Creator.Ready)
	if p.Joiner != nil {
		fmt.Printf("Joiner:  %s (%s) ready=%t\n", p.Joiner.Name, p.Joiner.ID, p.Joiner.Ready)
	} else {
		fmt.Println("Joiner:  <open slot>")
	}
}

func (o *Output) printGuessHistory(h GuessHistory) {
	if len(h.Guesses) == 0 {
		fmt.Println("No guesses yet")
		return
	}
	for _, g := range h.Guesses {
		fmt.Printf("#%-3d %s by %s: %d digits, %d in position\n",
			g.TurnNumber, g.Code, g.Guesser, g.CorrectDigits, g.CorrectPositions)
	}
	fmt.Printf("Total guesses: %d\n", h.TotalGuesses)
}

func (o *Output) printTurnInfo(t TurnInfo) {
	fmt.Printf("Game: %s (%s)\n", t.GameID, t.Status)
	if t.CurrentTurn != nil {
		fmt.Printf("Current turn: %s (%s)\n", t.CurrentPlayerName, *t.CurrentTurn)
	}
	fmt.Printf("Turns played: %d\n", t.TurnCount)
}

// CreateGameResult response type (matches API)
type CreateGameResult struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Status   string `json:"status"`
}

// JoinGameResult response type
type JoinGameResult struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Status   string `json:"status"`
}

// LockCodeResult response type
type LockCodeResult struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Ready    bool   `json:"ready"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// GuessResult response type
type GuessResult struct {
	GuessID          string  `json:"guess_id"`
	Code             string  `json:"code"`
	CorrectDigits    int     `json:"correct_digits"`
	CorrectPositions int     `json:"correct_positions"`
	TurnNumber       int     `json:"turn_number"`
	IsWinner         bool    `json:"is_winner"`
	NextTurn         *string `json:"next_turn"`
	WinnerID         *string `json:"winner_id"`
}

// PlayerInfo response type
type PlayerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// GameStatus response type
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

// GameSummary response type
type GameSummary struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	TurnCount int       `json:"turn_count"`
	CreatedAt time.Time `json:"created_at"`
}

// GameList response type
type GameList struct {
	Games []GameSummary `json:"games"`
}

// Players response type
type Players struct {
	Creator PlayerInfo  `json:"creator"`
	Joiner  *PlayerInfo `json:"joiner"`
}

// HistoryEntry response type
type HistoryEntry struct {
	ID               string    `json:"id"`
	GuesserID        string    `json:"guesser_id"`
	Guesser          string    `json:"guesser"`
	Code             string    `json:"code"`
	CorrectDigits    int       `json:"correct_digits"`
	CorrectPositions int       `json:"correct_positions"`
	TurnNumber       int       `json:"turn_number"`
	Timestamp        time.Time `json:"timestamp"`
}

// GuessHistory response type
type GuessHistory struct {
	GameID       string         `json:"game_id"`
	TotalGuesses int            `json:"total_guesses"`
	Guesses      []HistoryEntry `json:"guesses"`
}

// TurnInfo response type
type TurnInfo struct {
	GameID            string  `json:"game_id"`
	Status            string  `json:"status"`
	CurrentTurn       *string `json:"current_turn"`
	CurrentPlayerName string  `json:"current_player_name"`
	TurnCount         int     `json:"turn_count"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}
