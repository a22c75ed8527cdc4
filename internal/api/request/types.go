package request

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	PlayerName string `json:"player_name"`
}

// JoinGameRequest is the request body for joining a game
type JoinGameRequest struct {
	PlayerName string `json:"player_name"`
}

// LockCodeRequest is the request body for locking a secret code
type LockCodeRequest struct {
	SecretCode string `json:"secret_code"`
}

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	PlayerID string `json:"player_id"`
	Code     string `json:"code"`
}
