package storage

import (
	"context"

	"github.com/jtoman/codeduel/internal/model"
)

// Storage is the key-value collaborator the game core persists through.
// Implementations must be safe for concurrent use across independent keys
// and must return snapshots: callers may mutate a returned value without
// affecting the stored one.
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Guess log operations. The log is append-only per game and is always
	// returned in append order.
	AppendGuess(ctx context.Context, guess *model.Guess) error
	GetGuessesForGame(ctx context.Context, gameID model.GameID) ([]*model.Guess, error)
	DeleteGuessesForGame(ctx context.Context, gameID model.GameID) error
}
