package redis

import (
	"fmt"

	"github.com/jtoman/codeduel/internal/model"
)

// Key prefix for all stored data
const keyPrefix = "codeduel"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// guessLogKey returns the Redis key for a game's guess list
func guessLogKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:guesses:%s", keyPrefix, gameID)
}

// gameIndexKey returns the Redis key for the SET of all game ids
func gameIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}
