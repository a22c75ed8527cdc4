package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jtoman/codeduel/internal/model"
	"github.com/jtoman/codeduel/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// All state lives for the lifetime of the process. Values are copied on
// both save and get so callers always hold private snapshots.
type Storage struct {
	mu sync.RWMutex

	games   map[model.GameID]*model.Game
	players map[model.PlayerID]*model.Player
	guesses map[model.GameID][]*model.Guess
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games:   make(map[model.GameID]*model.Game),
		players: make(map[model.PlayerID]*model.Player),
		guesses: make(map[model.GameID][]*model.Guess),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *game
	s.games[game.ID] = &stored
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	snapshot := *game
	return &snapshot, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0, len(s.games))
	for _, game := range s.games {
		snapshot := *game
		games = append(games, &snapshot)
	}
	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})
	return games, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *player
	s.players[player.ID] = &stored
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	snapshot := *player
	return &snapshot, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// Guess log operations

func (s *Storage) AppendGuess(ctx context.Context, guess *model.Guess) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *guess
	s.guesses[guess.GameID] = append(s.guesses[guess.GameID], &stored)
	return nil
}

func (s *Storage) GetGuessesForGame(ctx context.Context, gameID model.GameID) ([]*model.Guess, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	log := s.guesses[gameID]
	result := make([]*model.Guess, len(log))
	for i, guess := range log {
		snapshot := *guess
		result[i] = &snapshot
	}
	return result, nil
}

func (s *Storage) DeleteGuessesForGame(ctx context.Context, gameID model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.guesses, gameID)
	return nil
}
