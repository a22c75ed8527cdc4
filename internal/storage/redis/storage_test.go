package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/jtoman/codeduel/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GameTTL = time.Hour
	cfg.PlayerTTL = time.Hour
	cfg.GuessTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:          "game_abc123",
		CreatorID:   "player_1",
		JoinerID:    "player_2",
		Status:      model.GameStatusInProgress,
		CurrentTurn: "player_1",
		TurnCount:   3,
		CreatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game_abc123")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.JoinerID, retrieved.JoinerID)
	s.Equal(model.GameStatusInProgress, retrieved.Status)
	s.Equal(3, retrieved.TurnCount)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGameHasTTL() {
	game := &model.Game{ID: "game_ttl"}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetGame(s.ctx, "game_ttl")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGames() {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: "game_b", CreatedAt: base.Add(time.Minute)}))
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: "game_a", CreatedAt: base}))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal(model.GameID("game_a"), games[0].ID)
	s.Equal(model.GameID("game_b"), games[1].ID)
}

func (s *StorageSuite) TestListGamesSkipsExpiredEntries() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: "game_a"}))
	// Expire the value but leave the index entry in place
	s.mini.Del(gameKey("game_a"))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

func (s *StorageSuite) TestDeleteGameRemovesFromIndex() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: "game_a"}))

	err := s.storage.DeleteGame(s.ctx, "game_a")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game_a")
	s.ErrorIs(err, model.ErrGameNotFound)

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:         "player_1",
		Name:       "Alice",
		SecretCode: "0042",
		Ready:      true,
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player_1")
	s.Require().NoError(err)
	s.Equal("Alice", retrieved.Name)
	s.Equal(model.Code("0042"), retrieved.SecretCode)
	s.True(retrieved.Ready)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "player_1"}))

	err := s.storage.DeletePlayer(s.ctx, "player_1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player_1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Guess log tests

func (s *StorageSuite) TestAppendAndGetGuessesPreservesOrder() {
	for i := 1; i <= 3; i++ {
		guess := &model.Guess{
			GameID:     "game_1",
			GuesserID:  "player_1",
			Code:       "1234",
			TurnNumber: i,
		}
		s.Require().NoError(s.storage.AppendGuess(s.ctx, guess))
	}

	guesses, err := s.storage.GetGuessesForGame(s.ctx, "game_1")
	s.Require().NoError(err)
	s.Require().Len(guesses, 3)
	for i, guess := range guesses {
		s.Equal(i+1, guess.TurnNumber)
	}
}

func (s *StorageSuite) TestGetGuessesEmptyForUnknownGame() {
	guesses, err := s.storage.GetGuessesForGame(s.ctx, "nonexistent")
	s.Require().NoError(err)
	s.Empty(guesses)
}

func (s *StorageSuite) TestDeleteGuessesForGame() {
	s.Require().NoError(s.storage.AppendGuess(s.ctx, &model.Guess{GameID: "game_1", TurnNumber: 1}))

	err := s.storage.DeleteGuessesForGame(s.ctx, "game_1")
	s.Require().NoError(err)

	guesses, err := s.storage.GetGuessesForGame(s.ctx, "game_1")
	s.Require().NoError(err)
	s.Empty(guesses)
}
