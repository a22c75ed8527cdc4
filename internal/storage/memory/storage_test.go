package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jtoman/codeduel/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:        "game_1",
		CreatorID: "player_1",
		Status:    model.GameStatusWaiting,
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game_1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.CreatorID, retrieved.CreatorID)
	s.Equal(model.GameStatusWaiting, retrieved.Status)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGetGameReturnsSnapshot() {
	game := &model.Game{ID: "game_1", Status: model.GameStatusWaiting}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	first, err := s.storage.GetGame(s.ctx, "game_1")
	s.Require().NoError(err)
	first.Status = model.GameStatusCompleted

	second, err := s.storage.GetGame(s.ctx, "game_1")
	s.Require().NoError(err)
	s.Equal(model.GameStatusWaiting, second.Status)
}

func (s *StorageSuite) TestSaveGameCopiesInput() {
	game := &model.Game{ID: "game_1", Status: model.GameStatusWaiting}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	// Mutating the caller's struct after save must not leak into storage
	game.Status = model.GameStatusCompleted

	retrieved, err := s.storage.GetGame(s.ctx, "game_1")
	s.Require().NoError(err)
	s.Equal(model.GameStatusWaiting, retrieved.Status)
}

func (s *StorageSuite) TestListGamesOrderedByCreation() {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: "game_b", CreatedAt: base.Add(time.Minute)}))
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: "game_a", CreatedAt: base}))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal(model.GameID("game_a"), games[0].ID)
	s.Equal(model.GameID("game_b"), games[1].ID)
}

func (s *StorageSuite) TestDeleteGame() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: "game_1"}))

	err := s.storage.DeleteGame(s.ctx, "game_1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game_1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:         "player_1",
		Name:       "Alice",
		SecretCode: "1234",
		Ready:      true,
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player_1")
	s.Require().NoError(err)
	s.Equal("Alice", retrieved.Name)
	s.Equal(model.Code("1234"), retrieved.SecretCode)
	s.True(retrieved.Ready)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "player_1", Name: "Alice"}))

	err := s.storage.DeletePlayer(s.ctx, "player_1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player_1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Guess log tests

func (s *StorageSuite) TestAppendAndGetGuessesPreservesOrder() {
	for i := 1; i <= 3; i++ {
		guess := &model.Guess{
			ID:         model.GuessID(rune('a' + i)),
			GameID:     "game_1",
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
	s.Require().NoError(s.storage.AppendGuess(s.ctx, &model.Guess{ID: "guess_1", GameID: "game_1"}))
	s.Require().NoError(s.storage.AppendGuess(s.ctx, &model.Guess{ID: "guess_2", GameID: "game_2"}))

	err := s.storage.DeleteGuessesForGame(s.ctx, "game_1")
	s.Require().NoError(err)

	guesses, err := s.storage.GetGuessesForGame(s.ctx, "game_1")
	s.Require().NoError(err)
	s.Empty(guesses)

	other, err := s.storage.GetGuessesForGame(s.ctx, "game_2")
	s.Require().NoError(err)
	s.Len(other, 1)
}
