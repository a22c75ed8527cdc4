// Package game implements the state machine for a single code duel:
// player registration, code locking, turn alternation, guess recording,
// and win detection.
package game

import (
	"context"
	"log/slog"

	"github.com/jtoman/codeduel/internal/dependencies/clock"
	"github.com/jtoman/codeduel/internal/dependencies/random"
	"github.com/jtoman/codeduel/internal/model"
	"github.com/jtoman/codeduel/internal/services/match"
	"github.com/jtoman/codeduel/internal/storage"
)

// Length of the random part of generated ids
const idLength = 12

// GuessOutcome reports the result of an accepted guess
type GuessOutcome struct {
	Guess    *model.Guess
	IsWinner bool
	// NextTurn is the opponent's id for a non-winning guess, empty otherwise
	NextTurn model.PlayerID
	// WinnerID is set only when the guess won
	WinnerID model.PlayerID
}

// TurnInfo reports whose turn it currently is
type TurnInfo struct {
	GameID            model.GameID
	Status            model.GameStatus
	CurrentTurn       model.PlayerID
	CurrentPlayerName string
	TurnCount         int
}

// Controller owns the lifecycle of games. All operations on one game are
// serialized through a per-game lock, so a guess record and its turn switch
// become visible as a unit; operations on distinct games run independently.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
	locks   *keyedLocks
}

// NewController creates a new game Controller
func NewController(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
		locks:   newKeyedLocks(),
	}
}

func (c *Controller) newGameID() model.GameID {
	return model.GameID("game_" + c.random.String(idLength, random.HexAlphabet))
}

func (c *Controller) newPlayerID() model.PlayerID {
	return model.PlayerID("player_" + c.random.String(idLength, random.HexAlphabet))
}

func (c *Controller) newGuessID() model.GuessID {
	return model.GuessID("guess_" + c.random.String(idLength, random.HexAlphabet))
}

// CreateGame allocates a new waiting game with the creator in the first
// player slot. The creator has no locked code yet.
func (c *Controller) CreateGame(ctx context.Context, creatorName string) (*model.Game, *model.Player, error) {
	now := c.clock.Now()

	player := &model.Player{
		ID:        c.newPlayerID(),
		Name:      creatorName,
		CreatedAt: now,
	}
	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, nil, err
	}

	game := &model.Game{
		ID:        c.newGameID(),
		CreatorID: player.ID,
		Status:    model.GameStatusWaiting,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("creator_id", string(player.ID)),
	)

	return game, player, nil
}

// JoinGame fills the second player slot. The game stays waiting until both
// players lock their codes.
func (c *Controller) JoinGame(ctx context.Context, gameID model.GameID, joinerName string) (*model.Game, *model.Player, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}

	if game.Status == model.GameStatusCompleted {
		return nil, nil, model.ErrGameCompleted
	}
	if game.HasJoiner() {
		return nil, nil, model.ErrGameFull
	}

	now := c.clock.Now()
	player := &model.Player{
		ID:        c.newPlayerID(),
		Name:      joinerName,
		CreatedAt: now,
	}
	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, nil, err
	}

	game.JoinerID = player.ID
	game.UpdatedAt = now
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, nil, err
	}

	c.logger.Info("player joined game",
		slog.String("game_id", string(game.ID)),
		slog.String("joiner_id", string(player.ID)),
	)

	return game, player, nil
}

// LockCode commits a player's secret code. Locking is single-shot: a second
// attempt fails and the stored code stays as first locked. When both
// players are ready the game starts and the creator moves first, regardless
// of lock order.
func (c *Controller) LockCode(ctx context.Context, gameID model.GameID, playerID model.PlayerID, code model.Code) (*model.Game, *model.Player, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}

	if game.Status == model.GameStatusCompleted {
		return nil, nil, model.ErrGameCompleted
	}
	if !game.HasPlayer(playerID) {
		return nil, nil, model.ErrPlayerNotInGame
	}
	if err := model.ValidateCode(code); err != nil {
		return nil, nil, err
	}

	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}
	if player.Ready {
		return nil, nil, model.ErrCodeAlreadyLocked
	}

	player.SecretCode = code
	player.Ready = true
	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, nil, err
	}

	game.UpdatedAt = c.clock.Now()

	if game.HasJoiner() {
		opponent, err := c.storage.GetPlayer(ctx, game.Opponent(playerID))
		if err != nil {
			return nil, nil, err
		}
		if opponent.Ready {
			game.Status = model.GameStatusInProgress
			game.CurrentTurn = game.CreatorID // the creator always moves first
			c.logger.Info("game started",
				slog.String("game_id", string(game.ID)),
				slog.String("first_turn", string(game.CurrentTurn)),
			)
		}
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, nil, err
	}

	return game, player, nil
}

// SubmitGuess evaluates a guess against the opponent's secret, records it,
// and either completes the game or passes the turn to the opponent.
func (c *Controller) SubmitGuess(ctx context.Context, gameID model.GameID, playerID model.PlayerID, code model.Code) (*GuessOutcome, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.Status == model.GameStatusCompleted {
		return nil, model.ErrGameCompleted
	}
	if game.Status != model.GameStatusInProgress {
		return nil, model.ErrGameNotStarted
	}
	if !game.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotInGame
	}
	if game.CurrentTurn != playerID {
		return nil, model.ErrNotPlayerTurn
	}
	if err := model.ValidateCode(code); err != nil {
		return nil, err
	}

	opponent, err := c.storage.GetPlayer(ctx, game.Opponent(playerID))
	if err != nil {
		return nil, err
	}

	result := match.Evaluate(opponent.SecretCode, code)
	now := c.clock.Now()

	game.TurnCount++
	guess := &model.Guess{
		ID:               c.newGuessID(),
		GameID:           game.ID,
		GuesserID:        playerID,
		TargetID:         opponent.ID,
		Code:             code,
		CorrectDigits:    result.CorrectDigits,
		CorrectPositions: result.CorrectPositions,
		TurnNumber:       game.TurnCount,
		Timestamp:        now,
	}
	if err := c.storage.AppendGuess(ctx, guess); err != nil {
		return nil, err
	}

	outcome := &GuessOutcome{Guess: guess}

	if result.IsWinning() {
		game.Status = model.GameStatusCompleted
		game.WinnerID = playerID
		game.CurrentTurn = "" // meaningless once the game is over
		outcome.IsWinner = true
		outcome.WinnerID = playerID

		c.logger.Info("game completed",
			slog.String("game_id", string(game.ID)),
			slog.String("winner_id", string(playerID)),
			slog.Int("turns", game.TurnCount),
		)
	} else {
		game.CurrentTurn = game.Opponent(playerID)
		outcome.NextTurn = game.CurrentTurn
	}

	game.UpdatedAt = now
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	return outcome, nil
}

// DeleteGame removes a game along with its players and guess history.
// Deleting an unknown game reports ErrGameNotFound.
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	for _, playerID := range game.PlayerIDs() {
		if err := c.storage.DeletePlayer(ctx, playerID); err != nil {
			return err
		}
	}
	if err := c.storage.DeleteGuessesForGame(ctx, gameID); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// GetGame retrieves a game by id
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns all games ordered by creation time
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	return c.storage.ListGames(ctx)
}

// GetGuesses returns a game's guess history in turn order, optionally
// filtered to a single guesser.
func (c *Controller) GetGuesses(ctx context.Context, gameID model.GameID, guesserFilter model.PlayerID) ([]*model.Guess, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return nil, err
	}

	guesses, err := c.storage.GetGuessesForGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if guesserFilter == "" {
		return guesses, nil
	}

	filtered := make([]*model.Guess, 0, len(guesses))
	for _, guess := range guesses {
		if guess.GuesserID == guesserFilter {
			filtered = append(filtered, guess)
		}
	}
	return filtered, nil
}

// GetPlayer returns a player within a game. The caller is responsible for
// keeping the secret code out of any response.
func (c *Controller) GetPlayer(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Player, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.HasPlayer(playerID) {
		return nil, model.ErrPlayerNotInGame
	}

	return c.storage.GetPlayer(ctx, playerID)
}

// GetBothPlayers returns the creator and, when present, the joiner.
// The joiner is nil while the second slot is unfilled.
func (c *Controller) GetBothPlayers(ctx context.Context, gameID model.GameID) (*model.Player, *model.Player, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}

	creator, err := c.storage.GetPlayer(ctx, game.CreatorID)
	if err != nil {
		return nil, nil, err
	}
	if !game.HasJoiner() {
		return creator, nil, nil
	}

	joiner, err := c.storage.GetPlayer(ctx, game.JoinerID)
	if err != nil {
		return nil, nil, err
	}
	return creator, joiner, nil
}

// GetTurnInfo reports whose turn it is along with the turn counter
func (c *Controller) GetTurnInfo(ctx context.Context, gameID model.GameID) (*TurnInfo, error) {
	unlock := c.locks.lock(gameID)
	defer unlock()

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	info := &TurnInfo{
		GameID:      game.ID,
		Status:      game.Status,
		CurrentTurn: game.CurrentTurn,
		TurnCount:   game.TurnCount,
	}

	if game.CurrentTurn != "" {
		player, err := c.storage.GetPlayer(ctx, game.CurrentTurn)
		if err != nil {
			return nil, err
		}
		info.CurrentPlayerName = player.Name
	}

	return info, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, creatorName string) (*model.Game, *model.Player, error)
	JoinGame(ctx context.Context, gameID model.GameID, joinerName string) (*model.Game, *model.Player, error)
	LockCode(ctx context.Context, gameID model.GameID, playerID model.PlayerID, code model.Code) (*model.Game, *model.Player, error)
	SubmitGuess(ctx context.Context, gameID model.GameID, playerID model.PlayerID, code model.Code) (*GuessOutcome, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	GetGuesses(ctx context.Context, gameID model.GameID, guesserFilter model.PlayerID) ([]*model.Guess, error)
	GetPlayer(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Player, error)
	GetBothPlayers(ctx context.Context, gameID model.GameID) (*model.Player, *model.Player, error)
	GetTurnInfo(ctx context.Context, gameID model.GameID) (*TurnInfo, error)
}

var _ ControllerInterface = (*Controller)(nil)
