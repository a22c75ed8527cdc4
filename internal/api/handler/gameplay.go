package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jtoman/codeduel/internal/api/request"
	"github.com/jtoman/codeduel/internal/api/response"
	"github.com/jtoman/codeduel/internal/model"
	"github.com/jtoman/codeduel/internal/services/game"
)

// GameplayHandler handles the in-game endpoints: guesses, history, and
// turn information
type GameplayHandler struct {
	controller game.ControllerInterface
}

// NewGameplayHandler creates a new gameplay handler
func NewGameplayHandler(controller game.ControllerInterface) *GameplayHandler {
	return &GameplayHandler{controller: controller}
}

// Guess handles POST /api/v1/games/{game_id}/guess
func (h *GameplayHandler) Guess(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var req request.GuessRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	outcome, err := h.controller.SubmitGuess(r.Context(), gameID, model.PlayerID(req.PlayerID), model.Code(req.Code))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessResponseFromOutcome(outcome))
}

// History handles GET /api/v1/games/{game_id}/guesses
// An optional player_id query parameter filters to one guesser.
func (h *GameplayHandler) History(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])
	filter := model.PlayerID(r.URL.Query().Get("player_id"))

	guesses, err := h.controller.GetGuesses(r.Context(), gameID, filter)
	if err != nil {
		WriteError(w, err)
		return
	}

	// Resolve guesser ids to display names
	creator, joiner, err := h.controller.GetBothPlayers(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}
	names := map[model.PlayerID]string{creator.ID: creator.Name}
	if joiner != nil {
		names[joiner.ID] = joiner.Name
	}

	response.JSON(w, http.StatusOK, response.GuessHistoryFromModel(gameID, guesses, names))
}

// Turn handles GET /api/v1/games/{game_id}/turn
func (h *GameplayHandler) Turn(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	info, err := h.controller.GetTurnInfo(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TurnInfoFromModel(info))
}
