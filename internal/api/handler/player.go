package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jtoman/codeduel/internal/api/request"
	"github.com/jtoman/codeduel/internal/api/response"
	"github.com/jtoman/codeduel/internal/model"
	"github.com/jtoman/codeduel/internal/services/game"
)

// PlayerHandler handles player membership and readiness endpoints
type PlayerHandler struct {
	controller game.ControllerInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(controller game.ControllerInterface) *PlayerHandler {
	return &PlayerHandler{controller: controller}
}

// Join handles POST /api/v1/games/{game_id}/join
func (h *PlayerHandler) Join(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var req request.JoinGameRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	name, err := validatePlayerName(req.PlayerName)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, joiner, err := h.controller.JoinGame(r.Context(), gameID, name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.JoinGameResponse{
		GameID:   string(g.ID),
		PlayerID: string(joiner.ID),
		Status:   string(g.Status),
		Message:  "Joined game, lock your secret code to start",
	})
}

// LockCode handles POST /api/v1/games/{game_id}/players/{player_id}/lock
func (h *PlayerHandler) LockCode(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := model.GameID(vars["game_id"])
	playerID := model.PlayerID(vars["player_id"])

	var req request.LockCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	g, player, err := h.controller.LockCode(r.Context(), gameID, playerID, model.Code(req.SecretCode))
	if err != nil {
		WriteError(w, err)
		return
	}

	message := "Code locked, waiting for opponent"
	if g.Status == model.GameStatusInProgress {
		message = "Code locked, game started"
	}

	response.JSON(w, http.StatusOK, response.LockCodeResponse{
		GameID:   string(g.ID),
		PlayerID: string(player.ID),
		Ready:    player.Ready,
		Status:   string(g.Status),
		Message:  message,
	})
}

// Get handles GET /api/v1/games/{game_id}/players/{player_id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := model.GameID(vars["game_id"])
	playerID := model.PlayerID(vars["player_id"])

	player, err := h.controller.GetPlayer(r.Context(), gameID, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerInfoFromModel(player))
}

// GetAll handles GET /api/v1/games/{game_id}/players
func (h *PlayerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	creator, joiner, err := h.controller.GetBothPlayers(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.PlayersResponse{
		Creator: response.PlayerInfoFromModel(creator),
	}
	if joiner != nil {
		info := response.PlayerInfoFromModel(joiner)
		resp.Joiner = &info
	}

	response.JSON(w, http.StatusOK, resp)
}
