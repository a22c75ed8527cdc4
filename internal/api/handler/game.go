package handler

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/jtoman/codeduel/internal/api/request"
	"github.com/jtoman/codeduel/internal/api/response"
	"github.com/jtoman/codeduel/internal/model"
	"github.com/jtoman/codeduel/internal/services/game"
)

const maxPlayerNameLength = 50

// validatePlayerName trims and checks a submitted display name
func validatePlayerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", NewInvalidRequestError("player_name is required")
	}
	if utf8.RuneCountInString(name) > maxPlayerNameLength {
		return "", NewInvalidRequestError("player_name must be 50 characters or fewer")
	}
	return name, nil
}

// GameHandler handles game lifecycle endpoints
type GameHandler struct {
	controller game.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller game.ControllerInterface) *GameHandler {
	return &GameHandler{controller: controller}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	name, err := validatePlayerName(req.PlayerName)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, creator, err := h.controller.CreateGame(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreateGameResponse{
		GameID:   string(g.ID),
		PlayerID: string(creator.ID),
		Status:   string(g.Status),
		Message:  "Game created, waiting for an opponent",
	})
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.controller.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ListGamesResponseFromModel(games))
}

// Get handles GET /api/v1/games/{game_id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	g, err := h.controller.GetGame(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	creator, joiner, err := h.controller.GetBothPlayers(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStatusFromModel(g, creator, joiner))
}

// Delete handles DELETE /api/v1/games/{game_id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	if err := h.controller.DeleteGame(r.Context(), gameID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
