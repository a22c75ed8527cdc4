package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jtoman/codeduel/internal/api/handler"
	apimiddleware "github.com/jtoman/codeduel/internal/api/middleware"
	"github.com/jtoman/codeduel/internal/middleware"
	"github.com/jtoman/codeduel/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	CORSOrigins    []string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController)
	playerHandler := handler.NewPlayerHandler(cfg.GameController)
	gameplayHandler := handler.NewGameplayHandler(cfg.GameController)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	if len(cfg.CORSOrigins) > 0 {
		api.Use(middleware.CORS(cfg.CORSOrigins))
	}

	// Game lifecycle routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}", gameHandler.Delete).Methods(http.MethodDelete)

	// Player routes
	api.HandleFunc("/games/{game_id}/join", playerHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/games/{game_id}/players", playerHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}/players/{player_id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}/players/{player_id}/lock", playerHandler.LockCode).Methods(http.MethodPost)

	// Gameplay routes
	api.HandleFunc("/games/{game_id}/guess", gameplayHandler.Guess).Methods(http.MethodPost)
	api.HandleFunc("/games/{game_id}/guesses", gameplayHandler.History).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}/turn", gameplayHandler.Turn).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Preflight requests for any API path
	if len(cfg.CORSOrigins) > 0 {
		api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
