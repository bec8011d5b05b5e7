package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/futevolucao/futevolucao-go/internal/api/handler"
	"github.com/futevolucao/futevolucao-go/internal/api/middleware"
	"github.com/futevolucao/futevolucao-go/internal/metrics"
	"github.com/futevolucao/futevolucao-go/internal/services/game"
	"github.com/futevolucao/futevolucao-go/internal/services/room"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	RoomService    *room.Service
	GameController *game.Controller
	Metrics        *metrics.Metrics
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	roomHandler := handler.NewRoomHandler(cfg.RoomService, cfg.Metrics)
	stateHandler := handler.NewStateHandler(cfg.GameController)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	api.Use(middleware.OwnerToken())

	// Room lifecycle
	api.HandleFunc("/rooms", roomHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}", roomHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}", roomHandler.Delete).Methods(http.MethodDelete)

	// Game state operations (mutations require the owner token)
	api.HandleFunc("/rooms/{id}/state", stateHandler.GetState).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{id}/players", stateHandler.AddPlayer).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}/players/{player_id}", stateHandler.EditPlayer).Methods(http.MethodPatch)
	api.HandleFunc("/rooms/{id}/players/{player_id}", stateHandler.RemovePlayer).Methods(http.MethodDelete)
	api.HandleFunc("/rooms/{id}/split", stateHandler.Split).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}/winner", stateHandler.PickWinner).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}/next", stateHandler.NextMatch).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}/reset", stateHandler.Reset).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{id}/clear", stateHandler.Clear).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Prometheus metrics outside the API prefix
	r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
