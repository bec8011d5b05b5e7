package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/futevolucao/futevolucao-go/internal/api/middleware"
	"github.com/futevolucao/futevolucao-go/internal/api/request"
	"github.com/futevolucao/futevolucao-go/internal/api/response"
	"github.com/futevolucao/futevolucao-go/internal/model"
	"github.com/futevolucao/futevolucao-go/internal/services/game"
)

// StateHandler handles game state operations on a room
type StateHandler struct {
	gameController *game.Controller
}

// NewStateHandler creates a new state handler
func NewStateHandler(gameController *game.Controller) *StateHandler {
	return &StateHandler{gameController: gameController}
}

func roomAndToken(r *http.Request) (model.RoomID, string) {
	return model.RoomID(mux.Vars(r)["id"]), middleware.GetOwnerToken(r.Context())
}

func (h *StateHandler) writeState(w http.ResponseWriter, gs *model.GameState, err error) {
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameStateFromModel(gs))
}

// GetState handles GET /api/v1/rooms/{id}/state
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	id := model.RoomID(mux.Vars(r)["id"])
	gs, err := h.gameController.GetState(r.Context(), id)
	h.writeState(w, gs, err)
}

// AddPlayer handles POST /api/v1/rooms/{id}/players
func (h *StateHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	id, token := roomAndToken(r)

	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	gs, err := h.gameController.AddPlayer(r.Context(), id, token, req.Name)
	h.writeState(w, gs, err)
}

// EditPlayer handles PATCH /api/v1/rooms/{id}/players/{player_id}
func (h *StateHandler) EditPlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.RoomID(vars["id"])
	playerID := model.PlayerID(vars["player_id"])
	token := middleware.GetOwnerToken(r.Context())

	var req request.EditPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	gs, err := h.gameController.EditPlayer(r.Context(), id, token, playerID, req.Name)
	h.writeState(w, gs, err)
}

// RemovePlayer handles DELETE /api/v1/rooms/{id}/players/{player_id}
func (h *StateHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.RoomID(vars["id"])
	playerID := model.PlayerID(vars["player_id"])
	token := middleware.GetOwnerToken(r.Context())

	gs, err := h.gameController.RemovePlayer(r.Context(), id, token, playerID)
	h.writeState(w, gs, err)
}

// Split handles POST /api/v1/rooms/{id}/split
func (h *StateHandler) Split(w http.ResponseWriter, r *http.Request) {
	id, token := roomAndToken(r)

	// Empty body means default team size
	var req request.SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = request.SplitRequest{}
	}

	gs, err := h.gameController.ShuffleAndSplit(r.Context(), id, token, req.PlayersPerTeam)
	h.writeState(w, gs, err)
}

// PickWinner handles POST /api/v1/rooms/{id}/winner
func (h *StateHandler) PickWinner(w http.ResponseWriter, r *http.Request) {
	id, token := roomAndToken(r)

	var req request.PickWinnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	gs, err := h.gameController.PickWinner(r.Context(), id, token, model.Side(req.Winner))
	h.writeState(w, gs, err)
}

// NextMatch handles POST /api/v1/rooms/{id}/next
func (h *StateHandler) NextMatch(w http.ResponseWriter, r *http.Request) {
	id, token := roomAndToken(r)
	gs, err := h.gameController.StartNextMatch(r.Context(), id, token)
	h.writeState(w, gs, err)
}

// Reset handles POST /api/v1/rooms/{id}/reset
func (h *StateHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, token := roomAndToken(r)
	gs, err := h.gameController.ResetGame(r.Context(), id, token)
	h.writeState(w, gs, err)
}

// Clear handles POST /api/v1/rooms/{id}/clear
func (h *StateHandler) Clear(w http.ResponseWriter, r *http.Request) {
	id, token := roomAndToken(r)
	gs, err := h.gameController.ClearAllData(r.Context(), id, token)
	h.writeState(w, gs, err)
}
