package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/futevolucao/futevolucao-go/internal/api/middleware"
	"github.com/futevolucao/futevolucao-go/internal/api/request"
	"github.com/futevolucao/futevolucao-go/internal/api/response"
	"github.com/futevolucao/futevolucao-go/internal/metrics"
	"github.com/futevolucao/futevolucao-go/internal/model"
	"github.com/futevolucao/futevolucao-go/internal/services/room"
)

// RoomHandler handles room lifecycle endpoints
type RoomHandler struct {
	roomService *room.Service
	metrics     *metrics.Metrics
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService *room.Service, m *metrics.Metrics) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
		metrics:     m,
	}
}

// Create handles POST /api/v1/rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	created, token, err := h.roomService.CreateRoom(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.metrics.RoomCreated()

	response.JSON(w, http.StatusCreated, response.CreateRoomResponse{
		RoomID:     string(created.ID),
		OwnerToken: token,
	})
}

// Get handles GET /api/v1/rooms/{id}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.RoomID(mux.Vars(r)["id"])

	rm, err := h.roomService.GetRoom(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	token := middleware.GetOwnerToken(r.Context())

	response.JSON(w, http.StatusOK, response.GetRoomResponse{
		Room:    response.RoomFromModel(rm),
		IsOwner: h.roomService.Authorize(rm, token),
	})
}

// Delete handles DELETE /api/v1/rooms/{id}
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.RoomID(mux.Vars(r)["id"])
	token := middleware.GetOwnerToken(r.Context())

	if err := h.roomService.DeleteRoom(r.Context(), id, token); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
