package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futevolucao/futevolucao-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeRoomNotFound        = "ROOM_NOT_FOUND"
	CodeRoomNameRequired    = "ROOM_NAME_REQUIRED"
	CodeNotOwner            = "NOT_OWNER"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodePlayerNameRequired  = "PLAYER_NAME_REQUIRED"
	CodeInsufficientPlayers = "INSUFFICIENT_PLAYERS"
	CodeNoMatchInProgress   = "NO_MATCH_IN_PROGRESS"
	CodeMatchDecided        = "MATCH_ALREADY_DECIDED"
	CodeMatchUndecided      = "MATCH_UNDECIDED"
	CodeInvalidSide         = "INVALID_SIDE"
	CodeRotationFailed      = "ROTATION_FAILED"
	CodeInvalidState        = "INVALID_STATE"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrRoomNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoomNotFound, "Room not found"}}
	case errors.Is(err, model.ErrRoomNameRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeRoomNameRequired, "Room name is required"}}
	case errors.Is(err, model.ErrNotOwner):
		return &httpError{http.StatusForbidden, APIError{CodeNotOwner, "Only the room owner can edit"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrPlayerNameRequired):
		return &httpError{http.StatusBadRequest, APIError{CodePlayerNameRequired, "Player name is required"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "Not enough players"}}
	case errors.Is(err, model.ErrNoCurrentMatch):
		return &httpError{http.StatusConflict, APIError{CodeNoMatchInProgress, "No match in progress"}}
	case errors.Is(err, model.ErrMatchAlreadyDecided):
		return &httpError{http.StatusConflict, APIError{CodeMatchDecided, "Match already has a winner"}}
	case errors.Is(err, model.ErrMatchUndecided):
		return &httpError{http.StatusConflict, APIError{CodeMatchUndecided, "Pick a winner before starting the next match"}}
	case errors.Is(err, model.ErrInvalidSide):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSide, "Winner must be side A or B"}}
	case errors.Is(err, model.ErrRotationFailed):
		return &httpError{http.StatusConflict, APIError{CodeRotationFailed, "Could not rotate teams"}}
	case errors.Is(err, model.ErrInvalidGameState):
		return &httpError{http.StatusInternalServerError, APIError{CodeInvalidState, "Stored game state is invalid"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
