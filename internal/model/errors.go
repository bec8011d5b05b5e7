package model

import "errors"

// Common errors used across the application
var (
	// Room errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNameRequired = errors.New("room name is required")
	ErrNotOwner         = errors.New("only the room owner can do that")

	// Player errors
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPlayerNameRequired = errors.New("player name is required")

	// Match / rotation errors
	ErrInsufficientPlayers = errors.New("not enough players")
	ErrNoCurrentMatch      = errors.New("no match in progress")
	ErrMatchAlreadyDecided = errors.New("match already has a winner")
	ErrMatchUndecided      = errors.New("match has no winner yet")
	ErrInvalidSide         = errors.New("winner must be side A or B")
	ErrRotationFailed      = errors.New("rotation produced wrong-sized teams")

	// Storage errors
	ErrInvalidGameState = errors.New("invalid game state document")
)
