package model

import "time"

// RoomID uniquely identifies a shared room
type RoomID string

// Room is a persisted, independently addressable game state with one
// authorized owner. The owner token itself is returned once at creation
// and never stored; only its bcrypt hash is kept.
type Room struct {
	ID             RoomID    `json:"id"`
	Name           string    `json:"name"`
	OwnerTokenHash string    `json:"ownerTokenHash"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	State          GameState `json:"gameState"`
}
