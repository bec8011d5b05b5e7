package storage

import (
	"context"

	"github.com/futevolucao/futevolucao-go/internal/model"
)

// Storage defines the interface for room persistence. The controller
// treats it as a simple load/save keyed by room id; consistency of the
// game state inside a room is the controller's job, not the store's.
type Storage interface {
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error)
	DeleteRoom(ctx context.Context, id model.RoomID) error
	RoomExists(ctx context.Context, id model.RoomID) (bool, error)
}
