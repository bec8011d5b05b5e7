// Package file implements room persistence as one JSON document per room
// under a state directory. It is the single-user ("local") counterpart of
// the shared Redis backend: no external services, survives restarts.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/futevolucao/futevolucao-go/internal/model"
	"github.com/futevolucao/futevolucao-go/internal/storage"
)

// Storage stores rooms as JSON files named <room-id>.json
type Storage struct {
	dir string

	// Serializes writers; reads go straight to the filesystem.
	mu sync.Mutex
}

// New creates a file storage rooted at dir, creating it if needed
func New(dir string) (*Storage, error) {
	if dir == "" {
		return nil, errors.New("state directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) path(id model.RoomID) (string, error) {
	// Room ids are UUIDs, but never let a crafted id escape the dir.
	if id == "" || strings.ContainsAny(string(id), `/\`) || strings.Contains(string(id), "..") {
		return "", model.ErrRoomNotFound
	}
	return filepath.Join(s.dir, string(id)+".json"), nil
}

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	path, err := s.path(room.ID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(room, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Write-then-rename so a crash never leaves a torn document
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	path, err := s.path(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.ErrRoomNotFound
		}
		return nil, err
	}

	var room model.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidGameState, err)
	}

	room.State.Normalize()
	if err := room.State.Validate(); err != nil {
		return nil, err
	}

	return &room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, id model.RoomID) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Storage) RoomExists(ctx context.Context, id model.RoomID) (bool, error) {
	path, err := s.path(id)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
