package room

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/futevolucao/futevolucao-go/internal/dependencies/clock"
	"github.com/futevolucao/futevolucao-go/internal/dependencies/random"
	"github.com/futevolucao/futevolucao-go/internal/model"
	"github.com/futevolucao/futevolucao-go/internal/storage"
)

const (
	// OwnerTokenLength is the length of generated owner tokens
	OwnerTokenLength = 32
	// OwnerTokenAlphabet is the characters used in owner tokens
	OwnerTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Service manages room lifecycle and owner authorization
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new room Service
func New(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		random:  rnd,
		logger:  logger,
	}
}

// CreateRoom creates a room with an empty game state and issues its owner
// token. The plaintext token is returned exactly once; only the bcrypt
// hash is persisted.
func (s *Service) CreateRoom(ctx context.Context, name string) (*model.Room, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", model.ErrRoomNameRequired
	}

	token := s.random.String(OwnerTokenLength, OwnerTokenAlphabet)
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := s.clock.Now()
	room := &model.Room{
		ID:             model.RoomID(uuid.NewString()),
		Name:           name,
		OwnerTokenHash: string(hash),
		CreatedAt:      now,
		UpdatedAt:      now,
		State:          model.NewGameState(),
	}

	if err := s.storage.SaveRoom(ctx, room); err != nil {
		return nil, "", err
	}

	s.logger.Info("room created",
		slog.String("room_id", string(room.ID)),
		slog.String("name", room.Name),
	)

	return room, token, nil
}

// GetRoom retrieves a room by id
func (s *Service) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	return s.storage.GetRoom(ctx, id)
}

// DeleteRoom removes a room; only the owner may do this
func (s *Service) DeleteRoom(ctx context.Context, id model.RoomID, token string) error {
	room, err := s.storage.GetRoom(ctx, id)
	if err != nil {
		return err
	}

	if !s.Authorize(room, token) {
		return model.ErrNotOwner
	}

	if err := s.storage.DeleteRoom(ctx, id); err != nil {
		return err
	}

	s.logger.Info("room deleted", slog.String("room_id", string(id)))
	return nil
}

// Authorize reports whether the presented token proves ownership of the
// room. An empty token never authorizes.
func (s *Service) Authorize(room *model.Room, token string) bool {
	if token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(room.OwnerTokenHash), []byte(token)) == nil
}
