package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/futevolucao/futevolucao-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.RoomTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func makeRoom(id model.RoomID) *model.Room {
	room := &model.Room{
		ID:             id,
		Name:           "Tuesday Footy",
		OwnerTokenHash: "hash",
		CreatedAt:      time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC),
		State:          model.NewGameState(),
	}
	room.State.Players = []model.Player{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: "Bob"},
	}
	return room
}

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := makeRoom("room-1")
	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	got, err := s.storage.GetRoom(s.ctx, "room-1")
	s.Require().NoError(err)
	s.Equal(room.ID, got.ID)
	s.Equal(room.Name, got.Name)
	s.Equal(room.OwnerTokenHash, got.OwnerTokenHash)
	s.Equal(room.State.Players, got.State.Players)
	s.Nil(got.State.CurrentMatch)
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoom(s.ctx, "missing")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestSaveSetsTTL() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, makeRoom("room-1")))

	ttl := s.mini.TTL(roomKey("room-1"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestTTLIsSliding() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, makeRoom("room-1")))

	s.mini.FastForward(30 * time.Minute)
	s.Require().NoError(s.storage.SaveRoom(s.ctx, makeRoom("room-1")))

	s.Equal(time.Hour, s.mini.TTL(roomKey("room-1")))
}

func (s *StorageSuite) TestRoomExpires() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, makeRoom("room-1")))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetRoom(s.ctx, "room-1")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestDeleteRoom() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, makeRoom("room-1")))
	s.Require().NoError(s.storage.DeleteRoom(s.ctx, "room-1"))

	_, err := s.storage.GetRoom(s.ctx, "room-1")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestRoomExists() {
	exists, err := s.storage.RoomExists(s.ctx, "room-1")
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.storage.SaveRoom(s.ctx, makeRoom("room-1")))

	exists, err = s.storage.RoomExists(s.ctx, "room-1")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestGetRoomNormalizesMissingSlices() {
	// Documents written by other clients may omit empty arrays
	doc := `{"id":"room-1","name":"Footy","gameState":{"players":[{"id":"p1","name":"Alice"}]}}`
	s.Require().NoError(s.mini.Set(roomKey("room-1"), doc))

	got, err := s.storage.GetRoom(s.ctx, "room-1")
	s.Require().NoError(err)
	s.NotNil(got.State.TeamA)
	s.NotNil(got.State.TeamB)
	s.NotNil(got.State.Bench)
	s.NotNil(got.State.MatchHistory)
}

func (s *StorageSuite) TestGetRoomRejectsInconsistentState() {
	// A player on a team but missing from the pool
	doc := `{"id":"room-1","name":"Footy","gameState":{"players":[],"teamA":[{"id":"p1","name":"Alice"}]}}`
	s.Require().NoError(s.mini.Set(roomKey("room-1"), doc))

	_, err := s.storage.GetRoom(s.ctx, "room-1")
	s.ErrorIs(err, model.ErrInvalidGameState)
}

func (s *StorageSuite) TestRoundTripWithMatch() {
	winner := model.SideA
	room := makeRoom("room-1")
	room.State.TeamA = []model.Player{room.State.Players[0]}
	room.State.TeamB = []model.Player{room.State.Players[1]}
	room.State.CurrentMatch = &model.Match{
		ID: "match-1",
		TeamA: model.Team{
			ID:      model.TeamAID,
			Name:    "Team A",
			Players: []model.Player{room.State.Players[0]},
		},
		TeamB: model.Team{
			ID:      model.TeamBID,
			Name:    "Team B",
			Players: []model.Player{room.State.Players[1]},
		},
		Winner:    &winner,
		Timestamp: 1717268400000,
	}

	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	got, err := s.storage.GetRoom(s.ctx, "room-1")
	s.Require().NoError(err)
	s.Require().NotNil(got.State.CurrentMatch)
	s.Equal(room.State.CurrentMatch, got.State.CurrentMatch)
}
