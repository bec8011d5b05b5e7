package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/futevolucao/futevolucao-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	dir     string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.dir = s.T().TempDir()
	storage, err := New(s.dir)
	s.Require().NoError(err)
	s.storage = storage
	s.ctx = context.Background()
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

func (s *StorageSuite) TestNewRequiresDir() {
	_, err := New("")
	s.Error(err)
}

func (s *StorageSuite) TestNewCreatesDir() {
	nested := filepath.Join(s.dir, "a", "b")
	_, err := New(nested)
	s.Require().NoError(err)

	info, err := os.Stat(nested)
	s.Require().NoError(err)
	s.True(info.IsDir())
}

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := makeRoom("room-1")
	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	got, err := s.storage.GetRoom(s.ctx, "room-1")
	s.Require().NoError(err)
	s.Equal(room.ID, got.ID)
	s.Equal(room.Name, got.Name)
	s.Equal(room.State.Players, got.State.Players)
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoom(s.ctx, "missing")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestSurvivesReopen() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, makeRoom("room-1")))

	reopened, err := New(s.dir)
	s.Require().NoError(err)

	got, err := reopened.GetRoom(s.ctx, "room-1")
	s.Require().NoError(err)
	s.Equal(model.RoomID("room-1"), got.ID)
}

func (s *StorageSuite) TestDeleteRoom() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, makeRoom("room-1")))
	s.Require().NoError(s.storage.DeleteRoom(s.ctx, "room-1"))

	_, err := s.storage.GetRoom(s.ctx, "room-1")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestDeleteMissingRoomIsNoop() {
	s.NoError(s.storage.DeleteRoom(s.ctx, "missing"))
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

func (s *StorageSuite) TestRejectsPathEscapingIDs() {
	for _, id := range []model.RoomID{"", "../evil", "a/b", `a\b`} {
		_, err := s.storage.GetRoom(s.ctx, id)
		s.ErrorIs(err, model.ErrRoomNotFound, string(id))
	}
}

func (s *StorageSuite) TestGetRoomRejectsCorruptDocument() {
	path := filepath.Join(s.dir, "room-1.json")
	s.Require().NoError(os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := s.storage.GetRoom(s.ctx, "room-1")
	s.ErrorIs(err, model.ErrInvalidGameState)
}

func (s *StorageSuite) TestGetRoomNormalizesMissingSlices() {
	doc := `{"id":"room-1","name":"Footy","gameState":{"players":[{"id":"p1","name":"Alice"}]}}`
	path := filepath.Join(s.dir, "room-1.json")
	s.Require().NoError(os.WriteFile(path, []byte(doc), 0o644))

	got, err := s.storage.GetRoom(s.ctx, "room-1")
	s.Require().NoError(err)
	s.NotNil(got.State.TeamA)
	s.NotNil(got.State.Bench)
	s.NotNil(got.State.MatchHistory)
}

func (s *StorageSuite) TestNoTempFilesLeftBehind() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, makeRoom("room-1")))

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("room-1.json", entries[0].Name())
}
