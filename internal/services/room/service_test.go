package room

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/futevolucao/futevolucao-go/internal/dependencies/mocks"
	"github.com/futevolucao/futevolucao-go/internal/model"
	"github.com/futevolucao/futevolucao-go/internal/storage/memory"
	"github.com/futevolucao/futevolucao-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestCreateRoomSucceeds() {
	s.random.QueueString("the-owner-token")

	room, token, err := s.service.CreateRoom(s.ctx, "Tuesday Footy")
	s.Require().NoError(err)

	s.Equal("the-owner-token", token)
	s.NotEmpty(room.ID)
	s.Equal("Tuesday Footy", room.Name)
	s.Equal(s.clock.CurrentTime, room.CreatedAt)
	s.Equal(s.clock.CurrentTime, room.UpdatedAt)
	s.Empty(room.State.Players)
	s.Nil(room.State.CurrentMatch)

	// Only the hash is stored
	s.NotEmpty(room.OwnerTokenHash)
	s.NotEqual(token, room.OwnerTokenHash)

	stored, err := s.storage.GetRoom(s.ctx, room.ID)
	s.Require().NoError(err)
	s.Equal(room.ID, stored.ID)
}

func (s *ServiceSuite) TestCreateRoomTrimsName() {
	s.random.QueueString("tok")

	room, _, err := s.service.CreateRoom(s.ctx, "  Footy  ")
	s.Require().NoError(err)
	s.Equal("Footy", room.Name)
}

func (s *ServiceSuite) TestCreateRoomEmptyNameFails() {
	_, _, err := s.service.CreateRoom(s.ctx, "   ")
	s.ErrorIs(err, model.ErrRoomNameRequired)
}

func (s *ServiceSuite) TestAuthorize() {
	s.random.QueueString("the-owner-token")
	room, token, err := s.service.CreateRoom(s.ctx, "Footy")
	s.Require().NoError(err)

	s.True(s.service.Authorize(room, token))
	s.False(s.service.Authorize(room, "wrong-token"))
	s.False(s.service.Authorize(room, ""))
}

func (s *ServiceSuite) TestGetRoom() {
	s.random.QueueString("tok")
	created, _, err := s.service.CreateRoom(s.ctx, "Footy")
	s.Require().NoError(err)

	room, err := s.service.GetRoom(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, room.ID)
}

func (s *ServiceSuite) TestGetRoomNotFound() {
	_, err := s.service.GetRoom(s.ctx, "missing")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *ServiceSuite) TestDeleteRoomByOwner() {
	s.random.QueueString("the-owner-token")
	room, token, err := s.service.CreateRoom(s.ctx, "Footy")
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteRoom(s.ctx, room.ID, token))

	_, err = s.service.GetRoom(s.ctx, room.ID)
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *ServiceSuite) TestDeleteRoomWrongToken() {
	s.random.QueueString("the-owner-token")
	room, _, err := s.service.CreateRoom(s.ctx, "Footy")
	s.Require().NoError(err)

	err = s.service.DeleteRoom(s.ctx, room.ID, "wrong")
	s.ErrorIs(err, model.ErrNotOwner)

	_, err = s.service.GetRoom(s.ctx, room.ID)
	s.NoError(err)
}

func (s *ServiceSuite) TestDeleteRoomNotFound() {
	err := s.service.DeleteRoom(s.ctx, "missing", "tok")
	s.ErrorIs(err, model.ErrRoomNotFound)
}
