package services

import (
	"context"

	"go.uber.org/zap"

	"hotel-rooms-api/filter"
	"hotel-rooms-api/models"
	"hotel-rooms-api/store"
	"hotel-rooms-api/utils"
)

const MsgRoomNotFound = "Room not found"

type RoomService struct {
	store store.Gateway
	log   *zap.Logger
}

func NewRoomService(gw store.Gateway, log *zap.Logger) *RoomService {
	return &RoomService{store: gw, log: log}
}

// Create stores room and fills in its ID. RoomTypeID is expected in
// canonical form; whether that room type exists is not checked.
func (s *RoomService) Create(ctx context.Context, room *models.Room) error {
	if err := s.store.InsertRoom(ctx, room); err != nil {
		s.log.Error("insert room failed", zap.String("name", room.Name), zap.Error(err))
		return utils.NewPersistenceError(err)
	}
	s.log.Info("room created", zap.String("id", room.ID))
	return nil
}

// List returns the rooms matching params. Non-numeric price bounds come back
// as an InvalidFilter error.
func (s *RoomService) List(ctx context.Context, params filter.Params) ([]models.Room, error) {
	f, err := filter.Build(params)
	if err != nil {
		return nil, err
	}
	s.log.Debug("listing rooms", zap.Any("filter", f))

	rooms, err := s.store.FindRooms(ctx, f)
	if err != nil {
		s.log.Error("find rooms failed", zap.Error(err))
		return nil, utils.NewPersistenceError(err)
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, nil
}

// GetByID returns a NotFound error for unknown and malformed ids alike.
func (s *RoomService) GetByID(ctx context.Context, id string) (*models.Room, error) {
	room, err := s.store.FindRoom(ctx, id)
	if err != nil {
		s.log.Error("find room failed", zap.String("id", id), zap.Error(err))
		return nil, utils.NewPersistenceError(err)
	}
	if room == nil {
		return nil, utils.NewNotFoundError(MsgRoomNotFound)
	}
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id string, update models.RoomUpdate) (models.UpdateResult, error) {
	res, err := s.store.UpdateRoom(ctx, id, update)
	if err != nil {
		s.log.Error("update room failed", zap.String("id", id), zap.Error(err))
		return models.UpdateResult{}, utils.NewPersistenceError(err)
	}
	return res, nil
}

// Delete succeeds with a zero count when nothing was deleted.
func (s *RoomService) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	res, err := s.store.DeleteRoom(ctx, id)
	if err != nil {
		s.log.Error("delete room failed", zap.String("id", id), zap.Error(err))
		return models.DeleteResult{}, utils.NewPersistenceError(err)
	}
	if res.DeletedCount > 0 {
		s.log.Info("room deleted", zap.String("id", id))
	}
	return res, nil
}
