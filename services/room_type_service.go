package services

import (
	"context"

	"go.uber.org/zap"

	"hotel-rooms-api/models"
	"hotel-rooms-api/store"
	"hotel-rooms-api/utils"
)

type RoomTypeService struct {
	store store.Gateway
	log   *zap.Logger
}

func NewRoomTypeService(gw store.Gateway, log *zap.Logger) *RoomTypeService {
	return &RoomTypeService{store: gw, log: log}
}

// Create stores a new room type and fills in its ID.
func (s *RoomTypeService) Create(ctx context.Context, rt *models.RoomType) error {
	if err := s.store.InsertRoomType(ctx, rt); err != nil {
		s.log.Error("insert room type failed", zap.String("name", rt.Name), zap.Error(err))
		return utils.NewPersistenceError(err)
	}
	s.log.Info("room type created", zap.String("id", rt.ID))
	return nil
}

func (s *RoomTypeService) GetAll(ctx context.Context) ([]models.RoomType, error) {
	types, err := s.store.FindRoomTypes(ctx)
	if err != nil {
		s.log.Error("find room types failed", zap.Error(err))
		return nil, utils.NewPersistenceError(err)
	}
	if types == nil {
		types = []models.RoomType{}
	}
	return types, nil
}
