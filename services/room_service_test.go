package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotel-rooms-api/filter"
	"hotel-rooms-api/models"
	"hotel-rooms-api/store"
	"hotel-rooms-api/utils"
)

var errDown = errors.New("connection refused")

// brokenGateway fails every room operation.
type brokenGateway struct {
	*store.MemoryGateway
}

func (brokenGateway) InsertRoom(context.Context, *models.Room) error { return errDown }
func (brokenGateway) FindRooms(context.Context, filter.RoomFilter) ([]models.Room, error) {
	return nil, errDown
}
func (brokenGateway) FindRoom(context.Context, string) (*models.Room, error) { return nil, errDown }
func (brokenGateway) DeleteRoom(context.Context, string) (models.DeleteResult, error) {
	return models.DeleteResult{}, errDown
}
func (brokenGateway) InsertRoomType(context.Context, *models.RoomType) error { return errDown }

func TestRoomServiceListInvalidFilter(t *testing.T) {
	svc := NewRoomService(store.NewMemoryGateway(), zap.NewNop())
	_, err := svc.List(context.Background(), filter.Params{MinPrice: "abc"})
	require.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindInvalidFilter))
}

func TestRoomServiceListEmptyIsNotNil(t *testing.T) {
	svc := NewRoomService(store.NewMemoryGateway(), zap.NewNop())
	rooms, err := svc.List(context.Background(), filter.Params{})
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestRoomServiceGetByIDNotFound(t *testing.T) {
	svc := NewRoomService(store.NewMemoryGateway(), zap.NewNop())
	for _, id := range []string{"zzz", models.NewID()} {
		_, err := svc.GetByID(context.Background(), id)
		require.Error(t, err)
		assert.True(t, utils.IsKind(err, utils.KindNotFound), id)
	}
}

func TestRoomServiceDeleteMissingIsZero(t *testing.T) {
	svc := NewRoomService(store.NewMemoryGateway(), zap.NewNop())
	res, err := svc.Delete(context.Background(), models.NewID())
	require.NoError(t, err)
	assert.Equal(t, models.DeleteResult{}, res)
}

func TestRoomServiceWrapsGatewayFailures(t *testing.T) {
	svc := NewRoomService(brokenGateway{store.NewMemoryGateway()}, zap.NewNop())
	ctx := context.Background()

	errs := []error{}
	errs = append(errs, svc.Create(ctx, &models.Room{Name: "x"}))
	_, err := svc.List(ctx, filter.Params{})
	errs = append(errs, err)
	_, err = svc.GetByID(ctx, models.NewID())
	errs = append(errs, err)
	_, err = svc.Delete(ctx, models.NewID())
	errs = append(errs, err)

	for _, err := range errs {
		require.Error(t, err)
		assert.True(t, utils.IsKind(err, utils.KindPersistence))
		assert.ErrorIs(t, err, errDown)
	}
}

func TestRoomTypeServiceCreateAndList(t *testing.T) {
	svc := NewRoomTypeService(store.NewMemoryGateway(), zap.NewNop())
	ctx := context.Background()

	rt := &models.RoomType{Name: "Deluxe"}
	require.NoError(t, svc.Create(ctx, rt))
	_, ok := models.CanonicalID(rt.ID)
	assert.True(t, ok)

	types, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.RoomType{*rt}, types)

	broken := NewRoomTypeService(brokenGateway{store.NewMemoryGateway()}, zap.NewNop())
	err = broken.Create(ctx, &models.RoomType{Name: "Suite"})
	assert.True(t, utils.IsKind(err, utils.KindPersistence))
}
