// Package store holds the persistence gateway and its backends.
package store

import (
	"context"
	"errors"

	"hotel-rooms-api/filter"
	"hotel-rooms-api/models"
)

// ErrUnknownDriver is returned by Open for an unsupported DB_DRIVER.
var ErrUnknownDriver = errors.New("unknown database driver")

// Gateway persists room types and rooms. Malformed identifiers behave like
// missing documents: FindRoom returns nil, UpdateRoom and DeleteRoom report
// zero counts. None of them is an error.
type Gateway interface {
	InsertRoomType(ctx context.Context, rt *models.RoomType) error
	FindRoomTypes(ctx context.Context) ([]models.RoomType, error)

	InsertRoom(ctx context.Context, room *models.Room) error
	FindRooms(ctx context.Context, f filter.RoomFilter) ([]models.Room, error)
	FindRoom(ctx context.Context, id string) (*models.Room, error)
	UpdateRoom(ctx context.Context, id string, update models.RoomUpdate) (models.UpdateResult, error)
	DeleteRoom(ctx context.Context, id string) (models.DeleteResult, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
