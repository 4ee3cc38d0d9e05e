package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"hotel-rooms-api/filter"
	"hotel-rooms-api/models"
)

// GormGateway stores documents as rows of the room_types and rooms tables.
type GormGateway struct {
	db *gorm.DB
}

func NewGormGateway(db *gorm.DB) *GormGateway {
	return &GormGateway{db: db}
}

// Migrate creates or updates both tables. There is no foreign key between
// rooms and room_types.
func (g *GormGateway) Migrate() error {
	return g.db.AutoMigrate(&models.RoomType{}, &models.Room{})
}

func (g *GormGateway) InsertRoomType(ctx context.Context, rt *models.RoomType) error {
	if rt.ID == "" {
		rt.ID = models.NewID()
	}
	return g.db.WithContext(ctx).Create(rt).Error
}

func (g *GormGateway) FindRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	types := []models.RoomType{}
	err := g.db.WithContext(ctx).Find(&types).Error
	return types, err
}

func (g *GormGateway) InsertRoom(ctx context.Context, room *models.Room) error {
	if room.ID == "" {
		room.ID = models.NewID()
	}
	return g.db.WithContext(ctx).Create(room).Error
}

func (g *GormGateway) FindRooms(ctx context.Context, f filter.RoomFilter) ([]models.Room, error) {
	rooms := []models.Room{}
	if f.NoMatch {
		return rooms, nil
	}
	err := g.db.WithContext(ctx).Scopes(roomFilterScope(f)).Find(&rooms).Error
	return rooms, err
}

func (g *GormGateway) FindRoom(ctx context.Context, id string) (*models.Room, error) {
	key, ok := models.CanonicalID(id)
	if !ok {
		return nil, nil
	}
	var room models.Room
	err := g.db.WithContext(ctx).Where("id = ?", key).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (g *GormGateway) UpdateRoom(ctx context.Context, id string, update models.RoomUpdate) (models.UpdateResult, error) {
	var res models.UpdateResult
	key, ok := models.CanonicalID(id)
	if !ok || update.IsEmpty() {
		return res, nil
	}

	columns := map[string]interface{}{}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.RoomTypeID != nil {
		columns["room_type_id"] = *update.RoomTypeID
	}
	if update.Price != nil {
		columns["price"] = *update.Price
	}

	// MySQL reports changed rows, not matched rows, so count the match first.
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Room{}).Where("id = ?", key).Count(&res.MatchedCount).Error; err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return nil
		}
		result := tx.Model(&models.Room{}).Where("id = ?", key).Updates(columns)
		if result.Error != nil {
			return result.Error
		}
		res.ModifiedCount = result.RowsAffected
		return nil
	})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return res, nil
}

func (g *GormGateway) DeleteRoom(ctx context.Context, id string) (models.DeleteResult, error) {
	key, ok := models.CanonicalID(id)
	if !ok {
		return models.DeleteResult{}, nil
	}
	result := g.db.WithContext(ctx).Where("id = ?", key).Delete(&models.Room{})
	if result.Error != nil {
		return models.DeleteResult{}, result.Error
	}
	return models.DeleteResult{DeletedCount: result.RowsAffected}, nil
}

func (g *GormGateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (g *GormGateway) Close(context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func roomFilterScope(f filter.RoomFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Search != "" {
			db = db.Where("LOWER(name) LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(f.Search))+"%")
		}
		if f.RoomTypeID != nil {
			db = db.Where("room_type_id = ?", *f.RoomTypeID)
		}
		if f.MinPrice != nil {
			db = db.Where("price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			db = db.Where("price <= ?", *f.MaxPrice)
		}
		return db
	}
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
