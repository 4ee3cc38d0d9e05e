package models

// Room references its RoomType by id only. The reference is not enforced, so
// RoomTypeID may point at a room type that no longer (or never) existed.
type Room struct {
	ID         string  `gorm:"primaryKey;type:char(36)" json:"id" bson:"_id"`
	Name       string  `gorm:"size:255;not null;index" json:"name" bson:"name"`
	RoomTypeID string  `gorm:"column:room_type_id;type:char(36);index" json:"roomTypeId" bson:"roomTypeId"`
	Price      float64 `gorm:"not null;index" json:"price" bson:"price"`
}

func (Room) TableName() string { return "rooms" }

// RoomUpdate carries the fields of a partial update. Nil means "leave as is".
type RoomUpdate struct {
	Name       *string
	RoomTypeID *string
	Price      *float64
}

func (u RoomUpdate) IsEmpty() bool {
	return u.Name == nil && u.RoomTypeID == nil && u.Price == nil
}

// Apply copies the set fields onto room.
func (u RoomUpdate) Apply(room *Room) {
	if u.Name != nil {
		room.Name = *u.Name
	}
	if u.RoomTypeID != nil {
		room.RoomTypeID = *u.RoomTypeID
	}
	if u.Price != nil {
		room.Price = *u.Price
	}
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
