package models

type RoomType struct {
	ID   string `gorm:"primaryKey;type:char(36)" json:"id" bson:"_id"`
	Name string `gorm:"size:255;not null" json:"name" bson:"name"`
}

func (RoomType) TableName() string { return "room_types" }
