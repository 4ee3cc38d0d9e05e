package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"hotel-rooms-api/filter"
	"hotel-rooms-api/models"
)

const (
	roomTypesCollection = "room_types"
	roomsCollection     = "rooms"
)

// MongoGateway stores documents in the room_types and rooms collections.
// Document ids are canonical identifier strings, not ObjectIDs.
type MongoGateway struct {
	client    *mongo.Client
	roomTypes *mongo.Collection
	rooms     *mongo.Collection
}

func ConnectMongo(ctx context.Context, uri, database string) (*MongoGateway, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	db := client.Database(database)
	return &MongoGateway{
		client:    client,
		roomTypes: db.Collection(roomTypesCollection),
		rooms:     db.Collection(roomsCollection),
	}, nil
}

// EnsureIndexes creates the indexes used by room listings.
func (g *MongoGateway) EnsureIndexes(ctx context.Context) error {
	_, err := g.rooms.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "roomTypeId", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	})
	return err
}

func (g *MongoGateway) InsertRoomType(ctx context.Context, rt *models.RoomType) error {
	if rt.ID == "" {
		rt.ID = models.NewID()
	}
	_, err := g.roomTypes.InsertOne(ctx, rt)
	return err
}

func (g *MongoGateway) FindRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	cur, err := g.roomTypes.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	types := []models.RoomType{}
	if err := cur.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (g *MongoGateway) InsertRoom(ctx context.Context, room *models.Room) error {
	if room.ID == "" {
		room.ID = models.NewID()
	}
	_, err := g.rooms.InsertOne(ctx, room)
	return err
}

func (g *MongoGateway) FindRooms(ctx context.Context, f filter.RoomFilter) ([]models.Room, error) {
	rooms := []models.Room{}
	if f.NoMatch {
		return rooms, nil
	}
	cur, err := g.rooms.Find(ctx, roomFilterDocument(f))
	if err != nil {
		return nil, err
	}
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (g *MongoGateway) FindRoom(ctx context.Context, id string) (*models.Room, error) {
	key, ok := models.CanonicalID(id)
	if !ok {
		return nil, nil
	}
	var room models.Room
	err := g.rooms.FindOne(ctx, bson.M{"_id": key}).Decode(&room)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (g *MongoGateway) UpdateRoom(ctx context.Context, id string, update models.RoomUpdate) (models.UpdateResult, error) {
	key, ok := models.CanonicalID(id)
	if !ok || update.IsEmpty() {
		return models.UpdateResult{}, nil
	}
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.RoomTypeID != nil {
		set["roomTypeId"] = *update.RoomTypeID
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	res, err := g.rooms.UpdateOne(ctx, bson.M{"_id": key}, bson.M{"$set": set})
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (g *MongoGateway) DeleteRoom(ctx context.Context, id string) (models.DeleteResult, error) {
	key, ok := models.CanonicalID(id)
	if !ok {
		return models.DeleteResult{}, nil
	}
	res, err := g.rooms.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return models.DeleteResult{}, err
	}
	return models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (g *MongoGateway) Ping(ctx context.Context) error {
	return g.client.Ping(ctx, readpref.Primary())
}

func (g *MongoGateway) Close(ctx context.Context) error {
	return g.client.Disconnect(ctx)
}

func roomFilterDocument(f filter.RoomFilter) bson.M {
	doc := bson.M{}
	if f.Search != "" {
		doc["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}
	if f.RoomTypeID != nil {
		doc["roomTypeId"] = *f.RoomTypeID
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		doc["price"] = price
	}
	return doc
}
