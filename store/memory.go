package store

import (
	"context"
	"sort"
	"sync"

	"hotel-rooms-api/filter"
	"hotel-rooms-api/models"
)

// MemoryGateway keeps documents in process memory. Listings come back in
// insertion order.
type MemoryGateway struct {
	mu        sync.RWMutex
	seq       int64
	roomTypes map[string]memoryEntry[models.RoomType]
	rooms     map[string]memoryEntry[models.Room]
}

type memoryEntry[T any] struct {
	seq int64
	doc T
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		roomTypes: make(map[string]memoryEntry[models.RoomType]),
		rooms:     make(map[string]memoryEntry[models.Room]),
	}
}

func (g *MemoryGateway) InsertRoomType(_ context.Context, rt *models.RoomType) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if rt.ID == "" {
		rt.ID = models.NewID()
	}
	g.seq++
	g.roomTypes[rt.ID] = memoryEntry[models.RoomType]{seq: g.seq, doc: *rt}
	return nil
}

func (g *MemoryGateway) FindRoomTypes(_ context.Context) ([]models.RoomType, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	entries := make([]memoryEntry[models.RoomType], 0, len(g.roomTypes))
	for _, e := range g.roomTypes {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]models.RoomType, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.doc)
	}
	return out, nil
}

func (g *MemoryGateway) InsertRoom(_ context.Context, room *models.Room) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if room.ID == "" {
		room.ID = models.NewID()
	}
	g.seq++
	g.rooms[room.ID] = memoryEntry[models.Room]{seq: g.seq, doc: *room}
	return nil
}

func (g *MemoryGateway) FindRooms(_ context.Context, f filter.RoomFilter) ([]models.Room, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	entries := make([]memoryEntry[models.Room], 0, len(g.rooms))
	for _, e := range g.rooms {
		if f.Match(e.doc) {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	out := make([]models.Room, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.doc)
	}
	return out, nil
}

func (g *MemoryGateway) FindRoom(_ context.Context, id string) (*models.Room, error) {
	key, ok := models.CanonicalID(id)
	if !ok {
		return nil, nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.rooms[key]
	if !ok {
		return nil, nil
	}
	room := e.doc
	return &room, nil
}

func (g *MemoryGateway) UpdateRoom(_ context.Context, id string, update models.RoomUpdate) (models.UpdateResult, error) {
	key, ok := models.CanonicalID(id)
	if !ok {
		return models.UpdateResult{}, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.rooms[key]
	if !ok {
		return models.UpdateResult{}, nil
	}
	before := e.doc
	update.Apply(&e.doc)
	g.rooms[key] = e

	res := models.UpdateResult{MatchedCount: 1}
	if e.doc != before {
		res.ModifiedCount = 1
	}
	return res, nil
}

func (g *MemoryGateway) DeleteRoom(_ context.Context, id string) (models.DeleteResult, error) {
	key, ok := models.CanonicalID(id)
	if !ok {
		return models.DeleteResult{}, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.rooms[key]; !ok {
		return models.DeleteResult{}, nil
	}
	delete(g.rooms, key)
	return models.DeleteResult{DeletedCount: 1}, nil
}

func (g *MemoryGateway) Ping(context.Context) error { return nil }

func (g *MemoryGateway) Close(context.Context) error { return nil }
