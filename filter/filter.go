// Package filter turns the optional query parameters of the room listing into
// a declarative RoomFilter that every storage backend can evaluate.
package filter

import (
	"math"
	"strconv"
	"strings"

	"hotel-rooms-api/models"
	"hotel-rooms-api/utils"
)

// Params are the raw listing query parameters. Empty means absent.
type Params struct {
	Search   string `form:"search"`
	RoomType string `form:"roomType"`
	MinPrice string `form:"minPrice"`
	MaxPrice string `form:"maxPrice"`
}

// RoomFilter is an AND of the conditions that are set. The zero value matches
// every room.
type RoomFilter struct {
	// Search is matched case-insensitively anywhere in the room name.
	Search string
	// RoomTypeID is in canonical id form.
	RoomTypeID *string
	MinPrice   *float64
	MaxPrice   *float64
	// NoMatch is set when a condition can never hold, such as a roomType
	// that is not a valid identifier.
	NoMatch bool
}

// Build validates p and returns the equivalent filter. It only fails with an
// InvalidFilter error, for price bounds that are not numbers.
func Build(p Params) (RoomFilter, error) {
	var f RoomFilter

	f.Search = p.Search

	if p.RoomType != "" {
		if id, ok := models.CanonicalID(p.RoomType); ok {
			f.RoomTypeID = &id
		} else {
			f.NoMatch = true
		}
	}

	lo, err := parsePrice("minPrice", p.MinPrice)
	if err != nil {
		return RoomFilter{}, err
	}
	hi, err := parsePrice("maxPrice", p.MaxPrice)
	if err != nil {
		return RoomFilter{}, err
	}
	f.MinPrice, f.MaxPrice = lo, hi

	return f, nil
}

func parsePrice(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, utils.NewInvalidFilterError(name+" must be a number", err)
	}
	return &v, nil
}

// IsEmpty reports whether f places no restriction at all.
func (f RoomFilter) IsEmpty() bool {
	return f.Search == "" && f.RoomTypeID == nil && f.MinPrice == nil && f.MaxPrice == nil && !f.NoMatch
}

// Match evaluates f against a single room.
func (f RoomFilter) Match(room models.Room) bool {
	if f.NoMatch {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(room.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.RoomTypeID != nil && room.RoomTypeID != *f.RoomTypeID {
		return false
	}
	if f.MinPrice != nil && room.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && room.Price > *f.MaxPrice {
		return false
	}
	return true
}
