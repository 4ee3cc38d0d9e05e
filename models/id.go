package models

import "github.com/google/uuid"

// NewID returns a fresh identifier in canonical form.
func NewID() string {
	return uuid.NewString()
}

// CanonicalID parses raw and returns it in canonical (lowercase, hyphenated)
// form. ok is false when raw is not a valid identifier.
func CanonicalID(raw string) (id string, ok bool) {
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
