package auth

import (
	"context"
	"fmt"

	"hotel-rooms-api/models"
)

// CredentialStore resolves API callers by username. The in-memory store is
// the only implementation; an identity provider can replace it without
// touching the pipeline.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, bool)
}

type Seed struct {
	Username string
	Password string
	Role     models.Role
}

var DefaultSeeds = []Seed{
	{Username: "admin", Password: "adminpassword", Role: models.RoleAdmin},
	{Username: "guest", Password: "guestpassword", Role: models.RoleGuest},
}

// MemoryCredentialStore is filled once by its constructor and only read
// afterwards, so it needs no locking.
type MemoryCredentialStore struct {
	users map[string]models.User
}

func NewMemoryCredentialStore(hasher *Hasher, seeds []Seed) (*MemoryCredentialStore, error) {
	users := make(map[string]models.User, len(seeds))
	for _, seed := range seeds {
		if _, dup := users[seed.Username]; dup {
			return nil, fmt.Errorf("duplicate seed user %q", seed.Username)
		}
		hash, err := hasher.Hash(seed.Password)
		if err != nil {
			return nil, fmt.Errorf("seed user %q: %w", seed.Username, err)
		}
		users[seed.Username] = models.User{
			ID:           models.NewID(),
			Username:     seed.Username,
			PasswordHash: hash,
			Role:         seed.Role,
		}
	}
	return &MemoryCredentialStore{users: users}, nil
}

func (s *MemoryCredentialStore) FindByUsername(_ context.Context, username string) (*models.User, bool) {
	user, ok := s.users[username]
	if !ok {
		return nil, false
	}
	return &user, true
}
