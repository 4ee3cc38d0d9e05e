package auth

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"hotel-rooms-api/models"
	"hotel-rooms-api/utils"
)

// Stage inspects a request and returns nil to let the next stage run, or the
// rejection that ends the pipeline.
type Stage func(ctx context.Context, req *Request) error

// Pipeline runs its stages in order and stops at the first rejection.
type Pipeline []Stage

func NewPipeline(stages ...Stage) Pipeline {
	return Pipeline(stages)
}

func (p Pipeline) Run(ctx context.Context, req *Request) error {
	for _, stage := range p {
		if err := stage(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the shape of the credentials and reports the first field
// that fails.
func Validate() Stage {
	return func(ctx context.Context, req *Request) error {
		err := validate.StructCtx(ctx, req)
		if err == nil {
			return nil
		}
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return utils.NewValidationError(describe(fieldErrs[0]))
		}
		return utils.NewValidationError("Invalid request payload")
	}
}

// Authenticate verifies the password against the stored hash. Unknown users
// and wrong passwords get the same rejection.
func Authenticate(store CredentialStore, hasher *Hasher) Stage {
	return func(ctx context.Context, req *Request) error {
		user, ok := store.FindByUsername(ctx, req.Username)
		if !ok || !hasher.Check(req.Password, user.PasswordHash) {
			return utils.NewAuthenticationError()
		}
		req.Identity = user
		return nil
	}
}

// Authorize looks the user up again and requires the given role.
func Authorize(store CredentialStore, role models.Role) Stage {
	return func(ctx context.Context, req *Request) error {
		user, ok := store.FindByUsername(ctx, req.Username)
		if !ok || user.Role != role {
			return utils.NewAuthorizationError()
		}
		return nil
	}
}
