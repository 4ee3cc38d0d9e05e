package utils

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindAuthentication ErrorKind = "authentication"
	KindAuthorization  ErrorKind = "authorization"
	KindInvalidFilter  ErrorKind = "invalid_filter"
	KindNotFound       ErrorKind = "not_found"
	KindPersistence    ErrorKind = "persistence"
)

const (
	MsgInternal           = "Internal server error"
	MsgInvalidCredentials = "Invalid username or password"
	MsgUnauthorized       = "Unauthorized"
)

// AppError is a classified failure. Message is safe to show to the caller;
// Err keeps the underlying cause for logs.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation, KindInvalidFilter:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewInvalidFilterError(message string, cause error) *AppError {
	return &AppError{Kind: KindInvalidFilter, Message: message, Err: cause}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewAuthenticationError() *AppError {
	return &AppError{Kind: KindAuthentication, Message: MsgInvalidCredentials}
}

func NewAuthorizationError() *AppError {
	return &AppError{Kind: KindAuthorization, Message: MsgUnauthorized}
}

// NewPersistenceError hides cause behind a generic message.
func NewPersistenceError(cause error) *AppError {
	return &AppError{Kind: KindPersistence, Message: MsgInternal, Err: cause}
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
