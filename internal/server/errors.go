package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/opportunity-matcher/internal/store"
)

// ErrInvalidUserID indicates the user_id path segment is not a UUID
type ErrInvalidUserID struct {
	Value string
}

func (e *ErrInvalidUserID) Error() string {
	return "invalid user id: " + e.Value
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var invalidID *ErrInvalidUserID
	var validation *ErrValidation
	switch {
	case errors.As(err, &invalidID), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrProfileNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
