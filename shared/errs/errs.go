// Package errs defines the error kinds shared by every service.
//
// Domain packages declare their own sentinel errors that wrap one of these kinds so the
// HTTP layer can map any error to a status code with errors.Is. An error that wraps none
// of them is treated as a backend failure.
package errs

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation failed")
)

// HTTPStatus maps an error to the status code reported to callers.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// FromStatus is the inverse of HTTPStatus for inter-service clients. It returns nil for
// statuses that do not carry a kind.
func FromStatus(status int) error {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrAlreadyExists
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrValidation
	default:
		return nil
	}
}
