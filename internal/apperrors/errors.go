// Package apperrors defines the error kinds the API maps to HTTP statuses.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound means the requested company does not exist.
	ErrNotFound = errors.New("not found")
	// ErrBadRequest means a required request parameter is missing.
	ErrBadRequest = errors.New("bad request")
	// ErrConfigInvalid is returned by config validation.
	ErrConfigInvalid = errors.New("invalid configuration")
)

// Status maps an error to the HTTP status it is reported with. Anything that
// is not a known kind is an internal failure.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
