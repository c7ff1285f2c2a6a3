package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrInvalidKeyResponse is returned when the key service answers 2xx
	// without a usable key.
	ErrInvalidKeyResponse = errors.New("invalid key service response")
)

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Body       string
	sentinel   error
}

func (e *StatusError) Error() string {
	if e.sentinel != nil {
		return fmt.Sprintf("http %d: %s: %s", e.StatusCode, e.sentinel, e.Body)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
}

// Unwrap returns the sentinel of the status class, or nil for codes without
// one.
func (e *StatusError) Unwrap() error {
	return e.sentinel
}
