package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/store"
)

// errorStatuses is checked in order: a token error that wraps a path error
// is still a token error.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrMissingBlobToken, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrTokenPathMismatch, http.StatusForbidden},
	{store.ErrInvalidBlobToken, http.StatusForbidden},
	{store.ErrInvalidBlobPath, http.StatusBadRequest},
	{store.ErrBlobNotFound, http.StatusNotFound},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
