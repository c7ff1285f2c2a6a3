// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the download token middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingBlobToken is returned when a download request carries
	// neither a "token" query parameter nor an "Authorization" header.
	ErrMissingBlobToken = errors.New("missing blob token")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrTokenPathMismatch is returned when a valid token was issued for a
	// different object path than the one requested.
	ErrTokenPathMismatch = errors.New("blob token does not grant the requested path")
)
