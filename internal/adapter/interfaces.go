// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound HTTP clients of the notes client: the
// trusted key service that hands out the session encryption key, and the
// plain GET used to read blobs back through signed URLs.
//
// Non-2xx responses are mapped to a [*StatusError] that unwraps to one of
// the sentinels in errors.go, so callers can use [errors.Is] for the status
// class and [errors.As] for the exact code.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// KeySource fetches the note encryption key of the authenticated user.
type KeySource interface {
	// FetchKey returns the standard-base64 encoded 32-byte key.
	FetchKey(ctx context.Context) (string, error)
}

// BlobFetcher reads an object through a signed URL.
type BlobFetcher interface {
	// Fetch performs a GET on signedURL and returns the body. A non-2xx
	// response yields a [*StatusError].
	Fetch(ctx context.Context, signedURL string) ([]byte, error)
}
