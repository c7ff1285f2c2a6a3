// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// BlobPathCtxKey holds the object path authorised by a verified blob token.
var BlobPathCtxKey = contextKey("blobPath")

// WithBlobPath stores an authorised object path in ctx.
func WithBlobPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, BlobPathCtxKey, path)
}

// GetBlobPathFromContext returns the path stored by [WithBlobPath].
func GetBlobPathFromContext(ctx context.Context) (string, bool) {
	path, ok := ctx.Value(BlobPathCtxKey).(string)
	return path, ok && path != ""
}
