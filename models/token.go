// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// BlobURLToken wraps the JWT that authorises a single signed blob download.
//
// The "sub" claim carries the object path inside the blob store and the
// "exp" claim bounds the lifetime of the signed URL.
type BlobURLToken struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Path is the object path extracted from the "sub" claim.
	Path string `json:"-"`
}

// GetPath extracts the object path from the token's "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *BlobURLToken) GetPath() (string, error) {
	path, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting path from token: %w", err)
	}
	if path == "" {
		return "", errors.New("empty path in token subject")
	}

	return path, nil
}

// String returns the compact JWS serialization of the token.
func (t *BlobURLToken) String() string {
	return t.SignedString
}
