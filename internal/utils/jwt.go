package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// BlobTokenIssuer is the "iss" claim of every blob download token.
const BlobTokenIssuer = "go-note-keeper/blobs"

// GenerateBlobURLToken signs a token that grants read access to the object at
// path for ttl.
func GenerateBlobURLToken(path string, ttl time.Duration, signKey string) (models.BlobURLToken, error) {
	if ttl <= 0 {
		return models.BlobURLToken{}, errors.New("invalid params for generating blob URL token")
	}

	return generateBlobURLToken(path, time.Now(), ttl, signKey)
}

func generateBlobURLToken(path string, now time.Time, ttl time.Duration, signKey string) (models.BlobURLToken, error) {
	if path == "" || signKey == "" {
		return models.BlobURLToken{}, errors.New("invalid params for generating blob URL token")
	}

	claims := jwt.RegisteredClaims{
		Issuer:    BlobTokenIssuer,
		Subject:   path,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.BlobURLToken{}, fmt.Errorf("error occurred during singing blob URL token: %w", err)
	}

	return models.BlobURLToken{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		Path:             path,
	}, nil
}

// ValidateBlobURLToken checks the signature, issuer and expiry of a blob
// download token and returns it with the object path extracted.
func ValidateBlobURLToken(tokenString, signKey string) (models.BlobURLToken, error) {
	claims := &models.BlobURLToken{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(BlobTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.BlobURLToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	path, err := claims.GetPath()
	if err != nil {
		return models.BlobURLToken{}, err
	}

	return models.BlobURLToken{
		Token:            token,
		RegisteredClaims: claims.RegisteredClaims,
		SignedString:     tokenString,
		Path:             path,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
