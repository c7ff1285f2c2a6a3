package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotSet is returned by every encrypt/decrypt call made while no
	// key is active.
	ErrKeyNotSet = errors.New("crypto: encryption key is not set")

	// ErrKeyImport is returned when raw key material cannot be turned into an
	// AES-256-GCM key (bad base64, wrong length, cipher construction failure).
	ErrKeyImport = errors.New("crypto: key import failed")

	// ErrAuthenticationFailed is returned when the GCM tag does not verify:
	// the payload was tampered with or sealed under a different key.
	ErrAuthenticationFailed = errors.New("crypto: authentication failed")

	// ErrInvalidPayloadFormat is returned for a malformed enc: envelope,
	// undecodable base64 or a payload shorter than nonce+tag.
	ErrInvalidPayloadFormat = errors.New("crypto: invalid payload format")

	// ErrInvalidNonce is returned when a raw operation receives a nonce of
	// the wrong length.
	ErrInvalidNonce = errors.New("crypto: invalid nonce length")
)

// UnsupportedVersionError is returned when a text payload carries a version
// tag this build does not know.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("crypto: unsupported payload version %q", e.Version)
}
