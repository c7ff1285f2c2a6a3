// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the client-side note encryption primitives: the
// process-wide AES-256-GCM key and the versioned payload framing built on it.
//
// The key never leaves client memory. It is supplied once per authenticated
// session by a trusted key service and discarded on logout.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyManager holds at most one active AES-256-GCM key and performs the raw
// AEAD operations with it.
type KeyManager interface {
	// SetKey decodes a standard-base64 32-byte key and makes it the active
	// key, silently replacing any previous one. Returns an error wrapping
	// [ErrKeyImport] if the input cannot be decoded or has the wrong length.
	SetKey(base64RawKey string) error

	// HasKey reports whether a key is active.
	HasKey() bool

	// ClearKey discards the active key. Safe to call when no key is set.
	ClearKey()

	// EncryptRaw seals plaintext with the given 12-byte nonce and returns
	// ciphertext‖tag. Returns [ErrKeyNotSet] when no key is active.
	EncryptRaw(nonce, plaintext []byte) ([]byte, error)

	// DecryptRaw opens ciphertext‖tag with the given 12-byte nonce.
	// Returns [ErrKeyNotSet] when no key is active and an error wrapping
	// [ErrAuthenticationFailed] when the tag does not verify.
	DecryptRaw(nonce, ciphertextWithTag []byte) ([]byte, error)
}

// PayloadCodec frames AEAD output in the note wire formats.
//
// Text form:   enc:v1:<base64(nonce‖ciphertext‖tag)>
// Binary form: nonce‖ciphertext‖tag
type PayloadCodec interface {
	// EncryptText encrypts plaintext with a fresh nonce and returns the
	// enc:v1 text payload.
	EncryptText(plaintext string) (string, error)

	// DecryptText parses and decrypts a text payload.
	DecryptText(payload string) (string, error)

	// EncryptBytes encrypts plaintext and returns the raw binary payload.
	EncryptBytes(plaintext []byte) ([]byte, error)

	// DecryptBytes decrypts a raw binary payload.
	DecryptBytes(payload []byte) ([]byte, error)
}
