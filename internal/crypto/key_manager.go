// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12

	// TagSize is the AES-GCM authentication tag length in bytes.
	TagSize = 16
)

// keyManager is the private implementation of [KeyManager].
type keyManager struct {
	mu   sync.RWMutex
	aead cipher.AEAD
}

// NewKeyManager returns a [KeyManager] with no active key.
func NewKeyManager() KeyManager {
	return &keyManager{}
}

// SetKey implements [KeyManager]. The raw key bytes are zeroed once the
// cipher has been built; only the AEAD is retained.
func (k *keyManager) SetKey(base64RawKey string) error {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(base64RawKey))
	if err != nil {
		return fmt.Errorf("%w: decode base64: %w", ErrKeyImport, err)
	}
	defer clear(raw)

	if len(raw) != KeySize {
		return fmt.Errorf("%w: key must be %d bytes, got %d", ErrKeyImport, KeySize, len(raw))
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return fmt.Errorf("%w: create cipher: %w", ErrKeyImport, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return fmt.Errorf("%w: create gcm: %w", ErrKeyImport, err)
	}

	k.mu.Lock()
	k.aead = gcm
	k.mu.Unlock()

	return nil
}

// HasKey implements [KeyManager].
func (k *keyManager) HasKey() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.aead != nil
}

// ClearKey implements [KeyManager].
func (k *keyManager) ClearKey() {
	k.mu.Lock()
	k.aead = nil
	k.mu.Unlock()
}

// EncryptRaw implements [KeyManager].
func (k *keyManager) EncryptRaw(nonce, plaintext []byte) ([]byte, error) {
	aead, err := k.current()
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidNonce, len(nonce))
	}

	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// DecryptRaw implements [KeyManager].
func (k *keyManager) DecryptRaw(nonce, ciphertextWithTag []byte) ([]byte, error) {
	aead, err := k.current()
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidNonce, len(nonce))
	}

	plaintext, err := aead.Open(nil, nonce, ciphertextWithTag, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return plaintext, nil
}

// current captures the active AEAD once per call so that a concurrent
// SetKey/ClearKey never changes the key in the middle of an operation.
func (k *keyManager) current() (cipher.AEAD, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.aead == nil {
		return nil, ErrKeyNotSet
	}
	return k.aead, nil
}
