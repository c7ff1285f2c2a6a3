// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

const (
	// PayloadPrefix starts every tagged text payload.
	PayloadPrefix = "enc:"

	payloadSeparator = ":"
	payloadFields    = 3
)

// payloadCodec is the private implementation of [PayloadCodec].
type payloadCodec struct {
	keys   KeyManager
	random io.Reader

	// strict disables the untagged legacy path of DecryptText.
	strict bool
}

// CodecOption configures a [PayloadCodec].
type CodecOption func(*payloadCodec)

// WithRandom replaces the nonce source. The reader must be a
// cryptographically secure generator outside of tests.
func WithRandom(r io.Reader) CodecOption {
	return func(c *payloadCodec) {
		c.random = r
	}
}

// WithStrictFormat makes DecryptText reject payloads without the enc: prefix
// instead of treating them as untagged v1 data.
func WithStrictFormat() CodecOption {
	return func(c *payloadCodec) {
		c.strict = true
	}
}

// NewPayloadCodec constructs a [PayloadCodec] over keys. Nonces are read from
// crypto/rand unless [WithRandom] is given.
func NewPayloadCodec(keys KeyManager, opts ...CodecOption) PayloadCodec {
	c := &payloadCodec{
		keys:   keys,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsEncryptedPayload reports whether s carries the enc: prefix.
func IsEncryptedPayload(s string) bool {
	return strings.HasPrefix(s, PayloadPrefix)
}

// EncryptText implements [PayloadCodec].
func (c *payloadCodec) EncryptText(plaintext string) (string, error) {
	blob, err := c.seal([]byte(plaintext))
	if err != nil {
		return "", err
	}

	return PayloadPrefix + CurrentVersion.String() + payloadSeparator + base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptText implements [PayloadCodec].
func (c *payloadCodec) DecryptText(payload string) (string, error) {
	if !c.keys.HasKey() {
		return "", ErrKeyNotSet
	}

	version, data, err := c.parse(payload)
	if err != nil {
		return "", err
	}

	switch version {
	case V1:
		blob, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return "", fmt.Errorf("%w: decode base64: %w", ErrInvalidPayloadFormat, err)
		}
		plaintext, err := c.open(blob)
		if err != nil {
			return "", err
		}
		return string(plaintext), nil
	default:
		return "", &UnsupportedVersionError{Version: version.String()}
	}
}

// EncryptBytes implements [PayloadCodec].
func (c *payloadCodec) EncryptBytes(plaintext []byte) ([]byte, error) {
	return c.seal(plaintext)
}

// DecryptBytes implements [PayloadCodec].
func (c *payloadCodec) DecryptBytes(payload []byte) ([]byte, error) {
	if !c.keys.HasKey() {
		return nil, ErrKeyNotSet
	}
	return c.open(payload)
}

// parse splits a text payload into its version and base64 data.
func (c *payloadCodec) parse(payload string) (Version, string, error) {
	if !IsEncryptedPayload(payload) {
		if c.strict {
			return VersionUnknown, "", fmt.Errorf("%w: missing %q prefix", ErrInvalidPayloadFormat, PayloadPrefix)
		}
		// untagged legacy data is raw v1
		return V1, payload, nil
	}

	fields := strings.Split(payload, payloadSeparator)
	if len(fields) != payloadFields {
		return VersionUnknown, "", fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidPayloadFormat, payloadFields, len(fields))
	}

	version := ParseVersion(fields[1])
	if version == VersionUnknown {
		return VersionUnknown, "", &UnsupportedVersionError{Version: fields[1]}
	}

	return version, fields[2], nil
}

// seal returns nonce‖ciphertext‖tag for plaintext under a fresh nonce.
func (c *payloadCodec) seal(plaintext []byte) ([]byte, error) {
	if !c.keys.HasKey() {
		return nil, ErrKeyNotSet
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext, err := c.keys.EncryptRaw(nonce, plaintext)
	if err != nil {
		return nil, err
	}

	blob := make([]byte, 0, len(nonce)+len(ciphertext))
	blob = append(blob, nonce...)
	return append(blob, ciphertext...), nil
}

// open splits nonce‖ciphertext‖tag and decrypts it.
func (c *payloadCodec) open(blob []byte) ([]byte, error) {
	if len(blob) < NonceSize+TagSize {
		return nil, fmt.Errorf("%w: payload too short (%d bytes)", ErrInvalidPayloadFormat, len(blob))
	}

	nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]
	return c.keys.DecryptRaw(nonce, ciphertext)
}
