// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"path"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// ReferenceScheme prefixes every storage reference.
const ReferenceScheme = "storage://"

var textExtensions = map[string]struct{}{
	"md":       {},
	"markdown": {},
	"txt":      {},
	"html":     {},
	"json":     {},
	"csv":      {},
	"xml":      {},
	"yaml":     {},
	"yml":      {},
}

// AddressResolver derives deterministic content locations inside one bucket.
// It performs no I/O.
type AddressResolver struct {
	bucket string
}

// NewAddressResolver returns a resolver for bucket.
func NewAddressResolver(bucket string) *AddressResolver {
	return &AddressResolver{bucket: bucket}
}

// Bucket returns the bucket name used in references.
func (r *AddressResolver) Bucket() string {
	return r.bucket
}

// Resolve returns path "{userID}/{noteID}.{ext}" and reference
// "storage://{bucket}/{path}". An empty ext means [models.DefaultExtension];
// a leading dot is ignored.
func (r *AddressResolver) Resolve(userID, noteID, ext string) (models.ContentAddress, error) {
	if err := validateSegment("user id", userID); err != nil {
		return models.ContentAddress{}, err
	}
	if err := validateSegment("note id", noteID); err != nil {
		return models.ContentAddress{}, err
	}

	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = models.DefaultExtension
	}
	if strings.ContainsAny(ext, `/\.`) {
		return models.ContentAddress{}, fmt.Errorf("%w: extension %q", ErrInvalidAddressInput, ext)
	}

	p := userID + "/" + noteID + "." + ext

	return models.ContentAddress{
		Path:      p,
		Reference: r.prefix() + p,
	}, nil
}

// ParseReference strips storage://{bucket}/ from reference and returns the
// object path.
func (r *AddressResolver) ParseReference(reference string) (string, error) {
	prefix := r.prefix()
	if !strings.HasPrefix(reference, prefix) {
		return "", fmt.Errorf("%w: %q does not start with %q", ErrMalformedReference, reference, prefix)
	}

	p := strings.TrimPrefix(reference, prefix)
	if p == "" {
		return "", fmt.Errorf("%w: empty path in %q", ErrMalformedReference, reference)
	}

	return p, nil
}

// ReferencePrefix returns "storage://{bucket}/".
func (r *AddressResolver) ReferencePrefix() string {
	return r.prefix()
}

func (r *AddressResolver) prefix() string {
	return ReferenceScheme + r.bucket + "/"
}

// IsReference reports whether a content field holds a reference into the
// configured bucket. Inline text that merely starts with storage:// but
// names another bucket is inline content.
func (r *AddressResolver) IsReference(content string) bool {
	return strings.HasPrefix(content, r.prefix())
}

// Extension returns the lower-cased extension of p without the dot.
func Extension(p string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
}

// IsTextExtension reports whether ext names a text format whose content is
// resolved on read.
func IsTextExtension(ext string) bool {
	_, ok := textExtensions[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return ok
}

func validateSegment(name, v string) error {
	if v == "" {
		return fmt.Errorf("%w: empty %s", ErrInvalidAddressInput, name)
	}
	if v == "." || v == ".." || strings.ContainsAny(v, `/\`) {
		return fmt.Errorf("%w: %s %q is not a path segment", ErrInvalidAddressInput, name, v)
	}
	return nil
}
