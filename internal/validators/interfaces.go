// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks note inputs before they reach the content
// pipeline. IDs end up as blob path segments, so they are validated here
// rather than failing deep inside an upload.
package validators

import "context"

// Validator validates arbitrary input values. The optional field names
// restrict validation to a subset of fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
