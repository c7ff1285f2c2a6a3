// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultExtension is the content extension used when a note does not name one.
const DefaultExtension = "md"

// Note is a metadata row of the notes table.
//
// Content holds either the legacy inline value (plaintext or an enc:v1
// payload) or a storage reference of the form
// storage://{bucket}/{userID}/{noteID}.{ext}. Once a row points at a
// storage reference it never goes back to inline content.
type Note struct {
	ID       string
	UserID   string
	Title    string
	FolderID *string
	Tags     Tags

	// Content is inline text or a storage reference.
	Content string

	// IsEncrypted reports whether the blob (or inline value) behind Content
	// is an encrypted payload.
	IsEncrypted bool

	// EncryptionVersion is the payload version tag ("v1") or nil for
	// plaintext content.
	EncryptionVersion *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNote is the input of a note creation.
type NewNote struct {
	// ID is optional; a UUIDv7 is generated when empty.
	ID       string
	UserID   string
	Title    string
	FolderID *string
	Tags     Tags

	// Content is the plaintext body of the note. May be empty.
	Content string

	// Extension of the stored blob, "md" when empty.
	Extension string
}

// NoteUpdate is the input of a note update. Nil fields are left untouched.
type NoteUpdate struct {
	ID       string
	UserID   string
	Title    *string
	FolderID *string
	Tags     *Tags

	// Content is the new plaintext body. Nil means "content not changed".
	Content *string
}

// NoteFields is a partial update of a metadata row. Only non-nil fields are
// written. A non-nil empty EncryptionVersion stores NULL.
type NoteFields struct {
	Title             *string
	FolderID          *string
	Tags              *Tags
	Content           *string
	IsEncrypted       *bool
	EncryptionVersion *string
}

// IsEmpty reports whether no field is set.
func (f NoteFields) IsEmpty() bool {
	return f.Title == nil &&
		f.FolderID == nil &&
		f.Tags == nil &&
		f.Content == nil &&
		f.IsEncrypted == nil &&
		f.EncryptionVersion == nil
}

// NoteCursor is a position in the (created_at, id) order of a user's notes.
type NoteCursor struct {
	CreatedAt time.Time
	ID        string
}

// Cursor returns the position of n.
func (n Note) Cursor() NoteCursor {
	return NoteCursor{CreatedAt: n.CreatedAt, ID: n.ID}
}

// InlineNotesFilter selects a page of a user's legacy inline notes.
type InlineNotesFilter struct {
	UserID string

	// ReferencePrefix is "storage://{bucket}/". Content starting with it is
	// a storage reference, anything else is inline.
	ReferencePrefix string

	// After skips every note up to and including this position.
	After *NoteCursor

	Limit uint64
}

// Tags is a list of note tags stored as a JSON array in a text column.
type Tags []string

// Value implements [driver.Valuer].
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, fmt.Errorf("marshal tags: %w", err)
	}
	return string(b), nil
}

// Scan implements [sql.Scanner].
func (t *Tags) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported tags column type %T", src)
	}

	if len(raw) == 0 {
		*t = nil
		return nil
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return fmt.Errorf("unmarshal tags: %w", err)
	}
	*t = tags
	return nil
}
