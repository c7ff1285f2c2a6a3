package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldUserID    = "user_id"
	FieldNoteID    = "note_id"
	FieldExtension = "extension"
	FieldTitle     = "title"
	FieldTags      = "tags"
)

// MaxTitleLength is the maximum title length in runes.
const MaxTitleLength = 512

// maxExtensionLength bounds the extension of a content path.
const maxExtensionLength = 16

// NoteValidator validates note inputs. IDs must be usable as single path
// segments since they become part of the blob path.
type NoteValidator struct{}

// NewNoteValidator returns a [Validator] for note inputs.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.NewNote / *models.NewNote
//   - models.NoteUpdate / *models.NoteUpdate
//
// An empty NewNote.ID is valid: the service generates one.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewNote:
		return v.validateNewNote(ctx, value, fields...)
	case *models.NewNote:
		return v.validateNewNote(ctx, *value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(ctx, value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNewNote(_ context.Context, note models.NewNote, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldNoteID, FieldExtension, FieldTitle, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if !isPathSegment(note.UserID) {
				return ErrInvalidUserID
			}
		case FieldNoteID:
			if note.ID != "" && !isPathSegment(note.ID) {
				return ErrInvalidNoteID
			}
		case FieldExtension:
			if !isValidExtension(note.Extension) {
				return ErrInvalidExtension
			}
		case FieldTitle:
			if utf8.RuneCountInString(note.Title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldTags:
			if hasEmptyTag(note.Tags) {
				return ErrEmptyTag
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteUpdate(_ context.Context, update models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldNoteID, FieldTitle, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if !isPathSegment(update.UserID) {
				return ErrInvalidUserID
			}
		case FieldNoteID:
			if !isPathSegment(update.ID) {
				return ErrInvalidNoteID
			}
		case FieldTitle:
			if update.Title != nil && utf8.RuneCountInString(*update.Title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldTags:
			if update.Tags != nil && hasEmptyTag(*update.Tags) {
				return ErrEmptyTag
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isPathSegment(s string) bool {
	return strings.TrimSpace(s) != "" &&
		s != "." && s != ".." &&
		!strings.ContainsAny(s, `/\`)
}

// isValidExtension accepts "", "md" and ".md" style values.
func isValidExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return true
	}
	if len(ext) > maxExtensionLength {
		return false
	}
	for _, r := range ext {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

func hasEmptyTag(tags models.Tags) bool {
	for _, t := range tags {
		if strings.TrimSpace(t) == "" {
			return true
		}
	}
	return false
}
