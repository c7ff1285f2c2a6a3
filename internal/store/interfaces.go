package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository is the metadata store of notes. Rows are always addressed
// by (id, user_id) so one user can never reach another user's note.
type NoteRepository interface {
	// GetNote returns the row or [ErrNoteNotFound].
	GetNote(ctx context.Context, noteID, userID string) (models.Note, error)

	// InsertNote stores a new row. Returns [ErrNoteAlreadyExists] on an id
	// collision.
	InsertNote(ctx context.Context, note models.Note) (models.Note, error)

	// UpdateNote writes only the non-nil fields and returns the updated
	// row. Returns [ErrNoteNotFound] when no row matched.
	UpdateNote(ctx context.Context, noteID, userID string, fields models.NoteFields) (models.Note, error)

	// ListInlineNotes returns up to filter.Limit notes of the user whose
	// content is not yet a storage reference, in (created_at, id) order and
	// strictly after filter.After when it is set.
	ListInlineNotes(ctx context.Context, filter models.InlineNotesFilter) ([]models.Note, error)
}

// BlobStore is an object store addressed by path.
type BlobStore interface {
	// Upload writes data at path. With overwrite=false an existing object
	// makes the call fail with [ErrBlobAlreadyExists].
	Upload(ctx context.Context, path string, data []byte, overwrite bool) error

	// CreateSignedURL returns a URL that grants read access to path for ttl
	// without further credentials.
	CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
}
