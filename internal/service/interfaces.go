package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteContentService moves note content between the metadata row and the
// blob store, encrypting on the way in and decrypting on the way out.
type NoteContentService interface {
	// Create inserts the metadata row, uploads the (encrypted if possible)
	// content, verifies the upload and points the row at it. The returned
	// note carries the resolved content, or the reference when the
	// follow-up read failed.
	Create(ctx context.Context, note models.NewNote) (models.Note, error)

	// Read returns the note with its content resolved. found is false when
	// the row does not exist.
	Read(ctx context.Context, userID, noteID string) (note models.Note, found bool, err error)

	// Update applies the touched fields. A legacy inline row is migrated
	// to the blob store by any update, with or without new content.
	Update(ctx context.Context, update models.NoteUpdate) (models.Note, error)

	// MigrateInline migrates up to limit legacy inline notes of userID and
	// returns how many were migrated.
	MigrateInline(ctx context.Context, userID string, limit uint64) (int, error)
}

// UploadVerifier confirms that a freshly uploaded blob is readable through a
// signed URL and not empty.
type UploadVerifier interface {
	// Verify returns nil or a [*VerificationFailedError].
	Verify(ctx context.Context, path string) error
}

// KeySession binds the note encryption key to an authenticated session.
type KeySession interface {
	// Start fetches the key from the key service and activates it.
	Start(ctx context.Context) error

	// End discards the active key.
	End()
}

// IDGenerator produces new note IDs.
type IDGenerator interface {
	Generate() string
}
