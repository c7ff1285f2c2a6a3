package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNoteNotFound is returned by Update for a missing (id, user_id) pair.
	ErrNoteNotFound = errors.New("note not found")

	// ErrKeySessionFailed is returned by KeySession.Start when no key could
	// be activated.
	ErrKeySessionFailed = errors.New("key session could not be started")
)

// VerificationReason is the closed set of upload verification failures.
type VerificationReason string

const (
	// ReasonSignedURL means no signed URL could be created for the path.
	ReasonSignedURL VerificationReason = "signed-url"

	// ReasonFetchFailed means the signed URL did not answer with 2xx.
	ReasonFetchFailed VerificationReason = "fetch-failed"

	// ReasonEmptyBody means the blob was readable but empty.
	ReasonEmptyBody VerificationReason = "empty-body"
)

// VerificationFailedError reports that an uploaded blob could not be read
// back. The metadata row is never pointed at a blob that failed
// verification.
type VerificationFailedError struct {
	Path   string
	Reason VerificationReason

	// Status is the HTTP status of the fetch for ReasonFetchFailed, 0
	// otherwise (also 0 when the request did not get a response).
	Status int

	Err error
}

func (e *VerificationFailedError) Error() string {
	msg := fmt.Sprintf("upload verification failed for %q: %s", e.Path, e.Reason)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *VerificationFailedError) Unwrap() error {
	return e.Err
}

// MigrationError reports one inline note that could not be moved to the blob
// store. The note stays inline.
type MigrationError struct {
	NoteID string
	Err    error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("note %s: %v", e.NoteID, e.Err)
}

func (e *MigrationError) Unwrap() error {
	return e.Err
}
