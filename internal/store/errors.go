package store

import "errors"

// Sentinel errors returned by repository and blob store methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrNoteNotFound is returned when a note identified by (id, user_id)
	// does not exist.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteAlreadyExists is returned when an insert collides with an
	// existing note id.
	ErrNoteAlreadyExists = errors.New("note already exists")

	// ErrNoteNotSaved is returned when an INSERT completes without error but
	// affects no rows.
	ErrNoteNotSaved = errors.New("note was not saved")
)

// Content addressing errors.
var (
	// ErrInvalidAddressInput is returned when a user or note id is empty or
	// cannot be used as a path segment.
	ErrInvalidAddressInput = errors.New("invalid content address input")

	// ErrMalformedReference is returned when a stored reference does not
	// match storage://{bucket}/ of the configured bucket.
	ErrMalformedReference = errors.New("malformed storage reference")
)

// Blob store errors.
var (
	// ErrBlobNotFound is returned when no object exists at a path.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrBlobAlreadyExists is returned by Upload without overwrite when an
	// object already exists at the path.
	ErrBlobAlreadyExists = errors.New("blob already exists")

	// ErrInvalidBlobPath is returned for paths that are absolute, unclean or
	// escape the store root.
	ErrInvalidBlobPath = errors.New("invalid blob path")

	// ErrInvalidBlobToken is returned when a download token does not verify
	// or does not grant access to the requested path.
	ErrInvalidBlobToken = errors.New("invalid blob token")

	// ErrUnknownBlobType is returned by the storage factory for an
	// unsupported blob backend.
	ErrUnknownBlobType = errors.New("unknown blob store type")

	// ErrUnknownDBDriver is returned by the storage factory for an
	// unsupported database driver.
	ErrUnknownDBDriver = errors.New("unknown database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan note row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails.
	ErrScanningRows = errors.New("failed to scan note rows")
)
