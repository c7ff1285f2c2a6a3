package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidNoteID    = errors.New("invalid note ID")
	ErrInvalidExtension = errors.New("invalid content extension")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrEmptyTag         = errors.New("tags cannot contain empty values")
)
