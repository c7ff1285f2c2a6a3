package client

import "errors"

var (
	// ErrUnknownCommand is returned for a missing or unsupported command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingNoteID is returned by read and update without a note id.
	ErrMissingNoteID = errors.New("note id is required")

	// ErrNoteNotFound is returned by read for a note that does not exist.
	ErrNoteNotFound = errors.New("note not found")
)

// Usage lists the supported commands.
const Usage = `usage: notes [config flags] <command> [command flags]

commands:
  create  [-id ID] [-title T] [-ext md] [-tags a,b] [-folder F] [-content TEXT | -content -]
  read    <note id>
  update  <note id> [-title T] [-tags a,b] [-folder F] [-content TEXT | -content -]
  migrate [-limit N]
  watch   run background workers until interrupted`
