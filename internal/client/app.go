package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
	"github.com/MKhiriev/go-note-keeper/models"
)

// stdinMarker as the -content value reads the content from stdin.
const stdinMarker = "-"

type App struct {
	content service.NoteContentService
	session service.KeySession
	workers *workers.Workers

	userID         string
	migrationBatch uint64

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// NewApp wires the CLI. Results are written to out; in is read when a
// command is asked to take its content from stdin.
func NewApp(services *service.Services, w *workers.Workers, cfg config.StructuredConfig, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		content:        services.NoteContentService,
		session:        services.KeySession,
		workers:        w,
		userID:         cfg.App.UserID,
		migrationBatch: cfg.Workers.MigrationBatch,
		in:             in,
		out:            out,
		logger:         logger,
	}
}

// Run starts a key session, executes the command in args and ends the
// session. Without a key notes are written as plaintext and encrypted ones
// are returned raw, so a failed key session is logged and not fatal.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrUnknownCommand, Usage)
	}

	ctx = a.logger.WithContext(ctx)

	if err := a.session.Start(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("continuing without encryption key")
	}
	defer a.session.End()

	command, rest := args[0], args[1:]
	switch command {
	case "create":
		return a.create(ctx, rest)
	case "read":
		return a.read(ctx, rest)
	case "update":
		return a.update(ctx, rest)
	case "migrate":
		return a.migrate(ctx, rest)
	case "watch":
		return a.workers.Run(ctx)
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, command, Usage)
	}
}

func (a *App) create(ctx context.Context, args []string) error {
	var (
		newNote = models.NewNote{UserID: a.userID}
		tags    string
		folder  string
		content string
	)

	fs := newFlagSet("create")
	fs.StringVar(&newNote.ID, "id", "", "note id, generated when empty")
	fs.StringVar(&newNote.Title, "title", "", "note title")
	fs.StringVar(&newNote.Extension, "ext", "", "content extension (md when empty)")
	fs.StringVar(&tags, "tags", "", "comma separated tags")
	fs.StringVar(&folder, "folder", "", "folder id")
	fs.StringVar(&content, "content", "", "note content, - reads stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if newNote.Content, err = a.readContent(content); err != nil {
		return err
	}
	newNote.Tags = parseTags(tags)
	if folder != "" {
		newNote.FolderID = &folder
	}

	note, err := a.content.Create(ctx, newNote)
	if err != nil {
		return err
	}

	return a.print(newNoteView(note))
}

func (a *App) read(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return ErrMissingNoteID
	}

	note, found, err := a.content.Read(ctx, a.userID, args[0])
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, args[0])
	}

	return a.print(newNoteView(note))
}

func (a *App) update(ctx context.Context, args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return ErrMissingNoteID
	}

	var title, tags, folder, content string

	fs := newFlagSet("update")
	fs.StringVar(&title, "title", "", "new title")
	fs.StringVar(&tags, "tags", "", "new comma separated tags")
	fs.StringVar(&folder, "folder", "", "new folder id")
	fs.StringVar(&content, "content", "", "new content, - reads stdin")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	update := models.NoteUpdate{ID: args[0], UserID: a.userID}

	// only flags given on the command line touch their field
	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			update.Title = &title
		case "tags":
			t := parseTags(tags)
			update.Tags = &t
		case "folder":
			update.FolderID = &folder
		case "content":
			var c string
			if c, err = a.readContent(content); err == nil {
				update.Content = &c
			}
		}
	})
	if err != nil {
		return err
	}

	note, err := a.content.Update(ctx, update)
	if err != nil {
		return err
	}

	return a.print(newNoteView(note))
}

func (a *App) migrate(ctx context.Context, args []string) error {
	var limit uint64

	fs := newFlagSet("migrate")
	fs.Uint64Var(&limit, "limit", a.migrationBatch, "maximum number of notes to migrate")
	if err := fs.Parse(args); err != nil {
		return err
	}

	migrated, err := a.content.MigrateInline(ctx, a.userID, limit)

	view := migrateView{Migrated: migrated}
	if err != nil {
		view.Error = err.Error()
	}
	if printErr := a.print(view); printErr != nil {
		return errors.Join(err, printErr)
	}

	return err
}

func (a *App) readContent(value string) (string, error) {
	if value != stdinMarker {
		return value, nil
	}

	data, err := io.ReadAll(a.in)
	if err != nil {
		return "", fmt.Errorf("error reading content from stdin: %w", err)
	}
	return string(data), nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseTags(s string) models.Tags {
	if s == "" {
		return nil
	}

	var tags models.Tags
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
