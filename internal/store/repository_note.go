package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the SQL implementation of [NoteRepository]. The same
// queries run on PostgreSQL and SQLite; dialect specifics are confined to
// the [ErrorClassificator] of the embedded [*DB].
type noteRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewNoteRepository constructs a [NoteRepository] over db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (n *noteRepository) GetNote(ctx context.Context, noteID, userID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetNote").Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	note, err := scanNote(n.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Str("user_id", userID).
			Str("note_id", noteID).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

func (n *noteRepository) InsertNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	now := n.now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = note.CreatedAt

	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.InsertNote").Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if n.errorClassificator != nil && n.errorClassificator.IsUniqueViolation(err) {
			return models.Note{}, fmt.Errorf("%w: %s", ErrNoteAlreadyExists, note.ID)
		}
		log.Err(err).
			Str("func", "noteRepository.InsertNote").
			Str("user_id", note.UserID).
			Str("note_id", note.ID).
			Bool("retryable", n.retryable(err)).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		log.Error().
			Str("func", "noteRepository.InsertNote").
			Str("user_id", note.UserID).
			Str("note_id", note.ID).
			Msg("note insert affected no rows")
		return models.Note{}, ErrNoteNotSaved
	}

	return note, nil
}

func (n *noteRepository) UpdateNote(ctx context.Context, noteID, userID string, fields models.NoteFields) (models.Note, error) {
	log := logger.FromContext(ctx)

	if fields.IsEmpty() {
		return n.GetNote(ctx, noteID, userID)
	}

	query, args, err := buildUpdateNoteQuery(noteID, userID, fields, n.now())
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Msg("failed to create query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Str("user_id", userID).
			Str("note_id", noteID).
			Bool("retryable", n.retryable(err)).
			Msg("failed to update note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Str("note_id", noteID).
			Msg("failed to read affected rows")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Note{}, ErrNoteNotFound
	}

	return n.GetNote(ctx, noteID, userID)
}

func (n *noteRepository) ListInlineNotes(ctx context.Context, filter models.InlineNotesFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListInlineNotesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListInlineNotes").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListInlineNotes").
			Str("user_id", filter.UserID).
			Msg("failed to execute query for inline notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, filter.Limit)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListInlineNotes").
				Str("user_id", filter.UserID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.ListInlineNotes").
			Str("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

func (n *noteRepository) retryable(err error) bool {
	return n.errorClassificator != nil && n.errorClassificator.Classify(err) == Retryable
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note              models.Note
		folderID          sql.NullString
		encryptionVersion sql.NullString
	)

	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&folderID,
		&note.Tags,
		&note.Content,
		&note.IsEncrypted,
		&encryptionVersion,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	if folderID.Valid {
		note.FolderID = &folderID.String
	}
	if encryptionVersion.Valid {
		note.EncryptionVersion = &encryptionVersion.String
	}

	return note, nil
}
