package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-keeper/models"
)

const notesTable = "notes"

// psql renders $n placeholders. Both pgx and mattn/go-sqlite3 accept them.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var noteColumns = []string{
	"id",
	"user_id",
	"title",
	"folder_id",
	"tags",
	"content",
	"is_encrypted",
	"encryption_version",
	"created_at",
	"updated_at",
}

func buildGetNoteQuery(noteID, userID string) (string, []any, error) {
	return psql.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	return psql.
		Insert(notesTable).
		Columns(noteColumns...).
		Values(
			note.ID,
			note.UserID,
			note.Title,
			note.FolderID,
			note.Tags,
			note.Content,
			note.IsEncrypted,
			note.EncryptionVersion,
			note.CreatedAt,
			note.UpdatedAt,
		).
		ToSql()
}

// buildUpdateNoteQuery writes only the non-nil fields and always bumps
// updated_at.
func buildUpdateNoteQuery(noteID, userID string, fields models.NoteFields, now time.Time) (string, []any, error) {
	builder := psql.
		Update(notesTable).
		Set("updated_at", now)

	if fields.Title != nil {
		builder = builder.Set("title", *fields.Title)
	}
	if fields.FolderID != nil {
		builder = builder.Set("folder_id", *fields.FolderID)
	}
	if fields.Tags != nil {
		builder = builder.Set("tags", *fields.Tags)
	}
	if fields.Content != nil {
		builder = builder.Set("content", *fields.Content)
	}
	if fields.IsEncrypted != nil {
		builder = builder.Set("is_encrypted", *fields.IsEncrypted)
	}
	if fields.EncryptionVersion != nil {
		// "" clears the column
		var version any
		if *fields.EncryptionVersion != "" {
			version = *fields.EncryptionVersion
		}
		builder = builder.Set("encryption_version", version)
	}

	return builder.
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

// buildListInlineNotesQuery pages through inline notes in (created_at, id)
// order. Rows that keep failing to migrate stay inline, so callers move
// filter.After past them instead of re-reading the oldest rows.
func buildListInlineNotesQuery(filter models.InlineNotesFilter) (string, []any, error) {
	prefix := filter.ReferencePrefix
	if prefix == "" {
		prefix = ReferenceScheme
	}

	builder := psql.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"user_id": filter.UserID}).
		Where(sq.Expr(`content NOT LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%"))

	if after := filter.After; after != nil {
		builder = builder.Where(sq.Or{
			sq.Gt{"created_at": after.CreatedAt},
			sq.And{
				sq.Eq{"created_at": after.CreatedAt},
				sq.Gt{"id": after.ID},
			},
		})
	}

	return builder.
		OrderBy("created_at ASC", "id ASC").
		Limit(filter.Limit).
		ToSql()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
