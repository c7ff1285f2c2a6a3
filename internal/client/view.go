package client

import (
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// noteView is the JSON form of a note printed by the CLI.
type noteView struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Title             string    `json:"title"`
	FolderID          *string   `json:"folder_id,omitempty"`
	Tags              []string  `json:"tags,omitempty"`
	Content           string    `json:"content"`
	IsEncrypted       bool      `json:"is_encrypted"`
	EncryptionVersion *string   `json:"encryption_version,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newNoteView(n models.Note) noteView {
	return noteView{
		ID:                n.ID,
		UserID:            n.UserID,
		Title:             n.Title,
		FolderID:          n.FolderID,
		Tags:              n.Tags,
		Content:           n.Content,
		IsEncrypted:       n.IsEncrypted,
		EncryptionVersion: n.EncryptionVersion,
		CreatedAt:         n.CreatedAt,
		UpdatedAt:         n.UpdatedAt,
	}
}

type migrateView struct {
	Migrated int    `json:"migrated"`
	Error    string `json:"error,omitempty"`
}
