// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type noteContentService struct {
	notes    store.NoteRepository
	blobs    store.BlobStore
	resolver *store.AddressResolver

	keys  crypto.KeyManager
	codec crypto.PayloadCodec

	verifier UploadVerifier
	fetcher  adapter.BlobFetcher
	ids      IDGenerator

	signedURLTTL time.Duration
	logger       *logger.Logger
}

// NewNoteContentService wires the content pipeline. signedURLTTL is the
// lifetime of the signed URLs used to read text blobs back.
func NewNoteContentService(
	notes store.NoteRepository,
	blobs store.BlobStore,
	resolver *store.AddressResolver,
	keys crypto.KeyManager,
	codec crypto.PayloadCodec,
	verifier UploadVerifier,
	fetcher adapter.BlobFetcher,
	ids IDGenerator,
	signedURLTTL time.Duration,
	logger *logger.Logger,
) NoteContentService {
	return &noteContentService{
		notes:        notes,
		blobs:        blobs,
		resolver:     resolver,
		keys:         keys,
		codec:        codec,
		verifier:     verifier,
		fetcher:      fetcher,
		ids:          ids,
		signedURLTTL: signedURLTTL,
		logger:       logger,
	}
}

func (s *noteContentService) Create(ctx context.Context, newNote models.NewNote) (models.Note, error) {
	if newNote.ID == "" {
		newNote.ID = s.ids.Generate()
	}
	log := logger.FromContext(ctx).ForNote(newNote.UserID, newNote.ID)

	addr, err := s.resolver.Resolve(newNote.UserID, newNote.ID, newNote.Extension)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	row, err := s.notes.InsertNote(ctx, models.Note{
		ID:       newNote.ID,
		UserID:   newNote.UserID,
		Title:    newNote.Title,
		FolderID: newNote.FolderID,
		Tags:     newNote.Tags,
	})
	if err != nil {
		log.Err(err).Str("func", "noteContentService.Create").Msg("error inserting note row")
		return models.Note{}, err
	}

	fields, err := s.storeContent(ctx, addr, newNote.Content, false, nil)
	if err != nil {
		return models.Note{}, err
	}

	row, err = s.notes.UpdateNote(ctx, row.ID, row.UserID, fields)
	if err != nil {
		log.Err(err).Str("func", "noteContentService.Create").Msg("error pointing note at stored content")
		return models.Note{}, err
	}

	return s.fetchThrough(ctx, row), nil
}

func (s *noteContentService) Read(ctx context.Context, userID, noteID string) (models.Note, bool, error) {
	log := logger.FromContext(ctx).ForNote(userID, noteID)

	row, err := s.notes.GetNote(ctx, noteID, userID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return models.Note{}, false, nil
	}
	if err != nil {
		return models.Note{}, false, err
	}

	if !s.resolver.IsReference(row.Content) {
		return row, true, nil
	}

	path, err := s.resolver.ParseReference(row.Content)
	if err != nil {
		log.Err(err).Str("func", "noteContentService.Read").Msg("stored reference is malformed")
		return models.Note{}, false, err
	}

	// binary blobs are fetched lazily by whoever renders them
	if !store.IsTextExtension(store.Extension(path)) {
		return row, true, nil
	}

	signedURL, err := s.blobs.CreateSignedURL(ctx, path, s.signedURLTTL)
	if err != nil {
		log.Err(err).Str("func", "noteContentService.Read").Str("path", path).Msg("error creating signed url")
		return models.Note{}, false, fmt.Errorf("error creating signed url: %w", err)
	}

	body, err := s.fetcher.Fetch(ctx, signedURL)
	if err != nil {
		log.Err(err).Str("func", "noteContentService.Read").Str("path", path).Msg("error fetching note content")
		return models.Note{}, false, fmt.Errorf("error fetching note content: %w", err)
	}

	text := string(body)
	if row.IsEncrypted || crypto.IsEncryptedPayload(text) {
		plaintext, decErr := s.codec.DecryptText(text)
		if decErr != nil {
			log.Warn().Err(decErr).
				Str("func", "noteContentService.Read").
				Str("path", path).
				Msg("decryption failed, returning raw content")
		} else {
			text = plaintext
		}
	}

	row.Content = text
	return row, true, nil
}

func (s *noteContentService) Update(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx).ForNote(update.UserID, update.ID)

	row, err := s.notes.GetNote(ctx, update.ID, update.UserID)
	if errors.Is(err, store.ErrNoteNotFound) {
		return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, update.ID)
	}
	if err != nil {
		return models.Note{}, err
	}

	fields := models.NoteFields{
		Title:    update.Title,
		FolderID: update.FolderID,
		Tags:     update.Tags,
	}

	var contentFields models.NoteFields
	switch {
	case !s.resolver.IsReference(row.Content):
		// legacy inline row: any update moves the content to the blob store
		addr, resolveErr := s.resolver.Resolve(row.UserID, row.ID, "")
		if resolveErr != nil {
			return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, resolveErr)
		}

		if update.Content != nil {
			contentFields, err = s.storeContent(ctx, addr, *update.Content, false, nil)
		} else {
			sealed := row.IsEncrypted || crypto.IsEncryptedPayload(row.Content)
			contentFields, err = s.storeContent(ctx, addr, row.Content, sealed, row.EncryptionVersion)
		}
		if err != nil {
			return models.Note{}, err
		}
		log.Info().Str("func", "noteContentService.Update").Msg("migrating inline content to blob store")

	case update.Content != nil:
		path, parseErr := s.resolver.ParseReference(row.Content)
		if parseErr != nil {
			log.Err(parseErr).Str("func", "noteContentService.Update").Msg("stored reference is malformed")
			return models.Note{}, parseErr
		}

		addr := models.ContentAddress{Path: path, Reference: row.Content}
		if contentFields, err = s.storeContent(ctx, addr, *update.Content, false, nil); err != nil {
			return models.Note{}, err
		}
	}

	fields.Content = contentFields.Content
	fields.IsEncrypted = contentFields.IsEncrypted
	fields.EncryptionVersion = contentFields.EncryptionVersion

	updated, err := s.notes.UpdateNote(ctx, row.ID, row.UserID, fields)
	if err != nil {
		log.Err(err).Str("func", "noteContentService.Update").Msg("error updating note row")
		return models.Note{}, err
	}

	return s.fetchThrough(ctx, updated), nil
}

// MigrateInline moves up to limit inline notes of userID to the blob store.
// Notes that fail are skipped for the rest of the run, so a run keeps paging
// until limit notes moved or no inline notes are left.
func (s *noteContentService) MigrateInline(ctx context.Context, userID string, limit uint64) (int, error) {
	log := logger.FromContext(ctx)

	filter := models.InlineNotesFilter{
		UserID:          userID,
		ReferencePrefix: s.resolver.ReferencePrefix(),
		Limit:           limit,
	}

	var (
		migrated int
		errs     []error
	)
	for uint64(migrated) < limit {
		page, err := s.notes.ListInlineNotes(ctx, filter)
		if err != nil {
			errs = append(errs, err)
			break
		}

		for _, note := range page {
			if uint64(migrated) == limit {
				break
			}
			if _, err = s.Update(ctx, models.NoteUpdate{ID: note.ID, UserID: note.UserID}); err != nil {
				log.Warn().Err(err).
					Str("func", "noteContentService.MigrateInline").
					Str("note_id", note.ID).
					Msg("error migrating inline note")
				errs = append(errs, &MigrationError{NoteID: note.ID, Err: err})
				continue
			}
			migrated++
		}

		if uint64(len(page)) < filter.Limit {
			break
		}
		last := page[len(page)-1].Cursor()
		filter.After = &last
	}

	return migrated, errors.Join(errs...)
}

// storeContent uploads content to addr (overwriting) and verifies it when
// non-empty. Unless sealed is set, content is plaintext and gets encrypted
// when a key is active. The returned fields point the row at the blob.
func (s *noteContentService) storeContent(ctx context.Context, addr models.ContentAddress, content string, sealed bool, version *string) (models.NoteFields, error) {
	log := logger.FromContext(ctx)

	payload, encrypted := content, sealed
	if !sealed {
		payload, encrypted = s.seal(ctx, content)
	}

	if err := s.blobs.Upload(ctx, addr.Path, []byte(payload), true); err != nil {
		log.Err(err).Str("func", "noteContentService.storeContent").Str("path", addr.Path).Msg("error uploading content")
		return models.NoteFields{}, fmt.Errorf("error uploading content: %w", err)
	}

	if payload != "" {
		if err := s.verifier.Verify(ctx, addr.Path); err != nil {
			return models.NoteFields{}, err
		}
	}

	encryptionVersion := ""
	if encrypted {
		encryptionVersion = crypto.CurrentVersion.String()
		if version != nil && *version != "" {
			encryptionVersion = *version
		}
	}

	return models.NoteFields{
		Content:           &addr.Reference,
		IsEncrypted:       &encrypted,
		EncryptionVersion: &encryptionVersion,
	}, nil
}

// seal encrypts non-empty plaintext when a key is active. An encryption
// failure keeps the plaintext.
func (s *noteContentService) seal(ctx context.Context, plaintext string) (string, bool) {
	if plaintext == "" || !s.keys.HasKey() {
		return plaintext, false
	}

	payload, err := s.codec.EncryptText(plaintext)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "noteContentService.seal").
			Msg("encryption failed, storing plaintext")
		return plaintext, false
	}

	return payload, true
}

// fetchThrough resolves the stored row. The write already succeeded, so a
// failed read returns the row with its reference instead of an error.
func (s *noteContentService) fetchThrough(ctx context.Context, row models.Note) models.Note {
	note, found, err := s.Read(ctx, row.UserID, row.ID)
	if err != nil || !found {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "noteContentService.fetchThrough").
			Str("note_id", row.ID).
			Bool("found", found).
			Msg("fetch-through failed, returning stored reference")
		return row
	}

	return note
}
