package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteContentServiceWrapper decorates a NoteContentService, e.g. with input
// validation.
type NoteContentServiceWrapper interface {
	Wrap(NoteContentService) NoteContentService
}

// NoteValidationService rejects malformed inputs before they reach the
// wrapped [NoteContentService].
type NoteValidationService struct {
	inner     NoteContentService
	validator validators.Validator
}

// NewNoteValidationService returns a wrapper; call Wrap to attach it.
func NewNoteValidationService() NoteContentServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) Create(ctx context.Context, note models.NewNote) (models.Note, error) {
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, note)
}

func (v *NoteValidationService) Read(ctx context.Context, userID, noteID string) (models.Note, bool, error) {
	err := v.validator.Validate(ctx, models.NoteUpdate{ID: noteID, UserID: userID}, validators.FieldUserID, validators.FieldNoteID)
	if err != nil {
		return models.Note{}, false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Read(ctx, userID, noteID)
}

func (v *NoteValidationService) Update(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, update)
}

func (v *NoteValidationService) MigrateInline(ctx context.Context, userID string, limit uint64) (int, error) {
	if err := v.validator.Validate(ctx, models.NewNote{UserID: userID}, validators.FieldUserID); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if limit == 0 {
		return 0, nil
	}

	return v.inner.MigrateInline(ctx, userID, limit)
}

func (v *NoteValidationService) Wrap(inner NoteContentService) NoteContentService {
	v.inner = inner
	return v
}
