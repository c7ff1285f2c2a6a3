// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// MigrationWorker moves legacy inline notes to the blob store in batches.
type MigrationWorker struct {
	content  service.NoteContentService
	userID   string
	interval time.Duration
	batch    uint64
	logger   *logger.Logger
}

func NewMigrationWorker(content service.NoteContentService, userID string, cfg config.Workers, logger *logger.Logger) *MigrationWorker {
	return &MigrationWorker{
		content:  content,
		userID:   userID,
		interval: cfg.MigrationInterval,
		batch:    cfg.MigrationBatch,
		logger:   logger,
	}
}

// Run migrates one batch right away and another on every tick. Notes that
// fail stay inline; each batch pages past them, so newer notes still move.
// Run stops with an error when a batch is rejected as a whole, since every
// later batch would be rejected the same way.
func (m *MigrationWorker) Run(ctx context.Context) error {
	if m.interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		if _, err := m.RunOnce(ctx); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce migrates a single batch and returns how many notes moved.
// Failures of single notes are logged; only a rejected batch is returned.
func (m *MigrationWorker) RunOnce(ctx context.Context) (int, error) {
	ctx = m.logger.WithContext(ctx)

	migrated, err := m.content.MigrateInline(ctx, m.userID, m.batch)
	if batchRejected(err) {
		m.logger.Err(err).
			Str("func", "MigrationWorker.RunOnce").
			Msg("legacy migration batch rejected, stopping")
		return migrated, fmt.Errorf("legacy migration stopped: %w", err)
	}
	if err != nil {
		m.logger.Warn().Err(err).
			Str("func", "MigrationWorker.RunOnce").
			Int("migrated", migrated).
			Msg("legacy migration batch finished with errors")
		return migrated, nil
	}

	if migrated > 0 {
		m.logger.Info().
			Str("func", "MigrationWorker.RunOnce").
			Int("migrated", migrated).
			Msg("legacy notes migrated")
	}
	return migrated, nil
}

// batchRejected reports an invalid batch request, as opposed to notes of a
// valid batch that failed on their own.
func batchRejected(err error) bool {
	var noteErr *service.MigrationError
	return errors.Is(err, service.ErrInvalidDataProvided) && !errors.As(err, &noteErr)
}
