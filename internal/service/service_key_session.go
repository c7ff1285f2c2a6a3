package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type keySession struct {
	source adapter.KeySource
	keys   crypto.KeyManager
	logger *logger.Logger
}

// NewKeySession returns a [KeySession] that loads keys from source into keys.
func NewKeySession(source adapter.KeySource, keys crypto.KeyManager, logger *logger.Logger) KeySession {
	return &keySession{
		source: source,
		keys:   keys,
		logger: logger,
	}
}

// Start replaces any active key. On failure the previous key, if any, stays
// active.
func (k *keySession) Start(ctx context.Context) error {
	rawKey, err := k.source.FetchKey(ctx)
	if err != nil {
		k.logger.Err(err).Str("func", "keySession.Start").Msg("error fetching encryption key")
		return fmt.Errorf("%w: %w", ErrKeySessionFailed, err)
	}

	if err = k.keys.SetKey(rawKey); err != nil {
		k.logger.Err(err).Str("func", "keySession.Start").Msg("error importing encryption key")
		return fmt.Errorf("%w: %w", ErrKeySessionFailed, err)
	}

	k.logger.Debug().Str("func", "keySession.Start").Msg("encryption key activated")
	return nil
}

func (k *keySession) End() {
	k.keys.ClearKey()
}
