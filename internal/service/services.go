package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// Services is the client-side service graph.
type Services struct {
	KeyManager         crypto.KeyManager
	KeySession         KeySession
	NoteContentService NoteContentService
}

// NewServices builds the key manager, codec and content pipeline on top of
// storages and the outbound adapters.
func NewServices(storages *store.Storages, keySource adapter.KeySource, fetcher adapter.BlobFetcher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	keys := crypto.NewKeyManager()

	var codecOpts []crypto.CodecOption
	if cfg.App.StrictPayloadFormat {
		codecOpts = append(codecOpts, crypto.WithStrictFormat())
	}
	codec := crypto.NewPayloadCodec(keys, codecOpts...)

	verifier := NewUploadVerifier(storages.BlobStore, fetcher, cfg.Storage.Blob.SignedURLTTL)

	content := NewNoteContentService(
		storages.NoteRepository,
		storages.BlobStore,
		storages.Resolver,
		keys,
		codec,
		verifier,
		fetcher,
		utils.NewUUIDGenerator(),
		cfg.Storage.Blob.SignedURLTTL,
		logger,
	)

	return &Services{
		KeyManager:         keys,
		KeySession:         NewKeySession(keySource, keys, logger),
		NoteContentService: NewNoteValidationService().Wrap(content),
	}
}
