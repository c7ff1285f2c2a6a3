package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages bundles the metadata repository, the blob store and the address
// resolver of one configured storage stack.
type Storages struct {
	DB             *DB
	NoteRepository NoteRepository
	BlobStore      BlobStore
	Resolver       *AddressResolver
}

// NewDB opens the metadata database selected by cfg.Driver.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DBDriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DBDriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDBDriver, cfg.Driver)
	}
}

// NewBlobStore constructs the blob backend selected by cfg.Type. The
// returned store is wrapped in a [SignedURLCache] when cfg.URLCacheTTL > 0.
func NewBlobStore(ctx context.Context, cfg config.Blob, log *logger.Logger) (BlobStore, error) {
	var (
		blobStore BlobStore
		err       error
	)

	switch cfg.Type {
	case config.BlobTypeFS:
		blobStore, err = NewFSBlobStore(cfg.Dir, cfg.PublicURL, cfg.SigningKey, log)
	case config.BlobTypeMinIO:
		blobStore, err = NewMinIOBlobStore(ctx, cfg, log)
	case config.BlobTypeS3:
		blobStore, err = NewS3BlobStore(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlobType, cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	return NewSignedURLCache(blobStore, cfg.URLCacheTTL), nil
}

// NewStorages opens the database, applies migrations and builds the blob
// store. The caller owns Storages.DB and must close it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	blobStore, err := NewBlobStore(ctx, cfg.Blob, log)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Str("blob_type", cfg.Blob.Type).Msg("error creating blob store")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		DB:             db,
		NoteRepository: NewNoteRepository(db, log),
		BlobStore:      blobStore,
		Resolver:       NewAddressResolver(cfg.Blob.Bucket),
	}, nil
}
