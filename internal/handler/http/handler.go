package http

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// BlobReader is the part of the filesystem blob store served over HTTP.
type BlobReader interface {
	// VerifyToken returns the object path a download token grants.
	VerifyToken(token string) (string, error)

	// Read returns the blob stored at path.
	Read(ctx context.Context, path string) ([]byte, error)
}

type Handler struct {
	blobs   BlobReader
	version string

	logger *logger.Logger
}

func NewHandler(blobs BlobReader, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		blobs:   blobs,
		version: version,
		logger:  logger,
	}
}
