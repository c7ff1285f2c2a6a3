package handler

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler/http"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transports of the blob server. Only the filesystem
// blob store needs one, so blobs is the FS store of the storages.
func NewHandlers(blobs http.BlobReader, version string, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" || blobs == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(blobs, version, logger),
	}, nil
}
