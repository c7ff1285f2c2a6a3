package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

type httpBlobFetcher struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPBlobFetcher constructs a [BlobFetcher]. Signed URLs are absolute,
// so the client has no base URL.
func NewHTTPBlobFetcher(adapterCfg config.Adapter, logger *logger.Logger) BlobFetcher {
	return &httpBlobFetcher{
		client: utils.NewHTTPClient(adapterCfg.RequestTimeout),
		logger: logger,
	}
}

func (h *httpBlobFetcher) Fetch(ctx context.Context, signedURL string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(signedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
