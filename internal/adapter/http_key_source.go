package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// notesKeyPath is the key service endpoint of the notes encryption key.
const notesKeyPath = "/api/keys/notes"

type httpKeySource struct {
	client *utils.HTTPClient
	token  string
	logger *logger.Logger
}

// NewHTTPKeySource constructs a [KeySource] that asks the key service at
// appCfg.KeyServiceURL, authenticating with appCfg.AuthToken.
func NewHTTPKeySource(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (KeySource, error) {
	baseURL, err := normalizeBaseURL(appCfg.KeyServiceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid key service url: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpKeySource{
		client: client,
		token:  strings.TrimSpace(appCfg.AuthToken),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchKey implements [KeySource]. It GETs /api/keys/notes and expects
// {"key": "<base64>"}.
func (h *httpKeySource) FetchKey(ctx context.Context) (string, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if h.token != "" {
		req.SetAuthToken(h.token)
	}

	resp, err := req.Get(notesKeyPath)
	if err != nil {
		h.logger.Err(err).Str("func", "httpKeySource.FetchKey").Msg("key request failed")
		return "", fmt.Errorf("key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("func", "httpKeySource.FetchKey").Msg("key service rejected request")
		return "", err
	}

	var keyResp models.KeyResponse
	if err = json.Unmarshal(resp.Body(), &keyResp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidKeyResponse, err)
	}
	if keyResp.Key == "" {
		return "", fmt.Errorf("%w: empty key", ErrInvalidKeyResponse)
	}

	return keyResp.Key, nil
}
