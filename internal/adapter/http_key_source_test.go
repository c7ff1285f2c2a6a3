// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

func newTestKeySource(t *testing.T, serverURL, token string) KeySource {
	t.Helper()
	ks, err := NewHTTPKeySource(
		config.Adapter{RequestTimeout: 5 * time.Second},
		config.App{KeyServiceURL: serverURL, AuthToken: token},
		logger.Nop(),
	)
	require.NoError(t, err)
	return ks
}

func TestNewHTTPKeySource_InvalidURL(t *testing.T) {
	_, err := NewHTTPKeySource(config.Adapter{}, config.App{KeyServiceURL: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL("https://keys.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://keys.example.com", got)

	_, err = normalizeBaseURL("http://")
	assert.Error(t, err)
}

func TestFetchKey_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/keys/notes", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"key":"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="}`))
	}))
	defer srv.Close()

	key, err := newTestKeySource(t, srv.URL, "session-token").FetchKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA=", key)
}

func TestFetchKey_NoTokenOmitsHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"key":"k"}`))
	}))
	defer srv.Close()

	_, err := newTestKeySource(t, srv.URL, "").FetchKey(context.Background())
	require.NoError(t, err)
}

func TestFetchKey_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantStatus int
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: "no session", wantErr: ErrUnauthorized, wantStatus: 401},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden, wantStatus: 403},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError, wantStatus: 500},
		{name: "empty key", status: http.StatusOK, body: `{"key":""}`, wantErr: ErrInvalidKeyResponse},
		{name: "not json", status: http.StatusOK, body: `key`, wantErr: ErrInvalidKeyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestKeySource(t, srv.URL, "t").FetchKey(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)

			if tt.wantStatus != 0 {
				var statusErr *StatusError
				require.True(t, errors.As(err, &statusErr))
				assert.Equal(t, tt.wantStatus, statusErr.StatusCode)
			}
		})
	}
}

func TestFetchKey_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestKeySource(t, url, "t").FetchKey(context.Background())
	assert.Error(t, err)
}
