package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

const (
	testSigningKey = "test-signing-key"
	testPublicURL  = "http://blobs.test"
	testBlobPath   = "user-1/note-1.md"
)

func newTestStore(t *testing.T, publicURL string) *store.FSBlobStore {
	t.Helper()
	s, err := store.NewFSBlobStore(filepath.Join(t.TempDir(), "blobs"), publicURL, testSigningKey, logger.Nop())
	require.NoError(t, err)
	return s
}

// signedTarget uploads data and returns the request target (path and query)
// of its signed URL.
func signedTarget(t *testing.T, s *store.FSBlobStore, path string, data []byte) string {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Upload(ctx, path, data, true))

	signed, err := s.CreateSignedURL(ctx, path, time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(signed)
	require.NoError(t, err)
	return u.RequestURI()
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func TestHandler_DownloadBlob(t *testing.T) {
	s := newTestStore(t, testPublicURL)
	h := NewHandler(s, "1.0.0", logger.Nop())
	target := signedTarget(t, s, testBlobPath, []byte("enc:v1:payload"))

	rr := serve(h, httptest.NewRequest(http.MethodGet, target, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "enc:v1:payload", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "private, no-store", rr.Header().Get("Cache-Control"))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestHandler_DownloadBlob_ReservedCharactersInIDs(t *testing.T) {
	srv := httptest.NewUnstartedServer(nil)
	s := newTestStore(t, "http://"+srv.Listener.Addr().String())
	h := NewHandler(s, "", logger.Nop())
	srv.Config.Handler = h.Init()
	srv.Start()
	defer srv.Close()

	fetcher := adapter.NewHTTPBlobFetcher(config.Adapter{RequestTimeout: time.Second}, logger.Nop())

	for _, id := range []string{"a b", "q?1", "h#1", "p%1", "pct%2F", "semi;colon"} {
		t.Run(id, func(t *testing.T) {
			path := "user?1/" + id + ".md"
			body := []byte("hello " + id)

			rr := serve(h, httptest.NewRequest(http.MethodGet, signedTarget(t, s, path, body), nil))
			assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.Equal(t, string(body), rr.Body.String())

			signed, err := s.CreateSignedURL(context.Background(), path, time.Minute)
			require.NoError(t, err)
			got, err := fetcher.Fetch(context.Background(), signed)
			require.NoError(t, err)
			assert.Equal(t, body, got)
		})
	}
}

func TestHandler_DownloadBlob_OverEscapedPath(t *testing.T) {
	s := newTestStore(t, testPublicURL)
	h := NewHandler(s, "", logger.Nop())
	target, err := url.Parse(signedTarget(t, s, testBlobPath, []byte("x")))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/blobs/user-1/%6Eote-1.md?"+target.RawQuery, nil)
	rr := serve(h, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "x", rr.Body.String())
}

func TestHandler_DownloadBlob_BearerHeader(t *testing.T) {
	s := newTestStore(t, testPublicURL)
	h := NewHandler(s, "", logger.Nop())
	require.NoError(t, s.Upload(context.Background(), testBlobPath, []byte("x"), true))

	token, err := utils.GenerateBlobURLToken(testBlobPath, time.Minute, testSigningKey)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, store.BlobDownloadPrefix+testBlobPath, nil)
	req.Header.Set("Authorization", "Bearer "+token.String())

	rr := serve(h, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "x", rr.Body.String())
}

func TestHandler_DownloadBlob_Rejections(t *testing.T) {
	s := newTestStore(t, testPublicURL)
	h := NewHandler(s, "", logger.Nop())
	require.NoError(t, s.Upload(context.Background(), testBlobPath, []byte("x"), true))
	require.NoError(t, s.Upload(context.Background(), "user-2/note-9.md", []byte("y"), true))

	otherToken, err := utils.GenerateBlobURLToken("user-2/note-9.md", time.Minute, testSigningKey)
	require.NoError(t, err)
	missingToken, err := utils.GenerateBlobURLToken("user-1/gone.md", time.Minute, testSigningKey)
	require.NoError(t, err)
	foreignToken, err := utils.GenerateBlobURLToken(testBlobPath, time.Minute, "another-key")
	require.NoError(t, err)

	tests := []struct {
		name       string
		target     string
		header     string
		wantStatus int
	}{
		{
			name:       "no token",
			target:     store.BlobDownloadPrefix + testBlobPath,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed authorization header",
			target:     store.BlobDownloadPrefix + testBlobPath,
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			target:     store.BlobDownloadPrefix + testBlobPath + "?token=abc",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "token signed with another key",
			target:     store.BlobDownloadPrefix + testBlobPath + "?token=" + foreignToken.String(),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "token for another path",
			target:     store.BlobDownloadPrefix + testBlobPath + "?token=" + otherToken.String(),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "blob deleted after signing",
			target:     store.BlobDownloadPrefix + "user-1/gone.md?token=" + missingToken.String(),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rr := serve(h, req)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
		})
	}
}

func TestHandler_UnknownMethodsAndRoutes(t *testing.T) {
	s := newTestStore(t, testPublicURL)
	h := NewHandler(s, "1.2.3", logger.Nop())
	target := signedTarget(t, s, testBlobPath, []byte("x"))

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{name: "post to blob", method: http.MethodPost, target: target, wantStatus: http.StatusNotFound},
		{name: "delete blob", method: http.MethodDelete, target: target, wantStatus: http.StatusNotFound},
		{name: "post to version", method: http.MethodPost, target: "/api/version", wantStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, target: "/api/notes", wantStatus: http.StatusNotFound},
		{name: "version", method: http.MethodGet, target: "/api/version", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(h, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.Equal(t, "1.2.3", rr.Body.String())
}

func TestHandler_GZip(t *testing.T) {
	s := newTestStore(t, testPublicURL)
	h := NewHandler(s, "", logger.Nop())
	body := bytes.Repeat([]byte("note body "), 100)
	target := signedTarget(t, s, testBlobPath, body)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rr := serve(h, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestHandler_TraceID(t *testing.T) {
	h := NewHandler(newTestStore(t, testPublicURL), "", logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	assert.Equal(t, "trace-123", serve(h, req).Header().Get(traceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, string(bytes.Repeat([]byte("a"), maxTraceIDLength+1)))
	got := serve(h, req).Header().Get(traceIDHeader)
	assert.NotEqual(t, req.Header.Get(traceIDHeader), got)
	assert.NotEmpty(t, got)
}

// TestHandler_SignedURLRoundTrip fetches a signed URL over a real listener
// with the same client the upload verifier uses.
func TestHandler_SignedURLRoundTrip(t *testing.T) {
	srv := httptest.NewUnstartedServer(nil)
	s := newTestStore(t, "http://"+srv.Listener.Addr().String())
	srv.Config.Handler = NewHandler(s, "", logger.Nop()).Init()
	srv.Start()
	defer srv.Close()

	ctx := context.Background()
	require.NoError(t, s.Upload(ctx, testBlobPath, []byte("round trip"), true))
	signed, err := s.CreateSignedURL(ctx, testBlobPath, time.Minute)
	require.NoError(t, err)

	fetcher := adapter.NewHTTPBlobFetcher(config.Adapter{RequestTimeout: time.Second}, logger.Nop())

	body, err := fetcher.Fetch(ctx, signed)
	require.NoError(t, err)
	assert.Equal(t, "round trip", string(body))

	_, err = fetcher.Fetch(ctx, srv.URL+store.BlobDownloadPrefix+testBlobPath)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}
