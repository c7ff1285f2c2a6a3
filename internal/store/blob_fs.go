package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
)

// BlobDownloadPrefix is the URL path under which the blob server serves
// filesystem blobs.
const BlobDownloadPrefix = "/blobs/"

// FSBlobStore keeps blobs as files below a root directory. Signed URLs point
// at the blob server and carry an HS256 token scoped to one path.
type FSBlobStore struct {
	root       string
	publicURL  string
	signingKey string
	logger     *logger.Logger
}

// NewFSBlobStore creates root if needed and returns a store rooted there.
func NewFSBlobStore(root, publicURL, signingKey string, log *logger.Logger) (*FSBlobStore, error) {
	if signingKey == "" {
		return nil, errors.New("filesystem blob store requires a signing key")
	}
	if err := os.MkdirAll(root, 0o700); err != nil {
		return nil, fmt.Errorf("error creating blob root %q: %w", root, err)
	}

	return &FSBlobStore{
		root:       root,
		publicURL:  strings.TrimRight(publicURL, "/"),
		signingKey: signingKey,
		logger:     log,
	}, nil
}

// Upload writes data to a temporary file next to the target and renames it
// into place, so readers never observe a partial blob.
func (s *FSBlobStore) Upload(ctx context.Context, p string, data []byte, overwrite bool) error {
	log := logger.FromContext(ctx)

	target, err := s.resolve(p)
	if err != nil {
		return err
	}

	if !overwrite {
		if _, statErr := os.Stat(target); statErr == nil {
			return fmt.Errorf("%w: %s", ErrBlobAlreadyExists, p)
		}
	}

	dir := filepath.Dir(target)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		log.Err(err).Str("func", "FSBlobStore.Upload").Str("path", p).Msg("error creating blob directory")
		return fmt.Errorf("error creating blob directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "FSBlobStore.Upload").Str("path", p).Msg("error creating temp file")
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing blob: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing blob: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("error setting blob permissions: %w", err)
	}

	if err = os.Rename(tmpName, target); err != nil {
		log.Err(err).Str("func", "FSBlobStore.Upload").Str("path", p).Msg("error moving blob into place")
		return fmt.Errorf("error moving blob into place: %w", err)
	}

	return nil
}

// CreateSignedURL returns {publicURL}/blobs/{path}?token={jwt} with path
// escaped.
func (s *FSBlobStore) CreateSignedURL(ctx context.Context, p string, ttl time.Duration) (string, error) {
	target, err := s.resolve(p)
	if err != nil {
		return "", err
	}
	if _, err = os.Stat(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrBlobNotFound, p)
		}
		return "", fmt.Errorf("error reading blob info: %w", err)
	}

	token, err := utils.GenerateBlobURLToken(p, ttl, s.signingKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "FSBlobStore.CreateSignedURL").Str("path", p).Msg("error signing blob url")
		return "", err
	}

	u, err := url.Parse(s.publicURL)
	if err != nil {
		return "", fmt.Errorf("error building signed url: %w", err)
	}
	// Path is unescaped; String() escapes ids holding '?', '#' or '%'
	u.Path = strings.TrimRight(u.Path, "/") + BlobDownloadPrefix + p
	u.RawPath = ""
	u.RawQuery = url.Values{"token": []string{token.String()}}.Encode()

	return u.String(), nil
}

// Read returns the blob stored at p.
func (s *FSBlobStore) Read(_ context.Context, p string) ([]byte, error) {
	target, err := s.resolve(p)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrBlobNotFound, p)
		}
		return nil, fmt.Errorf("error reading blob: %w", err)
	}

	return data, nil
}

// VerifyToken checks a download token and returns the path it grants.
func (s *FSBlobStore) VerifyToken(token string) (string, error) {
	parsed, err := utils.ValidateBlobURLToken(token, s.signingKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBlobToken, err)
	}

	if _, err = s.resolve(parsed.Path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBlobToken, err)
	}

	return parsed.Path, nil
}

func (s *FSBlobStore) resolve(p string) (string, error) {
	if err := validateBlobPath(p); err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(p)), nil
}

func validateBlobPath(p string) error {
	switch {
	case p == "",
		strings.HasPrefix(p, "/"),
		strings.Contains(p, `\`),
		path.Clean(p) != p:
		return fmt.Errorf("%w: %q", ErrInvalidBlobPath, p)
	}

	for _, segment := range strings.Split(p, "/") {
		if segment == ".." || segment == "." {
			return fmt.Errorf("%w: %q", ErrInvalidBlobPath, p)
		}
	}

	return nil
}
