package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type uploadVerifier struct {
	blobStore store.BlobStore
	fetcher   adapter.BlobFetcher
	ttl       time.Duration
}

// NewUploadVerifier returns an [UploadVerifier] that reads blobs back through
// signed URLs valid for ttl.
func NewUploadVerifier(blobStore store.BlobStore, fetcher adapter.BlobFetcher, ttl time.Duration) UploadVerifier {
	return &uploadVerifier{
		blobStore: blobStore,
		fetcher:   fetcher,
		ttl:       ttl,
	}
}

func (u *uploadVerifier) Verify(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	signedURL, err := u.blobStore.CreateSignedURL(ctx, path, u.ttl)
	if err == nil && signedURL == "" {
		err = errors.New("blob store returned an empty signed url")
	}
	if err != nil {
		log.Err(err).Str("func", "uploadVerifier.Verify").Str("path", path).Msg("error creating signed url")
		return &VerificationFailedError{Path: path, Reason: ReasonSignedURL, Err: err}
	}

	body, err := u.fetcher.Fetch(ctx, signedURL)
	if err != nil {
		verr := &VerificationFailedError{Path: path, Reason: ReasonFetchFailed, Err: err}

		var statusErr *adapter.StatusError
		if errors.As(err, &statusErr) {
			verr.Status = statusErr.StatusCode
		}

		log.Err(err).
			Str("func", "uploadVerifier.Verify").
			Str("path", path).
			Int("status", verr.Status).
			Msg("error fetching uploaded blob")
		return verr
	}

	if len(body) == 0 {
		log.Error().Str("func", "uploadVerifier.Verify").Str("path", path).Msg("uploaded blob is empty")
		return &VerificationFailedError{Path: path, Reason: ReasonEmptyBody}
	}

	return nil
}
