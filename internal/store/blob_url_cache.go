package store

import (
	"context"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// SignedURLCache reuses signed URLs of a wrapped [BlobStore] for a short
// time. An entry never outlives half of the URL's own lifetime, so a cached
// URL always has at least ttl/2 left when handed out.
type SignedURLCache struct {
	BlobStore
	urls     *cache.Cache
	cacheTTL time.Duration
}

// NewSignedURLCache wraps store. A zero cacheTTL returns store unchanged.
func NewSignedURLCache(store BlobStore, cacheTTL time.Duration) BlobStore {
	if cacheTTL <= 0 {
		return store
	}

	return &SignedURLCache{
		BlobStore: store,
		urls:      cache.New(cacheTTL, 2*cacheTTL),
		cacheTTL:  cacheTTL,
	}
}

// Upload forwards to the wrapped store and drops cached URLs of path.
func (c *SignedURLCache) Upload(ctx context.Context, path string, data []byte, overwrite bool) error {
	if err := c.BlobStore.Upload(ctx, path, data, overwrite); err != nil {
		return err
	}

	for key := range c.urls.Items() {
		if keyPath(key) == path {
			c.urls.Delete(key)
		}
	}

	return nil
}

func (c *SignedURLCache) CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	key := cacheKey(path, ttl)
	if cached, ok := c.urls.Get(key); ok {
		return cached.(string), nil
	}

	signed, err := c.BlobStore.CreateSignedURL(ctx, path, ttl)
	if err != nil {
		return "", err
	}

	entryTTL := min(c.cacheTTL, ttl/2)
	if entryTTL > 0 {
		c.urls.Set(key, signed, entryTTL)
	}

	return signed, nil
}

func cacheKey(path string, ttl time.Duration) string {
	return ttl.String() + "|" + path
}

func keyPath(key string) string {
	_, path, _ := strings.Cut(key, "|")
	return path
}
