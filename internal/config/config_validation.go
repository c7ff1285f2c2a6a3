// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every binary: a known database driver with a DSN and
// a known blob backend with the settings that backend needs.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Workers.MigrationInterval < 0 {
		return fmt.Errorf("%w: negative migration interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (s Storage) validate() error {
	switch s.DB.Driver {
	case DBDriverSQLite:
		if s.DB.DSN == "" || strings.Contains(s.DB.DSN, ":memory:") {
			return fmt.Errorf("%w: sqlite needs a file DSN", ErrInvalidStorageConfigs)
		}
	case DBDriverPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: postgres DSN is empty", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown db driver %q", ErrInvalidStorageConfigs, s.DB.Driver)
	}

	b := s.Blob
	if b.Bucket == "" || b.SignedURLTTL <= 0 || b.URLCacheTTL < 0 {
		return fmt.Errorf("%w: blob bucket and signed url ttl are required", ErrInvalidStorageConfigs)
	}

	switch b.Type {
	case BlobTypeFS:
		if b.Dir == "" || b.SigningKey == "" || b.PublicURL == "" {
			return fmt.Errorf("%w: fs blob store needs dir, signing key and public url", ErrInvalidStorageConfigs)
		}
	case BlobTypeMinIO:
		if b.Endpoint == "" || b.AccessKey == "" || b.SecretKey == "" {
			return fmt.Errorf("%w: minio needs endpoint and credentials", ErrInvalidStorageConfigs)
		}
	case BlobTypeS3:
		if b.Region == "" {
			return fmt.Errorf("%w: s3 needs a region", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown blob type %q", ErrInvalidStorageConfigs, b.Type)
	}

	return nil
}

// ValidateClient checks the settings only the notes client needs: the
// signed-in user, the key service and outbound timeouts.
func (cfg *StructuredConfig) ValidateClient() error {
	if cfg.App.UserID == "" || cfg.App.KeyServiceURL == "" {
		return fmt.Errorf("%w: user id and key service url are required", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.MigrationInterval == 0 || cfg.Workers.MigrationBatch == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ValidateServer checks the settings of the blob download server.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.Blob.Type != BlobTypeFS {
		return fmt.Errorf("%w: blob server only serves the fs blob store", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
