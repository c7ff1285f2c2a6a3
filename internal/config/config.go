// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-note-keeper binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session level settings: who the user is, where the
	// encryption key comes from and how strictly payloads are parsed.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the metadata database and the blob
	// store that keeps note content.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings of the blob download server used by the
	// filesystem blob store.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of outbound HTTP calls (key service, signed
	// URL fetches).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds session level configuration.
type App struct {
	// UserID identifies the signed-in user whose notes are processed.
	// Env: APP_USER_ID
	UserID string `env:"USER_ID"`

	// KeyServiceURL is the base URL of the trusted service that hands out
	// the note encryption key (e.g. "https://api.example.com").
	// Env: APP_KEY_SERVICE_URL
	KeyServiceURL string `env:"KEY_SERVICE_URL"`

	// AuthToken is the bearer token presented to the key service.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// StrictPayloadFormat disables decryption of payloads that lack the
	// enc: prefix.
	// Env: APP_STRICT_PAYLOAD_FORMAT
	StrictPayloadFormat bool `env:"STRICT_PAYLOAD_FORMAT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the metadata database connection settings.
	DB DB `envPrefix:"DB_"`

	// Blob holds the blob store settings.
	Blob Blob `envPrefix:"BLOB_"`
}

// Supported values of [DB.Driver].
const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

// DB holds connection settings for the metadata database.
type DB struct {
	// Driver is either "sqlite" or "postgres".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the database connection string: a file path for SQLite or a
	// postgres:// URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Supported values of [Blob.Type].
const (
	BlobTypeFS    = "fs"
	BlobTypeMinIO = "minio"
	BlobTypeS3    = "s3"
)

// Blob holds settings of the blob store.
type Blob struct {
	// Type selects the backend: "fs", "minio" or "s3".
	// Env: STORAGE_BLOB_TYPE
	Type string `env:"TYPE"`

	// Bucket is the bucket name that appears in storage references.
	// Env: STORAGE_BLOB_BUCKET
	Bucket string `env:"BUCKET"`

	// Dir is the root directory of the filesystem backend.
	// Env: STORAGE_BLOB_DIR
	Dir string `env:"DIR"`

	// Endpoint is the MinIO endpoint (host:port) or a custom S3 endpoint URL.
	// Env: STORAGE_BLOB_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKey and SecretKey are static credentials for MinIO/S3.
	// Env: STORAGE_BLOB_ACCESS_KEY, STORAGE_BLOB_SECRET_KEY
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// Region is the S3 region.
	// Env: STORAGE_BLOB_REGION
	Region string `env:"REGION"`

	// UseSSL enables TLS for the MinIO client.
	// Env: STORAGE_BLOB_USE_SSL
	UseSSL bool `env:"USE_SSL"`

	// SigningKey signs the download tokens of the filesystem backend.
	// Env: STORAGE_BLOB_SIGNING_KEY
	SigningKey string `env:"SIGNING_KEY"`

	// PublicURL is the base URL of the blob download server
	// (e.g. "http://localhost:8081").
	// Env: STORAGE_BLOB_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// SignedURLTTL is the lifetime of signed download URLs.
	// Env: STORAGE_BLOB_SIGNED_URL_TTL
	SignedURLTTL time.Duration `env:"SIGNED_URL_TTL"`

	// URLCacheTTL bounds how long a signed URL is reused on the read path.
	// Zero disables the cache.
	// Env: STORAGE_BLOB_URL_CACHE_TTL
	URLCacheTTL time.Duration `env:"URL_CACHE_TTL"`
}

// Server holds network and timeout settings of the blob download server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8081").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of outbound HTTP calls.
type Adapter struct {
	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// MigrationInterval is the period of the legacy content migration
	// worker.
	// Env: WORKERS_MIGRATION_INTERVAL
	MigrationInterval time.Duration `env:"MIGRATION_INTERVAL"`

	// MigrationBatch is the maximum number of inline notes migrated per run.
	// Env: WORKERS_MIGRATION_BATCH
	MigrationBatch uint64 `env:"MIGRATION_BATCH"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. For every field the first non-zero value wins, in
// this order:
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Positional arguments left after flag parsing are returned alongside the
// config.
func GetStructuredConfig(name string, args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(name, args).
		withJSON().
		withDefaults()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}

	return cfg, b.args, nil
}
