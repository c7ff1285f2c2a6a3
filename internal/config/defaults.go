package config

import "time"

// defaultConfig returns the values used for every field no other source set.
// It is merged last, so it never overrides env, flags or JSON.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver: DBDriverSQLite,
				DSN:    "notes.db",
			},
			Blob: Blob{
				Type:         BlobTypeFS,
				Bucket:       "notes",
				Dir:          "blobs",
				PublicURL:    "http://localhost:8081",
				SignedURLTTL: time.Minute,
				URLCacheTTL:  20 * time.Second,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8081",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			MigrationInterval: 5 * time.Minute,
			MigrationBatch:    50,
		},
	}
}
