package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		UserID              string `json:"user_id"`
		KeyServiceURL       string `json:"key_service_url"`
		AuthToken           string `json:"auth_token"`
		StrictPayloadFormat bool   `json:"strict_payload_format"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Blob struct {
			Type         string   `json:"type"`
			Bucket       string   `json:"bucket"`
			Dir          string   `json:"dir"`
			Endpoint     string   `json:"endpoint"`
			AccessKey    string   `json:"access_key"`
			SecretKey    string   `json:"secret_key"`
			Region       string   `json:"region"`
			UseSSL       bool     `json:"use_ssl"`
			SigningKey   string   `json:"signing_key"`
			PublicURL    string   `json:"public_url"`
			SignedURLTTL Duration `json:"signed_url_ttl"`
			URLCacheTTL  Duration `json:"url_cache_ttl"`
		} `json:"blob,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		MigrationInterval Duration `json:"migration_interval"`
		MigrationBatch    uint64   `json:"migration_batch"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	blob := jsonCfg.Storage.Blob
	cfg := &StructuredConfig{
		App: App{
			UserID:              jsonCfg.App.UserID,
			KeyServiceURL:       jsonCfg.App.KeyServiceURL,
			AuthToken:           jsonCfg.App.AuthToken,
			StrictPayloadFormat: jsonCfg.App.StrictPayloadFormat,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Blob: Blob{
				Type:         blob.Type,
				Bucket:       blob.Bucket,
				Dir:          blob.Dir,
				Endpoint:     blob.Endpoint,
				AccessKey:    blob.AccessKey,
				SecretKey:    blob.SecretKey,
				Region:       blob.Region,
				UseSSL:       blob.UseSSL,
				SigningKey:   blob.SigningKey,
				PublicURL:    blob.PublicURL,
				SignedURLTTL: time.Duration(blob.SignedURLTTL),
				URLCacheTTL:  time.Duration(blob.URLCacheTTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			MigrationInterval: time.Duration(jsonCfg.Workers.MigrationInterval),
			MigrationBatch:    jsonCfg.Workers.MigrationBatch,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
