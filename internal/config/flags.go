package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args into a fresh
// [StructuredConfig] and returns the positional arguments left over.
//
// Flags:
//
//	-a blob server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (sqlite, postgres)
//	-blob-type blob store type (fs, minio, s3)
//	-blob-bucket bucket name used in storage references
//	-blob-dir filesystem blob root
//	-blob-endpoint MinIO/S3 endpoint
//	-blob-access-key, -blob-secret-key static blob credentials
//	-blob-region S3 region
//	-blob-ssl use TLS for MinIO
//	-blob-signing-key filesystem download token key
//	-blob-public-url base URL of the blob server
//	-signed-url-ttl signed URL lifetime (e.g. "1m")
//	-url-cache-ttl signed URL cache lifetime (e.g. "20s")
//	-user-id signed-in user
//	-key-service-url key service base URL
//	-auth-token key service bearer token
//	-strict-payloads reject untagged payloads
//	-request-timeout server request timeout (e.g. "30s")
//	-adapter-timeout outbound request timeout (e.g. "10s")
//	-migration-interval legacy migration period (e.g. "5m")
//	-migration-batch notes migrated per run
//	-c/-config json file path with configs
func ParseFlags(name string, args []string) (*StructuredConfig, []string, error) {
	var serverAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Blob server net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Database driver (sqlite, postgres)")

	fs.StringVar(&cfg.Storage.Blob.Type, "blob-type", "", "Blob store type (fs, minio, s3)")
	fs.StringVar(&cfg.Storage.Blob.Bucket, "blob-bucket", "", "Blob bucket name")
	fs.StringVar(&cfg.Storage.Blob.Dir, "blob-dir", "", "Filesystem blob root directory")
	fs.StringVar(&cfg.Storage.Blob.Endpoint, "blob-endpoint", "", "MinIO/S3 endpoint")
	fs.StringVar(&cfg.Storage.Blob.AccessKey, "blob-access-key", "", "Blob store access key")
	fs.StringVar(&cfg.Storage.Blob.SecretKey, "blob-secret-key", "", "Blob store secret key")
	fs.StringVar(&cfg.Storage.Blob.Region, "blob-region", "", "S3 region")
	fs.BoolVar(&cfg.Storage.Blob.UseSSL, "blob-ssl", false, "Use TLS for MinIO")
	fs.StringVar(&cfg.Storage.Blob.SigningKey, "blob-signing-key", "", "Filesystem download token signing key")
	fs.StringVar(&cfg.Storage.Blob.PublicURL, "blob-public-url", "", "Blob server base URL")
	fs.DurationVar(&cfg.Storage.Blob.SignedURLTTL, "signed-url-ttl", 0, "Signed URL lifetime (e.g., 1m)")
	fs.DurationVar(&cfg.Storage.Blob.URLCacheTTL, "url-cache-ttl", 0, "Signed URL cache lifetime (e.g., 20s)")

	fs.StringVar(&cfg.App.UserID, "user-id", "", "Signed-in user ID")
	fs.StringVar(&cfg.App.KeyServiceURL, "key-service-url", "", "Key service base URL")
	fs.StringVar(&cfg.App.AuthToken, "auth-token", "", "Key service bearer token")
	fs.BoolVar(&cfg.App.StrictPayloadFormat, "strict-payloads", false, "Reject payloads without the enc: prefix")

	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g., 10s)")
	fs.DurationVar(&cfg.Workers.MigrationInterval, "migration-interval", 0, "Legacy migration period (e.g., 5m)")
	fs.Uint64Var(&cfg.Workers.MigrationBatch, "migration-batch", 0, "Notes migrated per run")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return &cfg, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

