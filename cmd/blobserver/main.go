package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/server"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-note-blobserver")
	cfg, _, err := config.GetStructuredConfig("blobserver", os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid blob server configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("blob_dir", cfg.Storage.Blob.Dir).
		Msg("received configs")

	blobs, err := store.NewFSBlobStore(cfg.Storage.Blob.Dir, cfg.Storage.Blob.PublicURL, cfg.Storage.Blob.SigningKey, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob store")
	}

	handlers, err := handler.NewHandlers(blobs, buildVersion, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
