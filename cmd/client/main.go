package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/client"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
)

// logFile receives client logs; stdout carries command output.
const logFile = "notes-client.log"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-note-client", logFile)

	cfg, args, err := config.GetStructuredConfig("notes", os.Args[1:])
	if err != nil {
		exit(log, err, "error getting configs")
	}
	if len(args) > 0 && args[0] == "version" {
		printBuildInfo()
		return
	}
	if err = cfg.ValidateClient(); err != nil {
		exit(log, err, "invalid client configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		exit(log, err, "error creating storages")
	}
	defer storages.DB.Close()

	keySource, err := adapter.NewHTTPKeySource(cfg.Adapter, cfg.App, log)
	if err != nil {
		exit(log, err, "error creating key source")
	}
	fetcher := adapter.NewHTTPBlobFetcher(cfg.Adapter, log)

	services := service.NewServices(storages, keySource, fetcher, *cfg, log)
	app := client.NewApp(services, workers.NewWorkers(services, cfg.App.UserID, cfg.Workers, log), *cfg, os.Stdin, os.Stdout, log)

	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		exit(log, err, "command failed")
	}
}

// exit logs err and prints it to stderr, which the user sees while the log
// goes to a file.
func exit(log *logger.Logger, err error, msg string) {
	log.Err(err).Msg(msg)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
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
