package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-city-guide/internal/adapter"
	"github.com/MKhiriev/go-city-guide/internal/config"
	"github.com/MKhiriev/go-city-guide/internal/handler"
	"github.com/MKhiriev/go-city-guide/internal/logger"
	"github.com/MKhiriev/go-city-guide/internal/security"
	"github.com/MKhiriev/go-city-guide/internal/server"
	"github.com/MKhiriev/go-city-guide/internal/service"
	"github.com/MKhiriev/go-city-guide/internal/store"
	"github.com/MKhiriev/go-city-guide/internal/workers"
	"github.com/MKhiriev/go-city-guide/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("go-city-guide-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// a version from the environment wins over the linked one
	if cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("log_level", cfg.App.LogLevel).
		Str("version", cfg.App.Version).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(ctx); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	denylist := security.NewDenylist()

	services, err := service.NewServices(
		store.NewRepositories(db, log),
		adapter.NewPlacesAdapter(cfg.Places, log),
		denylist,
		*cfg,
		log,
	)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	workers.NewWorkers(denylist, cfg.Workers, log).Run(ctx)

	return srv.RunServer(ctx)
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = config.DefaultVersion
	}

	if buildDate == "" {
		buildDate = config.DefaultVersion
	}

	if buildCommit == "" {
		buildCommit = config.DefaultVersion
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
