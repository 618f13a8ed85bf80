package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-library-api/internal/config"
	"github.com/MKhiriev/go-library-api/internal/crypto"
	"github.com/MKhiriev/go-library-api/internal/handler"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/server"
	"github.com/MKhiriev/go-library-api/internal/service"
	"github.com/MKhiriev/go-library-api/internal/session"
	"github.com/MKhiriev/go-library-api/internal/store"
	"github.com/MKhiriev/go-library-api/internal/workers"
	"github.com/MKhiriev/go-library-api/models"
)

// set with -ldflags "-X main.buildVersion=..."
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const loggerRole = "library-server"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(loggerRole).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(loggerRole, logger.WithLevel(cfg.App.LogLevel))
	log.Info().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("starting library API")
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	hasher := crypto.NewPasswordHasher(crypto.DefaultCost)
	storages := store.NewStorages(db, hasher, log)

	services, err := service.NewServices(storages, hasher, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	sessions := session.NewMemoryStore(cfg.OAuth.SessionTTL, log)

	handlers, err := handler.NewHandlers(services, sessions, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	group := workers.NewWorkers()
	group.Add(workers.NewSessionSweeper(sessions, cfg.Workers.SessionSweepInterval, group, log))
	group.Run(ctx)

	if err = srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	// stop the workers too when the server failed on its own
	stop()
	group.Wait()
}
