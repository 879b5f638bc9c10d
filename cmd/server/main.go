package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/adapter"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/config"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/handler"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/server"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/service"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/store"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("cms-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.LogLevel != "" && !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	if cfg.App.Version == "" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	mailer, err := adapter.NewMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	mailWorker := workers.NewMailWorker(mailer, cfg.Workers, cfg.Mail, log)
	backgroundWorkers := workers.NewWorkers(mailWorker)
	backgroundWorkers.Run(ctx)
	defer backgroundWorkers.Stop()

	services, err := service.NewServices(storages, mailWorker, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
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
