package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/style-keeper/internal/adapter"
	"github.com/MKhiriev/style-keeper/internal/config"
	"github.com/MKhiriev/style-keeper/internal/crypto"
	"github.com/MKhiriev/style-keeper/internal/handler"
	"github.com/MKhiriev/style-keeper/internal/logger"
	"github.com/MKhiriev/style-keeper/internal/server"
	"github.com/MKhiriev/style-keeper/internal/service"
	"github.com/MKhiriev/style-keeper/internal/store"
	"github.com/MKhiriev/style-keeper/internal/style"
	"github.com/MKhiriev/style-keeper/internal/validators"
	"github.com/MKhiriev/style-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("style-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if !cfg.App.IsProduction() {
		log.Warn().Str("environment", cfg.App.Environment).Msg("running outside production")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion
	}

	keyMode := crypto.KeyModeProduction
	if cfg.App.IsTest() {
		keyMode = crypto.KeyModeTest
	}
	key, err := crypto.LoadKey(cfg.App.StyleProfileKey, keyMode)
	if err != nil {
		log.Fatal().Err(err).Msg("style profile encryption key rejected")
	}
	if keyMode == crypto.KeyModeTest && cfg.App.StyleProfileKey == "" {
		log.Warn().Msg("using the well-known test encryption key")
	}

	codec, err := crypto.NewCodec(key, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating style profile codec")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	plans, err := adapter.NewHTTPPlanProvider(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating plan provider")
	}
	comments, err := adapter.NewHTTPCommentFetcher(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating comment fetcher")
	}

	var classifier style.ToneClassifier = style.NewLexiconClassifier()
	if cfg.App.DisableToneAnalysis {
		classifier = style.InertClassifier{}
	}

	services, err := service.NewServices(
		store.NewStorages(db, log),
		codec,
		style.NewExtractor(classifier),
		plans,
		comments,
		validators.NewStyleProfileValidator(),
		cfg.App,
		log,
	)
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

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion)
	fmt.Printf("Build date: %s\n", info.BuildDate)
	fmt.Printf("Build commit: %s\n", info.BuildCommit)
}
