package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/notasapp/go-notas/internal/adapter"
	"github.com/notasapp/go-notas/internal/config"
	"github.com/notasapp/go-notas/internal/logger"
	"github.com/notasapp/go-notas/internal/service"
	"github.com/notasapp/go-notas/internal/store"
	"github.com/notasapp/go-notas/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("notas", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("notas", cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.ServerURL,
		Timeout: cfg.Adapter.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var cache store.NotesCache
	if cfg.Storage.CacheFile != "" {
		db, err := store.NewConnectSQLite(ctx, cfg.Storage.CacheFile, log)
		if err != nil {
			log.Fatal().Err(err).Msg("open local cache")
		}
		defer db.Close()
		cache = store.NewNotesCacheRepository(db)
	}

	services := service.NewClientServices(serverAdapter, cache, log)
	defer services.Notes.Close()

	if cfg.Workers.RefreshInterval > 0 {
		services.Refresh.Start(ctx, cfg.Workers.RefreshInterval)
		defer services.Refresh.Stop()
	}

	ui := tui.New(services, cfg.App.GalleryDir, log)
	if err := ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("client run error")
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
