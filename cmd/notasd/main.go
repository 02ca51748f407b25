package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/notasapp/go-notas/internal/devserver"
	"github.com/notasapp/go-notas/internal/logger"
)

func main() {
	addr := flag.String("a", ":8080", "listen address")
	signKey := flag.String("k", "dev-only-signing-key", "JWT signing key")
	logLevel := flag.String("log-level", "debug", "zerolog level")
	flag.Parse()

	log := logger.NewLogger("notasd", *logLevel)

	srv := &http.Server{
		Addr:    *addr,
		Handler: devserver.New(*signKey, log).Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Info().Str("addr", *addr).Msg("development notes server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}
	log.Info().Msg("server stopped")
}
