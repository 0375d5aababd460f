// Command demo-backend serves the client layer's REST surface from the
// seeded in-memory fixture store. It exists so frontends and the live
// service modules have a faithful local backend to develop against.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoomLink-Network/client_layer/internal/app"
	"github.com/RoomLink-Network/client_layer/internal/config"
	"github.com/RoomLink-Network/client_layer/internal/httpapi"
	"github.com/RoomLink-Network/client_layer/internal/metrics"
	"github.com/RoomLink-Network/client_layer/pkg/logger"
)

func main() {
	log := logger.NewDefault("demo-backend")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("load configuration")
		os.Exit(1)
	}
	// The demo backend is the fixture side of the client layer. Pointing
	// it at itself over HTTP would recurse, so force the memory store.
	cfg.UseBackend = false

	application, err := app.New(cfg)
	if err != nil {
		log.WithError(err).Error("wire application")
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", httpapi.New(application))
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("demo backend listening")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server failed")
			os.Exit(1)
		}
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.WithError(err).Error("graceful shutdown failed")
			os.Exit(1)
		}
	}
}
