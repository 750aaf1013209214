// Command maestro serves card, fan and album renders over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/maestro"
	"github.com/gogpu/maestro/internal/cache"
	"github.com/gogpu/maestro/internal/config"
	"github.com/gogpu/maestro/internal/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML configuration file (defaults apply when empty)")
		addr       = flag.String("addr", "", "listen address, overrides the configuration")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("failed to load configuration", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *debug {
		cfg.Log.Level = "debug"
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	maestro.SetLogger(logger)

	slog.Info("starting maestro",
		"version", maestro.Version,
		"config", *configPath,
		"addr", cfg.Addr)

	// The catalog is loaded once; a broken asset set is fatal.
	catalog, err := maestro.LoadCatalog(cfg.FramesDir)
	if err != nil {
		slog.Error("failed to load frame catalog", "dir", cfg.FramesDir, "error", err)
		os.Exit(1)
	}

	renderer := maestro.New(catalog,
		maestro.DirPortraits{Root: cfg.PortraitsDir, CustomRoot: cfg.CustomPortraitsDir},
		maestro.WithWorkers(cfg.Workers),
		maestro.WithBatchLimit(cfg.BatchLimit),
		maestro.WithFanAngle(cfg.Fan.Angle),
		maestro.WithFanRadius(cfg.Fan.Radius),
		maestro.WithAlbumPadding(cfg.Album.Padding),
		maestro.WithModifier(cfg.Modifier),
	)
	defer renderer.Close()

	handler := server.New(renderer,
		cache.NewResults(cfg.RendersDir, cfg.MemoryCacheEntries),
		server.Config{
			RenderTimeout: cfg.RenderTimeout,
			MaxBatch:      cfg.MaxBatch,
			Compression:   cfg.Compression(),
			AuthToken:     cfg.AuthToken,
		},
		logger)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server ready", "addr", cfg.Addr, "frames", len(catalog.FrameTypes()))
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal")
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			renderer.Close()
			os.Exit(1)
		}
	}

	slog.Info("shutting down gracefully", "timeout", cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
		renderer.Close()
		os.Exit(1)
	}

	slog.Info("maestro stopped")
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
