// Command compositord serves the shape compositor over HTTP.
//
// Usage:
//
//	compositord -addr :8088
//	compositord -config compositord.yaml
//
// Config file:
//
//	addr: ":8088"
//	write_timeout: 30s
//	log_level: debug
//	shapes: [line, rect]
//	cache_entries: 128
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	paint "github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/compositor/remote"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		addr       = flag.String("addr", "", "listen address (overrides config)")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		log.Fatalf("Bad log level: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	paint.SetLogger(logger)

	comp, err := cfg.newCompositor()
	if err != nil {
		log.Fatalf("Bad config: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           remote.NewHandler(comp),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("compositor listening", "addr", cfg.Addr, "cache", cfg.CacheEntries)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
