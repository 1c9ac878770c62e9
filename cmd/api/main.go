package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"libmgmt/internal/config"
	apphttp "libmgmt/internal/http"
	"libmgmt/internal/httpx"
	"libmgmt/internal/isbn"
	"libmgmt/internal/platform/logging"
	"libmgmt/internal/store"
	"libmgmt/internal/usecase"
)

type cli struct {
	Store   config.Store   `embed:"" prefix:"store-"`
	Logging config.Logging `embed:"" prefix:"log-"`

	Addr           string   `help:"Listen address." default:":8080" env:"APP_ADDR"`
	AllowedOrigins []string `help:"Origins allowed by CORS." env:"CORS_ALLOWED_ORIGINS"`
	EnableHSTS     bool     `name:"hsts" help:"Send Strict-Transport-Security." env:"ENABLE_HSTS"`
	RateLimit      float64  `help:"Requests per second per client (0 disables)." default:"20" env:"RATE_LIMIT_RPS"`
	RateBurst      int      `help:"Burst size per client." default:"40" env:"RATE_LIMIT_BURST"`
	MaxBodyBytes   int64    `help:"Largest accepted request body." default:"1048576" env:"MAX_BODY_BYTES"`
}

func main() {
	config.LoadEnvFiles()

	var c cli
	if err := config.Parse(&c, "libmgmt-api", "HTTP API for the library book store.", os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.Init(os.Stdout, c.Logging.Level)
	if err := run(c, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(c cli, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := store.Open(ctx, c.Store, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeRepo()

	// handlers run concurrently; the in-memory store needs the lock
	lib := usecase.NewLibraryService(store.Synchronized(repo), isbn.NewValidator(), logger)

	routerCfg := apphttp.RouterConfig{
		Logger:         logger,
		Metrics:        httpx.NewMetrics(),
		AllowedOrigins: c.AllowedOrigins,
		EnableHSTS:     c.EnableHSTS,
		MaxBodyBytes:   c.MaxBodyBytes,
	}
	if c.RateLimit > 0 {
		routerCfg.RateLimiter = httpx.NewRateLimiter(ctx, c.RateLimit, c.RateBurst)
	}

	httpServer := &http.Server{
		Addr:         c.Addr,
		Handler:      apphttp.NewRouter(lib, routerCfg),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", c.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
