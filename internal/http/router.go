package http

import (
	"log/slog"
	"net/http"

	"libmgmt/internal/httpx"
	"libmgmt/internal/usecase"
)

// RouterConfig holds the optional pieces of the HTTP stack. Nil fields are
// left out of the middleware chain.
type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *httpx.Metrics
	RateLimiter    *httpx.RateLimiter
	AllowedOrigins []string
	EnableHSTS     bool
	MaxBodyBytes   int64
}

// NewRouter wires the book endpoints, health check and metrics behind the
// shared middleware chain.
func NewRouter(lib usecase.Library, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	books := NewBookHandler(lib)

	router := http.NewServeMux()
	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.Metrics != nil {
		router.Handle("GET /metrics", cfg.Metrics.Handler())
	}

	router.HandleFunc("GET /books", books.List)
	router.HandleFunc("POST /books", books.Create)
	router.HandleFunc("GET /books/{isbn}", books.Get)
	router.HandleFunc("PUT /books/{isbn}", books.Update)
	router.HandleFunc("DELETE /books/{isbn}", books.Delete)

	middlewares := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(logger),
		httpx.AccessLogMiddleware(logger),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
	}
	if cfg.RateLimiter != nil {
		middlewares = append(middlewares, cfg.RateLimiter.Middleware)
	}
	middlewares = append(middlewares, httpx.RequestSizeLimitMiddleware(maxBody))
	// metrics must sit next to the mux to see the matched pattern
	if cfg.Metrics != nil {
		middlewares = append(middlewares, cfg.Metrics.Middleware)
	}

	return httpx.Chain(router, middlewares...)
}
