// Package http exposes the wishlog core over a local JSON API. The
// web client is a separate artifact; everything here is transport.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"wishlog/internal/backend"
	"wishlog/internal/log"
	"wishlog/internal/metadata"
	"wishlog/internal/middleware/ratelimit"
	"wishlog/internal/middleware/security"
	"wishlog/internal/store"
)

type Server struct {
	http.Server

	store       *store.Store
	storage     backend.Storage
	fetcher     *metadata.Fetcher
	rateLimiter *ratelimit.Limiter
}

// Options carries the tunables the server does not own.
type Options struct {
	RequestsPerMinute int
}

func NewServer(addr string, st *store.Store, storage backend.Storage, fetcher *metadata.Fetcher, opts Options) *Server {
	s := &Server{
		store:   st,
		storage: storage,
		fetcher: fetcher,
		rateLimiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: opts.RequestsPerMinute,
		}),
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(requestLogger)
	r.Use(security.Middleware(security.DefaultHeadersConfig()))

	r.Get("/healthz", handleHealth)
	r.Get("/readyz", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.rateLimiter.Middleware)

		r.Get("/items", s.handleListItems)
		r.Post("/items", s.handleCreateItem)
		r.Put("/items/{id}", s.handleUpdateItem)
		r.Delete("/items/{id}", s.handleDeleteItem)

		r.Post("/items/import", s.handleImport)
		r.Get("/export", s.handleExport)

		r.Get("/analytics", s.handleAnalytics)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handlePutSettings)

		r.Get("/metadata", s.handleMetadata)
	})

	s.Server = http.Server{
		Addr:    addr,
		Handler: r,

		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}
	return s
}

// Close stops background helpers along with the listener.
func (s *Server) Close() error {
	s.rateLimiter.Stop()
	return s.Server.Close()
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.Ping(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Readiness check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// requestLogger logs each request with a generated id and timing.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		slog.InfoContext(r.Context(), "HTTP request",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatusCode, ww.Status(),
			log.FieldDuration, time.Since(start).Milliseconds(),
			log.FieldClientIP, ratelimit.ClientIP(r),
		)
	})
}

// Shutdown drains in-flight requests within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.rateLimiter.Stop()
	return s.Server.Shutdown(ctx)
}
