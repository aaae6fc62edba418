// Package server exposes the design engine over HTTP and a websocket
// session for live editing.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ChicagoDave/greenbuild/internal/config"
	"github.com/ChicagoDave/greenbuild/internal/logging"
	"github.com/ChicagoDave/greenbuild/internal/observability"
	"github.com/ChicagoDave/greenbuild/pkg/catalog"
)

const shutdownTimeout = 10 * time.Second

// Server is the greenbuild HTTP API.
type Server struct {
	config   *config.Config
	logger   zerolog.Logger
	catalog  *catalog.Catalog
	recorder *observability.Recorder
	gatherer prometheus.Gatherer
	limiter  *RateLimiter
	router   *chi.Mux
}

// New creates a server. Collectors are registered on reg and served from
// /metrics.
func New(cfg *config.Config, logger zerolog.Logger, cat *catalog.Catalog, reg *prometheus.Registry) *Server {
	s := &Server{
		config:   cfg,
		logger:   logging.Component(logger, "server"),
		catalog:  cat,
		recorder: observability.New(reg),
		gatherer: reg,
	}
	s.limiter = NewRateLimiter(cfg.RateLimit, s.logger)
	s.setupRouter()
	return s
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.limiter.Middleware)

		r.Get("/catalog", s.handleCatalog)
		r.Get("/solar", s.handleSolar)
		r.Post("/metrics", s.handleMetrics)
		r.Post("/scene", s.handleScene)
		r.Post("/charts", s.handleCharts)
		r.Post("/report", s.handleReport)
		r.Get("/session", s.handleSession)
	})

	s.router = r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	go s.limiter.Cleanup(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", srv.Addr).Msg("greenbuild server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
