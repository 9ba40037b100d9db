package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/domgen/internal/config"
	"github.com/vango-dev/domgen/internal/telemetry"
	"github.com/vango-dev/domgen/pkg/compile"
)

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 10 * time.Second

// Service is the compile service.
type Service struct {
	cfg      *config.Config
	logger   *slog.Logger
	tracer   trace.Tracer
	registry *prometheus.Registry
	metrics  *telemetry.Metrics
	upgrader websocket.Upgrader
	router   chi.Router

	mu        sync.Mutex
	compilers map[compile.Options]*compile.Compiler

	httpServer *http.Server
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTracer sets the tracer handed to every compiler.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithRegistry sets the registry that metrics are registered with and
// /metrics serves.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Service) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// New creates a Service for cfg.
func New(cfg *config.Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		cfg:       cfg,
		logger:    slog.Default(),
		tracer:    telemetry.Tracer(),
		registry:  prometheus.NewRegistry(),
		compilers: make(map[compile.Options]*compile.Compiler),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "service")
	s.metrics = telemetry.NewMetrics(telemetry.WithRegistry(s.registry))

	if _, err := s.compiler(cfg); err != nil {
		return nil, err
	}
	s.router = s.routes()
	return s, nil
}

func (s *Service) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/v1/compile", s.handleCompile)
	r.Get("/v1/stream", s.handleStream)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	return r
}

// Handler returns the HTTP handler serving every route.
func (s *Service) Handler() http.Handler {
	return s.router
}

// compiler returns the compiler for cfg's options, creating it on first use.
func (s *Service) compiler(cfg *config.Config) (*compile.Compiler, error) {
	opts := cfg.CompileOptions()

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.compilers[opts]; ok {
		return c, nil
	}
	c, err := compile.New(opts,
		compile.WithLogger(s.logger),
		compile.WithTracer(s.tracer),
		compile.WithObserver(s.metrics),
	)
	if err != nil {
		return nil, err
	}
	s.compilers[opts] = c
	return c, nil
}

// Run serves on the configured address until ctx is done, then shuts down
// gracefully.
func (s *Service) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Serve.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("service starting", "address", s.cfg.Serve.Addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Service) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("service shutdown complete")
	return nil
}
