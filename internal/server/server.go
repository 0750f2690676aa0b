package server

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"

	"scoreboard-service/internal/app/scores"
	"scoreboard-service/internal/cache"
	"scoreboard-service/internal/config"
	"scoreboard-service/internal/domain"
	"scoreboard-service/internal/http/handlers"
	"scoreboard-service/internal/http/middleware"
	"scoreboard-service/internal/logging"
	"scoreboard-service/internal/metrics"
	"scoreboard-service/internal/providers"
)

var metricsSetup = metrics.Setup

// Server owns the HTTP listener, the optional metrics listener, and the
// aggregation service behind them.
type Server struct {
	cfg           *config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	service       *scores.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider wiring.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg *config.Config, logger *slog.Logger, provider providers.ScoreProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = buildProvider(cfg, logger)
	}

	events, boards := buildCaches(cfg, logger)
	service := scores.New(scores.Config{
		Provider:     provider,
		Events:       events,
		Boards:       boards,
		Logger:       logger,
		Metrics:      recorder,
		FetchTimeout: cfg.FetchTimeout,
		FetchLimit:   cfg.FetchLimit,
	})

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		service:       service,
		httpServer:    buildHTTPServer(cfg, service, logger, recorder),
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// buildCaches wires the shared TTL caches, persisted to disk when a cache
// directory is configured so warm state survives restarts.
func buildCaches(cfg *config.Config, logger *slog.Logger) (*cache.Cache[[]domain.Event], *cache.Cache[scores.PerformerBoard]) {
	var eventBackend cache.Backend[[]domain.Event]
	var boardBackend cache.Backend[scores.PerformerBoard]
	if cfg.CacheDir != "" {
		eventBackend = cache.NewFSBackend[[]domain.Event](filepath.Join(cfg.CacheDir, "events"))
		boardBackend = cache.NewFSBackend[scores.PerformerBoard](filepath.Join(cfg.CacheDir, "boards"))
	}
	events := cache.New[[]domain.Event](eventBackend, cache.Config{Logger: logger})
	boards := cache.New[scores.PerformerBoard](boardBackend, cache.Config{Logger: logger})
	return events, boards
}

func buildHTTPServer(cfg *config.Config, service *scores.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(service, logger)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, handler)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg *config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.MetricsEnabled,
		Port:         cfg.MetricsPort,
		ServiceName:  cfg.OtelServiceName,
		OtlpEndpoint: cfg.OtelEndpoint,
		OtlpInsecure: cfg.OtelInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}
	return rec, metricsSrv, shutdown
}

// Run starts the HTTP and metrics servers, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}
	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "err", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "err", err)
		}
	}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "err", err)
	}
	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "err", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
