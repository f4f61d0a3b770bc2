package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	appcareer "github.com/preston-bernstein/diamond-gm/internal/app/career"
	"github.com/preston-bernstein/diamond-gm/internal/app/franchise"
	"github.com/preston-bernstein/diamond-gm/internal/app/league"
	"github.com/preston-bernstein/diamond-gm/internal/archive"
	"github.com/preston-bernstein/diamond-gm/internal/config"
	domainleague "github.com/preston-bernstein/diamond-gm/internal/domain/league"
	"github.com/preston-bernstein/diamond-gm/internal/domain/teams"
	"github.com/preston-bernstein/diamond-gm/internal/engine/roster"
	httpserver "github.com/preston-bernstein/diamond-gm/internal/http"
	"github.com/preston-bernstein/diamond-gm/internal/http/handlers"
	"github.com/preston-bernstein/diamond-gm/internal/logging"
	"github.com/preston-bernstein/diamond-gm/internal/metrics"
	"github.com/preston-bernstein/diamond-gm/internal/rng"
	"github.com/preston-bernstein/diamond-gm/internal/store"
)

var (
	metricsSetup = metrics.Setup
	newSeed      = rng.NewSeed
)

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	seed          uint64
	store         *store.MemoryStore
	services      handlers.Services
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New builds the league, the services and the HTTP servers from cfg.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	if cfg.Rules == (config.Rules{}) {
		cfg.Rules = config.DefaultRules()
	}

	seed, err := resolveSeed(cfg.Sim.Seed)
	if err != nil {
		return nil, err
	}
	arc, err := archive.Open(cfg.Archive.Driver, cfg.Archive.Path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	memoryStore, services := buildServices(cfg, seed, arc, logger, recorder)
	httpSrv := buildHTTPServer(cfg, services, logger, recorder)

	logging.Info(logger, "league generated",
		logging.FieldSeed, seed,
		logging.FieldYear, memoryStore.Year(),
		logging.FieldCount, len(memoryStore.Standings()),
		"archive", cfg.Archive.Driver,
	)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		seed:          seed,
		store:         memoryStore,
		services:      services,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		services:   handlers.Services{Archive: archive.Nop{}},
		httpServer: httpSrv,
	}
}

func resolveSeed(seed uint64) (uint64, error) {
	if seed != 0 {
		return seed, nil
	}
	return newSeed()
}

// buildServices wires every service onto one locked random source so a
// fixed seed replays the same league.
func buildServices(cfg config.Config, seed uint64, arc archive.Archive, logger *slog.Logger, recorder *metrics.Recorder) (*store.MemoryStore, handlers.Services) {
	src := rng.Locked(rng.New(seed))
	gen := roster.NewGenerator(src)
	memoryStore := store.NewMemoryStore(func() *domainleague.League {
		return gen.League(teams.DefaultConfigs, cfg.Rules.SalaryCap)
	})

	franchiseSvc := franchise.NewService(memoryStore, gen, cfg.Rules,
		franchise.WithLogger(logger),
		franchise.WithMetrics(recorder),
		franchise.WithArchive(arc),
	)
	return memoryStore, handlers.Services{
		League:    league.NewService(memoryStore, franchiseSvc, logger),
		Franchise: franchiseSvc,
		Careers:   appcareer.NewService(memoryStore, src, logger),
		Archive:   arc,
	}
}

func buildHTTPServer(cfg config.Config, services handlers.Services, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(services, logger)
	router := httpserver.NewRouter(handler, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the servers, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

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
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.services.Archive != nil {
		if err := s.services.Archive.Close(); err != nil {
			logging.Error(s.logger, "archive close failed", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", "addr", srv.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
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

// Seed is the seed the league was generated from.
func (s *Server) Seed() uint64 {
	return s.seed
}
