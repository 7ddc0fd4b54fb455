package server

import (
	"context"
	"log/slog"
	"net/http"

	"nffl-league-service/internal/app/players"
	"nffl-league-service/internal/app/schedule"
	"nffl-league-service/internal/app/teams"
	"nffl-league-service/internal/config"
	httpserver "nffl-league-service/internal/http"
	"nffl-league-service/internal/http/handlers"
	"nffl-league-service/internal/logging"
	"nffl-league-service/internal/metrics"
	"nffl-league-service/internal/poller"
	"nffl-league-service/internal/providers"
	"nffl-league-service/internal/providers/nffl"
	"nffl-league-service/internal/referee"
	"nffl-league-service/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the assembled application: upstream client, league snapshot,
// scoring session registry, HTTP and metrics servers, and the poller.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	sessions      *referee.Registry
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	client, reads := newProviderFactory(logger, recorder).build(cfg)
	return assemble(cfg, logger, recorder, metricsSrv, metricsShutdown, client, reads)
}

// newServerWithProvider injects a caller-supplied gateway and read provider;
// used by tests to avoid real upstream traffic.
func newServerWithProvider(cfg config.Config, logger *slog.Logger, gateway refereeGateway, reads providers.LeagueProvider) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	return assemble(cfg, logger, metrics.NewRecorder(), nil, nil, gateway, reads)
}

// refereeGateway is everything a scoring session needs from the upstream:
// the authenticated mutations plus the event list read.
type refereeGateway interface {
	referee.Gateway
	referee.EventLoader
}

func assemble(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, metricsSrv httpServer, metricsShutdown func(context.Context) error, gateway refereeGateway, reads providers.LeagueProvider) *Server {
	memoryStore := store.NewMemoryStore()
	teamSvc := teams.NewService(memoryStore, reads)
	playerSvc := players.NewService(memoryStore, reads)
	scheduleSvc := schedule.NewService(memoryStore)

	sessions := referee.NewRegistry(func() *referee.Session {
		return referee.NewSession(referee.Deps{
			Gateway:         gateway,
			Matches:         reads,
			Rosters:         reads,
			Events:          gateway,
			Logger:          logger,
			ConfirmOnFinish: cfg.ConfirmOnFinish,
		})
	})

	plr := poller.New(reads, memoryStore, logger, recorder, cfg.PollInterval)

	handler := handlers.NewHandler(teamSvc, playerSvc, scheduleSvc, logger, plr.Status)
	refereeHandler := handlers.NewRefereeHandler(sessions, logger)
	router := httpserver.NewRouter(handler, refereeHandler, logger, recorder)

	srv := netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		sessions:      sessions,
		httpServer:    srv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// Run starts the poller and HTTP server, then waits for context cancellation
// to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	s.logger.Info("shutdown signal received")

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
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	s.logger.Info("shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
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

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn(name+" server failed", "error", err)
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

// compile-time check that the nffl client satisfies the gateway contract.
var _ refereeGateway = (*nffl.Client)(nil)
