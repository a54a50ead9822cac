// Package canceler implements app.Runner for the canceler process:
// it wires configuration, the durable store, every
// configured chain's adapter, and canceler.Engine into one long-running
// watchdog service with an observation-only HTTP surface, mirroring
// pkg/app/operator/server.go's shape for the sibling operator process.
package canceler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chainsafe/watchtower-bridge/pkg/app/httpserver"
	"github.com/chainsafe/watchtower-bridge/pkg/canceler"
	"github.com/chainsafe/watchtower-bridge/pkg/chainset"
	"github.com/chainsafe/watchtower-bridge/pkg/config"
	"github.com/chainsafe/watchtower-bridge/pkg/db"
	"github.com/chainsafe/watchtower-bridge/pkg/pgutil"
)

const (
	defaultGracefulShutdownTimeout = 30 * time.Second
	defaultHTTPMiddlewareTimeout   = 60 * time.Second
	defaultHTTPReadTimeout         = 15 * time.Second
	defaultHTTPWriteTimeout        = 15 * time.Second
	defaultHTTPIdleTimeout         = 60 * time.Second

	defaultPendingLimit = 500
)

// Server holds configuration for the canceler process.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new canceler Server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run dials every configured chain, starts the canceler engine, and
// serves the observation-only HTTP surface. It blocks until an OS
// shutdown signal is received or a fatal server error occurs.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("nil config")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting watchtower bridge canceler")

	conn, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect canceler db: %w", err)
	}
	defer func() { _ = conn.Close() }()
	store := db.NewStore(conn)
	logger.Info("database connection established")

	chains, closeChains, err := chainset.Build(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build chain set: %w", err)
	}
	defer closeChains()
	logger.Info("chain set dialed", zap.Int("chains", len(chains)))

	engine := canceler.NewEngine(cfg, chains, store, logger)
	if err := engine.Start(ctx); err != nil {
		return fmt.Errorf("start canceler engine: %w", err)
	}
	defer engine.Stop()

	router := s.newRouter(store, engine, logger)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := newHTTPServer(serverAddr, router)

	return httpserver.ServeAndWait(ctx, logger, httpServer, defaultGracefulShutdownTimeout)
}

func (s *Server) newRouter(store *db.Store, engine *canceler.Engine, logger *zap.Logger) http.Handler {
	cfg := s.cfg

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultHTTPMiddlewareTimeout))
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/status", func(w http.ResponseWriter, _ *http.Request) {
		status := http.StatusOK
		ready := engine.IsReady()
		if !ready {
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{"ready": ready, "role": "canceler"})
	})

	r.Get("/pending", handlePending(store, logger))

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("metrics enabled", zap.String("path", "/metrics"))
	}

	return r
}

func handlePending(store *db.Store, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := store.ListPending(r.Context())
		if err != nil {
			logger.Error("failed to list pending withdraws", zap.Error(err))
			http.Error(w, "failed to list pending withdraws", http.StatusInternalServerError)
			return
		}
		if len(rows) > defaultPendingLimit {
			rows = rows[:defaultPendingLimit]
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"pending": rows}); err != nil {
			logger.Error("failed to encode response", zap.Error(err))
		}
	}
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  defaultHTTPReadTimeout,
		WriteTimeout: defaultHTTPWriteTimeout,
		IdleTimeout:  defaultHTTPIdleTimeout,
	}
}
