// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chainsafe/deploy-admin/pkg/app"
	apphttp "github.com/chainsafe/deploy-admin/pkg/app/http"
	"github.com/chainsafe/deploy-admin/pkg/config"
	"github.com/chainsafe/deploy-admin/pkg/credential"
	credservice "github.com/chainsafe/deploy-admin/pkg/credential/service"
	"github.com/chainsafe/deploy-admin/pkg/keys"
	"github.com/chainsafe/deploy-admin/pkg/pgutil"
	userservice "github.com/chainsafe/deploy-admin/pkg/user/service"
	configservice "github.com/chainsafe/deploy-admin/pkg/userconfig/service"
	"github.com/chainsafe/deploy-admin/pkg/userstore"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

type services struct {
	users       userservice.Service
	configs     configservice.Service
	credentials credservice.Service
}

var _ app.Runner = (*Server)(nil)

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	cipher, err := s.keyCipher(logger)
	if err != nil {
		return err
	}

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	store := userstore.NewStore(db)
	checkers := credential.NewLocal(&cfg.Credentials)

	svcs := services{
		users:       userservice.NewLog(userservice.NewService(store), logger),
		configs:     configservice.NewLog(configservice.NewService(store, cipher), logger),
		credentials: credservice.NewLog(credservice.NewService(checkers.RPC, checkers.Railway), logger),
	}

	router := s.setupRouter(svcs, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

// keyCipher seals stored credentials when a master key is configured.
// Without one, credentials are stored as plaintext.
func (s *Server) keyCipher(logger *zap.Logger) (keys.KeyCipher, error) {
	envName := s.cfg.KeyManagement.MasterKeyEnv
	masterKeyStr := os.Getenv(envName)
	if masterKeyStr == "" {
		logger.Warn("Master key not set, credentials will be stored in plaintext",
			zap.String("env", envName),
			zap.String("hint", "openssl rand -base64 32"),
		)
		return keys.PlaintextCipher{}, nil
	}

	masterKey, err := keys.MasterKeyFromBase64(masterKeyStr)
	if err != nil {
		return nil, fmt.Errorf("invalid master key in %s: %w", envName, err)
	}
	cipher, err := keys.NewMasterKeyCipher(masterKey)
	if err != nil {
		return nil, fmt.Errorf("create key cipher: %w", err)
	}
	return cipher, nil
}

func (s *Server) setupRouter(svcs services, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apphttp.Instrument)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if !s.cfg.Metrics.Disabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.Handler())
	}

	userservice.RegisterRoutes(r, svcs.users, logger)
	configservice.RegisterRoutes(r, svcs.configs, logger)
	credservice.RegisterRoutes(r, svcs.credentials, logger)

	return r
}
