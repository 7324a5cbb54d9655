package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/statcalc/internal/api/http"
	"github.com/GriffinCanCode/statcalc/internal/api/middleware"
	"github.com/GriffinCanCode/statcalc/internal/config"
	"github.com/GriffinCanCode/statcalc/internal/infrastructure/logging"
	"github.com/GriffinCanCode/statcalc/internal/infrastructure/monitoring"
	mathProvider "github.com/GriffinCanCode/statcalc/internal/providers/math"
	"github.com/GriffinCanCode/statcalc/internal/service"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests
const ShutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stdout"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return New(cfg, logger), nil
}

// New assembles a server around an existing logger
func New(cfg *config.Config, logger *logging.Logger) *Server {
	logger.Info("Initializing statcalc server",
		zap.String("port", cfg.Server.Port),
		zap.Float64("midpoint_width", cfg.Quadrature.MidpointWidth),
		zap.Float64("trapezoid_width", cfg.Quadrature.TrapezoidWidth),
		zap.Int("max_samples", cfg.Quadrature.MaxSamples),
	)

	metrics := monitoring.NewMetrics()

	serviceRegistry := service.NewRegistry()
	registerProviders(serviceRegistry, cfg, logger, metrics)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger.Named("access")))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))

		if cfg.RateLimit.GlobalRPS > 0 {
			global := middleware.RateLimitConfig{
				RequestsPerSecond: cfg.RateLimit.GlobalRPS,
				Burst:             cfg.RateLimit.GlobalBurst,
			}
			if global.Burst <= 0 {
				global.Burst = global.RequestsPerSecond
			}
			logger.Info("Global rate limiting enabled",
				zap.Int("rps", global.RequestsPerSecond),
				zap.Int("burst", global.Burst),
			)
			router.Use(middleware.GlobalRateLimit(global))
		}
	}

	handlers := apihttp.NewHandlers(serviceRegistry, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.GET("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// Metrics endpoints
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/metrics/json", handlers.MetricsSnapshot)

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: serviceRegistry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the service registry
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Server.Host, s.config.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, failed := <-errCh:
		if failed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Close flushes the logger
func (s *Server) Close() error {
	_ = s.logger.Sync()
	return nil
}

func registerProviders(registry *service.Registry, cfg *config.Config, logger *logging.Logger, metrics *monitoring.Metrics) {
	provider := mathProvider.NewProvider(cfg.Quadrature, logger, metrics)
	if err := registry.Register(provider); err != nil {
		logger.Warn("Failed to register math provider", zap.Error(err))
		return
	}
	logger.Info("Registered provider", zap.String("service", provider.Definition().ID))
}
