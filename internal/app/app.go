package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/monjurmorshed793/banbeis-blog/internal/config"
	"github.com/monjurmorshed793/banbeis-blog/internal/domain"
	"github.com/monjurmorshed793/banbeis-blog/internal/middleware"
	"github.com/monjurmorshed793/banbeis-blog/internal/module/auth"
	"github.com/monjurmorshed793/banbeis-blog/internal/module/blog"
	"github.com/monjurmorshed793/banbeis-blog/internal/module/center"
	"github.com/monjurmorshed793/banbeis-blog/internal/module/geo"
	"github.com/monjurmorshed793/banbeis-blog/internal/module/nav"
	"github.com/monjurmorshed793/banbeis-blog/internal/module/staff"
	"github.com/monjurmorshed793/banbeis-blog/internal/module/user"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine *gin.Engine
	db     *gorm.DB
	logger *logger.Logger
	cfg    *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// migratedModels lists every persistent model for debug-mode auto migration.
var migratedModels = []any{
	&domain.User{},
	&domain.Division{},
	&domain.District{},
	&domain.Upazila{},
	&domain.Center{},
	&domain.CenterImage{},
	&domain.CenterEmployee{},
	&domain.Designation{},
	&domain.Employee{},
	&domain.Navigation{},
	&domain.Post{},
	&domain.PostComment{},
	&domain.PostPhoto{},
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, database, domain modules, middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database (includes connection pool configuration).
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. AutoMigrate in debug mode only.
	if cfg.Server.Mode == gin.DebugMode {
		if err := db.AutoMigrate(migratedModels...); err != nil {
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("auto migration completed")
	}

	// 4. Manual dependency injection: repository → service → handler → module.
	userRepo := user.NewUserRepository(db)
	userSvc := user.NewUserService(userRepo)
	userHandler := user.NewUserHandler(userSvc)

	modules := []Module{
		geo.NewModule(db),
		center.NewModule(db),
		staff.NewModule(db),
		blog.NewModule(db),
		nav.NewModule(db),
		user.NewModule(userHandler),
	}

	var authMiddleware gin.HandlerFunc
	if cfg.Auth.Enabled {
		tokenExpiry, err := time.ParseDuration(cfg.Auth.TokenExpiry)
		if err != nil {
			return nil, fmt.Errorf("parse auth.token_expiry: %w", err)
		}
		tokens := auth.NewTokenService(cfg.Auth.JWTSecret)
		authSvc := auth.NewService(tokens, userRepo, tokenExpiry)
		modules = append(modules, auth.NewModule(auth.NewHandler(authSvc)))
		authMiddleware = auth.Middleware(tokens, cfg.Auth.PublicPaths)
	}

	// 5. Create Gin engine with custom middleware (not gin.Default()).
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// Build CORS config from application settings.
	// In release mode, when no allowlist is configured, default to deny cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)
	if len(cfg.Server.CORS.AllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.Server.CORS.AllowMethods
	}
	if len(cfg.Server.CORS.AllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.Server.CORS.AllowHeaders
	}
	corsConfig.AllowCredentials = cfg.Server.CORS.AllowCredentials
	if cfg.Server.CORS.MaxAge != "" {
		// Validated as a duration; the header wants whole seconds.
		maxAge, err := time.ParseDuration(cfg.Server.CORS.MaxAge)
		if err != nil {
			return nil, fmt.Errorf("parse server.cors.max_age: %w", err)
		}
		corsConfig.MaxAge = strconv.Itoa(int(maxAge.Seconds()))
	}

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			TrustUpstream: false,
		}),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	// 6. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules:        modules,
		DB:             db,
		AuthMiddleware: authMiddleware,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine: engine,
		db:     db,
		logger: log,
		cfg:    cfg,
	}, nil
}

func resolveCORSConfig(mode string, configuredAllowOrigins []string) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(configuredAllowOrigins) > 0 {
		corsConfig.AllowOrigins = configuredAllowOrigins
		return corsConfig
	}

	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout and closes the
// database connection.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		a.logInfo("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		a.logInfo("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		// Graceful shutdown with 5-second deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logError("server shutdown error", slog.Any("error", err))
		}
	}

	// Close database connection.
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.logError("database close error", slog.Any("error", err))
			} else {
				a.logInfo("database connection closed")
			}
		}
	}

	a.logInfo("server stopped")
	if a.logger != nil {
		if err := a.logger.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}

	return runErr
}

func (a *App) logInfo(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Info(msg, args...)
		return
	}
	slog.Info(msg, args...)
}

func (a *App) logError(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Error(msg, args...)
		return
	}
	slog.Error(msg, args...)
}
