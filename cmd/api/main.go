package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
	accountUseCase "github.com/amirhossein-jamali/account-ledger/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/account-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/account-ledger/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.IsProduction() || cfg.Logger.Format == "json",
		Level:      coreport.ParseLogLevel(strings.ToLower(cfg.Logger.Level)),
		Service:    "account-ledger",
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if cfg.IsProduction() {
		warnInsecureSettings(cfg, appLogger)
	}

	tp := timeProvider.NewRealTimeProvider()

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), time.Minute)
	defer cancelBoot()

	dbManager := database.NewManager(database.NewConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(bootCtx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	if cfg.Database.AutoMigrate {
		if err := dbManager.Migrate(bootCtx); err != nil {
			appLogger.Error("Failed to run migrations", map[string]any{"error": err})
			_ = appLogger.Flush()
			os.Exit(1)
		}
	}

	if cfg.Accounts.SeedDefaultUsers {
		if err := dbManager.SeedDefaultUsers(bootCtx); err != nil {
			appLogger.Error("Failed to create default users", map[string]any{"error": err})
		}
	}

	accounts := accountUseCase.NewAccountUseCase(
		dbManager.CreateUnitOfWork(),
		tp,
		appLogger,
		accountUseCase.Policy{AllowNegativeBalance: cfg.Accounts.AllowNegativeBalance},
	)

	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedisClient(bootCtx, cfg.Cache.RedisAddr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			// The cache is optional; serve straight from the database
			appLogger.Warn("Account cache disabled, redis unreachable", map[string]any{
				"addr":  cfg.Cache.RedisAddr,
				"error": err,
			})
		} else {
			defer func() { _ = redisClient.Close() }()
			accounts.WithCache(cache.NewRedisAccountListCache(redisClient, cfg.Cache.TTL, cfg.Cache.KeyPrefix, appLogger))
			appLogger.Info("Account list cache enabled", map[string]any{
				"addr": cfg.Cache.RedisAddr,
				"ttl":  cfg.Cache.TTL.String(),
			})
		}
	}

	accountHandler := handler.NewAccountHandler(accounts, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, appLogger)
	auth := middleware.Auth(middleware.AuthConfig{
		Secret: []byte(cfg.Auth.JWTSecret),
		Issuer: cfg.Auth.Issuer,
	}, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, accountHandler, healthHandler, auth, cfg.Database.QueryTimeout)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{"error": err})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// warnInsecureSettings logs production settings that are legal but risky
func warnInsecureSettings(cfg *config.Config, appLogger coreport.Logger) {
	var warnings []string

	switch strings.ToLower(cfg.Database.SSLMode) {
	case "require", "verify-ca", "verify-full":
	default:
		warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca' or 'verify-full' in production")
	}
	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if cfg.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}
	if len(cfg.Auth.JWTSecret) < 32 {
		warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes")
	}

	if len(warnings) > 0 {
		appLogger.Warn("Potential security issues in production configuration", map[string]any{
			"warnings": warnings,
		})
	}
}
