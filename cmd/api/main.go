// @title           Idea Copilot API
// @version         1.0
// @description     아이디어 관리, 협업, AI 제안 API

// @contact.name   API Support

// @host      localhost:8000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "idea-copilot-api/docs" // Swagger docs import

	"idea-copilot-api/internal/client"
	"idea-copilot-api/internal/config"
	"idea-copilot-api/internal/database"
	"idea-copilot-api/internal/handler"
	"idea-copilot-api/internal/job"
	"idea-copilot-api/internal/metrics"
	"idea-copilot-api/internal/repository"
	"idea-copilot-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Idea Copilot API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("users_service_url", cfg.Users.BaseURL),
		zap.String("gemini_model", cfg.Gemini.Model),
	)

	// Initialize database (실패해도 앱은 시작됨 - 컨테이너 생존 보장)
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.NewWithRetry(dbConfig, logger, 5, 3*time.Second)
	if err != nil {
		logger.Warn("⚠️  Starting without database connection", zap.Error(err))
	} else {
		logger.Info("Database connected successfully")

		// Run auto migration (DB 연결된 경우만)
		if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		database.StartDBStatsCollector(db, m)
		metrics.NewBusinessMetricsCollector(db, m, logger).Start()
	}

	// Initialize Redis (unread-count 캐시, 없어도 동작)
	if err := database.InitRedis(*cfg, logger); err != nil {
		logger.Warn("Failed to connect to Redis, notification cache disabled", zap.Error(err))
	}

	// Initialize external clients
	geminiClient := client.NewGeminiClient(
		cfg.Gemini.BaseURL,
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.Timeout,
		logger,
		m,
	)
	scraperClient := client.NewScraperClient(cfg.Scraper.Timeout, cfg.Scraper.UserAgent, logger, m)
	userDirectory := client.NewUserDirectoryClient(cfg.Users.BaseURL, cfg.Users.APIKey, cfg.Users.Timeout, logger, m)
	mailClient := client.NewMailClient(cfg.SMTP, logger, m)

	// Websocket hub for realtime notification push
	hub := handler.NewNotificationHub(logger)
	go hub.Run()

	// Scheduled cleanup: expired shares hourly, expired notifications daily
	if db != nil {
		cleanup := job.NewCleanupJob(
			repository.NewShareRepository(db),
			repository.NewNotificationRepository(db),
			logger,
		)
		scheduler := cron.New()
		if _, err := scheduler.AddFunc("@hourly", cleanup.DeactivateExpiredShares); err != nil {
			logger.Error("Failed to schedule share cleanup", zap.Error(err))
		}
		if _, err := scheduler.AddFunc("@daily", cleanup.PurgeExpiredNotifications); err != nil {
			logger.Error("Failed to schedule notification cleanup", zap.Error(err))
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:        db,
		Redis:     database.GetRedis(),
		Logger:    logger,
		JWTSecret: cfg.JWT.Secret,
		BasePath:  cfg.Server.BasePath,
		Metrics:   m,
		Gemini:    geminiClient,
		Scraper:   scraperClient,
		Users:     userDirectory,
		Mail:      mailClient,
		Hub:       hub,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Idea Copilot API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
