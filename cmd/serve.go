package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "task-manager-api.com/task-manager-api/internal/configs"
	httpapi "task-manager-api.com/task-manager-api/internal/http"
	middleware "task-manager-api.com/task-manager-api/internal/http/middlewares"
	"task-manager-api.com/task-manager-api/internal/logger"
	repository "task-manager-api.com/task-manager-api/internal/repositories"
	"task-manager-api.com/task-manager-api/internal/services"
)

var envFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task manager HTTP API backed by the configured relational store",
	RunE: func(cmd *cobra.Command, args []string) error {
		envErr := godotenv.Load(envFile)

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		log := logger.New(cfg.LogLevel, cfg.LogEncoding)
		defer func() { _ = log.Sync() }()

		if envErr != nil {
			log.Info("env file not found, using environment variables", zap.String("path", envFile))
		}

		database, err := config.NewDatabaseClient(cfg.DatabaseDriver, cfg.DatabaseDSN, cfg.DatabaseMaxOpenConns, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := config.CloseDatabaseClient(database); err != nil {
				log.Warn("failed to close database", zap.Error(err))
			}
		}()

		limiter, closeLimiter, err := newLimiter(cfg, log)
		if err != nil {
			return err
		}
		defer closeLimiter()

		taskRepo := repository.NewTaskRepository(database)
		taskService := services.NewTaskService(taskRepo)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		httpapi.Register(e, httpapi.NewHandler(taskService, log), limiter, log)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		serverErr := make(chan error, 1)
		go func() {
			log.Info("HTTP server listening", zap.String("addr", cfg.AppURL), zap.String("driver", cfg.DatabaseDriver))
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		select {
		case <-ctx.Done():
		case err := <-serverErr:
			if err != nil {
				return err
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Warn("HTTP server shutdown", zap.Error(err))
		}

		log.Info("HTTP server shut down gracefully")
		return nil
	},
}

// newLimiter returns a nil limiter when rate limiting is disabled.
func newLimiter(cfg config.Config, log *zap.Logger) (middleware.Limiter, func(), error) {
	if cfg.RateLimit == 0 {
		return nil, func() {}, nil
	}

	if cfg.RedisAddr == "" {
		return middleware.NewMemoryLimiter(cfg.RateLimit, time.Minute), func() {}, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}
	log.Info("rate limit counters stored in redis", zap.String("addr", cfg.RedisAddr))

	limiter := middleware.NewRedisLimiter(redisClient, cfg.RedisKeyPrefix, cfg.RateLimit, time.Minute)
	return limiter, redisClient.Close, nil
}

func init() {
	serveCmd.Flags().StringVar(&envFile, "env-file", ".env", "path to a dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd)
}
