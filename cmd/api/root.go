package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/korven/backend/config"
	"github.com/korven/backend/internal/infra/db"
	"github.com/korven/backend/internal/infra/dependency"
)

var rootCmd = &cobra.Command{
	Use:           "korven",
	Short:         "Korven API - sales, goals and revenue attribution",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// setup loads configuration and installs the JSON logger.
func setup() (*config.Config, error) {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Log.Level,
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		return nil, err
	}
	return cfg, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	database, err := db.Open(&cfg.Database, cfg.Server.Environment)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(cmd.Context()); err != nil {
		return err
	}
	slog.Info("Database migrations completed successfully")
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := setup()
	if err != nil {
		return err
	}

	slog.Info("Starting Korven API",
		"environment", cfg.Server.Environment,
		"address", cfg.Server.Address(),
	)

	database, err := db.Open(&cfg.Database, cfg.Server.Environment)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			return err
		}
		slog.Info("Database migrations completed successfully")
	}

	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled {
		redisClient, err = dependency.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			slog.Error("Redis connection failed", "error", err)
			return err
		}
		defer redisClient.Close()
	}

	injector, err := dependency.NewInjector(cfg, dependency.Externals{
		DB:    database.DB(),
		Redis: redisClient,
	})
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	if cfg.Email.WorkerEnabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			injector.EmailWorker.Start(ctx)
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      injector.Router.Setup(cfg.Server.Environment),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
	wg.Wait()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	default:
	}

	slog.Info("Server exited properly")
	return nil
}
