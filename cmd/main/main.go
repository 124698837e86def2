package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "trellis-demo",
		Short:        "Demo catalog server for the trellis template tags",
		Version:      fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "./config.json", "path to the JSON config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the catalog server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(configPath)
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Create and populate the demo database",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSeed(configPath)
			},
		},
	)
	return root
}

func runServe(configPath string) error {
	config, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	logger := newLogger(config.Server.LogLevel)

	if err = os.MkdirAll(config.Server.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	db, err := initDB(config.Server.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func(db *sql.DB) {
		_ = db.Close()
	}(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = seedDatabase(ctx, db, logger); err != nil {
		return err
	}

	server, err := NewServer(config, logger, db)
	if err != nil {
		return err
	}
	defer func(server *Server) {
		_ = server.Close()
	}(server)

	// Hot reload of the page templates while the server runs.
	go func() {
		if err := server.tm.Watch(ctx); err != nil {
			logger.Error("Template watcher stopped", "error", err)
		}
	}()

	httpServer := &http.Server{
		Addr:              config.Server.Addr,
		Handler:           server.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", "error", err)
		}
	}()

	logger.Info("Serving catalog", "addr", config.Server.Addr, "version", Version)
	if err = httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

func runSeed(configPath string) error {
	config, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	logger := newLogger(config.Server.LogLevel)

	if err = os.MkdirAll(config.Server.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	db, err := initDB(config.Server.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func(db *sql.DB) {
		_ = db.Close()
	}(db)

	return seedDatabase(context.Background(), db, logger)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
