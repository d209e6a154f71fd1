package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/funil/internal/app"
	"github.com/thenoetrevino/funil/internal/config"
	"github.com/thenoetrevino/funil/internal/database"
	"github.com/thenoetrevino/funil/internal/events"
	"github.com/thenoetrevino/funil/internal/logging"
	"github.com/thenoetrevino/funil/internal/tui"
)

// Launch starts the TUI application
func Launch() error {
	// Initialize logging to file before anything else
	logFile, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		_ = logFile.Close()
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	application := app.New(db, cfg)
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing event bus", "error", err)
		}
	}()

	metrics := events.NewMetrics()
	if _, err := metrics.Track(ctx, application.Events()); err != nil {
		slog.Error("failed to track board events", "error", err)
	}
	defer func() {
		slog.Info("session finished", "stats", metrics)
	}()

	slog.Info("starting board", "api_url", cfg.APIURL)
	p := tea.NewProgram(tui.New(ctx, application), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
