package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/funil/internal/app"
	"github.com/thenoetrevino/funil/internal/config"
	"github.com/thenoetrevino/funil/internal/database"
	"github.com/thenoetrevino/funil/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// db and logFile are set only when NewCLI opened them itself
	db      *sql.DB
	logFile io.Closer
}

// NewCLI loads config, opens the local database and builds the application container
func NewCLI(ctx context.Context) (*CLI, error) {
	// Logs go to the rotating file so they never mix with command output
	logFile, err := logging.Init()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	slog.Debug("cli started", "api_url", cfg.APIURL)
	return &CLI{
		App:     app.New(db, cfg),
		db:      db,
		logFile: logFile,
	}, nil
}

// Close cleans up CLI resources. An App injected through the context is
// owned by the caller and left open.
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	defer func() {
		_ = c.logFile.Close()
	}()
	if err := c.App.Close(); err != nil {
		return err
	}
	return c.db.Close()
}
