package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/thenoetrevino/funil/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	httpClient  *http.Client
	logger      *slog.Logger
	now         func() time.Time
}

// WithEventPublisher sets the event publisher for the application.
// Without one an in-process Bus is created.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithHTTPClient sets the HTTP client used for backend calls
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = c
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock overrides the clock used for task timestamps
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.now = now
	}
}
