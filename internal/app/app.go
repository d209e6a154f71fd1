package app

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"sync"

	"github.com/thenoetrevino/funil/internal/api"
	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/config"
	"github.com/thenoetrevino/funil/internal/database"
	"github.com/thenoetrevino/funil/internal/events"
	authservice "github.com/thenoetrevino/funil/internal/services/auth"
	funnelservice "github.com/thenoetrevino/funil/internal/services/funnel"
	taskservice "github.com/thenoetrevino/funil/internal/services/task"
	teamservice "github.com/thenoetrevino/funil/internal/services/team"
	"github.com/thenoetrevino/funil/internal/session"
	"github.com/thenoetrevino/funil/internal/user"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Board sync events
	eventClient events.EventPublisher

	// synchronizers handed out, drained on Close
	mu    sync.Mutex
	syncs []*board.Synchronizer

	Config  *config.Config
	Session *session.Store
	API     *api.Client

	// Service layer (business logic)
	AuthService   authservice.Service
	FunnelService funnelservice.Service
	TaskService   taskservice.Service
	TeamService   teamservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, cfg *config.Config, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	appCfg := &appConfig{}
	for _, opt := range opts {
		opt(appCfg)
	}
	if appCfg.logger != nil {
		slog.SetDefault(appCfg.logger)
	}
	if appCfg.eventClient == nil {
		appCfg.eventClient = events.NewBus(0)
	}
	httpClient := appCfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	repo := database.NewRepository(db)
	store := session.NewStore(repo)
	client := api.NewClient(cfg.APIURL, store, httpClient)

	var (
		taskOpts []taskservice.Option
		teamOpts []teamservice.Option
	)
	if appCfg.now != nil {
		taskOpts = append(taskOpts, taskservice.WithClock(appCfg.now))
		teamOpts = append(teamOpts, teamservice.WithClock(appCfg.now))
	}

	return &App{
		repo:          repo,
		eventClient:   appCfg.eventClient,
		Config:        cfg,
		Session:       store,
		API:           client,
		AuthService:   authservice.NewService(client, store),
		FunnelService: funnelservice.NewService(client, store),
		TaskService:   taskservice.NewService(repo, taskOpts...),
		TeamService:   teamservice.NewService(repo, teamOpts...),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Events returns the publisher board synchronizers report to
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// FunnelBoard returns a synchronizer over the CRM funnels
func (a *App) FunnelBoard() *board.Synchronizer {
	return a.track(board.NewSynchronizer(funnelservice.NewRemote(a.FunnelService), board.WithEventPublisher(a.eventClient)))
}

// TaskBoard returns a synchronizer over the local task board
func (a *App) TaskBoard() *board.Synchronizer {
	return a.track(board.NewSynchronizer(taskservice.NewRemote(a.TaskService), board.WithEventPublisher(a.eventClient)))
}

func (a *App) track(s *board.Synchronizer) *board.Synchronizer {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.syncs = append(a.syncs, s)
	return s
}

// Author returns the name stamped on local tasks and comments
func (a *App) Author(ctx context.Context) string {
	sess, err := a.Session.Load(ctx)
	if err != nil {
		return user.AuthorName(nil)
	}
	return user.AuthorName(sess.User)
}

// Close waits for moves still being saved, then releases the event publisher.
// It must run before the database is closed.
func (a *App) Close() error {
	a.mu.Lock()
	syncs := a.syncs
	a.syncs = nil
	a.mu.Unlock()

	for _, s := range syncs {
		s.Wait()
	}
	return a.eventClient.Close()
}
