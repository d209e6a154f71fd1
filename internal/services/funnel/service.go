package funnel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/funil/internal/api"
	"github.com/thenoetrevino/funil/internal/models"
)

// maxParallelFetches bounds concurrent GET /funnels/:id calls in Details
const maxParallelFetches = 4

// Client is the subset of the REST client the service needs. Satisfied by *api.Client.
type Client interface {
	ListFunnels(ctx context.Context) ([]*models.Funnel, error)
	GetFunnel(ctx context.Context, id string) (*models.Funnel, error)
	CreateFunnel(ctx context.Context, req api.CreateFunnelRequest) (*models.Funnel, error)
	MoveLead(ctx context.Context, leadID, stageID string) error
	RenameStage(ctx context.Context, stageID, name string) error
	ListLeads(ctx context.Context, q api.LeadQuery) ([]*models.Lead, error)
	CreateLead(ctx context.Context, req api.CreateLeadRequest) (*models.Lead, error)
	Summary(ctx context.Context) (*models.Summary, error)
}

// ActiveStore remembers the last viewed funnel. Satisfied by *session.Store.
type ActiveStore interface {
	ActiveBoardID(ctx context.Context) (string, error)
	SetActiveBoardID(ctx context.Context, id string) error
}

// Service defines funnel, lead and dashboard operations
type Service interface {
	// Funnels
	List(ctx context.Context) ([]*models.Funnel, error)
	Get(ctx context.Context, id string) (*models.Funnel, error)
	Find(ctx context.Context, ref string) (*models.Funnel, error)
	Details(ctx context.Context, ids []string) ([]*models.Funnel, error)
	SelectActive(ctx context.Context, funnels []*models.Funnel) (*models.Funnel, error)
	Remember(ctx context.Context, id string) error
	Create(ctx context.Context, req CreateFunnelRequest) (*models.Funnel, error)
	RenameStage(ctx context.Context, stageID, name string) error
	MoveLead(ctx context.Context, leadID, stageID string) error

	// Leads
	Leads(ctx context.Context, q api.LeadQuery) ([]*models.Lead, error)
	CreateLead(ctx context.Context, req CreateLeadRequest) (*models.Lead, error)

	// Dashboard
	Summary(ctx context.Context) (*models.Summary, error)
}

// CreateFunnelRequest encapsulates all data needed to create a funnel
type CreateFunnelRequest struct {
	Name        string
	Description string
	Icon        string   // Optional: empty means DefaultFunnelIcon
	Color       string   // Optional: empty means DefaultFunnelColor
	Stages      []string // Optional: empty means DefaultStageNames
}

// CreateLeadRequest encapsulates all data needed to create a lead
type CreateLeadRequest struct {
	Name          string
	Email         string
	Phone         string
	SourceChannel string // Optional: empty means DefaultSourceChannel
	FunnelID      string
	StageID       string // Optional: empty means the funnel's first stage
}

type service struct {
	client Client
	active ActiveStore
}

// NewService creates a new funnel service
func NewService(client Client, active ActiveStore) Service {
	return &service{client: client, active: active}
}

// List returns funnel summaries
func (s *service) List(ctx context.Context) ([]*models.Funnel, error) {
	funnels, err := s.client.ListFunnels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list funnels: %w", err)
	}
	return funnels, nil
}

// Get returns one funnel with stages and leads
func (s *service) Get(ctx context.Context, id string) (*models.Funnel, error) {
	f, err := s.client.GetFunnel(ctx, id)
	if errors.Is(err, api.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrFunnelNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get funnel %s: %w", id, err)
	}
	return f, nil
}

// Find resolves a funnel by ID or case-insensitive name and returns its details
func (s *service) Find(ctx context.Context, ref string) (*models.Funnel, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrMissingFunnel
	}
	funnels, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range funnels {
		if f.ID == ref || strings.EqualFold(f.Name, ref) {
			return s.Get(ctx, f.ID)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrFunnelNotFound, ref)
}

// Details fetches several funnels concurrently, preserving the order of ids
func (s *service) Details(ctx context.Context, ids []string) ([]*models.Funnel, error) {
	out := make([]*models.Funnel, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFetches)
	for i, id := range ids {
		g.Go(func() error {
			f, err := s.Get(gctx, id)
			if err != nil {
				return err
			}
			out[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// SelectActive picks the saved funnel if it is in the list, else the first one
func (s *service) SelectActive(ctx context.Context, funnels []*models.Funnel) (*models.Funnel, error) {
	if len(funnels) == 0 {
		return nil, ErrNoFunnels
	}

	saved, err := s.active.ActiveBoardID(ctx)
	if err != nil {
		slog.Error("failed to read active funnel", "error", err)
	}
	if saved != "" {
		for _, f := range funnels {
			if f.ID == saved {
				return f, nil
			}
		}
	}
	return funnels[0], nil
}

// Remember saves the funnel as the one to reopen next time
func (s *service) Remember(ctx context.Context, id string) error {
	if err := s.active.SetActiveBoardID(ctx, id); err != nil {
		return fmt.Errorf("failed to remember active funnel: %w", err)
	}
	return nil
}

// Create validates and creates a funnel, filling in defaults
func (s *service) Create(ctx context.Context, req CreateFunnelRequest) (*models.Funnel, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	stageNames := req.Stages
	if len(stageNames) == 0 {
		stageNames = models.DefaultStageNames
	}
	stages := make([]api.CreateStage, 0, len(stageNames))
	for _, st := range stageNames {
		st = strings.TrimSpace(st)
		if st == "" {
			return nil, ErrEmptyStageName
		}
		stages = append(stages, api.CreateStage{Name: st})
	}

	body := api.CreateFunnelRequest{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Icon:        req.Icon,
		Color:       req.Color,
		Stages:      stages,
	}
	if body.Icon == "" {
		body.Icon = models.DefaultFunnelIcon
	}
	if body.Color == "" {
		body.Color = models.DefaultFunnelColor
	}

	f, err := s.client.CreateFunnel(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create funnel: %w", err)
	}
	return f, nil
}

// RenameStage trims and persists a stage's new name
func (s *service) RenameStage(ctx context.Context, stageID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyStageName
	}
	if err := s.client.RenameStage(ctx, stageID, name); err != nil {
		return fmt.Errorf("failed to rename stage: %w", err)
	}
	return nil
}

// MoveLead persists a lead's new stage
func (s *service) MoveLead(ctx context.Context, leadID, stageID string) error {
	if err := s.client.MoveLead(ctx, leadID, stageID); err != nil {
		return fmt.Errorf("failed to move lead %s: %w", leadID, err)
	}
	return nil
}

// Leads lists one page of leads
func (s *service) Leads(ctx context.Context, q api.LeadQuery) ([]*models.Lead, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = models.DefaultLeadPageSize
	}
	leads, err := s.client.ListLeads(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// CreateLead validates and creates a lead. Without a stage the lead lands in
// the funnel's first stage.
func (s *service) CreateLead(ctx context.Context, req CreateLeadRequest) (*models.Lead, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if req.FunnelID == "" {
		return nil, ErrMissingFunnel
	}

	stageID := req.StageID
	if stageID == "" {
		f, err := s.Get(ctx, req.FunnelID)
		if err != nil {
			return nil, err
		}
		if len(f.Stages) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoStages, f.Name)
		}
		stageID = f.Stages[0].ID
	}

	channel := strings.TrimSpace(req.SourceChannel)
	if channel == "" {
		channel = models.DefaultSourceChannel
	}

	lead, err := s.client.CreateLead(ctx, api.CreateLeadRequest{
		Name:          name,
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		SourceChannel: channel,
		StageID:       stageID,
		FunnelID:      req.FunnelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

// Summary returns the dashboard overview
func (s *service) Summary(ctx context.Context) (*models.Summary, error) {
	summary, err := s.client.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return summary, nil
}
