package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/thenoetrevino/funil/internal/models"
)

// CreateStage is one stage of a funnel being created
type CreateStage struct {
	Name string `json:"name"`
}

// CreateFunnelRequest is the body of POST /funnels
type CreateFunnelRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Color       string        `json:"color"`
	Stages      []CreateStage `json:"stages"`
}

// ListFunnels returns funnel summaries. Stages are not included.
func (c *Client) ListFunnels(ctx context.Context) ([]*models.Funnel, error) {
	var funnels []*models.Funnel
	if err := c.do(ctx, http.MethodGet, "/funnels", nil, nil, &funnels); err != nil {
		return nil, err
	}
	return funnels, nil
}

// GetFunnel returns one funnel with its stages and leads
func (c *Client) GetFunnel(ctx context.Context, id string) (*models.Funnel, error) {
	var funnel models.Funnel
	if err := c.do(ctx, http.MethodGet, "/funnels/"+url.PathEscape(id), nil, nil, &funnel); err != nil {
		return nil, err
	}
	return &funnel, nil
}

// CreateFunnel creates a funnel with its initial stages
func (c *Client) CreateFunnel(ctx context.Context, req CreateFunnelRequest) (*models.Funnel, error) {
	var funnel models.Funnel
	if err := c.do(ctx, http.MethodPost, "/funnels", nil, req, &funnel); err != nil {
		return nil, err
	}
	return &funnel, nil
}

// MoveLead assigns a lead to a new stage. Position within the stage is not sent.
func (c *Client) MoveLead(ctx context.Context, leadID, stageID string) error {
	body := map[string]string{"stageId": stageID}
	return c.do(ctx, http.MethodPatch, "/funnels/leads/"+url.PathEscape(leadID)+"/stage", nil, body, nil)
}

// RenameStage changes a stage's name
func (c *Client) RenameStage(ctx context.Context, stageID, name string) error {
	body := map[string]string{"name": name}
	return c.do(ctx, http.MethodPatch, "/funnels/stages/"+url.PathEscape(stageID), nil, body, nil)
}
