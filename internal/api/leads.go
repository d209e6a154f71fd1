package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/thenoetrevino/funil/internal/models"
)

// LeadQuery filters GET /leads. Zero values are omitted.
type LeadQuery struct {
	Page          int
	Limit         int
	Name          string
	StageID       string
	SourceChannel string
}

// Values encodes the query parameters
func (q LeadQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Name != "" {
		v.Set("name", q.Name)
	}
	if q.StageID != "" {
		v.Set("stageId", q.StageID)
	}
	if q.SourceChannel != "" {
		v.Set("sourceChannel", q.SourceChannel)
	}
	return v
}

// CreateLeadRequest is the body of POST /leads
type CreateLeadRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	SourceChannel string `json:"sourceChannel"`
	StageID       string `json:"stageId"`
	FunnelID      string `json:"funnelId"`
}

type leadPage struct {
	Data []*models.Lead `json:"data"`
}

// ListLeads returns one page of leads
func (c *Client) ListLeads(ctx context.Context, q LeadQuery) ([]*models.Lead, error) {
	var page leadPage
	if err := c.do(ctx, http.MethodGet, "/leads", q.Values(), nil, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// CreateLead creates a lead in the given funnel stage
func (c *Client) CreateLead(ctx context.Context, req CreateLeadRequest) (*models.Lead, error) {
	var lead models.Lead
	if err := c.do(ctx, http.MethodPost, "/leads", nil, req, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}
