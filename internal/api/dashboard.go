package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/funil/internal/models"
)

// Summary returns the dashboard overview
func (c *Client) Summary(ctx context.Context) (*models.Summary, error) {
	var s models.Summary
	if err := c.do(ctx, http.MethodGet, "/dashboard/summary", nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
