package api

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/funil/internal/models"
)

// LoginResponse is returned by POST /auth/login
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
