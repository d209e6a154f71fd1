package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/thenoetrevino/funil/internal/api"
	"github.com/thenoetrevino/funil/internal/models"
	"github.com/thenoetrevino/funil/internal/session"
)

// Authenticator exchanges credentials for a token. Satisfied by *api.Client.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
}

// Service defines login session operations
type Service interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.Session, error)
}

type service struct {
	client Authenticator
	store  *session.Store
	now    func() time.Time
}

// NewService creates a new auth service
func NewService(client Authenticator, store *session.Store) Service {
	return &service{
		client: client,
		store:  store,
		now:    time.Now,
	}
}

// Login validates credentials, signs in against the backend and stores the session
func (s *service) Login(ctx context.Context, email, password string) (*models.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEmail, email)
	}

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	sess := &models.Session{Token: resp.AccessToken, User: resp.User}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	slog.Info("logged in", "user", sess.User.FirstName())
	return sess, nil
}

// Logout forgets the token and user
func (s *service) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	slog.Info("logged out")
	return nil
}

// Current returns the stored session if it is still usable
func (s *service) Current(ctx context.Context) (*models.Session, error) {
	sess, err := s.store.Load(ctx)
	if errors.Is(err, session.ErrNoSession) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, err
	}
	if session.Expired(sess.Token, s.now()) {
		return nil, ErrSessionExpired
	}
	return sess, nil
}
