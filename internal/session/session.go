// Package session persists the login session and the last viewed funnel.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang-jwt/jwt/v4"

	"github.com/thenoetrevino/funil/internal/database"
	"github.com/thenoetrevino/funil/internal/models"
)

// Storage keys
const (
	KeyToken          = "token"
	KeyUser           = "user"
	KeyActiveFunnelID = "active-funnel-id"
)

var (
	// ErrNoSession is returned by Load when nobody is logged in
	ErrNoSession = errors.New("no session")

	// ErrNoExpiry is returned when the token carries no exp claim
	ErrNoExpiry = errors.New("token has no expiry")
)

// Store reads and writes session state through a key/value repository
type Store struct {
	repo database.SessionRepository
}

// NewStore creates a store over the given repository
func NewStore(repo database.SessionRepository) *Store {
	return &Store{repo: repo}
}

// Save stores the token and user returned at login
func (s *Store) Save(ctx context.Context, sess *models.Session) error {
	userJSON, err := sonic.MarshalString(sess.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.repo.Set(ctx, KeyToken, sess.Token); err != nil {
		return err
	}
	return s.repo.Set(ctx, KeyUser, userJSON)
}

// Load returns the stored session or ErrNoSession
func (s *Store) Load(ctx context.Context) (*models.Session, error) {
	token, ok, err := s.repo.Get(ctx, KeyToken)
	if err != nil {
		return nil, err
	}
	if !ok || token == "" {
		return nil, ErrNoSession
	}

	sess := &models.Session{Token: token}
	userJSON, ok, err := s.repo.Get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}
	if ok && userJSON != "" && userJSON != "null" {
		var user models.User
		if err := sonic.UnmarshalString(userJSON, &user); err != nil {
			return nil, fmt.Errorf("failed to decode stored user: %w", err)
		}
		sess.User = &user
	}
	return sess, nil
}

// Clear removes token and user. The active funnel is kept so the next login
// reopens the same board.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, KeyToken, KeyUser)
}

// Token implements api.TokenSource. It returns an empty token when logged out.
func (s *Store) Token(ctx context.Context) (string, error) {
	token, _, err := s.repo.Get(ctx, KeyToken)
	return token, err
}

// ActiveBoardID returns the last viewed funnel ID, or "" if none was saved
func (s *Store) ActiveBoardID(ctx context.Context) (string, error) {
	id, _, err := s.repo.Get(ctx, KeyActiveFunnelID)
	return id, err
}

// SetActiveBoardID remembers the funnel being viewed
func (s *Store) SetActiveBoardID(ctx context.Context, id string) error {
	return s.repo.Set(ctx, KeyActiveFunnelID, id)
}

// ExpiresAt decodes the token's exp claim. The signature is not verified:
// only the backend can do that, the client just avoids sending dead tokens.
func ExpiresAt(token string) (time.Time, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// Expired reports whether the token is past its expiry at now.
// Tokens that cannot be decoded or carry no expiry are treated as valid and
// left for the backend to reject.
func Expired(token string, now time.Time) bool {
	exp, err := ExpiresAt(token)
	if err != nil {
		return false
	}
	return !now.Before(exp)
}
