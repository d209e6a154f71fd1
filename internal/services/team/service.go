package team

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/thenoetrevino/funil/internal/database"
	"github.com/thenoetrevino/funil/internal/models"
)

const maxTeamNameLength = 100

// Service defines the operations behind the teams and users screens
type Service interface {
	// Teams
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, ref string) (*models.Team, error)
	ListTeams(ctx context.Context, search string) ([]*models.Team, error)
	UpdateTeam(ctx context.Context, req UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, ref string) (*models.Team, error)

	// Members
	CreateMember(ctx context.Context, req CreateMemberRequest) (*models.Member, error)
	GetMember(ctx context.Context, ref string) (*models.Member, error)
	ListMembers(ctx context.Context, req ListMembersRequest) ([]*models.Member, error)
	UpdateMember(ctx context.Context, req UpdateMemberRequest) (*models.Member, error)
	DeleteMember(ctx context.Context, ref string) (*models.Member, error)
}

// CreateTeamRequest encapsulates a new team
type CreateTeamRequest struct {
	Name        string
	Description string
	Color       string // Optional: empty means DefaultTeamColor
}

// UpdateTeamRequest changes the non-nil fields of a team
type UpdateTeamRequest struct {
	Team        string // ID, ID prefix or name
	Name        *string
	Description *string
	Color       *string
}

// CreateMemberRequest encapsulates a new member
type CreateMemberRequest struct {
	Name   string
	Email  string
	Role   models.Role         // Optional: empty means DefaultRole
	Status models.MemberStatus // Optional: empty means DefaultMemberStatus
	Team   string              // Optional: team ID, ID prefix or name
}

// UpdateMemberRequest changes the non-nil fields of a member.
// A Team pointing at "" takes the member off their team.
type UpdateMemberRequest struct {
	Member string // ID, ID prefix or email
	Name   *string
	Email  *string
	Role   *models.Role
	Status *models.MemberStatus
	Team   *string
}

// ListMembersRequest filters ListMembers
type ListMembersRequest struct {
	Search   string
	Roles    []models.Role
	Team     string // team ID, ID prefix or name
	NoTeam   bool
	Statuses []models.MemberStatus
}

// Option configures the service
type Option func(*service)

// WithClock overrides the time source used for join dates
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	repo database.TeamRepository
	now  func() time.Time
}

// NewService creates a team service
func NewService(repo database.TeamRepository, opts ...Option) Service {
	s := &service{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ============================================================================
// Teams
// ============================================================================

// CreateTeam validates and stores a team
func (s *service) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	name, err := validateTeamName(req.Name)
	if err != nil {
		return nil, err
	}
	color, err := teamColor(req.Color)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Color:       color,
	}
	if err := s.repo.CreateTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", teamErr(err))
	}
	return team, nil
}

// GetTeam finds a team by ID, unique ID prefix or name
func (s *service) GetTeam(ctx context.Context, ref string) (*models.Team, error) {
	id, err := s.resolveTeam(ctx, ref)
	if err != nil {
		return nil, err
	}
	team, err := s.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, teamErr(err)
	}
	return team, nil
}

// ListTeams returns teams with their members
func (s *service) ListTeams(ctx context.Context, search string) ([]*models.Team, error) {
	teams, err := s.repo.ListTeams(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// UpdateTeam applies the non-nil fields of req
func (s *service) UpdateTeam(ctx context.Context, req UpdateTeamRequest) (*models.Team, error) {
	team, err := s.GetTeam(ctx, req.Team)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name, err := validateTeamName(*req.Name)
		if err != nil {
			return nil, err
		}
		team.Name = name
	}
	if req.Description != nil {
		team.Description = strings.TrimSpace(*req.Description)
	}
	if req.Color != nil {
		color, err := teamColor(*req.Color)
		if err != nil {
			return nil, err
		}
		team.Color = color
	}

	if err := s.repo.UpdateTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", teamErr(err))
	}
	return team, nil
}

// DeleteTeam removes a team and returns it as it was, members included.
// The members stay, without a team.
func (s *service) DeleteTeam(ctx context.Context, ref string) (*models.Team, error) {
	team, err := s.GetTeam(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteTeam(ctx, team.ID); err != nil {
		return nil, fmt.Errorf("failed to delete team: %w", teamErr(err))
	}
	return team, nil
}

// ============================================================================
// Members
// ============================================================================

// CreateMember validates and stores a member
func (s *service) CreateMember(ctx context.Context, req CreateMemberRequest) (*models.Member, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyMemberName
	}
	email, err := validateEmail(req.Email)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.DefaultRole
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidRole, role)
	}
	status := req.Status
	if status == "" {
		status = models.DefaultMemberStatus
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidMemberStatus, status)
	}

	var teamID string
	if strings.TrimSpace(req.Team) != "" {
		if teamID, err = s.resolveTeam(ctx, req.Team); err != nil {
			return nil, err
		}
	}

	member := &models.Member{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Role:     role,
		TeamID:   teamID,
		Status:   status,
		JoinedAt: s.now().UTC(),
	}
	if err := s.repo.CreateMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create member: %w", memberErr(err))
	}
	// re-read for the team name
	return s.reload(ctx, member.ID)
}

// GetMember finds a member by ID, unique ID prefix or email
func (s *service) GetMember(ctx context.Context, ref string) (*models.Member, error) {
	id, err := s.resolveMember(ctx, ref)
	if err != nil {
		return nil, err
	}
	member, err := s.repo.GetMember(ctx, id)
	if err != nil {
		return nil, memberErr(err)
	}
	return member, nil
}

// ListMembers returns members sorted by name
func (s *service) ListMembers(ctx context.Context, req ListMembersRequest) ([]*models.Member, error) {
	filter := database.MemberFilter{
		Search:   req.Search,
		Roles:    req.Roles,
		NoTeam:   req.NoTeam,
		Statuses: req.Statuses,
	}
	if strings.TrimSpace(req.Team) != "" {
		id, err := s.resolveTeam(ctx, req.Team)
		if err != nil {
			return nil, err
		}
		filter.TeamID = id
	}

	members, err := s.repo.ListMembers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// UpdateMember applies the non-nil fields of req
func (s *service) UpdateMember(ctx context.Context, req UpdateMemberRequest) (*models.Member, error) {
	member, err := s.GetMember(ctx, req.Member)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrEmptyMemberName
		}
		member.Name = name
	}
	if req.Email != nil {
		email, err := validateEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		member.Email = email
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, fmt.Errorf("%w: %q", models.ErrInvalidRole, *req.Role)
		}
		member.Role = *req.Role
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("%w: %q", models.ErrInvalidMemberStatus, *req.Status)
		}
		member.Status = *req.Status
	}
	if req.Team != nil {
		member.TeamID = ""
		if strings.TrimSpace(*req.Team) != "" {
			if member.TeamID, err = s.resolveTeam(ctx, *req.Team); err != nil {
				return nil, err
			}
		}
	}

	if err := s.repo.UpdateMember(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", memberErr(err))
	}
	return s.reload(ctx, member.ID)
}

// DeleteMember removes a member and returns them as they were
func (s *service) DeleteMember(ctx context.Context, ref string) (*models.Member, error) {
	member, err := s.GetMember(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteMember(ctx, member.ID); err != nil {
		return nil, fmt.Errorf("failed to delete member: %w", memberErr(err))
	}
	return member, nil
}

// ============================================================================
// Helpers
// ============================================================================

func (s *service) reload(ctx context.Context, id string) (*models.Member, error) {
	member, err := s.repo.GetMember(ctx, id)
	if err != nil {
		return nil, memberErr(err)
	}
	return member, nil
}

func validateTeamName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyTeamName
	}
	if utf8.RuneCountInString(name) > maxTeamNameLength {
		return "", ErrTeamNameTooLong
	}
	return name, nil
}

func teamColor(color string) (string, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return models.DefaultTeamColor, nil
	}
	if err := models.ValidateColor(color); err != nil {
		return "", err
	}
	return strings.ToUpper(color), nil
}

// validateEmail accepts a bare address and returns it lowercased
func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return strings.ToLower(addr.Address), nil
}

// resolveTeam accepts a team ID, a unique ID prefix or a team name
func (s *service) resolveTeam(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrInvalidTeamID
	}

	if _, err := s.repo.GetTeam(ctx, ref); err == nil {
		return ref, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return "", err
	}

	teams, err := s.repo.ListTeams(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to resolve team: %w", err)
	}
	for _, t := range teams {
		if strings.EqualFold(t.Name, ref) {
			return t.ID, nil
		}
	}
	var match string
	for _, t := range teams {
		if strings.HasPrefix(t.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("%w: %s", ErrAmbiguousTeamID, ref)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrTeamNotFound, ref)
	}
	return match, nil
}

// resolveMember accepts a member ID, a unique ID prefix or an email
func (s *service) resolveMember(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrInvalidMemberID
	}

	if _, err := s.repo.GetMember(ctx, ref); err == nil {
		return ref, nil
	} else if !errors.Is(err, database.ErrNotFound) {
		return "", err
	}

	members, err := s.repo.ListMembers(ctx, database.MemberFilter{})
	if err != nil {
		return "", fmt.Errorf("failed to resolve member: %w", err)
	}
	for _, m := range members {
		if strings.EqualFold(m.Email, ref) {
			return m.ID, nil
		}
	}
	var match string
	for _, m := range members {
		if strings.HasPrefix(m.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("%w: %s", ErrAmbiguousMemberID, ref)
			}
			match = m.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrMemberNotFound, ref)
	}
	return match, nil
}

// teamErr maps repository errors on teams to service errors
func teamErr(err error) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrTeamNotFound, err)
	case errors.Is(err, database.ErrConflict):
		return fmt.Errorf("%w: %v", ErrTeamExists, err)
	}
	return err
}

// memberErr maps repository errors on members to service errors
func memberErr(err error) error {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrMemberNotFound, err)
	case errors.Is(err, database.ErrConflict):
		return fmt.Errorf("%w: %v", ErrEmailInUse, err)
	}
	return err
}
