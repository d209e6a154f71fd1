package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/funil/internal/models"
)

// TeamRepo handles team and member persistence for the local management screens
type TeamRepo struct {
	db *sql.DB
}

// MemberFilter narrows ListMembers. Empty fields match everything.
type MemberFilter struct {
	Search   string // case-insensitive match on name or email
	Roles    []models.Role
	TeamID   string
	NoTeam   bool // only members without a team; ignored when TeamID is set
	Statuses []models.MemberStatus
}

const teamColumns = `id, name, description, color, created_at, updated_at`

const memberSelect = `SELECT m.id, m.name, m.email, m.role, COALESCE(m.team_id, ''),
	COALESCE(t.name, ''), m.status, m.joined_at, m.updated_at
	FROM members m LEFT JOIN teams t ON t.id = m.team_id`

func scanTeam(row rowScanner) (*models.Team, error) {
	var team models.Team
	if err := row.Scan(
		&team.ID, &team.Name, &team.Description, &team.Color, &team.CreatedAt, &team.UpdatedAt,
	); err != nil {
		return nil, err
	}
	team.Members = []*models.Member{}
	return &team, nil
}

func scanMember(row rowScanner) (*models.Member, error) {
	var (
		member       models.Member
		role, status string
	)
	if err := row.Scan(
		&member.ID, &member.Name, &member.Email, &role, &member.TeamID,
		&member.TeamName, &status, &member.JoinedAt, &member.UpdatedAt,
	); err != nil {
		return nil, err
	}
	member.Role = models.Role(role)
	member.Status = models.MemberStatus(status)
	return &member, nil
}

// nullString stores an empty string as NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ============================================================================
// Team Operations
// ============================================================================

// CreateTeam inserts a team. Names are unique, ignoring case.
func (r *TeamRepo) CreateTeam(ctx context.Context, team *models.Team) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := checkTeamName(ctx, tx, team.Name, team.ID); err != nil {
			return err
		}

		now := time.Now().UTC()
		team.CreatedAt = now
		team.UpdatedAt = now
		if team.Members == nil {
			team.Members = []*models.Member{}
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO teams (`+teamColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
			team.ID, team.Name, team.Description, team.Color, team.CreatedAt, team.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert team: %w", err)
		}
		return nil
	})
}

// GetTeam retrieves a team with its members
func (r *TeamRepo) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = ?`, id)
	team, err := scanTeam(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("team %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team %s: %w", id, err)
	}

	members, err := r.ListMembers(ctx, MemberFilter{TeamID: team.ID})
	if err != nil {
		return nil, err
	}
	team.Members = members
	return team, nil
}

// ListTeams returns teams in creation order, each with its members.
// search matches name or description, ignoring case.
func (r *TeamRepo) ListTeams(ctx context.Context, search string) ([]*models.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams`
	var args []any
	if term := strings.TrimSpace(search); term != "" {
		query += " WHERE LOWER(name) LIKE ? OR LOWER(description) LIKE ?"
		like := "%" + strings.ToLower(term) + "%"
		args = append(args, like, like)
	}
	query += " ORDER BY created_at, rowid"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []*models.Team
	byID := make(map[string]*models.Team)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
		byID[team.ID] = team
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return teams, nil
	}

	// One query for every listed team's members
	members, err := r.ListMembers(ctx, MemberFilter{})
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if team, ok := byID[m.TeamID]; ok {
			team.Members = append(team.Members, m)
		}
	}
	return teams, nil
}

// UpdateTeam saves a team's name, description and color
func (r *TeamRepo) UpdateTeam(ctx context.Context, team *models.Team) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := checkTeamName(ctx, tx, team.Name, team.ID); err != nil {
			return err
		}

		team.UpdatedAt = time.Now().UTC()
		result, err := tx.ExecContext(ctx,
			`UPDATE teams SET name = ?, description = ?, color = ?, updated_at = ? WHERE id = ?`,
			team.Name, team.Description, team.Color, team.UpdatedAt, team.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update team %s: %w", team.ID, err)
		}
		return requireOneRow(result, "team", team.ID)
	})
}

// DeleteTeam removes a team; its members stay, without a team
func (r *TeamRepo) DeleteTeam(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM teams WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete team %s: %w", id, err)
	}
	return requireOneRow(result, "team", id)
}

func checkTeamName(ctx context.Context, tx *sql.Tx, name, id string) error {
	var n int
	err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM teams WHERE LOWER(name) = LOWER(?) AND id != ?", name, id,
	).Scan(&n)
	if err != nil {
		return fmt.Errorf("failed to check team name: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("team %q: %w", name, ErrConflict)
	}
	return nil
}

// ============================================================================
// Member Operations
// ============================================================================

// CreateMember inserts a member. Emails are unique, ignoring case.
// JoinedAt is set to now when zero.
func (r *TeamRepo) CreateMember(ctx context.Context, member *models.Member) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := checkMemberEmail(ctx, tx, member.Email, member.ID); err != nil {
			return err
		}

		now := time.Now().UTC()
		if member.JoinedAt.IsZero() {
			member.JoinedAt = now
		}
		member.UpdatedAt = now

		_, err := tx.ExecContext(ctx,
			`INSERT INTO members (id, name, email, role, team_id, status, joined_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			member.ID, member.Name, member.Email, string(member.Role), nullString(member.TeamID),
			string(member.Status), member.JoinedAt, member.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
		return nil
	})
}

// GetMember retrieves a member with the name of their team
func (r *TeamRepo) GetMember(ctx context.Context, id string) (*models.Member, error) {
	row := r.db.QueryRowContext(ctx, memberSelect+` WHERE m.id = ?`, id)
	member, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("member %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s: %w", id, err)
	}
	return member, nil
}

// ListMembers returns members sorted by name
func (r *TeamRepo) ListMembers(ctx context.Context, filter MemberFilter) ([]*models.Member, error) {
	var (
		where []string
		args  []any
	)
	if term := strings.TrimSpace(filter.Search); term != "" {
		where = append(where, "(LOWER(m.name) LIKE ? OR LOWER(m.email) LIKE ?)")
		like := "%" + strings.ToLower(term) + "%"
		args = append(args, like, like)
	}
	if len(filter.Roles) > 0 {
		where = append(where, "m.role IN ("+placeholders(len(filter.Roles))+")")
		for _, role := range filter.Roles {
			args = append(args, string(role))
		}
	}
	switch {
	case filter.TeamID != "":
		where = append(where, "m.team_id = ?")
		args = append(args, filter.TeamID)
	case filter.NoTeam:
		where = append(where, "m.team_id IS NULL")
	}
	if len(filter.Statuses) > 0 {
		where = append(where, "m.status IN ("+placeholders(len(filter.Statuses))+")")
		for _, s := range filter.Statuses {
			args = append(args, string(s))
		}
	}

	query := memberSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY m.name COLLATE NOCASE, m.joined_at"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []*models.Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// UpdateMember saves every editable field of a member
func (r *TeamRepo) UpdateMember(ctx context.Context, member *models.Member) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := checkMemberEmail(ctx, tx, member.Email, member.ID); err != nil {
			return err
		}

		member.UpdatedAt = time.Now().UTC()
		result, err := tx.ExecContext(ctx,
			`UPDATE members
			 SET name = ?, email = ?, role = ?, team_id = ?, status = ?, updated_at = ?
			 WHERE id = ?`,
			member.Name, member.Email, string(member.Role), nullString(member.TeamID),
			string(member.Status), member.UpdatedAt, member.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update member %s: %w", member.ID, err)
		}
		return requireOneRow(result, "member", member.ID)
	})
}

// DeleteMember removes a member
func (r *TeamRepo) DeleteMember(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM members WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete member %s: %w", id, err)
	}
	return requireOneRow(result, "member", id)
}

func checkMemberEmail(ctx context.Context, tx *sql.Tx, email, id string) error {
	var n int
	err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM members WHERE LOWER(email) = LOWER(?) AND id != ?", email, id,
	).Scan(&n)
	if err != nil {
		return fmt.Errorf("failed to check member email: %w", err)
	}
	if n > 0 {
		return fmt.Errorf("member %q: %w", email, ErrConflict)
	}
	return nil
}
