package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/funil/internal/models"
)

func createTestTeam(t *testing.T, repo *TeamRepo, name string) *models.Team {
	t.Helper()
	team := &models.Team{ID: uuid.NewString(), Name: name, Color: models.DefaultTeamColor}
	require.NoError(t, repo.CreateTeam(context.Background(), team))
	return team
}

func createTestMember(t *testing.T, repo *TeamRepo, name, email, teamID string) *models.Member {
	t.Helper()
	member := &models.Member{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  email,
		Role:   models.DefaultRole,
		TeamID: teamID,
		Status: models.MemberActive,
	}
	require.NoError(t, repo.CreateMember(context.Background(), member))
	return member
}

func memberNames(members []*models.Member) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return names
}

// ============================================================================
// Teams
// ============================================================================

func TestCreateTeam_RoundTrip(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	team := &models.Team{ID: uuid.NewString(), Name: "Vendas", Description: "Consultores", Color: "#3B82F6"}
	require.NoError(t, repo.CreateTeam(ctx, team))

	got, err := repo.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vendas", got.Name)
	assert.Equal(t, "Consultores", got.Description)
	assert.Equal(t, "#3B82F6", got.Color)
	assert.Empty(t, got.Members)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateTeam_NameIsUnique(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	createTestTeam(t, repo.TeamRepo, "Vendas")

	err := repo.CreateTeam(context.Background(), &models.Team{ID: uuid.NewString(), Name: "VENDAS"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetTeam_NotFound(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetTeam(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListTeams_WithMembersAndSearch(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	vendas := createTestTeam(t, repo.TeamRepo, "Vendas")
	suporte := createTestTeam(t, repo.TeamRepo, "Atendimento")
	suporte.Description = "Equipe de suporte ao cliente"
	require.NoError(t, repo.UpdateTeam(ctx, suporte))

	createTestMember(t, repo.TeamRepo, "Ricardo Silva", "ricardo@golden.com", vendas.ID)
	createTestMember(t, repo.TeamRepo, "Ana Oliveira", "ana@golden.com", vendas.ID)
	createTestMember(t, repo.TeamRepo, "Carla Santos", "carla@golden.com", suporte.ID)
	createTestMember(t, repo.TeamRepo, "Pedro Guedes", "pedro@golden.com", "")

	teams, err := repo.ListTeams(ctx, "")
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Vendas", teams[0].Name)
	assert.Equal(t, []string{"Ana Oliveira", "Ricardo Silva"}, memberNames(teams[0].Members))
	assert.Equal(t, []string{"Carla Santos"}, memberNames(teams[1].Members))

	teams, err = repo.ListTeams(ctx, "SUPORTE")
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Atendimento", teams[0].Name)
}

func TestDeleteTeam_KeepsMembers(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	team := createTestTeam(t, repo.TeamRepo, "Vendas")
	ana := createTestMember(t, repo.TeamRepo, "Ana Oliveira", "ana@golden.com", team.ID)

	require.NoError(t, repo.DeleteTeam(ctx, team.ID))

	got, err := repo.GetMember(ctx, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, got.TeamID)
	assert.Empty(t, got.TeamName)

	assert.ErrorIs(t, repo.DeleteTeam(ctx, team.ID), ErrNotFound)
}

// ============================================================================
// Members
// ============================================================================

func TestCreateMember_RoundTrip(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	team := createTestTeam(t, repo.TeamRepo, "Gestão")

	member := createTestMember(t, repo.TeamRepo, "Pedro Guedes", "pedro@golden.com", team.ID)

	got, err := repo.GetMember(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pedro Guedes", got.Name)
	assert.Equal(t, "pedro@golden.com", got.Email)
	assert.Equal(t, models.RoleConsultant, got.Role)
	assert.Equal(t, team.ID, got.TeamID)
	assert.Equal(t, "Gestão", got.TeamName)
	assert.Equal(t, models.MemberActive, got.Status)
	assert.False(t, got.JoinedAt.IsZero())
}

func TestCreateMember_EmailIsUnique(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	createTestMember(t, repo.TeamRepo, "Ana", "ana@golden.com", "")

	err := repo.CreateMember(context.Background(), &models.Member{
		ID: uuid.NewString(), Name: "Outra Ana", Email: "ANA@golden.com",
		Role: models.DefaultRole, Status: models.MemberActive,
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestListMembers_Filters(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	vendas := createTestTeam(t, repo.TeamRepo, "Vendas")
	createTestMember(t, repo.TeamRepo, "Ana Oliveira", "ana@golden.com", vendas.ID)
	bruno := createTestMember(t, repo.TeamRepo, "Bruno Costa", "bruno@golden.com", vendas.ID)
	pedro := createTestMember(t, repo.TeamRepo, "Pedro Guedes", "pedro@golden.com", "")

	bruno.Status = models.MemberInactive
	require.NoError(t, repo.UpdateMember(ctx, bruno))
	pedro.Role = models.RoleManager
	require.NoError(t, repo.UpdateMember(ctx, pedro))

	tests := []struct {
		name   string
		filter MemberFilter
		want   []string
	}{
		{"all", MemberFilter{}, []string{"Ana Oliveira", "Bruno Costa", "Pedro Guedes"}},
		{"search name", MemberFilter{Search: "oliv"}, []string{"Ana Oliveira"}},
		{"search email", MemberFilter{Search: "PEDRO@"}, []string{"Pedro Guedes"}},
		{"role", MemberFilter{Roles: []models.Role{models.RoleManager}}, []string{"Pedro Guedes"}},
		{"team", MemberFilter{TeamID: vendas.ID}, []string{"Ana Oliveira", "Bruno Costa"}},
		{"no team", MemberFilter{NoTeam: true}, []string{"Pedro Guedes"}},
		{"status", MemberFilter{Statuses: []models.MemberStatus{models.MemberInactive}}, []string{"Bruno Costa"}},
		{"combined", MemberFilter{TeamID: vendas.ID, Statuses: []models.MemberStatus{models.MemberActive}}, []string{"Ana Oliveira"}},
		{"no match", MemberFilter{Search: "xyz"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members, err := repo.ListMembers(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, memberNames(members))
		})
	}
}

func TestUpdateMember_MovesTeam(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	vendas := createTestTeam(t, repo.TeamRepo, "Vendas")
	suporte := createTestTeam(t, repo.TeamRepo, "Atendimento")
	ana := createTestMember(t, repo.TeamRepo, "Ana", "ana@golden.com", vendas.ID)

	ana.TeamID = suporte.ID
	require.NoError(t, repo.UpdateMember(ctx, ana))

	got, err := repo.GetMember(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "Atendimento", got.TeamName)

	ana.TeamID = ""
	require.NoError(t, repo.UpdateMember(ctx, ana))
	got, err = repo.GetMember(ctx, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, got.TeamID)
}

func TestUpdateMember_EmailConflict(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	createTestMember(t, repo.TeamRepo, "Ana", "ana@golden.com", "")
	bruno := createTestMember(t, repo.TeamRepo, "Bruno", "bruno@golden.com", "")

	bruno.Email = "ana@golden.com"
	assert.ErrorIs(t, repo.UpdateMember(context.Background(), bruno), ErrConflict)

	// keeping one's own email is fine
	bruno.Email = "bruno@golden.com"
	assert.NoError(t, repo.UpdateMember(context.Background(), bruno))
}

func TestDeleteMember(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	ana := createTestMember(t, repo.TeamRepo, "Ana", "ana@golden.com", "")

	require.NoError(t, repo.DeleteMember(ctx, ana.ID))

	_, err := repo.GetMember(ctx, ana.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.DeleteMember(ctx, ana.ID), ErrNotFound)
}
