package team

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/funil/internal/models"
	"github.com/thenoetrevino/funil/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var fixedNow = time.Date(2026, 4, 10, 15, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(testutil.SetupTestRepository(t), WithClock(func() time.Time { return fixedNow }))
}

func mustCreateTeam(t *testing.T, svc Service, name string) *models.Team {
	t.Helper()
	team, err := svc.CreateTeam(context.Background(), CreateTeamRequest{Name: name})
	require.NoError(t, err)
	return team
}

func mustCreateMember(t *testing.T, svc Service, req CreateMemberRequest) *models.Member {
	t.Helper()
	member, err := svc.CreateMember(context.Background(), req)
	require.NoError(t, err)
	return member
}

func names(members []*models.Member) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.Name)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

// ============================================================================
// Teams
// ============================================================================

func TestCreateTeam_Defaults(t *testing.T) {
	svc := newTestService(t)

	team, err := svc.CreateTeam(context.Background(), CreateTeamRequest{
		Name:        "  Vendas  ",
		Description: " Consultores de campo ",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, team.ID)
	assert.Equal(t, "Vendas", team.Name)
	assert.Equal(t, "Consultores de campo", team.Description)
	assert.Equal(t, models.DefaultTeamColor, team.Color)
	assert.Empty(t, team.Members)
}

func TestCreateTeam_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateTeamRequest
		want error
	}{
		{"empty name", CreateTeamRequest{Name: "   "}, ErrEmptyTeamName},
		{"long name", CreateTeamRequest{Name: strings.Repeat("a", 101)}, ErrTeamNameTooLong},
		{"bad color", CreateTeamRequest{Name: "Vendas", Color: "azul"}, models.ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateTeam(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateTeam_DuplicateName(t *testing.T) {
	svc := newTestService(t)
	mustCreateTeam(t, svc, "Vendas")

	_, err := svc.CreateTeam(context.Background(), CreateTeamRequest{Name: "vendas"})
	assert.ErrorIs(t, err, ErrTeamExists)
}

func TestCreateTeam_NormalizesColor(t *testing.T) {
	svc := newTestService(t)

	team, err := svc.CreateTeam(context.Background(), CreateTeamRequest{Name: "Vendas", Color: "#3b82f6"})
	require.NoError(t, err)
	assert.Equal(t, "#3B82F6", team.Color)
}

func TestGetTeam_ByNameOrPrefix(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	team := mustCreateTeam(t, svc, "Atendimento")

	byName, err := svc.GetTeam(ctx, "ATENDIMENTO")
	require.NoError(t, err)
	assert.Equal(t, team.ID, byName.ID)

	byPrefix, err := svc.GetTeam(ctx, team.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, team.ID, byPrefix.ID)

	_, err = svc.GetTeam(ctx, "Financeiro")
	assert.ErrorIs(t, err, ErrTeamNotFound)

	_, err = svc.GetTeam(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidTeamID)
}

func TestUpdateTeam(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	team := mustCreateTeam(t, svc, "Vendas")
	mustCreateTeam(t, svc, "Suporte")

	updated, err := svc.UpdateTeam(ctx, UpdateTeamRequest{
		Team:  "Vendas",
		Name:  ptr("Vendas Sul"),
		Color: ptr("#10B981"),
	})
	require.NoError(t, err)
	assert.Equal(t, team.ID, updated.ID)
	assert.Equal(t, "Vendas Sul", updated.Name)
	assert.Equal(t, "#10B981", updated.Color)

	_, err = svc.UpdateTeam(ctx, UpdateTeamRequest{Team: team.ID, Name: ptr("suporte")})
	assert.ErrorIs(t, err, ErrTeamExists)

	_, err = svc.UpdateTeam(ctx, UpdateTeamRequest{Team: team.ID, Name: ptr("")})
	assert.ErrorIs(t, err, ErrEmptyTeamName)
}

func TestDeleteTeam_UnassignsMembers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	mustCreateTeam(t, svc, "Vendas")
	ana := mustCreateMember(t, svc, CreateMemberRequest{Name: "Ana", Email: "ana@golden.com", Team: "Vendas"})

	deleted, err := svc.DeleteTeam(ctx, "vendas")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana"}, names(deleted.Members))

	got, err := svc.GetMember(ctx, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, got.TeamID)

	_, err = svc.DeleteTeam(ctx, deleted.ID)
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

// ============================================================================
// Members
// ============================================================================

func TestCreateMember_Defaults(t *testing.T) {
	svc := newTestService(t)
	mustCreateTeam(t, svc, "Gestão")

	member, err := svc.CreateMember(context.Background(), CreateMemberRequest{
		Name:  " Pedro Guedes ",
		Email: " Pedro@Golden.com ",
		Team:  "gestão",
	})

	require.NoError(t, err)
	assert.Equal(t, "Pedro Guedes", member.Name)
	assert.Equal(t, "pedro@golden.com", member.Email)
	assert.Equal(t, models.RoleConsultant, member.Role)
	assert.Equal(t, models.MemberActive, member.Status)
	assert.Equal(t, "Gestão", member.TeamName)
	assert.True(t, fixedNow.Equal(member.JoinedAt), "joined %v", member.JoinedAt)
	assert.Equal(t, "PG", member.Initials())
}

func TestCreateMember_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateMemberRequest
		want error
	}{
		{"empty name", CreateMemberRequest{Email: "a@b.com"}, ErrEmptyMemberName},
		{"empty email", CreateMemberRequest{Name: "Ana"}, ErrInvalidEmail},
		{"bad email", CreateMemberRequest{Name: "Ana", Email: "ana.golden.com"}, ErrInvalidEmail},
		{"display name", CreateMemberRequest{Name: "Ana", Email: "Ana <ana@golden.com>"}, ErrInvalidEmail},
		{"bad role", CreateMemberRequest{Name: "Ana", Email: "a@b.com", Role: "chefe"}, models.ErrInvalidRole},
		{"bad status", CreateMemberRequest{Name: "Ana", Email: "a@b.com", Status: "ferias"}, models.ErrInvalidMemberStatus},
		{"unknown team", CreateMemberRequest{Name: "Ana", Email: "a@b.com", Team: "Nenhuma"}, ErrTeamNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateMember(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateMember_DuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	mustCreateMember(t, svc, CreateMemberRequest{Name: "Ana", Email: "ana@golden.com"})

	_, err := svc.CreateMember(context.Background(), CreateMemberRequest{Name: "Outra", Email: "ANA@golden.com"})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestGetMember_ByEmailOrPrefix(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	ana := mustCreateMember(t, svc, CreateMemberRequest{Name: "Ana", Email: "ana@golden.com"})

	byEmail, err := svc.GetMember(ctx, "ANA@golden.com")
	require.NoError(t, err)
	assert.Equal(t, ana.ID, byEmail.ID)

	byPrefix, err := svc.GetMember(ctx, ana.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, ana.ID, byPrefix.ID)

	_, err = svc.GetMember(ctx, "ninguem@golden.com")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestListMembers_Filters(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	mustCreateTeam(t, svc, "Vendas")
	mustCreateMember(t, svc, CreateMemberRequest{Name: "Ana Oliveira", Email: "ana@golden.com", Team: "Vendas"})
	mustCreateMember(t, svc, CreateMemberRequest{Name: "Bruno Costa", Email: "bruno@golden.com", Team: "Vendas", Status: models.MemberInactive})
	mustCreateMember(t, svc, CreateMemberRequest{Name: "Pedro Guedes", Email: "pedro@golden.com", Role: models.RoleManager})

	tests := []struct {
		name string
		req  ListMembersRequest
		want []string
	}{
		{"all", ListMembersRequest{}, []string{"Ana Oliveira", "Bruno Costa", "Pedro Guedes"}},
		{"team by name", ListMembersRequest{Team: "vendas"}, []string{"Ana Oliveira", "Bruno Costa"}},
		{"no team", ListMembersRequest{NoTeam: true}, []string{"Pedro Guedes"}},
		{"role", ListMembersRequest{Roles: []models.Role{models.RoleManager}}, []string{"Pedro Guedes"}},
		{"status", ListMembersRequest{Statuses: []models.MemberStatus{models.MemberActive}}, []string{"Ana Oliveira", "Pedro Guedes"}},
		{"search", ListMembersRequest{Search: "costa"}, []string{"Bruno Costa"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members, err := svc.ListMembers(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(members))
		})
	}

	_, err := svc.ListMembers(ctx, ListMembersRequest{Team: "Financeiro"})
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestUpdateMember(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	mustCreateTeam(t, svc, "Vendas")
	mustCreateTeam(t, svc, "Suporte")
	ana := mustCreateMember(t, svc, CreateMemberRequest{Name: "Ana", Email: "ana@golden.com", Team: "Vendas"})

	updated, err := svc.UpdateMember(ctx, UpdateMemberRequest{
		Member: "ana@golden.com",
		Role:   ptr(models.RoleSupport),
		Status: ptr(models.MemberInactive),
		Team:   ptr("Suporte"),
	})
	require.NoError(t, err)
	assert.Equal(t, ana.ID, updated.ID)
	assert.Equal(t, models.RoleSupport, updated.Role)
	assert.False(t, updated.Active())
	assert.Equal(t, "Suporte", updated.TeamName)
	assert.Equal(t, "Ana", updated.Name, "untouched fields are kept")

	updated, err = svc.UpdateMember(ctx, UpdateMemberRequest{Member: ana.ID, Team: ptr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.TeamID)
	assert.Empty(t, updated.TeamName)
}

func TestUpdateMember_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	ana := mustCreateMember(t, svc, CreateMemberRequest{Name: "Ana", Email: "ana@golden.com"})
	mustCreateMember(t, svc, CreateMemberRequest{Name: "Bruno", Email: "bruno@golden.com"})

	_, err := svc.UpdateMember(ctx, UpdateMemberRequest{Member: ana.ID, Email: ptr("bruno@golden.com")})
	assert.ErrorIs(t, err, ErrEmailInUse)

	_, err = svc.UpdateMember(ctx, UpdateMemberRequest{Member: ana.ID, Name: ptr(" ")})
	assert.ErrorIs(t, err, ErrEmptyMemberName)

	_, err = svc.UpdateMember(ctx, UpdateMemberRequest{Member: ana.ID, Role: ptr(models.Role("chefe"))})
	assert.ErrorIs(t, err, models.ErrInvalidRole)

	_, err = svc.UpdateMember(ctx, UpdateMemberRequest{Member: ana.ID, Team: ptr("Nenhuma")})
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestDeleteMember(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	ana := mustCreateMember(t, svc, CreateMemberRequest{Name: "Ana", Email: "ana@golden.com"})

	deleted, err := svc.DeleteMember(ctx, "ana@golden.com")
	require.NoError(t, err)
	assert.Equal(t, ana.ID, deleted.ID)

	_, err = svc.GetMember(ctx, ana.ID)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
