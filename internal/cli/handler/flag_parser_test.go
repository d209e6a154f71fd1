package handler

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/models"
)

// ============================================================================
// Test Helpers
// ============================================================================

// createTestCommand creates a cobra.Command with the flags the parser reads
func createTestCommand(t *testing.T, args ...string) *FlagParser {
	t.Helper()
	cmd := &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {},
	}
	cmd.Flags().String("name", "", "")
	cmd.Flags().String("color", "", "")
	cmd.Flags().String("status", "", "")
	cmd.Flags().String("priority", "", "")
	cmd.Flags().String("role", "", "")
	cmd.Flags().String("due", "", "")
	cmd.Flags().Int("limit", 0, "")
	cmd.Flags().StringSlice("tag", nil, "")
	cli.AddOutputFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return NewFlagParser(cmd)
}

// ============================================================================
// String flags
// ============================================================================

func TestParseString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "valid", args: []string{"--name", "Vendas"}, want: "Vendas"},
		{name: "trimmed", args: []string{"--name", "  Vendas  "}, want: "Vendas"},
		{name: "missing", args: nil, wantErr: true},
		{name: "blank", args: []string{"--name", "   "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := createTestCommand(t, tt.args...).ParseString("name")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseString_NonExistentFlag(t *testing.T) {
	_, err := createTestCommand(t).ParseString("nope")
	assert.Error(t, err)
}

func TestHas(t *testing.T) {
	p := createTestCommand(t, "--name", "")
	assert.True(t, p.Has("name"), "explicitly empty still counts as set")
	assert.False(t, p.Has("color"))
}

// ============================================================================
// Typed flags
// ============================================================================

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "empty is allowed", args: nil, want: ""},
		{name: "valid", args: []string{"--color", "#EAB308"}, want: "#EAB308"},
		{name: "lowercase", args: []string{"--color", "#eab308"}, want: "#eab308"},
		{name: "no hash", args: []string{"--color", "EAB308"}, wantErr: true},
		{name: "short", args: []string{"--color", "#FFF"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := createTestCommand(t, tt.args...).ParseColor("color")
			if tt.wantErr {
				assert.ErrorIs(t, err, cli.ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus(t *testing.T) {
	got, err := createTestCommand(t, "--status", "Em Andamento").ParseStatus("status")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, got)

	got, err = createTestCommand(t).ParseStatus("status")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = createTestCommand(t, "--status", "arquivada").ParseStatus("status")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestParseRoleAndMemberStatus(t *testing.T) {
	role, err := createTestCommand(t, "--role", "Gestor").ParseRole("role")
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, role)

	role, err = createTestCommand(t).ParseRole("role")
	require.NoError(t, err)
	assert.Empty(t, role)

	_, err = createTestCommand(t, "--role", "chefe").ParseRole("role")
	assert.ErrorIs(t, err, models.ErrInvalidRole)

	status, err := createTestCommand(t, "--status", "INATIVO").ParseMemberStatus("status")
	require.NoError(t, err)
	assert.Equal(t, models.MemberInactive, status)

	_, err = createTestCommand(t, "--status", "ferias").ParseMemberStatus("status")
	assert.ErrorIs(t, err, models.ErrInvalidMemberStatus)
}

func TestParsePriority(t *testing.T) {
	got, err := createTestCommand(t).ParsePriority("priority")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPriority, got)

	got, err = createTestCommand(t, "--priority", "URGENTE").ParsePriority("priority")
	require.NoError(t, err)
	assert.Equal(t, models.PriorityUrgent, got)

	_, err = createTestCommand(t, "--priority", "critical").ParsePriority("priority")
	assert.ErrorIs(t, err, models.ErrInvalidPriority)
}

func TestParseDueDate(t *testing.T) {
	due, err := createTestCommand(t, "--due", "2026-05-10").ParseDueDate("due")
	require.NoError(t, err)
	require.NotNil(t, due)
	assert.Equal(t, 10, due.Day())

	due, err = createTestCommand(t).ParseDueDate("due")
	require.NoError(t, err)
	assert.Nil(t, due)

	_, err = createTestCommand(t, "--due", "10/05/2026").ParseDueDate("due")
	assert.ErrorIs(t, err, cli.ErrInvalidDate)
}

func TestParseStringSliceAndInt(t *testing.T) {
	p := createTestCommand(t, "--tag", "vip,urgente", "--tag", "retorno", "--limit", "25")

	tags, err := p.ParseStringSlice("tag")
	require.NoError(t, err)
	assert.Equal(t, []string{"vip", "urgente", "retorno"}, tags)

	limit, err := p.ParseIntOptional("limit")
	require.NoError(t, err)
	assert.Equal(t, 25, limit)
}

func TestOutputFormats(t *testing.T) {
	jsonOutput, quietMode, err := createTestCommand(t, "--json").OutputFormats()
	require.NoError(t, err)
	assert.True(t, jsonOutput)
	assert.False(t, quietMode)
}

func TestOutputFormats_MissingFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "bare"}
	_, _, err := NewFlagParser(cmd).OutputFormats()
	assert.Error(t, err)
}
