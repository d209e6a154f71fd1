package funnel

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/funil/internal/app"
	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/models"
	"github.com/thenoetrevino/funil/internal/testutil"
	clitest "github.com/thenoetrevino/funil/internal/testutil/cli"
	"github.com/thenoetrevino/funil/internal/testutil/crm"
)

func setupSales(t *testing.T) (*app.App, *crm.Server, *models.Funnel) {
	t.Helper()
	a, srv := clitest.SetupCLITest(t)
	f := srv.AddFunnel(&models.Funnel{
		Name: "Vendas",
		Icon: "💰",
		Stages: []*models.Stage{
			{Name: "Prospecção", Leads: []*models.Lead{{Name: "Maria"}, {Name: "João"}}},
			{Name: "Proposta"},
		},
	})
	return a, srv, f
}

func TestListFunnels_MarksActive(t *testing.T) {
	a, srv, _ := setupSales(t)
	second := srv.AddFunnel(&models.Funnel{Name: "Parcerias"})
	require.NoError(t, a.FunnelService.Remember(context.Background(), second.ID))

	output, err := clitest.ExecuteCLICommand(t, a, ListCmd(), []string{"--json"})
	require.NoError(t, err)

	funnels := testutil.ParseJSON(t, output)["data"].([]any)
	require.Len(t, funnels, 2)
	assert.Equal(t, false, funnels[0].(map[string]any)["active"])
	assert.Equal(t, true, funnels[1].(map[string]any)["active"])
}

func TestListFunnels_Counts(t *testing.T) {
	a, srv, _ := setupSales(t)
	srv.AddFunnel(&models.Funnel{Name: "Parcerias", Stages: []*models.Stage{{Name: "Contato"}}})

	output, err := clitest.ExecuteCLICommand(t, a, ListCmd(), []string{"--counts", "--json"})
	require.NoError(t, err)

	funnels := testutil.ParseJSON(t, output)["data"].([]any)
	require.Len(t, funnels, 2)
	assert.Equal(t, "Vendas", funnels[0].(map[string]any)["name"])
	assert.EqualValues(t, 2, funnels[0].(map[string]any)["lead_count"])
	assert.EqualValues(t, 0, funnels[1].(map[string]any)["lead_count"])
}

func TestListFunnels_Empty(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, a, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No funnels yet")
}

func TestListFunnels_Unauthorized(t *testing.T) {
	a, srv, _ := setupSales(t)
	srv.RequireAuth()

	_, err := clitest.ExecuteCLICommand(t, a, ListCmd(), nil)
	assert.Equal(t, cli.ExitAuth, cli.ExitCode(err))
}

func TestShowFunnel_ByName(t *testing.T) {
	a, _, f := setupSales(t)

	output, err := clitest.ExecuteCLICommand(t, a, ShowCmd(), []string{"vendas"})
	require.NoError(t, err)
	assert.Contains(t, output, "Vendas")
	assert.Contains(t, output, "Prospecção (2)")
	assert.Contains(t, output, "Maria")
	assert.Contains(t, output, models.DefaultSourceChannel)

	output, err = clitest.ExecuteCLICommand(t, a, ShowCmd(), []string{f.ID, "--json"})
	require.NoError(t, err)
	stages := testutil.ParseJSON(t, output)["data"].(map[string]any)["stages"].([]any)
	assert.Len(t, stages, 2)
}

func TestShowFunnel_NotFound(t *testing.T) {
	a, _, _ := setupSales(t)

	_, err := clitest.ExecuteCLICommand(t, a, ShowCmd(), []string{"Inexistente"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestCreateFunnel_DefaultStages(t *testing.T) {
	a, srv := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, a, CreateCmd(), []string{"--name", "Parcerias", "--quiet"})
	require.NoError(t, err)

	f := srv.Funnel(strings.TrimSpace(output))
	require.NotNil(t, f)
	names := make([]string, 0, len(f.Stages))
	for _, st := range f.Stages {
		names = append(names, st.Name)
	}
	assert.Equal(t, models.DefaultStageNames, names)
	assert.Equal(t, models.DefaultFunnelIcon, f.Icon)
}

func TestCreateFunnel_CustomStages(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, a, CreateCmd(), []string{
		"--name", "Eventos", "--stage", "Contato", "--stage", "Fechado", "--color", "#3B82F6",
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Funnel 'Eventos' created")
	assert.Contains(t, output, "1. Contato")
	assert.Contains(t, output, "2. Fechado")
}

func TestCreateFunnel_Errors(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, a, CreateCmd(), nil)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, err = clitest.ExecuteCLICommand(t, a, CreateCmd(), []string{"--name", "x", "--color", "azul"})
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
}

func TestRenameStage(t *testing.T) {
	a, srv, f := setupSales(t)

	output, err := clitest.ExecuteCLICommand(t, a, RenameStageCmd(), []string{"Vendas", "proposta", "--name", "  Proposta enviada "})
	require.NoError(t, err)
	assert.Contains(t, output, "Stage 'Proposta' renamed to 'Proposta enviada'")
	assert.Equal(t, "Proposta enviada", srv.Funnel(f.ID).Stages[1].Name)
}

func TestRenameStage_BlankNameIsIgnored(t *testing.T) {
	a, srv, f := setupSales(t)

	output, err := clitest.ExecuteCLICommand(t, a, RenameStageCmd(), []string{f.ID, f.Stages[1].ID, "--name", "  "})
	require.NoError(t, err)
	assert.Contains(t, output, "unchanged")
	assert.Zero(t, srv.CountRequests(http.MethodPatch, "/funnels/stages/"+f.Stages[1].ID))
}

func TestRenameStage_UnknownStage(t *testing.T) {
	a, _, _ := setupSales(t)

	_, err := clitest.ExecuteCLICommand(t, a, RenameStageCmd(), []string{"Vendas", "Ganho", "--name", "x"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestMoveLead(t *testing.T) {
	a, srv, f := setupSales(t)
	maria := f.Stages[0].Leads[0]

	output, err := clitest.ExecuteCLICommand(t, a, MoveLeadCmd(), []string{"Vendas", maria.ID, "--stage", "Proposta"})
	require.NoError(t, err)
	assert.Contains(t, output, "Lead moved from 'Prospecção' to 'Proposta'")

	stored := srv.Funnel(f.ID)
	assert.Len(t, stored.Stages[0].Leads, 1)
	require.Len(t, stored.Stages[1].Leads, 1)
	assert.Equal(t, maria.ID, stored.Stages[1].Leads[0].ID)
}

func TestMoveLead_SameStageIsNoop(t *testing.T) {
	a, srv, f := setupSales(t)
	joao := f.Stages[0].Leads[1]

	output, err := clitest.ExecuteCLICommand(t, a, MoveLeadCmd(), []string{"Vendas", joao.ID, "--stage", "Prospecção", "--json"})
	require.NoError(t, err)

	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, false, data["moved"])
	assert.Zero(t, srv.CountRequests(http.MethodPatch, "/funnels/leads/"+joao.ID+"/stage"))
}

func TestMoveLead_CurrentStageIsNotReordered(t *testing.T) {
	a, srv, f := setupSales(t)
	maria := f.Stages[0].Leads[0]

	output, err := clitest.ExecuteCLICommand(t, a, MoveLeadCmd(), []string{"Vendas", maria.ID, "--stage", "Prospecção"})
	require.NoError(t, err)

	assert.Contains(t, output, "Lead already in 'Prospecção'")
	assert.NotContains(t, output, "moved from")
	assert.Zero(t, srv.CountRequests(http.MethodPatch, "/funnels/leads/"+maria.ID+"/stage"))
	assert.Equal(t, maria.ID, srv.Funnel(f.ID).Stages[0].Leads[0].ID)
}

func TestMoveLead_BackendFailure(t *testing.T) {
	a, srv, f := setupSales(t)
	srv.FailMoves(true)
	maria := f.Stages[0].Leads[0]

	_, err := clitest.ExecuteCLICommand(t, a, MoveLeadCmd(), []string{"Vendas", maria.ID, "--stage", "Proposta"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
	assert.Len(t, srv.Funnel(f.ID).Stages[0].Leads, 2, "server state is untouched")
	// find, load, then the reload after the failed persist
	assert.Equal(t, 3, srv.CountRequests(http.MethodGet, "/funnels/"+f.ID))
}

func TestMoveLead_UnknownLead(t *testing.T) {
	a, _, _ := setupSales(t)

	_, err := clitest.ExecuteCLICommand(t, a, MoveLeadCmd(), []string{"Vendas", "lead-999", "--stage", "Proposta"})
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}
