package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/funil/internal/cli"
	"github.com/thenoetrevino/funil/internal/models"
	"github.com/thenoetrevino/funil/internal/testutil"
	clitest "github.com/thenoetrevino/funil/internal/testutil/cli"
)

func TestDashboard(t *testing.T) {
	a, srv := clitest.SetupCLITest(t)
	srv.AddFunnel(&models.Funnel{
		Name: "Vendas",
		Stages: []*models.Stage{
			{Name: "Prospecção", Leads: []*models.Lead{{Name: "Maria"}, {Name: "João"}, {Name: "Ana"}}},
			{Name: "Proposta", Leads: []*models.Lead{{Name: "Carla"}}},
		},
	})
	srv.SetSummary(5, 12)

	output, err := clitest.ExecuteCLICommand(t, a, DashboardCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Dashboard")
	assert.Contains(t, output, "Prospecção")
	assert.Contains(t, output, "75%")
	assert.Contains(t, output, "25%")

	output, err = clitest.ExecuteCLICommand(t, a, DashboardCmd(), []string{"--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	assert.EqualValues(t, 4, data["total_leads"])
	assert.EqualValues(t, 5, data["pending_tasks"])
	assert.EqualValues(t, 12, data["total_employees"])

	stages := data["leads_per_stage"].([]any)
	require.Len(t, stages, 2)
	assert.EqualValues(t, 75, stages[0].(map[string]any)["percent"])
}

func TestDashboard_NoLeads(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, a, DashboardCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Total leads")
	assert.NotContains(t, output, "Leads per stage")
}

func TestDashboard_Unauthorized(t *testing.T) {
	a, srv := clitest.SetupCLITest(t)
	srv.RequireAuth()

	output, err := clitest.ExecuteCLICommand(t, a, DashboardCmd(), []string{"--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitAuth, cli.ExitCode(err))
	assert.Equal(t, "AUTH_REQUIRED", testutil.ParseJSON(t, output)["error"].(map[string]any)["code"])
}
