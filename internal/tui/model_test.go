package tui

import (
	"context"
	"net/http"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/funil/internal/models"
	funnelservice "github.com/thenoetrevino/funil/internal/services/funnel"
	taskservice "github.com/thenoetrevino/funil/internal/services/task"
	clitest "github.com/thenoetrevino/funil/internal/testutil/cli"
	"github.com/thenoetrevino/funil/internal/testutil/crm"
	"github.com/thenoetrevino/funil/internal/tui/components"
	"github.com/thenoetrevino/funil/internal/tui/state"
)

func TestNew_StartsLoading(t *testing.T) {
	m, _, _, _ := setupModel(t)

	assert.Equal(t, state.LoadingMode, m.UiState.Mode())
	assert.Equal(t, state.FunnelBoard, m.UiState.Kind())
	assert.Nil(t, m.currentBoard())
	assert.NotNil(t, m.EventChan)
}

func TestSession_NoSessionShowsLogin(t *testing.T) {
	m, _, _, _ := setupModel(t)

	m = update(m, m.checkSession()())

	assert.Equal(t, state.LoginMode, m.UiState.Mode())
	require.NotNil(t, m.FormState.LoginForm)
	assert.False(t, m.NotificationState.HasAny())
}

func TestSession_ExpiredShowsLoginWithNotice(t *testing.T) {
	m, a, _, _ := setupModel(t)
	require.NoError(t, a.Session.Save(context.Background(), &models.Session{
		Token: crm.IssueToken(ana.ID, -time.Minute),
		User:  ana,
	}))

	m = update(m, m.checkSession()())

	assert.Equal(t, state.LoginMode, m.UiState.Mode())
	require.Len(t, m.NotificationState.All(), 1)
	assert.Contains(t, m.NotificationState.All()[0].Message, "Session expired")
}

func TestSession_ValidLoadsActiveFunnel(t *testing.T) {
	m, a, _, f := setupModel(t)

	m = signedIn(t, m, a)

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, f.ID, m.funnelSync.BoardID())
	assert.Equal(t, []string{"Maria", "João"}, columnTitles(t, m, "Prospecção"))
	assert.Equal(t, ana.Name, m.user.Name)
	assert.NoError(t, m.loadErr)
}

func TestLogin_Success(t *testing.T) {
	m, _, srv, f := setupModel(t)
	srv.AddUser("ana@example.com", "secret", ana)
	m = update(m, m.checkSession()())

	m = update(m, m.login("ana@example.com", "secret")())
	assert.Equal(t, state.LoadingMode, m.UiState.Mode())
	assert.Contains(t, m.NotificationState.All()[0].Message, "Welcome, Ana")

	m = update(m, m.loadFunnels()())
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, f.ID, m.funnelSync.BoardID())
}

func TestLogin_WrongPassword(t *testing.T) {
	m, _, srv, _ := setupModel(t)
	srv.AddUser("ana@example.com", "secret", ana)
	m = update(m, m.checkSession()())

	m = update(m, m.login("ana@example.com", "nope")())

	assert.Equal(t, state.LoginMode, m.UiState.Mode())
	assert.True(t, m.NotificationState.HasErrors())
	assert.Equal(t, "Invalid email or password", m.NotificationState.All()[0].Message)
}

func TestLoad_FailureShowsNoBoard(t *testing.T) {
	m, a, srv, _ := setupModel(t)
	srv.FailFetches(true)

	m = signedIn(t, m, a)

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Error(t, m.loadErr)
	assert.Nil(t, m.currentBoard())
	assert.True(t, m.NotificationState.HasErrors())
	assert.Contains(t, m.render(), "No board loaded")
	// no retry loop: one list call only
	assert.Equal(t, 1, srv.CountRequests(http.MethodGet, "/funnels"))
}

func TestLoad_NoFunnels(t *testing.T) {
	a, _ := clitest.SetupCLITest(t)
	m := New(context.Background(), a)
	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 30})

	m = signedIn(t, m, a)

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.ErrorIs(t, m.loadErr, funnelservice.ErrNoFunnels)
	assert.Contains(t, m.render(), "No funnels yet")
	assert.False(t, m.NotificationState.HasErrors())
}

func TestLoad_UnauthorizedReturnsToLogin(t *testing.T) {
	m, a, srv, _ := setupModel(t)
	srv.RequireAuth()
	require.NoError(t, a.Session.Save(context.Background(), &models.Session{
		Token: crm.IssueToken(ana.ID, time.Hour),
		User:  ana,
	}))
	m = update(m, m.checkSession()())

	updated, cmd := m.Update(m.loadFunnels()())
	m = run(t, updated.(Model), cmd)

	assert.Equal(t, state.LoginMode, m.UiState.Mode())
	require.True(t, m.NotificationState.HasAny())
	assert.Contains(t, m.NotificationState.All()[0].Message, "Session expired")
	_, err := a.Session.Load(context.Background())
	assert.Error(t, err)
}

func TestFunnelCreated_SwitchesToNewFunnel(t *testing.T) {
	m, a, srv, _ := setupModel(t)
	m = signedIn(t, m, a)

	updated, cmd := m.Update(m.createFunnel(funnelservice.CreateFunnelRequest{Name: "Parcerias"})())
	m = run(t, updated.(Model), cmd)

	require.Len(t, m.funnels, 2)
	created := m.funnels[1]
	assert.Equal(t, created.ID, m.funnelSync.BoardID())
	assert.Equal(t, len(models.DefaultStageNames), len(srv.Funnel(created.ID).Stages))
	assert.Equal(t, 1, m.activeTab())
}

func TestTaskBoard_ToggleLoadsLocalTasks(t *testing.T) {
	m, a, _, _ := setupModel(t)
	m = signedIn(t, m, a)
	_, err := a.TaskService.CreateTask(context.Background(), taskservice.CreateTaskRequest{Title: "Ligar para Maria"})
	require.NoError(t, err)

	m, cmd := press(m, "t")
	assert.Equal(t, state.TaskBoard, m.UiState.Kind())
	m = run(t, m, cmd)

	b := m.currentBoard()
	require.NotNil(t, b)
	require.Len(t, b.Columns, len(models.TaskStatuses))
	assert.Equal(t, []string{"Ligar para Maria"}, columnTitles(t, m, models.StatusPending.Title()))
	assert.Equal(t, []components.Tab{{Name: models.TaskBoardName, Count: 1}}, m.tabs(b))

	// back to funnels keeps the funnel board without refetching
	m, cmd = press(m, "t")
	assert.Nil(t, cmd)
	assert.Equal(t, state.FunnelBoard, m.UiState.Kind())
	assert.Equal(t, []string{"Maria", "João"}, columnTitles(t, m, "Prospecção"))
}

func TestSwitchFunnel_RemembersActive(t *testing.T) {
	m, a, srv, first := setupModel(t)
	second := srv.AddFunnel(&models.Funnel{Name: "Parcerias", Stages: []*models.Stage{{Name: "Contato"}}})
	m = signedIn(t, m, a)
	require.Equal(t, first.ID, m.funnelSync.BoardID())

	m, cmd := press(m, "]")
	m = run(t, m, cmd)
	assert.Equal(t, second.ID, m.funnelSync.BoardID())
	assert.Equal(t, 1, m.activeTab())
	// summaries carry no leads, so only the shown funnel is counted
	assert.Equal(t, []components.Tab{
		{Icon: "💰", Name: "Vendas", Count: -1},
		{Name: "Parcerias", Count: 0},
	}, m.tabs(m.currentBoard()))

	saved, err := a.Session.ActiveBoardID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.ID, saved)

	// already on the last tab
	_, cmd = press(m, "]")
	assert.Nil(t, cmd)

	m, cmd = press(m, "[")
	m = run(t, m, cmd)
	assert.Equal(t, first.ID, m.funnelSync.BoardID())
}

func TestLogout_ReturnsToLogin(t *testing.T) {
	m, a, _, _ := setupModel(t)
	m = signedIn(t, m, a)

	m, cmd := press(m, "ctrl+l")
	m = run(t, m, cmd)

	assert.Equal(t, state.LoginMode, m.UiState.Mode())
	assert.Nil(t, m.user)
	assert.Nil(t, m.currentBoard())
	_, err := a.Session.Load(context.Background())
	assert.Error(t, err)
}
