package tui

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/funil/internal/app"
	"github.com/thenoetrevino/funil/internal/models"
	clitest "github.com/thenoetrevino/funil/internal/testutil/cli"
	"github.com/thenoetrevino/funil/internal/testutil/crm"
)

var ana = &models.User{ID: "u1", Name: "Ana Souza", Email: "ana@example.com"}

// setupModel returns a sized model over a fake backend holding one funnel
func setupModel(t *testing.T) (Model, *app.App, *crm.Server, *models.Funnel) {
	t.Helper()
	a, srv := clitest.SetupCLITest(t)
	f := srv.AddFunnel(&models.Funnel{
		Name: "Vendas",
		Icon: "💰",
		Stages: []*models.Stage{
			{Name: "Prospecção", Leads: []*models.Lead{
				{Name: "Maria", Email: "maria@example.com", SourceChannel: "Instagram"},
				{Name: "João"},
			}},
			{Name: "Proposta"},
		},
	})

	m := New(context.Background(), a)
	m = update(m, tea.WindowSizeMsg{Width: 160, Height: 40})
	return m, a, srv, f
}

// signedIn stores a valid session and runs the startup commands
func signedIn(t *testing.T, m Model, a *app.App) Model {
	t.Helper()
	err := a.Session.Save(context.Background(), &models.Session{
		Token: crm.IssueToken(ana.ID, time.Hour),
		User:  ana,
	})
	require.NoError(t, err)

	m = update(m, m.checkSession()())
	return update(m, m.loadFunnels()())
}

// update feeds msg to the model and drops the returned command
func update(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// press feeds a key and returns the command so the test can run it
func press(m Model, k string) (Model, tea.Cmd) {
	updated, cmd := m.Update(keyMsg(k))
	return updated.(Model), cmd
}

// run executes a command produced by the model and feeds back its message
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	return update(m, cmd())
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "ctrl+l":
		return tea.KeyPressMsg(tea.Key{Code: 'l', Mod: tea.ModCtrl})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Text: k, Code: r})
}

// typeText types s one key at a time
func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = press(m, string(r))
	}
	return m
}

// columnTitles returns the item titles of the named column in the shown board
func columnTitles(t *testing.T, m Model, name string) []string {
	t.Helper()
	b := m.currentBoard()
	require.NotNil(t, b)
	for _, col := range b.Columns {
		if col.Name == name {
			titles := make([]string, 0, len(col.Items))
			for _, item := range col.Items {
				titles = append(titles, item.Title)
			}
			return titles
		}
	}
	t.Fatalf("column %q not found", name)
	return nil
}
