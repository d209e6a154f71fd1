package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	funnelservice "github.com/thenoetrevino/funil/internal/services/funnel"
	"github.com/thenoetrevino/funil/internal/tui/huhforms"
	"github.com/thenoetrevino/funil/internal/tui/state"
)

// openLoginForm shows a fresh login form, keeping the last typed email
func (m Model) openLoginForm() tea.Cmd {
	m.FormState.ResetLogin()
	m.FormState.LoginForm = huhforms.CreateLoginForm(&m.FormState.LoginEmail, &m.FormState.LoginPassword).
		WithTheme(huhforms.CreateFunilTheme(m.Config.ColorScheme))
	m.UiState.SetMode(state.LoginMode)
	return m.FormState.LoginForm.Init()
}

// openFunnelForm shows an empty new funnel form
func (m Model) openFunnelForm() tea.Cmd {
	m.FormState.ResetFunnel()
	m.FormState.FunnelForm = huhforms.CreateFunnelForm(
		&m.FormState.FunnelName,
		&m.FormState.FunnelDescription,
		&m.FormState.FunnelStages,
		&m.FormState.FunnelConfirm,
	).WithTheme(huhforms.CreateFunilTheme(m.Config.ColorScheme))
	m.UiState.SetMode(state.FunnelFormMode)
	return m.FormState.FunnelForm.Init()
}

// updateLoginForm forwards messages to the login form and signs in once it completes
func (m Model) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "esc" {
		return m, tea.Quit
	}
	form := m.FormState.LoginForm
	if form == nil {
		return m, m.openLoginForm()
	}

	model, cmd := form.Update(msg)
	form = model.(*huh.Form)
	m.FormState.LoginForm = form

	if form.State == huh.StateCompleted {
		m.FormState.LoginForm = nil
		m.UiState.SetMode(state.LoadingMode)
		return m, m.login(strings.TrimSpace(m.FormState.LoginEmail), m.FormState.LoginPassword)
	}
	return m, cmd
}

// updateFunnelForm forwards messages to the funnel form and creates the
// funnel once it completes with a yes
func (m Model) updateFunnelForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "esc" {
		m.FormState.ResetFunnel()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	form := m.FormState.FunnelForm
	if form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	model, cmd := form.Update(msg)
	form = model.(*huh.Form)
	m.FormState.FunnelForm = form

	switch form.State {
	case huh.StateCompleted:
		req := funnelservice.CreateFunnelRequest{
			Name:        strings.TrimSpace(m.FormState.FunnelName),
			Description: strings.TrimSpace(m.FormState.FunnelDescription),
			Stages:      huhforms.SplitStages(m.FormState.FunnelStages),
		}
		confirmed := m.FormState.FunnelConfirm
		m.FormState.ResetFunnel()
		m.UiState.SetMode(state.NormalMode)
		if !confirmed {
			return m, nil
		}
		return m, m.createFunnel(req)
	case huh.StateAborted:
		m.FormState.ResetFunnel()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}
	return m, cmd
}
