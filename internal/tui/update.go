package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/funil/internal/api"
	"github.com/thenoetrevino/funil/internal/events"
	authservice "github.com/thenoetrevino/funil/internal/services/auth"
	funnelservice "github.com/thenoetrevino/funil/internal/services/funnel"
	"github.com/thenoetrevino/funil/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.clampSelection()
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case sessionCheckedMsg:
		return m.handleSessionChecked(msg)
	case loggedInMsg:
		return m.handleLoggedIn(msg)
	case loggedOutMsg:
		return m.handleLoggedOut(msg)
	case funnelsLoadedMsg:
		return m.handleFunnelsLoaded(msg)
	case boardLoadedMsg:
		return m.handleBoardLoaded(msg)
	case movePersistedMsg:
		return m.handleMovePersisted(msg)
	case columnRenamedMsg:
		return m.handleColumnRenamed(msg)
	case funnelCreatedMsg:
		return m.handleFunnelCreated(msg)
	case RefreshMsg:
		return m.handleRefresh(msg)
	}

	// Forms need their internal messages (cursor blink, focus) as well
	switch m.UiState.Mode() {
	case state.LoginMode:
		return m.updateLoginForm(msg)
	case state.FunnelFormMode:
		return m.updateFunnelForm(msg)
	case state.FilterMode, state.RenameMode:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches a key press to the handler of the current mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.UiState.Mode() {
	case state.LoadingMode:
		if msg.String() == m.Config.KeyMappings.Quit {
			return m, tea.Quit
		}
		return m, nil
	case state.LoginMode:
		return m.updateLoginForm(msg)
	case state.FunnelFormMode:
		return m.updateFunnelForm(msg)
	case state.FilterMode:
		return m.handleFilterInput(msg)
	case state.RenameMode:
		return m.handleRenameInput(msg)
	case state.DetailMode, state.HelpMode:
		m.detail = ""
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	default:
		return m.handleNormalMode(msg)
	}
}

func (m Model) handleSessionChecked(msg sessionCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, authservice.ErrSessionExpired) {
			m.NotificationState.Add(state.LevelInfo, "Session expired, please sign in again")
		} else if !errors.Is(msg.err, authservice.ErrNotLoggedIn) {
			slog.Error("failed to read session", "error", msg.err)
		}
		return m, m.openLoginForm()
	}
	m.user = msg.session.User
	m.UiState.SetMode(state.LoadingMode)
	return m, m.loadFunnels()
}

func (m Model) handleLoggedIn(msg loggedInMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("login failed", "error", msg.err)
		m.NotificationState.Add(state.LevelError, loginErrorMessage(msg.err))
		return m, m.openLoginForm()
	}
	m.user = msg.session.User
	m.FormState.ResetLogin()
	m.NotificationState.Clear()
	m.NotificationState.Add(state.LevelInfo, "Welcome, "+m.user.FirstName())
	m.UiState.SetMode(state.LoadingMode)
	return m, m.loadFunnels()
}

func loginErrorMessage(err error) string {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return "Invalid email or password"
	case errors.Is(err, authservice.ErrMissingCredentials), errors.Is(err, authservice.ErrInvalidEmail):
		return err.Error()
	default:
		return "Could not reach the server"
	}
}

func (m Model) handleLoggedOut(msg loggedOutMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		slog.Error("failed to log out", "error", msg.err)
	}
	m.user = nil
	m.funnels = nil
	m.loadErr = nil
	m.funnelSync = m.App.FunnelBoard()
	m.clearFilters()
	m.UiState.SetKind(state.FunnelBoard)
	return m, m.openLoginForm()
}

// handleUnauthorized sends the user back to the login screen
func (m Model) handleUnauthorized() (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()
	m.NotificationState.Add(state.LevelInfo, "Session expired, please sign in again")
	return m, m.logout()
}

func (m Model) handleFunnelsLoaded(msg funnelsLoadedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, api.ErrUnauthorized) {
		return m.handleUnauthorized()
	}
	m.funnels = msg.funnels
	m.UiState.SetMode(state.NormalMode)

	switch {
	case errors.Is(msg.err, funnelservice.ErrNoFunnels):
		m.loadErr = msg.err
		m.NotificationState.Add(state.LevelInfo, "No funnels yet, press "+m.Config.KeyMappings.CreateBoard+" to create one")
	case msg.err != nil:
		// no retry: the board stays empty until the user reloads
		slog.Error("failed to load funnels", "error", msg.err)
		m.loadErr = msg.err
		m.NotificationState.Add(state.LevelError, "Could not load funnels")
	default:
		m.loadErr = nil
	}
	m.clampSelection()
	return m, nil
}

func (m Model) handleBoardLoaded(msg boardLoadedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, api.ErrUnauthorized) {
		return m.handleUnauthorized()
	}
	if msg.kind != m.UiState.Kind() {
		return m, nil
	}
	if msg.err != nil {
		slog.Error("failed to load board", "error", msg.err)
		if m.currentBoard() == nil {
			m.loadErr = msg.err
		}
		m.NotificationState.Add(state.LevelError, "Could not load board")
		return m, nil
	}
	m.loadErr = nil
	m.clampSelection()
	return m, nil
}

// handleMovePersisted reports a failed move. The synchronizer already
// replaced the optimistic board with the backend's.
func (m Model) handleMovePersisted(msg movePersistedMsg) (tea.Model, tea.Cmd) {
	res := msg.result
	if res.Err == nil {
		return m, nil
	}
	if errors.Is(res.Err, api.ErrUnauthorized) {
		return m.handleUnauthorized()
	}
	if res.ReloadErr != nil {
		m.NotificationState.Add(state.LevelError, "Could not save move or reload the board")
	} else {
		m.NotificationState.Add(state.LevelError, "Could not save move, board reloaded")
	}
	if msg.kind == m.UiState.Kind() {
		m.clampSelection()
	}
	return m, nil
}

func (m Model) handleColumnRenamed(msg columnRenamedMsg) (tea.Model, tea.Cmd) {
	if msg.err == nil {
		return m, nil
	}
	if errors.Is(msg.err, api.ErrUnauthorized) {
		return m.handleUnauthorized()
	}
	slog.Error("failed to rename column", "error", msg.err)
	m.NotificationState.Add(state.LevelError, "Could not rename column")
	return m, nil
}

func (m Model) handleFunnelCreated(msg funnelCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, api.ErrUnauthorized) {
			return m.handleUnauthorized()
		}
		slog.Error("failed to create funnel", "error", msg.err)
		m.NotificationState.Add(state.LevelError, "Could not create funnel")
		return m, nil
	}
	m.NotificationState.Add(state.LevelInfo, "Funnel '"+msg.funnel.Name+"' created")
	m.UiState.SetKind(state.FunnelBoard)
	m.clearFilters()
	return m, m.loadFunnels()
}

// handleRefresh keeps the selection valid when a synchronizer replaced its board
func (m Model) handleRefresh(msg RefreshMsg) (tea.Model, tea.Cmd) {
	switch msg.Event.Type {
	case events.EventBoardReloaded, events.EventColumnRenamed, events.EventBoardLoaded:
		m.clampSelection()
	}
	return m, m.subscribeToEvents()
}
