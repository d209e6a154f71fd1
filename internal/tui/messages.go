package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/events"
	"github.com/thenoetrevino/funil/internal/models"
	funnelservice "github.com/thenoetrevino/funil/internal/services/funnel"
	"github.com/thenoetrevino/funil/internal/tui/state"
)

// sessionCheckedMsg reports whether a usable session is stored
type sessionCheckedMsg struct {
	session *models.Session
	err     error
}

// loggedInMsg is the outcome of submitting the login form
type loggedInMsg struct {
	session *models.Session
	err     error
}

// loggedOutMsg is sent once the stored session has been cleared
type loggedOutMsg struct {
	err error
}

// funnelsLoadedMsg carries the funnel tabs and whether the active one loaded
type funnelsLoadedMsg struct {
	funnels []*models.Funnel
	err     error
}

// boardLoadedMsg is sent after a board was loaded or reloaded
type boardLoadedMsg struct {
	kind state.BoardKind
	err  error
}

// movePersistedMsg is sent when a move's persistence call resolved
type movePersistedMsg struct {
	kind   state.BoardKind
	result board.Result
}

// columnRenamedMsg is sent when a rename was persisted (or failed)
type columnRenamedMsg struct {
	err error
}

// funnelCreatedMsg is sent after the new funnel form was submitted
type funnelCreatedMsg struct {
	funnel *models.Funnel
	err    error
}

// RefreshMsg is sent for every board event published by a synchronizer
type RefreshMsg struct {
	Event events.Event
}

func (m Model) checkSession() tea.Cmd {
	auth := m.App.AuthService
	ctx := m.Ctx
	return func() tea.Msg {
		sess, err := auth.Current(ctx)
		return sessionCheckedMsg{session: sess, err: err}
	}
}

func (m Model) login(email, password string) tea.Cmd {
	auth := m.App.AuthService
	ctx := m.Ctx
	return func() tea.Msg {
		sess, err := auth.Login(ctx, email, password)
		return loggedInMsg{session: sess, err: err}
	}
}

func (m Model) logout() tea.Cmd {
	auth := m.App.AuthService
	ctx := m.Ctx
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

// loadFunnels lists the funnels and loads the saved (or first) one
func (m Model) loadFunnels() tea.Cmd {
	svc := m.App.FunnelService
	sync := m.funnelSync
	ctx := m.Ctx
	return func() tea.Msg {
		funnels, err := svc.List(ctx)
		if err != nil {
			return funnelsLoadedMsg{err: err}
		}
		active, err := svc.SelectActive(ctx, funnels)
		if err != nil {
			return funnelsLoadedMsg{funnels: funnels, err: err}
		}
		return funnelsLoadedMsg{funnels: funnels, err: sync.Load(ctx, active.ID)}
	}
}

// loadBoard loads boardID into the synchronizer of kind
func (m Model) loadBoard(kind state.BoardKind, boardID string) tea.Cmd {
	sync := m.funnelSync
	if kind == state.TaskBoard {
		sync = m.taskSync
	}
	ctx := m.Ctx
	return func() tea.Msg {
		return boardLoadedMsg{kind: kind, err: sync.Load(ctx, boardID)}
	}
}

// reloadBoard re-fetches the shown board
func (m Model) reloadBoard() tea.Cmd {
	kind := m.UiState.Kind()
	sync := m.sync()
	ctx := m.Ctx
	return func() tea.Msg {
		return boardLoadedMsg{kind: kind, err: sync.Reload(ctx)}
	}
}

// persistMove sends an optimistically applied move to the backend
func (m Model) persistMove(p *board.Pending) tea.Cmd {
	kind := m.UiState.Kind()
	ctx := m.Ctx
	return func() tea.Msg {
		return movePersistedMsg{kind: kind, result: p.Persist(ctx)}
	}
}

func (m Model) renameColumn(columnID, name string) tea.Cmd {
	sync := m.sync()
	ctx := m.Ctx
	return func() tea.Msg {
		return columnRenamedMsg{err: sync.RenameColumn(ctx, columnID, name)}
	}
}

func (m Model) createFunnel(req funnelservice.CreateFunnelRequest) tea.Cmd {
	svc := m.App.FunnelService
	ctx := m.Ctx
	return func() tea.Msg {
		f, err := svc.Create(ctx, req)
		if err != nil {
			return funnelCreatedMsg{err: err}
		}
		if err := svc.Remember(ctx, f.ID); err != nil {
			slog.Error("failed to remember new funnel", "funnel_id", f.ID, "error", err)
		}
		return funnelCreatedMsg{funnel: f}
	}
}

// subscribeToEvents waits for the next board event.
// Returns nil if EventChan is not initialized.
func (m Model) subscribeToEvents() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	ch := m.EventChan
	ctx := m.Ctx
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}
