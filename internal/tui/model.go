// Package tui is the interactive board: funnels from the CRM backend and the
// local task board, rendered as columns of cards.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/funil/internal/app"
	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/config"
	"github.com/thenoetrevino/funil/internal/events"
	"github.com/thenoetrevino/funil/internal/models"
	"github.com/thenoetrevino/funil/internal/tui/components"
	"github.com/thenoetrevino/funil/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	NotificationState *state.NotificationState
	FormState         *state.FormState

	// Board synchronizers; the one shown depends on UiState.Kind()
	funnelSync *board.Synchronizer
	taskSync   *board.Synchronizer

	funnels []*models.Funnel
	user    *models.User

	// filters holds the active filter term per column of the shown board
	filters map[string]string
	input   textinput.Model

	// detail is the markdown shown in DetailMode
	detail string

	// loadErr is set when the shown board could not be loaded
	loadErr error

	EventChan <-chan events.Event
}

// New creates the TUI model. Nothing is fetched until Init runs.
func New(ctx context.Context, a *app.App) Model {
	components.InitStyles(a.Config.ColorScheme)

	input := textinput.New()
	input.CharLimit = 100

	m := Model{
		Ctx:               ctx,
		App:               a,
		Config:            a.Config,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		FormState:         state.NewFormState(),
		funnelSync:        a.FunnelBoard(),
		taskSync:          a.TaskBoard(),
		filters:           make(map[string]string),
		input:             input,
	}

	ch, err := a.Events().Listen(ctx)
	if err != nil {
		slog.Error("failed to subscribe to board events", "error", err)
	} else {
		m.EventChan = ch
	}
	return m
}

// Init checks the stored session and starts listening for board events
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.checkSession(), m.subscribeToEvents())
}

// sync returns the synchronizer of the board being shown
func (m Model) sync() *board.Synchronizer {
	if m.UiState.Kind() == state.TaskBoard {
		return m.taskSync
	}
	return m.funnelSync
}

// currentBoard returns a snapshot of the shown board, or nil
func (m Model) currentBoard() *models.Board {
	return m.sync().Snapshot()
}

// currentColumn returns the selected column of b, or nil
func (m Model) currentColumn(b *models.Board) *models.Column {
	if b == nil || len(b.Columns) == 0 {
		return nil
	}
	idx := m.UiState.SelectedColumn()
	if idx >= len(b.Columns) {
		return nil
	}
	return b.Columns[idx]
}

// visibleEntries returns the cards of col that pass its filter
func (m Model) visibleEntries(col *models.Column) []board.Entry {
	if col == nil {
		return nil
	}
	return board.FilterColumn(col, m.filters[col.ID])
}

// currentEntry returns the selected card of the shown board
func (m Model) currentEntry(b *models.Board) (*models.Column, *board.Entry) {
	col := m.currentColumn(b)
	entries := m.visibleEntries(col)
	idx := m.UiState.SelectedItem()
	if idx >= len(entries) {
		return col, nil
	}
	return col, &entries[idx]
}

// activeFunnelIndex returns the position of the shown funnel in the tab list
func (m Model) activeFunnelIndex() int {
	id := m.funnelSync.BoardID()
	for i, f := range m.funnels {
		if f.ID == id {
			return i
		}
	}
	return 0
}

// clampSelection keeps the selection inside the shown board after it changed
func (m Model) clampSelection() {
	b := m.currentBoard()
	if b == nil {
		m.UiState.ResetSelection()
		return
	}
	col := m.currentColumn(b)
	m.UiState.ClampSelection(len(b.Columns), len(m.visibleEntries(col)))
	if col = m.currentColumn(b); col != nil {
		m.UiState.EnsureItemVisible(col.ID, m.UiState.SelectedItem(), m.visibleCards())
	}
}

// visibleCards returns how many cards fit in a column on this screen
func (m Model) visibleCards() int {
	return components.VisibleCards(m.UiState.ContentHeight())
}

// clearFilters drops every column filter; used when the shown board changes
func (m *Model) clearFilters() {
	m.filters = make(map[string]string)
}
