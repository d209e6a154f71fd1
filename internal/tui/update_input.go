package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/funil/internal/tui/state"
)

// handleFilterInput edits the selected column's filter. The board follows
// every keystroke; enter keeps the filter and esc drops it.
func (m Model) handleFilterInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	col := m.currentColumn(m.currentBoard())
	if col == nil {
		m.input.Blur()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	switch msg.String() {
	case "enter":
		m.input.Blur()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case "esc":
		delete(m.filters, col.ID)
		m.input.Blur()
		m.input.SetValue("")
		m.UiState.SetMode(state.NormalMode)
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if term := strings.TrimSpace(m.input.Value()); term != "" {
		m.filters[col.ID] = term
	} else {
		delete(m.filters, col.ID)
	}
	m.UiState.SetSelectedItem(0)
	m.UiState.EnsureItemVisible(col.ID, 0, m.visibleCards())
	return m, cmd
}

// handleRenameInput edits the selected column's name; enter persists it
func (m Model) handleRenameInput(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.input.Blur()
		m.UiState.SetMode(state.NormalMode)
		col := m.currentColumn(m.currentBoard())
		if col == nil {
			return m, nil
		}
		return m, m.renameColumn(col.ID, m.input.Value())
	case "esc":
		m.input.Blur()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
