package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/models"
	"github.com/thenoetrevino/funil/internal/tui/state"
)

// handleNormalMode handles keyboard input in the board view.
// Every key clears the notifications left by the previous action.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	key := msg.String()
	m.NotificationState.Clear()

	switch key {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil

	case km.PrevColumn, "left":
		return m.handleNavigateColumn(-1)
	case km.NextColumn, "right":
		return m.handleNavigateColumn(1)
	case km.PrevItem, "up":
		return m.handleNavigateItem(-1)
	case km.NextItem, "down":
		return m.handleNavigateItem(1)

	case km.MoveItemLeft:
		return m.handleMove(-1, 0)
	case km.MoveItemRight:
		return m.handleMove(1, 0)
	case km.MoveItemUp:
		return m.handleMove(0, -1)
	case km.MoveItemDown:
		return m.handleMove(0, 1)

	case km.Filter:
		return m.handleStartFilter()
	case km.RenameColumn:
		return m.handleStartRename()
	case km.CreateBoard:
		return m, m.openFunnelForm()
	case km.PrevBoard:
		return m.handleSwitchFunnel(-1)
	case km.NextBoard:
		return m.handleSwitchFunnel(1)
	case km.ToggleTasks:
		return m.handleToggleTasks()
	case km.ViewItem:
		return m.handleViewItem()
	case km.Reload:
		return m.handleReload()
	case km.Logout:
		return m, m.logout()
	case "esc":
		// esc clears the filter of the selected column
		if col := m.currentColumn(m.currentBoard()); col != nil && m.filters[col.ID] != "" {
			delete(m.filters, col.ID)
			m.clampSelection()
		}
		return m, nil
	}
	return m, nil
}

// handleNavigateColumn moves the selection to a neighbouring column
func (m Model) handleNavigateColumn(delta int) (tea.Model, tea.Cmd) {
	b := m.currentBoard()
	if b == nil {
		return m, nil
	}
	next := m.UiState.SelectedColumn() + delta
	if next < 0 || next >= len(b.Columns) {
		return m, nil
	}
	m.UiState.SetSelectedColumn(next)
	m.UiState.EnsureSelectionVisible(next)

	// keep the card row when possible
	col := b.Columns[next]
	entries := m.visibleEntries(col)
	m.UiState.SetSelectedItem(min(m.UiState.SelectedItem(), max(len(entries)-1, 0)))
	m.UiState.EnsureItemVisible(col.ID, m.UiState.SelectedItem(), m.visibleCards())
	return m, nil
}

// handleNavigateItem moves the selection within the visible cards of a column
func (m Model) handleNavigateItem(delta int) (tea.Model, tea.Cmd) {
	col := m.currentColumn(m.currentBoard())
	if col == nil {
		return m, nil
	}
	entries := m.visibleEntries(col)
	next := m.UiState.SelectedItem() + delta
	if next < 0 || next >= len(entries) {
		return m, nil
	}
	m.UiState.SetSelectedItem(next)
	m.UiState.EnsureItemVisible(col.ID, next, m.visibleCards())
	return m, nil
}

// handleMove moves the selected card by dx columns or dy positions. The board
// shows the result immediately; persistence runs as a command.
//
// In a filtered column the card steps over its stored neighbour, which may be
// hidden by the filter.
func (m Model) handleMove(dx, dy int) (tea.Model, tea.Cmd) {
	b := m.currentBoard()
	col, entry := m.currentEntry(b)
	if entry == nil {
		return m, nil
	}

	sync := m.sync()
	pending, err := sync.Move(board.MoveBy(b, col.ID, entry.Index, dx, dy))
	if err != nil {
		m.NotificationState.Add(state.LevelError, "Could not move card")
		return m, nil
	}
	if pending == nil {
		return m, nil
	}

	m.followItem(pending.Move())
	return m, m.persistMove(pending)
}

// followItem selects the moved card at its new place
func (m Model) followItem(mv models.Move) {
	b := m.currentBoard()
	colIdx := b.ColumnIndex(mv.DestColumnID)
	if colIdx < 0 {
		return
	}
	m.UiState.SetSelectedColumn(colIdx)
	m.UiState.EnsureSelectionVisible(colIdx)

	col := b.Columns[colIdx]
	entries := m.visibleEntries(col)
	selected := min(m.UiState.SelectedItem(), max(len(entries)-1, 0))
	for i, e := range entries {
		if e.Item.ID == mv.ItemID {
			selected = i
			break
		}
	}
	m.UiState.SetSelectedItem(selected)
	m.UiState.EnsureItemVisible(col.ID, selected, m.visibleCards())
}

func (m Model) handleStartFilter() (tea.Model, tea.Cmd) {
	col := m.currentColumn(m.currentBoard())
	if col == nil {
		return m, nil
	}
	m.input.Placeholder = "Filter " + col.Name
	m.input.SetValue(m.filters[col.ID])
	m.UiState.SetMode(state.FilterMode)
	return m, m.input.Focus()
}

func (m Model) handleStartRename() (tea.Model, tea.Cmd) {
	if m.UiState.Kind() == state.TaskBoard {
		m.NotificationState.Add(state.LevelInfo, "Task columns cannot be renamed")
		return m, nil
	}
	col := m.currentColumn(m.currentBoard())
	if col == nil {
		return m, nil
	}
	m.input.Placeholder = "Stage name"
	m.input.SetValue(col.Name)
	m.UiState.SetMode(state.RenameMode)
	return m, m.input.Focus()
}

// handleSwitchFunnel shows the previous or next funnel tab
func (m Model) handleSwitchFunnel(delta int) (tea.Model, tea.Cmd) {
	if m.UiState.Kind() != state.FunnelBoard || len(m.funnels) < 2 {
		return m, nil
	}
	next := m.activeFunnelIndex() + delta
	if next < 0 || next >= len(m.funnels) {
		return m, nil
	}
	m.clearFilters()
	m.UiState.ResetSelection()
	return m, m.loadBoard(state.FunnelBoard, m.funnels[next].ID)
}

// handleToggleTasks switches between the funnels and the local task board
func (m Model) handleToggleTasks() (tea.Model, tea.Cmd) {
	m.clearFilters()
	if m.UiState.Kind() == state.TaskBoard {
		m.UiState.SetKind(state.FunnelBoard)
		m.loadErr = nil
		if m.funnelSync.Snapshot() == nil {
			return m, m.loadFunnels()
		}
		return m, nil
	}

	m.UiState.SetKind(state.TaskBoard)
	m.loadErr = nil
	if m.taskSync.Snapshot() == nil {
		return m, m.loadBoard(state.TaskBoard, models.TaskBoardID)
	}
	// the task board is local; reload so edits made from the CLI show up
	return m, m.reloadBoard()
}

func (m Model) handleReload() (tea.Model, tea.Cmd) {
	if m.UiState.Kind() == state.FunnelBoard {
		return m, m.loadFunnels()
	}
	if m.taskSync.Snapshot() == nil {
		return m, m.loadBoard(state.TaskBoard, models.TaskBoardID)
	}
	return m, m.reloadBoard()
}
