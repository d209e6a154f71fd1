package tui

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/funil/internal/models"
	funnelservice "github.com/thenoetrevino/funil/internal/services/funnel"
	"github.com/thenoetrevino/funil/internal/tui/components"
	"github.com/thenoetrevino/funil/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

func (m Model) render() string {
	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		return "Loading..."
	}

	switch m.UiState.Mode() {
	case state.LoadingMode:
		return m.place(components.SubtleStyle.Render("Loading..."))
	case state.LoginMode:
		return m.place(m.viewLogin())
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.viewBoard())}
	var modal string
	switch m.UiState.Mode() {
	case state.FunnelFormMode:
		if m.FormState.FunnelForm != nil {
			modal = components.FormBoxStyle.
				Width(min(m.UiState.Width()*3/4, 70)).
				Render("New Funnel\n\n" + m.FormState.FunnelForm.View())
		}
	case state.RenameMode:
		modal = components.InputBoxStyle.
			Width(50).
			Render("Rename stage\n" + m.input.View())
	case state.HelpMode:
		modal = components.HelpBoxStyle.Width(50).Render(m.helpText())
	case state.DetailMode:
		width := min(m.UiState.Width()*3/4, 90)
		modal = components.DetailBoxStyle.
			Width(width).
			MaxHeight(m.UiState.Height() - 2).
			Render(components.RenderMarkdown(m.detail, width-4))
	}
	if layer := centeredLayer(modal, m.UiState.Width(), m.UiState.Height()); layer != nil {
		layers = append(layers, layer)
	}
	return lipgloss.NewCanvas(layers...).Render()
}

// centeredLayer places content in the middle of the screen
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

func (m Model) place(content string) string {
	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

func (m Model) viewLogin() string {
	var form string
	if m.FormState.LoginForm != nil {
		form = m.FormState.LoginForm.View()
	}
	box := components.FormBoxStyle.Width(min(m.UiState.Width()-4, 60)).Render(form)
	if notes := m.renderNotifications(); notes != "" {
		box = lipgloss.JoinVertical(lipgloss.Center, box, "", notes)
	}
	return box
}

// viewBoard renders the tab bar, the visible columns and the footer
func (m Model) viewBoard() string {
	b := m.currentBoard()

	tabBar := components.RenderTabs(components.TabBarProps{
		Tabs:         m.tabs(b),
		Selected:     m.activeTab(),
		Width:        m.UiState.Width(),
		Notification: m.renderNotifications(),
	})

	var body string
	if b == nil {
		body = m.viewNoBoard()
	} else {
		body = m.viewColumns(b)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, tabBar, body, "")

	// Constrain content to fit terminal height, leaving room for footer
	lines := strings.Split(content, "\n")
	if maxLines := max(m.UiState.Height()-1, 1); len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n") + "\n" + m.viewFooter()
}

func (m Model) viewNoBoard() string {
	km := m.Config.KeyMappings
	msg := "No board loaded. Press " + km.Reload + " to try again."
	if errors.Is(m.loadErr, funnelservice.ErrNoFunnels) {
		msg = "No funnels yet. Press " + km.CreateBoard + " to create one."
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(components.SubtleStyle.Render(msg))
}

func (m Model) viewColumns(b *models.Board) string {
	if len(b.Columns) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(components.SubtleStyle.Render("This board has no columns."))
	}

	offset := m.UiState.ViewportOffset()
	end := min(offset+m.UiState.ViewportSize(), len(b.Columns))
	height := m.UiState.ContentHeight()

	columns := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		col := b.Columns[i]
		selected := i == m.UiState.SelectedColumn()
		columns = append(columns, components.RenderColumn(components.ColumnProps{
			Column:       col,
			Entries:      m.visibleEntries(col),
			Filter:       m.filters[col.ID],
			Selected:     selected,
			SelectedIdx:  m.UiState.SelectedItem(),
			Height:       height,
			ScrollOffset: m.UiState.ItemScrollOffset(col.ID),
		}))
	}

	left, right := " ", " "
	if offset > 0 {
		left = "◀"
	}
	if end < len(b.Columns) {
		right = "▶"
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	return lipgloss.JoinHorizontal(lipgloss.Center, left, " ", row, " ", right)
}

func (m Model) viewFooter() string {
	if m.UiState.Mode() == state.FilterMode {
		return components.FilterStyle.Render("/ ") + m.input.View()
	}
	var who string
	if m.user != nil {
		who = m.user.Name
	}
	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  who,
		Mode:  m.modeLabel(),
	})
}

func (m Model) modeLabel() string {
	if m.UiState.Kind() == state.TaskBoard {
		return "tasks"
	}
	return "funnels"
}

// tabs lists the funnels, or the task board, with their card counts.
// Funnel summaries carry no leads, so only the shown funnel and funnels
// fetched with their stages have a count.
func (m Model) tabs(shown *models.Board) []components.Tab {
	count := func(id string) int {
		if shown != nil && shown.ID == id {
			return shown.ItemCount()
		}
		return -1
	}

	if m.UiState.Kind() == state.TaskBoard {
		return []components.Tab{{Name: models.TaskBoardName, Count: count(models.TaskBoardID)}}
	}
	if len(m.funnels) == 0 {
		return []components.Tab{{Name: "No funnels", Count: -1}}
	}
	tabs := make([]components.Tab, 0, len(m.funnels))
	for _, f := range m.funnels {
		n := count(f.ID)
		if n < 0 && f.Stages != nil {
			n = f.LeadCount()
		}
		tabs = append(tabs, components.Tab{Icon: f.Icon, Name: f.Name, Count: n})
	}
	return tabs
}

func (m Model) activeTab() int {
	if m.UiState.Kind() == state.TaskBoard {
		return 0
	}
	return m.activeFunnelIndex()
}

// renderNotifications joins every pending notification into one line
func (m Model) renderNotifications() string {
	notes := m.NotificationState.All()
	if len(notes) == 0 {
		return ""
	}
	rendered := make([]string, 0, len(notes))
	for _, n := range notes {
		rendered = append(rendered, components.RenderNotification(n.Message, n.Level == state.LevelError))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
