package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/funil/internal/models"
	"github.com/thenoetrevino/funil/internal/tui/state"
)

// handleViewItem opens the detail view of the selected card
func (m Model) handleViewItem() (tea.Model, tea.Cmd) {
	col, entry := m.currentEntry(m.currentBoard())
	if entry == nil {
		return m, nil
	}

	if m.UiState.Kind() == state.FunnelBoard {
		m.detail = leadMarkdown(entry.Item, col.Name)
		m.UiState.SetMode(state.DetailMode)
		return m, nil
	}

	// tasks live in the local database, so this read is synchronous
	ctx := m.Ctx
	task, err := m.App.TaskService.GetTask(ctx, entry.Item.ID)
	if err != nil {
		slog.Error("failed to load task", "task_id", entry.Item.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "Could not load task")
		return m, nil
	}
	comments, err := m.App.TaskService.GetComments(ctx, task.ID)
	if err != nil {
		slog.Error("failed to load comments", "task_id", task.ID, "error", err)
	}
	m.detail = taskMarkdown(task, comments)
	m.UiState.SetMode(state.DetailMode)
	return m, nil
}

func leadMarkdown(item *models.Item, stage string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", item.Title)
	fmt.Fprintf(&b, "- **Stage:** %s\n", stage)
	if item.Subtitle != "" {
		fmt.Fprintf(&b, "- **Email:** %s\n", item.Subtitle)
	}
	fmt.Fprintf(&b, "- **Source:** %s\n", item.Tag)
	if item.Owner != "" {
		fmt.Fprintf(&b, "- **Responsible:** %s\n", item.Owner)
	}
	return b.String()
}

func taskMarkdown(t *models.Task, comments []*models.Comment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "- **Status:** %s\n", t.Status.Title())
	fmt.Fprintf(&b, "- **Priority:** %s\n", t.Priority)
	if t.AssignedTo != "" {
		fmt.Fprintf(&b, "- **Assignee:** %s\n", t.AssignedTo)
	}
	if t.CreatedBy != "" {
		fmt.Fprintf(&b, "- **Created by:** %s\n", t.CreatedBy)
	}
	if t.DueDate != nil {
		fmt.Fprintf(&b, "- **Due:** %s\n", t.DueDate.Local().Format("02/01/2006"))
	}
	if len(t.Tags) > 0 {
		fmt.Fprintf(&b, "- **Tags:** %s\n", strings.Join(t.Tags, ", "))
	}
	if t.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", t.Description)
	}
	if len(comments) > 0 {
		fmt.Fprintf(&b, "\n## Comments (%d)\n\n", len(comments))
		for _, c := range comments {
			fmt.Fprintf(&b, "**%s** · %s\n\n%s\n\n", c.AuthorName, c.CreatedAt.Local().Format("02/01/2006 15:04"), c.Content)
		}
	}
	return b.String()
}
