package converters

import (
	"slices"
	"strings"

	"github.com/thenoetrevino/funil/internal/models"
)

// tagSeparator joins tags in the tasks.tags TEXT column
const tagSeparator = ","

// TasksToBoard builds the local task board: one column per status in
// TaskStatuses order, items sorted by position. Tasks with an unknown status
// are dropped.
func TasksToBoard(tasks []*models.Task) *models.Board {
	byStatus := make(map[models.TaskStatus][]*models.Task, len(models.TaskStatuses))
	for _, t := range tasks {
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}

	b := &models.Board{
		ID:      models.TaskBoardID,
		Name:    models.TaskBoardName,
		Columns: make([]*models.Column, 0, len(models.TaskStatuses)),
	}
	for _, status := range models.TaskStatuses {
		group := byStatus[status]
		slices.SortStableFunc(group, func(a, b *models.Task) int {
			return a.Position - b.Position
		})

		col := &models.Column{
			ID:    string(status),
			Name:  status.Title(),
			Items: make([]*models.Item, 0, len(group)),
		}
		for _, t := range group {
			col.Items = append(col.Items, TaskToItem(t))
		}
		b.Columns = append(b.Columns, col)
	}
	return b
}

// TaskToItem converts a task into a card
func TaskToItem(t *models.Task) *models.Item {
	return &models.Item{
		ID:       t.ID,
		Title:    t.Title,
		Subtitle: t.AssignedTo,
		Tag:      string(t.Priority),
		Owner:    t.CreatedBy,
	}
}

// JoinTags flattens tags for storage. Empty tags are skipped.
func JoinTags(tags []string) string {
	clean := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" && !slices.Contains(clean, tag) {
			clean = append(clean, tag)
		}
	}
	return strings.Join(clean, tagSeparator)
}

// ParseTags splits a stored tag list. Returns nil for an empty string.
func ParseTags(stored string) []string {
	if strings.TrimSpace(stored) == "" {
		return nil
	}
	parts := strings.Split(stored, tagSeparator)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
