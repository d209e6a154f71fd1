// Package converters provides conversion between the backend and local
// storage shapes (funnels, leads, tasks) and the board shape the
// synchronizer and the TUI work with.
//
// Boards are projections: converting a funnel to a board and back never
// loses column or item order.
//
// Example usage:
//
//	// Rendering a funnel as a board
//	b := converters.FunnelToBoard(funnel)
//
//	// Rendering the local task board
//	b := converters.TasksToBoard(tasks)
//
//	// Round-tripping tags through a TEXT column
//	stored := converters.JoinTags(task.Tags)
//	tags := converters.ParseTags(stored)
package converters

import (
	"github.com/thenoetrevino/funil/internal/models"
)

// FunnelToBoard converts a funnel with stages and leads into a board.
// Stage order becomes column order; lead order within a stage is kept.
func FunnelToBoard(f *models.Funnel) *models.Board {
	if f == nil {
		return nil
	}
	b := &models.Board{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Icon:        f.Icon,
		Color:       f.Color,
		Columns:     make([]*models.Column, 0, len(f.Stages)),
	}
	for _, stage := range f.Stages {
		b.Columns = append(b.Columns, StageToColumn(stage))
	}
	return b
}

// StageToColumn converts a funnel stage into a board column
func StageToColumn(s *models.Stage) *models.Column {
	col := &models.Column{
		ID:    s.ID,
		Name:  s.Name,
		Items: make([]*models.Item, 0, len(s.Leads)),
	}
	for _, lead := range s.Leads {
		col.Items = append(col.Items, LeadToItem(lead))
	}
	return col
}

// LeadToItem converts a lead into a card.
// Leads without a source channel are tagged with the default channel.
func LeadToItem(l *models.Lead) *models.Item {
	item := &models.Item{
		ID:       l.ID,
		Title:    l.Name,
		Subtitle: l.Email,
		Tag:      l.SourceChannel,
	}
	if item.Tag == "" {
		item.Tag = models.DefaultSourceChannel
	}
	if l.Responsible != nil {
		item.Owner = l.Responsible.Name
	}
	return item
}
