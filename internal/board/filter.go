package board

import (
	"strings"

	"github.com/thenoetrevino/funil/internal/models"
)

// Entry is one visible card of a filtered column.
// Index is the item's position in the stored column, not in the filtered view.
type Entry struct {
	Index int
	Item  *models.Item
}

// FilterColumn projects a column through a case-insensitive title search.
// The column is never modified; an empty term returns every item in stored order.
func FilterColumn(col *models.Column, term string) []Entry {
	if col == nil {
		return nil
	}
	term = strings.ToLower(strings.TrimSpace(term))

	entries := make([]Entry, 0, len(col.Items))
	for i, item := range col.Items {
		if term == "" || strings.Contains(strings.ToLower(item.Title), term) {
			entries = append(entries, Entry{Index: i, Item: item})
		}
	}
	return entries
}
