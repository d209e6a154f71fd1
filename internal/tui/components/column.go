package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/models"
	"github.com/thenoetrevino/funil/internal/tui/theme"
)

// ColumnProps is everything RenderColumn needs to draw one column
type ColumnProps struct {
	Column   *models.Column
	Entries  []board.Entry // visible cards, already filtered
	Filter   string
	Selected bool
	// SelectedIdx is the selected card within Entries (ignored unless Selected)
	SelectedIdx  int
	Height       int
	ScrollOffset int
}

// VisibleCards returns how many cards fit in a column of the given total height
func VisibleCards(height int) int {
	// border(2) + header(1) + filter/indicator lines(2) + bottom indicator(1)
	const columnOverhead = 6
	return max((height-columnOverhead)/CardHeight, 1)
}

// RenderColumn renders a complete column with its title and visible cards
//
// Layout:
//
//	{Column Name} ({count})
//	/ {filter} or ▲ more above
//	{Card 1}
//	{Card 2}
//	...
//	▼ more below
func RenderColumn(p ColumnProps) string {
	total := len(p.Column.Items)
	header := fmt.Sprintf("%s (%d)", p.Column.Name, total)
	if p.Filter != "" {
		header = fmt.Sprintf("%s (%d/%d)", p.Column.Name, len(p.Entries), total)
	}
	content := TitleStyle.Render(truncateWidth(header, ColumnWidth)) + "\n"

	if p.Filter != "" {
		content += FilterStyle.Render(truncateWidth("/ "+p.Filter, ColumnWidth)) + "\n"
	} else if p.ScrollOffset > 0 {
		content += IndicatorStyle.Render("▲ more above") + "\n"
	} else {
		content += "\n"
	}

	if len(p.Entries) == 0 {
		empty := "No cards"
		if p.Filter != "" {
			empty = "No matches"
		}
		content += SubtleStyle.Italic(true).Padding(1, 0).Render(empty)
	} else {
		maxVisible := VisibleCards(p.Height)
		start := min(p.ScrollOffset, len(p.Entries)-1)
		end := min(start+maxVisible, len(p.Entries))

		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, RenderCard(p.Entries[i].Item, p.Selected && i == p.SelectedIdx))
		}
		content += strings.Join(cards, "\n")

		if end < len(p.Entries) {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if p.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if p.Height > 0 {
		// Height sets the content area; subtract the two border lines
		style = style.Height(p.Height - 2)
	}
	return style.Render(content)
}

func truncateWidth(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)+"…") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
