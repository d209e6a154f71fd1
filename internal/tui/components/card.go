package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/funil/internal/models"
	"github.com/thenoetrevino/funil/internal/tui/theme"
)

// titleLines is how many wrapped title lines a card shows
const titleLines = 2

// RenderCard renders a single lead or task as a card
//
//	╭──────────────────────────╮
//	│ {Title, wrapped over     │
//	│ two lines}               │
//	│ {subtitle}  {tag}        │
//	╰──────────────────────────╯
//
// This has a fixed width and height
func RenderCard(item *models.Item, selected bool) string {
	lines := wrapTitle(item.Title, CardWidth)
	title := lipgloss.NewStyle().Bold(true).Render(strings.Join(lines, "\n"))

	subtitle := item.Subtitle
	if subtitle == "" {
		subtitle = SubtleStyle.Italic(true).Render("-")
	} else {
		subtitle = SubtleStyle.Render(truncate.StringWithTail(subtitle, uint(max(CardWidth-lipgloss.Width(item.Tag)-2, 4)), "…"))
	}
	meta := subtitle
	if item.Tag != "" {
		gap := max(1, CardWidth-lipgloss.Width(subtitle)-lipgloss.Width(item.Tag))
		meta += strings.Repeat(" ", gap) + tagStyle(item.Tag).Render(item.Tag)
	}

	style := CardStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(title + "\n" + meta)
}

// wrapTitle word-wraps a title to width and keeps titleLines lines, marking
// a cut with an ellipsis. Short titles are padded so every card has the same height.
func wrapTitle(title string, width int) []string {
	wrapped := strings.Split(wordwrap.String(title, width), "\n")
	for i, line := range wrapped {
		wrapped[i] = truncate.String(line, uint(width))
	}
	if len(wrapped) > titleLines {
		wrapped = wrapped[:titleLines]
		last := wrapped[titleLines-1]
		wrapped[titleLines-1] = truncate.StringWithTail(last+" …", uint(width), "…")
	}
	for len(wrapped) < titleLines {
		wrapped = append(wrapped, "")
	}
	return wrapped
}

// tagStyle colors task priorities by their own color and any other tag by the theme
func tagStyle(tag string) lipgloss.Style {
	p := models.Priority(tag)
	if p.Valid() {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color())).Bold(true)
	}
	return TagStyle
}
