package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Tab is one board in the tab bar
type Tab struct {
	Icon  string
	Name  string
	Count int // cards on the board; negative when not fetched yet
}

// Label is the text shown inside the tab, e.g. "💰 Vendas · 12"
func (t Tab) Label() string {
	label := t.Name
	if t.Icon != "" {
		label = t.Icon + " " + label
	}
	if t.Count >= 0 {
		label = fmt.Sprintf("%s · %d", label, t.Count)
	}
	return label
}

// TabBarProps describes the tab bar above the board
type TabBarProps struct {
	Tabs         []Tab
	Selected     int
	Width        int
	Notification string
}

// RenderTabs draws the boards as tabs, the selected one raised, followed by
// the notification area. When the tabs do not fit, a window around the
// selected tab is shown with ‹ › marking hidden tabs.
func RenderTabs(p TabBarProps) string {
	notificationWidth := lipgloss.Width(p.Notification)
	avail := p.Width - notificationWidth - 2

	rendered := make([]string, len(p.Tabs))
	for i, t := range p.Tabs {
		if i == p.Selected {
			rendered[i] = ActiveTabStyle.Render(t.Label())
		} else {
			rendered[i] = TabStyle.Render(t.Label())
		}
	}

	first, last := tabWindow(rendered, p.Selected, avail)
	parts := make([]string, 0, last-first+2)
	if first > 0 {
		parts = append(parts, IndicatorStyle.Render("‹"))
	}
	parts = append(parts, rendered[first:last]...)
	if last < len(rendered) {
		parts = append(parts, IndicatorStyle.Render("›"))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)

	gapWidth := max(p.Width-lipgloss.Width(row)-notificationWidth-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if p.Notification != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, p.Notification)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}

// tabWindow returns the half-open range of tabs to draw. It grows outward
// from the selected tab, keeping two cells for the overflow markers.
func tabWindow(rendered []string, selected, avail int) (int, int) {
	if len(rendered) == 0 {
		return 0, 0
	}
	selected = min(max(selected, 0), len(rendered)-1)
	first, last := selected, selected+1
	used := lipgloss.Width(rendered[selected])
	for {
		grew := false
		if last < len(rendered) && used+lipgloss.Width(rendered[last])+2 <= avail {
			used += lipgloss.Width(rendered[last])
			last++
			grew = true
		}
		if first > 0 && used+lipgloss.Width(rendered[first-1])+2 <= avail {
			first--
			used += lipgloss.Width(rendered[first])
			grew = true
		}
		if !grew {
			return first, last
		}
	}
}
