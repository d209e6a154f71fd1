// Package components provides the board's render functions and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/funil/internal/config/colors"
	"github.com/thenoetrevino/funil/internal/tui/theme"
)

// Sizes shared by the column and card renderers
const (
	ColumnWidth = 30
	CardWidth   = 26
	// CardHeight is the fixed height of a card including its border
	CardHeight = 5
)

// These are cached to avoid recomputing on every redraw.
var (
	// compared to the defaults, these feel like
	// they take up less space
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	// TabStyle defines inactive tabs
	TabStyle lipgloss.Style

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle lipgloss.Style

	// TabGapStyle fills the remaining space after tabs
	TabGapStyle lipgloss.Style

	// ColumnStyle defines the appearance of board columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for secondary text and empty states
	SubtleStyle lipgloss.Style

	// TagStyle renders a card's source channel or priority
	TagStyle lipgloss.Style

	// FormBoxStyle wraps the funnel and login forms
	FormBoxStyle lipgloss.Style

	// InputBoxStyle wraps the rename dialog
	InputBoxStyle lipgloss.Style

	// DetailBoxStyle wraps the card detail view
	DetailBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// InfoBannerStyle defines the appearance of info notifications
	InfoBannerStyle lipgloss.Style

	// ErrorBannerStyle defines the appearance of error messages
	ErrorBannerStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// FilterStyle shows a column's active filter under its title
	FilterStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(c colors.ColorScheme) {
	theme.Init(c)

	TabStyle = lipgloss.NewStyle().
		Border(tabBorder, true).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(0, 1)

	ActiveTabStyle = TabStyle.Border(activeTabBorder, true)

	TabGapStyle = TabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(ColumnWidth + 4)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.CardBorder)).
		Padding(0, 1).
		Width(CardWidth + 4)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	TagStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Tag))

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Create)).
		Padding(1, 2)

	InputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(1)

	DetailBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(0, 1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(1, 2)

	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.InfoFg)).
		Background(lipgloss.Color(c.InfoBg)).
		Bold(true).
		Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.ErrorFg)).
		Background(lipgloss.Color(c.ErrorBg)).
		Bold(true).
		Padding(0, 1)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle)).
		Align(lipgloss.Center)

	FilterStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent)).
		Italic(true)
}
