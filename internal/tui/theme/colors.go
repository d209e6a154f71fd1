// Package theme holds the active board colors, set once from the config
package theme

import "github.com/thenoetrevino/funil/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Create         string
	Delete         string
	ColumnBorder   string
	CardBorder     string
	SelectedBorder string
	Tag            string
	Title          string
	Subtle         string
	Normal         string
	InfoFg         string
	InfoBg         string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(c colors.ColorScheme) {
	Accent = c.Accent
	Create = c.Create
	Delete = c.Delete
	ColumnBorder = c.ColumnBorder
	CardBorder = c.CardBorder
	SelectedBorder = c.SelectedBorder
	Tag = c.Tag
	Title = c.Title
	Subtle = c.Subtle
	Normal = c.Normal
	InfoFg = c.InfoFg
	InfoBg = c.InfoBg
	ErrorFg = c.ErrorFg
	ErrorBg = c.ErrorBg
}
