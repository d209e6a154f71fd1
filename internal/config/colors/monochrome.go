package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Delete: "#FFFFFF",

		ColumnBorder:   "#808080",
		CardBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		Tag:            "#BCBCBC",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		InfoFg:  "#FFFFFF",
		InfoBg:  "#303030",
		ErrorFg: "#000000",
		ErrorBg: "#FFFFFF",
	}
}
