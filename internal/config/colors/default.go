package colors

// Default returns the default color scheme (amber, matching the funnel default color)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#EAB308",

		Create: "#5FD75F",
		Delete: "#FF5F5F",

		ColumnBorder:   "#585858",
		CardBorder:     "#444444",
		SelectedBorder: "#EAB308",
		Tag:            "#5F87D7",

		Title:  "#EAB308",
		Subtle: "#6C6C6C",
		Normal: "#D0D0D0",

		InfoFg:  "#00AFFF",
		InfoBg:  "#00005F",
		ErrorFg: "#FF5F5F",
		ErrorBg: "#5F0000",
	}
}
