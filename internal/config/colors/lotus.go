package colors

// Lotus returns a light color scheme for terminals with a paper background
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: "#624C83",

		Create: "#6F894E",
		Delete: "#C84053",

		ColumnBorder:   "#A09CAC",
		CardBorder:     "#C7D7E0",
		SelectedBorder: "#597B75",
		Tag:            "#4D699B",

		Title:  "#4D699B",
		Subtle: "#8A8980",
		Normal: "#545464",

		InfoFg:  "#4D699B",
		InfoBg:  "#D7E3D8",
		ErrorFg: "#C84053",
		ErrorBg: "#E7DBA0",
	}
}
