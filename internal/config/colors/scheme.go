package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "lotus")
	Preset string `yaml:"preset"`

	// Primary accent color (selected column, titles, form focus)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // new funnel / new lead forms
	Delete string `yaml:"delete"` // logout and destructive prompts

	// Board
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	Tag            string `yaml:"tag"` // source channel / priority chip

	// Text
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notifications (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name, falling back to Default
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// fields lists every color slot in a fixed order so defaults and merges
// can walk them together.
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Create, &c.Delete,
		&c.ColumnBorder, &c.CardBorder, &c.SelectedBorder, &c.Tag,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values from the named preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	base := preset.fields()
	for i, f := range c.fields() {
		if *f == "" {
			*f = *base[i]
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other.
// A preset in other replaces the base colors before its overrides apply.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}
	src := other.fields()
	for i, f := range c.fields() {
		if *src[i] != "" {
			*f = *src[i]
		}
	}
}
