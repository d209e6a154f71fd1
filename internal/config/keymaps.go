package config

// KeyMappings defines all configurable key bindings of the board screen
type KeyMappings struct {
	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevItem   string `yaml:"prev_item"`
	NextItem   string `yaml:"next_item"`

	// Moving the selected card
	MoveItemLeft  string `yaml:"move_item_left"`
	MoveItemRight string `yaml:"move_item_right"`
	MoveItemUp    string `yaml:"move_item_up"`
	MoveItemDown  string `yaml:"move_item_down"`

	// Board
	Filter       string `yaml:"filter"`
	RenameColumn string `yaml:"rename_column"`
	CreateBoard  string `yaml:"create_board"`
	PrevBoard    string `yaml:"prev_board"`
	NextBoard    string `yaml:"next_board"`
	ToggleTasks  string `yaml:"toggle_tasks"`
	ViewItem     string `yaml:"view_item"`
	Reload       string `yaml:"reload"`

	// Other
	Logout   string `yaml:"logout"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevColumn: "h",
		NextColumn: "l",
		PrevItem:   "k",
		NextItem:   "j",

		MoveItemLeft:  "H",
		MoveItemRight: "L",
		MoveItemUp:    "K",
		MoveItemDown:  "J",

		Filter:       "/",
		RenameColumn: "r",
		CreateBoard:  "n",
		PrevBoard:    "[",
		NextBoard:    "]",
		ToggleTasks:  "t",
		ViewItem:     "enter",
		Reload:       "R",

		Logout:   "ctrl+l",
		ShowHelp: "?",
		Quit:     "q",
	}
}

func (k *KeyMappings) fields() []*string {
	return []*string{
		&k.PrevColumn, &k.NextColumn, &k.PrevItem, &k.NextItem,
		&k.MoveItemLeft, &k.MoveItemRight, &k.MoveItemUp, &k.MoveItemDown,
		&k.Filter, &k.RenameColumn, &k.CreateBoard, &k.PrevBoard, &k.NextBoard,
		&k.ToggleTasks, &k.ViewItem, &k.Reload,
		&k.Logout, &k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	base := defaults.fields()
	for i, f := range k.fields() {
		if *f == "" {
			*f = *base[i]
		}
	}
}
