package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// FormKeyMap is shared by the login and funnel forms. ctrl+c is the only
// quit key because esc belongs to the board, which closes the form.
// The external editor is off since the form is drawn as an overlay.
func FormKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()

	km.Quit = key.NewBinding(key.WithKeys("ctrl+c"))
	km.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	km.Text.Editor.SetEnabled(false)

	return km
}
