package tui

import "fmt"

// helpText lists the key bindings from the current key mappings
func (m Model) helpText() string {
	km := m.Config.KeyMappings
	return fmt.Sprintf(`funil - Keyboard Shortcuts

NAVIGATION
  %-6s previous column
  %-6s next column
  %-6s previous card
  %-6s next card

CARDS
  %-6s move card to previous column
  %-6s move card to next column
  %-6s move card up
  %-6s move card down
  %-6s view card

BOARD
  %-6s filter column (esc clears)
  %-6s rename stage
  %-6s new funnel
  %-6s previous funnel
  %-6s next funnel
  %-6s funnels / tasks
  %-6s reload

OTHER
  %-6s log out
  %-6s help
  %-6s quit

Press any key to close`,
		km.PrevColumn, km.NextColumn, km.PrevItem, km.NextItem,
		km.MoveItemLeft, km.MoveItemRight, km.MoveItemUp, km.MoveItemDown, km.ViewItem,
		km.Filter, km.RenameColumn, km.CreateBoard, km.PrevBoard, km.NextBoard, km.ToggleTasks, km.Reload,
		km.Logout, km.ShowHelp, km.Quit,
	)
}
