// Package state holds the board screen's UI state: what is shown, what is
// selected, and how the columns are scrolled.
package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	LoadingMode    Mode = iota // Checking the stored session
	LoginMode                  // Login form with huh
	NormalMode                 // Default navigation mode
	FilterMode                 // Typing a filter for the selected column (/)
	RenameMode                 // Renaming the selected column
	FunnelFormMode             // Creating a new funnel with huh
	DetailMode                 // Reading the selected card
	HelpMode                   // Displaying help screen
)

// BoardKind says which board the screen shows
type BoardKind int

const (
	FunnelBoard BoardKind = iota
	TaskBoard
)

// UIState manages the user interface state.
// This includes navigation (column/item selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedItem is the index of the selected card within the visible
	// (possibly filtered) cards of the selected column
	selectedItem int

	width  int
	height int

	mode Mode
	kind BoardKind

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// itemScrollOffsets tracks the vertical scroll offset for each column
	// Key: column ID, Value: index of the first visible card
	itemScrollOffsets map[string]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              LoadingMode,
		kind:              FunnelBoard,
		viewportSize:      1, // Recalculated when width is set
		itemScrollOffsets: make(map[string]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = max(0, index)
}

// SelectedItem returns the index of the selected card in the visible cards.
func (s *UIState) SelectedItem() int {
	return s.selectedItem
}

// SetSelectedItem updates the selected card index.
func (s *UIState) SetSelectedItem(index int) {
	s.selectedItem = max(0, index)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the columns.
// This is terminal height minus tab bar and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const tabBarHeight = 3    // tabs + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-tabBarHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Kind returns which board is shown.
func (s *UIState) Kind() BoardKind {
	return s.kind
}

// SetKind switches boards and resets the selection.
func (s *UIState) SetKind(kind BoardKind) {
	if s.kind != kind {
		s.kind = kind
		s.ResetSelection()
	}
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many columns can fit in the terminal width.
//
// Column layout:
//   - Content width: 30 characters
//   - Padding: 2 characters (1 on each side)
//   - Border: 2 characters (1 on each side)
//   - Spacing: 1 character (between columns)
//   - Total per column: 35 characters
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const columnWidth = 35
	const reservedWidth = 4 // margins and scroll indicators

	s.viewportSize = max(1, (s.width-reservedWidth)/columnWidth)
}

// EnsureSelectionVisible adjusts the viewport so the selected column is visible.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// ClampSelection keeps the selection inside a board of columnsLen columns
// whose selected column shows itemsLen cards.
func (s *UIState) ClampSelection(columnsLen, itemsLen int) {
	if columnsLen == 0 {
		s.ResetSelection()
		return
	}
	s.selectedColumn = min(s.selectedColumn, columnsLen-1)
	s.selectedItem = max(0, min(s.selectedItem, itemsLen-1))
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
	s.EnsureSelectionVisible(s.selectedColumn)
}

// ResetSelection resets column and card selection and all scrolling.
// Called when another board is shown.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedItem = 0
	s.viewportOffset = 0
	s.itemScrollOffsets = make(map[string]int)
}

// ItemScrollOffset returns the vertical scroll offset for a given column.
func (s *UIState) ItemScrollOffset(columnID string) int {
	return s.itemScrollOffsets[columnID]
}

// EnsureItemVisible adjusts the scroll offset so the selected card is visible.
//
// Parameters:
//   - columnID: the column containing the card
//   - selectedIdx: index of the selected card within the visible cards
//   - visibleCount: number of cards that can be displayed at once
func (s *UIState) EnsureItemVisible(columnID string, selectedIdx int, visibleCount int) {
	offset := s.itemScrollOffsets[columnID]
	if selectedIdx < offset {
		offset = selectedIdx
	}
	if selectedIdx >= offset+visibleCount {
		offset = selectedIdx - visibleCount + 1
	}
	s.itemScrollOffsets[columnID] = max(0, offset)
}
