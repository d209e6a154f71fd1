package models

// Board is the client-held view of one funnel or task workspace: an ordered
// set of columns, each holding an ordered sequence of items.
type Board struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Color       string
	Columns     []*Column
}

// Column is a named ordered bucket (pipeline stage or task status)
type Column struct {
	ID    string
	Name  string
	Items []*Item
}

// Item is the card projection of a lead or a task
type Item struct {
	ID       string
	Title    string
	Subtitle string // email for leads, assignee for tasks
	Tag      string // source channel for leads, priority for tasks
	Owner    string // responsible user
}

// Move describes a completed drag gesture.
// HasDestination is false when the card was dropped outside any column.
type Move struct {
	ItemID         string
	SourceColumnID string
	SourceIndex    int
	DestColumnID   string
	DestIndex      int
	HasDestination bool
}

// IsNoop reports whether the move leaves the board unchanged
func (m Move) IsNoop() bool {
	if !m.HasDestination {
		return true
	}
	return m.SourceColumnID == m.DestColumnID && m.SourceIndex == m.DestIndex
}

// Column returns the column with the given ID, or nil
func (b *Board) Column(id string) *Column {
	if b == nil {
		return nil
	}
	for _, col := range b.Columns {
		if col.ID == id {
			return col
		}
	}
	return nil
}

// ColumnIndex returns the position of the column in the board, or -1
func (b *Board) ColumnIndex(id string) int {
	if b == nil {
		return -1
	}
	for i, col := range b.Columns {
		if col.ID == id {
			return i
		}
	}
	return -1
}

// ItemCount returns the number of items across all columns
func (b *Board) ItemCount() int {
	if b == nil {
		return 0
	}
	total := 0
	for _, col := range b.Columns {
		total += len(col.Items)
	}
	return total
}

// Locate finds the column and index currently holding the item.
// Returns nil and -1 when the item is not on the board.
func (b *Board) Locate(itemID string) (*Column, int) {
	if b == nil {
		return nil, -1
	}
	for _, col := range b.Columns {
		for i, item := range col.Items {
			if item.ID == itemID {
				return col, i
			}
		}
	}
	return nil, -1
}

// Clone returns a deep copy of the board.
// Item values are copied so callers can render without holding locks.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	out := &Board{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Icon:        b.Icon,
		Color:       b.Color,
		Columns:     make([]*Column, len(b.Columns)),
	}
	for i, col := range b.Columns {
		out.Columns[i] = col.Clone()
	}
	return out
}

// Clone returns a deep copy of the column
func (c *Column) Clone() *Column {
	if c == nil {
		return nil
	}
	out := &Column{
		ID:    c.ID,
		Name:  c.Name,
		Items: make([]*Item, len(c.Items)),
	}
	for i, item := range c.Items {
		cp := *item
		out.Items[i] = &cp
	}
	return out
}
