package events

import "time"

// EventType indicates what happened to a board
type EventType string

const (
	EventBoardLoaded   EventType = "board_loaded"
	EventBoardReloaded EventType = "board_reloaded"
	EventMoveApplied   EventType = "move_applied"
	EventMovePersisted EventType = "move_persisted"
	EventMoveFailed    EventType = "move_failed"
	EventColumnRenamed EventType = "column_renamed"
)

// Event represents a board state change notification
type Event struct {
	Type       EventType
	BoardID    string    // For filtering - which board changed
	ItemID     string    // Set for move events
	ColumnID   string    // Destination column for moves, renamed column for renames
	Err        string    // Failure reason for EventMoveFailed
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
