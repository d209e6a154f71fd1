package board

import "errors"

var (
	// ErrNoBoard is returned when an operation needs a loaded board
	ErrNoBoard = errors.New("no board loaded")

	// ErrColumnNotFound is returned when a move or rename names an unknown column
	ErrColumnNotFound = errors.New("column not found")

	// ErrItemNotFound is returned when an item ID is not on the board
	ErrItemNotFound = errors.New("item not found")

	// ErrIndexOutOfRange is returned when the source index does not address an item
	ErrIndexOutOfRange = errors.New("source index out of range")

	// ErrItemMismatch is returned when the item at the source index is not the moved item
	ErrItemMismatch = errors.New("item does not match source position")

	// ErrDuplicateItem is returned by Validate when an item appears in more than one place
	ErrDuplicateItem = errors.New("item appears more than once on board")

	// ErrAlreadyPersisted is returned when a pending move is persisted twice
	ErrAlreadyPersisted = errors.New("move already persisted")

	// ErrDraining is returned by Persist after Wait was called
	ErrDraining = errors.New("synchronizer is shutting down")
)
