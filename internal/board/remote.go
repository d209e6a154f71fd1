package board

import (
	"context"

	"github.com/thenoetrevino/funil/internal/models"
)

// Remote is the source of truth a Synchronizer reconciles against
type Remote interface {
	// FetchBoard loads the whole board
	FetchBoard(ctx context.Context, boardID string) (*models.Board, error)

	// MoveItem persists the item's new column. destIndex is advisory:
	// remotes that do not store positions ignore it.
	MoveItem(ctx context.Context, boardID, itemID, destColumnID string, destIndex int) error

	// RenameColumn persists a column's new name
	RenameColumn(ctx context.Context, boardID, columnID, name string) error
}
