package task

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/models"
)

// Remote lets a board.Synchronizer drive the local task board.
// Columns are the fixed task statuses; moves persist both status and position.
type Remote struct {
	svc Service
}

// Compile-time verification that *Remote implements board.Remote
var _ board.Remote = (*Remote)(nil)

// NewRemote wraps the service
func NewRemote(svc Service) *Remote {
	return &Remote{svc: svc}
}

// FetchBoard loads the task board
func (r *Remote) FetchBoard(ctx context.Context, boardID string) (*models.Board, error) {
	if boardID != models.TaskBoardID {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBoard, boardID)
	}
	return r.svc.Board(ctx)
}

// MoveItem moves the task to the status named by destColumnID
func (r *Remote) MoveItem(ctx context.Context, boardID, itemID, destColumnID string, destIndex int) error {
	status, err := models.ParseTaskStatus(destColumnID)
	if err != nil {
		return err
	}
	_, err = r.svc.MoveTask(ctx, itemID, status, destIndex)
	return err
}

// RenameColumn always fails: status columns are fixed
func (r *Remote) RenameColumn(ctx context.Context, boardID, columnID, name string) error {
	return ErrColumnsFixed
}
