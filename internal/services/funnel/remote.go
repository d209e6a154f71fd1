package funnel

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/converters"
	"github.com/thenoetrevino/funil/internal/models"
)

// Remote lets a board.Synchronizer drive a funnel on the CRM backend.
// Every successful fetch remembers the funnel as the active one.
type Remote struct {
	svc Service
}

// Compile-time verification that *Remote implements board.Remote
var _ board.Remote = (*Remote)(nil)

// NewRemote wraps the service
func NewRemote(svc Service) *Remote {
	return &Remote{svc: svc}
}

// FetchBoard loads the funnel and converts it to a board
func (r *Remote) FetchBoard(ctx context.Context, boardID string) (*models.Board, error) {
	f, err := r.svc.Get(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if err := r.svc.Remember(ctx, f.ID); err != nil {
		slog.Error("failed to remember active funnel", "funnel_id", f.ID, "error", err)
	}
	return converters.FunnelToBoard(f), nil
}

// MoveItem persists only the lead's new stage; the backend keeps no order
func (r *Remote) MoveItem(ctx context.Context, boardID, itemID, destColumnID string, destIndex int) error {
	return r.svc.MoveLead(ctx, itemID, destColumnID)
}

// RenameColumn renames the stage
func (r *Remote) RenameColumn(ctx context.Context, boardID, columnID, name string) error {
	return r.svc.RenameStage(ctx, columnID, name)
}
