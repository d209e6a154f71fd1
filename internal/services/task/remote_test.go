package task

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/models"
)

func TestRemote_DrivesSynchronizer(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	x := mustCreate(t, svc, "x", models.StatusRequested)
	y := mustCreate(t, svc, "y", models.StatusRequested)
	mustCreate(t, svc, "z", models.StatusRequested)

	sync := board.NewSynchronizer(NewRemote(svc))
	require.NoError(t, sync.Load(ctx, models.TaskBoardID))

	p, err := sync.Move(models.Move{
		ItemID:         y.ID,
		SourceColumnID: string(models.StatusRequested),
		SourceIndex:    1,
		DestColumnID:   string(models.StatusPending),
		DestIndex:      0,
		HasDestination: true,
	})
	require.NoError(t, err)
	res := p.Persist(ctx)
	require.NoError(t, res.Err)

	stored, err := svc.Board(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(stored, sync.Snapshot(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("local board diverged from storage (-stored +local):\n%s", diff)
	}
	assert.Equal(t, []string{"x", "z"}, columnIDs(stored, models.StatusRequested))
	assert.Equal(t, x.ID, stored.Columns[0].Items[0].ID)
}

func TestRemote_FailedMoveReloadsStoredBoard(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	x := mustCreate(t, svc, "x", models.StatusRequested)

	sync := board.NewSynchronizer(NewRemote(svc))
	require.NoError(t, sync.Load(ctx, models.TaskBoardID))

	// The task disappears behind the board's back
	require.NoError(t, svc.DeleteTask(ctx, x.ID))

	p, err := sync.Move(models.Move{
		ItemID:         x.ID,
		SourceColumnID: string(models.StatusRequested),
		DestColumnID:   string(models.StatusDone),
		HasDestination: true,
	})
	require.NoError(t, err)
	res := p.Persist(ctx)

	assert.ErrorIs(t, res.Err, ErrTaskNotFound)
	assert.True(t, res.Reloaded)
	assert.Zero(t, sync.Snapshot().ItemCount())
}

func TestRemote_RenameAndUnknownBoard(t *testing.T) {
	r := NewRemote(newTestService(t))
	ctx := context.Background()

	assert.ErrorIs(t, r.RenameColumn(ctx, models.TaskBoardID, "pendente", "x"), ErrColumnsFixed)

	_, err := r.FetchBoard(ctx, "f1")
	assert.ErrorIs(t, err, ErrUnknownBoard)

	assert.ErrorIs(t, r.MoveItem(ctx, models.TaskBoardID, "id", "archived", 0), models.ErrInvalidStatus)
}
