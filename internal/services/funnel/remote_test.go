package funnel

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/funil/internal/board"
	"github.com/thenoetrevino/funil/internal/converters"
	"github.com/thenoetrevino/funil/internal/models"
)

func TestRemote_FetchRemembersActiveFunnel(t *testing.T) {
	svc, store, srv := setup(t)
	stored := srv.AddFunnel(sales())
	ctx := context.Background()

	b, err := NewRemote(svc).FetchBoard(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, b.ID)
	assert.Equal(t, 2, b.ItemCount())

	active, err := store.ActiveBoardID(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, active)
}

func TestRemote_MoveSucceeds(t *testing.T) {
	svc, _, srv := setup(t)
	stored := srv.AddFunnel(sales())
	ctx := context.Background()

	sync := board.NewSynchronizer(NewRemote(svc))
	require.NoError(t, sync.Load(ctx, stored.ID))

	lead := stored.Stages[0].Leads[1]
	p, err := sync.Move(models.Move{
		ItemID:         lead.ID,
		SourceColumnID: stored.Stages[0].ID,
		SourceIndex:    1,
		DestColumnID:   stored.Stages[1].ID,
		DestIndex:      0,
		HasDestination: true,
	})
	require.NoError(t, err)

	res := p.Persist(ctx)
	require.NoError(t, res.Err)
	assert.False(t, res.Reloaded)

	// exactly one GET for the initial load and one PATCH for the move
	assert.Equal(t, 1, srv.CountRequests(http.MethodGet, "/funnels/"+stored.ID))
	assert.Equal(t, 1, srv.CountRequests(http.MethodPatch, "/funnels/leads/"+lead.ID+"/stage"))

	want := converters.FunnelToBoard(srv.Funnel(stored.ID))
	if diff := cmp.Diff(want, sync.Snapshot(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("local board diverged from server (-server +local):\n%s", diff)
	}
}

func TestRemote_MoveFailureReloadsServerState(t *testing.T) {
	svc, _, srv := setup(t)
	stored := srv.AddFunnel(sales())
	ctx := context.Background()

	sync := board.NewSynchronizer(NewRemote(svc))
	require.NoError(t, sync.Load(ctx, stored.ID))
	srv.FailMoves(true)

	pending, err := sync.Move(models.Move{
		ItemID:         stored.Stages[0].Leads[0].ID,
		SourceColumnID: stored.Stages[0].ID,
		SourceIndex:    0,
		DestColumnID:   stored.Stages[1].ID,
		DestIndex:      0,
		HasDestination: true,
	})
	require.NoError(t, err)
	res := pending.Persist(ctx)

	require.Error(t, res.Err)
	assert.True(t, res.Reloaded)

	want := converters.FunnelToBoard(srv.Funnel(stored.ID))
	if diff := cmp.Diff(want, sync.Snapshot(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("state after recovery differs from server (-server +local):\n%s", diff)
	}
}

func TestRemote_RenameColumn(t *testing.T) {
	svc, _, srv := setup(t)
	stored := srv.AddFunnel(sales())
	ctx := context.Background()

	sync := board.NewSynchronizer(NewRemote(svc))
	require.NoError(t, sync.Load(ctx, stored.ID))

	require.NoError(t, sync.RenameColumn(ctx, stored.Stages[1].ID, "Contrato"))

	assert.Equal(t, "Contrato", srv.Funnel(stored.ID).Stages[1].Name)
	assert.Equal(t, "Contrato", sync.Snapshot().Columns[1].Name)
}
