package board

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/thenoetrevino/funil/internal/models"
)

var errRemoteDown = errors.New("remote unavailable")

// fakeRemote holds the server-side truth for a set of boards
type fakeRemote struct {
	mu        sync.Mutex
	boards    map[string]*models.Board
	moveErr   error
	renameErr error
	fetchErr  error
	fetches   int
	moves     []models.Move
	renames   []string

	// block, when set, is waited on inside MoveItem
	block chan struct{}
	// entered, when set, receives once MoveItem has been called
	entered chan struct{}
}

func newFakeRemote(boards ...*models.Board) *fakeRemote {
	r := &fakeRemote{boards: make(map[string]*models.Board)}
	for _, b := range boards {
		r.boards[b.ID] = b.Clone()
	}
	return r
}

func (r *fakeRemote) FetchBoard(ctx context.Context, boardID string) (*models.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetches++
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	b, ok := r.boards[boardID]
	if !ok {
		return nil, ErrNoBoard
	}
	return b.Clone(), nil
}

func (r *fakeRemote) MoveItem(ctx context.Context, boardID, itemID, destColumnID string, destIndex int) error {
	if r.entered != nil {
		r.entered <- struct{}{}
	}
	if r.block != nil {
		select {
		case <-r.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.moves = append(r.moves, models.Move{ItemID: itemID, DestColumnID: destColumnID, DestIndex: destIndex})
	if r.moveErr != nil {
		return r.moveErr
	}

	b := r.boards[boardID]
	col, idx := b.Locate(itemID)
	if col == nil {
		return ErrItemMismatch
	}
	_, err := applyMove(b, models.Move{
		ItemID:         itemID,
		SourceColumnID: col.ID,
		SourceIndex:    idx,
		DestColumnID:   destColumnID,
		DestIndex:      destIndex,
		HasDestination: true,
	})
	return err
}

func (r *fakeRemote) RenameColumn(ctx context.Context, boardID, columnID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renames = append(r.renames, name)
	if r.renameErr != nil {
		return r.renameErr
	}
	if col := r.boards[boardID].Column(columnID); col != nil {
		col.Name = name
	}
	return nil
}

func (r *fakeRemote) server(boardID string) *models.Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.boards[boardID].Clone()
}

func (r *fakeRemote) fetchCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fetches
}

func (r *fakeRemote) moveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.moves)
}

func (r *fakeRemote) setMoveErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moveErr = err
}

// ============================================================================
// Board fixtures
// ============================================================================

// newBoard builds a board from column definitions of the form "A:x,y,z"
func newBoard(id string, cols ...string) *models.Board {
	b := &models.Board{ID: id, Name: id}
	for _, def := range cols {
		name, items, _ := strings.Cut(def, ":")
		col := &models.Column{ID: name, Name: name, Items: []*models.Item{}}
		if items != "" {
			for _, itemID := range strings.Split(items, ",") {
				col.Items = append(col.Items, &models.Item{ID: itemID, Title: itemID})
			}
		}
		b.Columns = append(b.Columns, col)
	}
	return b
}

// ids lists the item IDs of a column
func ids(b *models.Board, columnID string) []string {
	col := b.Column(columnID)
	if col == nil {
		return nil
	}
	out := make([]string, 0, len(col.Items))
	for _, item := range col.Items {
		out = append(out, item.ID)
	}
	return out
}
