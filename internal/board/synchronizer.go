package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/funil/internal/events"
	"github.com/thenoetrevino/funil/internal/models"
)

// Synchronizer owns one client-held board and reconciles it with a Remote.
// Moves are applied locally first and persisted with a single call; a failed
// persist discards local state by reloading the whole board.
type Synchronizer struct {
	remote Remote
	events events.EventPublisher

	mu       sync.Mutex
	board    *models.Board
	boardID  string
	draining bool

	// in-flight Persist calls
	wg sync.WaitGroup
}

// NewSynchronizer creates a synchronizer with no board loaded
func NewSynchronizer(remote Remote, opts ...Option) *Synchronizer {
	s := &Synchronizer{remote: remote}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is the outcome of persisting one move
type Result struct {
	Move      models.Move
	Noop      bool  // nothing was sent
	Err       error // persistence failure
	Reloaded  bool  // local state was replaced by the remote board
	ReloadErr error // recovery reload failure; optimistic state is kept
}

// Pending is an optimistically applied move waiting to be persisted
type Pending struct {
	s       *Synchronizer
	boardID string
	move    models.Move
	done    atomic.Bool
}

// Move returns the applied move with its effective destination index
func (p *Pending) Move() models.Move {
	if p == nil {
		return models.Move{}
	}
	return p.move
}

// Load fetches a board wholesale and makes it the current state.
// On failure the current state is kept.
func (s *Synchronizer) Load(ctx context.Context, boardID string) error {
	b, err := s.remote.FetchBoard(ctx, boardID)
	if err != nil {
		return fmt.Errorf("failed to load board %s: %w", boardID, err)
	}
	if err := Validate(b); err != nil {
		return fmt.Errorf("remote returned an invalid board %s: %w", boardID, err)
	}

	s.mu.Lock()
	s.board = b
	s.boardID = b.ID
	if s.boardID == "" {
		s.boardID = boardID
	}
	id := s.boardID
	s.mu.Unlock()

	slog.Debug("board loaded", "board_id", id, "items", b.ItemCount())
	s.publish(events.Event{Type: events.EventBoardLoaded, BoardID: id})
	return nil
}

// Reload re-fetches the current board and replaces local state entirely
func (s *Synchronizer) Reload(ctx context.Context) error {
	s.mu.Lock()
	id := s.boardID
	s.mu.Unlock()

	if id == "" {
		return ErrNoBoard
	}
	_, err := s.reload(ctx, id)
	return err
}

// reload replaces the state only if boardID is still the shown board.
// Reports whether the state was replaced.
func (s *Synchronizer) reload(ctx context.Context, boardID string) (bool, error) {
	b, err := s.remote.FetchBoard(ctx, boardID)
	if err != nil {
		return false, fmt.Errorf("failed to reload board %s: %w", boardID, err)
	}
	if err := Validate(b); err != nil {
		return false, fmt.Errorf("remote returned an invalid board %s: %w", boardID, err)
	}

	s.mu.Lock()
	if s.boardID != boardID {
		s.mu.Unlock()
		slog.Debug("discarding reload for board no longer shown", "board_id", boardID)
		return false, nil
	}
	s.board = b
	s.mu.Unlock()

	s.publish(events.Event{Type: events.EventBoardReloaded, BoardID: boardID})
	return true, nil
}

// Snapshot returns a deep copy of the current board, or nil if none is loaded
func (s *Synchronizer) Snapshot() *models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// BoardID returns the ID of the current board
func (s *Synchronizer) BoardID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boardID
}

// Move applies a move to local state immediately. It returns a nil Pending
// for no-op moves. Nothing is sent until Persist is called on the result.
func (s *Synchronizer) Move(mv models.Move) (*Pending, error) {
	if mv.IsNoop() {
		return nil, nil
	}

	s.mu.Lock()
	if s.board == nil {
		s.mu.Unlock()
		return nil, ErrNoBoard
	}
	placed, err := applyMove(s.board, mv)
	id := s.boardID
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	mv.DestIndex = placed
	s.publish(events.Event{
		Type:     events.EventMoveApplied,
		BoardID:  id,
		ItemID:   mv.ItemID,
		ColumnID: mv.DestColumnID,
	})
	return &Pending{s: s, boardID: id, move: mv}, nil
}

// Persist sends the move's new column to the remote. On failure the board is
// re-fetched and replaces the optimistic state. Persist is single-shot, and
// is refused once Wait has been called.
func (p *Pending) Persist(ctx context.Context) Result {
	if p == nil {
		return Result{Noop: true}
	}
	res := Result{Move: p.move}
	if !p.done.CompareAndSwap(false, true) {
		res.Err = ErrAlreadyPersisted
		return res
	}

	s := p.s
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		res.Err = ErrDraining
		return res
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	start := time.Now()
	err := s.remote.MoveItem(ctx, p.boardID, p.move.ItemID, p.move.DestColumnID, p.move.DestIndex)
	if err == nil {
		slog.Debug("move persisted",
			"board_id", p.boardID,
			"item_id", p.move.ItemID,
			"column_id", p.move.DestColumnID,
			"duration", time.Since(start))
		s.publish(events.Event{
			Type:     events.EventMovePersisted,
			BoardID:  p.boardID,
			ItemID:   p.move.ItemID,
			ColumnID: p.move.DestColumnID,
		})
		return res
	}

	res.Err = err
	slog.Error("failed to persist move, reloading board",
		"board_id", p.boardID,
		"item_id", p.move.ItemID,
		"column_id", p.move.DestColumnID,
		"error", err)
	s.publish(events.Event{
		Type:     events.EventMoveFailed,
		BoardID:  p.boardID,
		ItemID:   p.move.ItemID,
		ColumnID: p.move.DestColumnID,
		Err:      err.Error(),
	})

	res.Reloaded, res.ReloadErr = s.reload(ctx, p.boardID)
	if res.ReloadErr != nil {
		slog.Error("failed to reload board after move failure",
			"board_id", p.boardID,
			"error", res.ReloadErr)
	}
	return res
}

// Wait blocks until every in-flight Persist has returned. Persist calls
// made after Wait are refused with ErrDraining. Called on shutdown so a
// move being written is not cut off when the database closes.
func (s *Synchronizer) Wait() {
	s.mu.Lock()
	s.draining = true
	s.mu.Unlock()
	s.wg.Wait()
}

// RenameColumn persists a column's new name and then updates local state.
// Names are trimmed; empty or unchanged names are ignored.
func (s *Synchronizer) RenameColumn(ctx context.Context, columnID, name string) error {
	name = strings.TrimSpace(name)

	s.mu.Lock()
	if s.board == nil {
		s.mu.Unlock()
		return ErrNoBoard
	}
	col := s.board.Column(columnID)
	if col == nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrColumnNotFound, columnID)
	}
	current := col.Name
	id := s.boardID
	s.mu.Unlock()

	if name == "" || name == current {
		return nil
	}

	if err := s.remote.RenameColumn(ctx, id, columnID, name); err != nil {
		return fmt.Errorf("failed to rename column %s: %w", columnID, err)
	}

	s.mu.Lock()
	if s.boardID == id {
		if col := s.board.Column(columnID); col != nil {
			col.Name = name
		}
	}
	s.mu.Unlock()

	s.publish(events.Event{Type: events.EventColumnRenamed, BoardID: id, ColumnID: columnID})
	return nil
}

func (s *Synchronizer) publish(event events.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(event); err != nil {
		slog.Debug("failed to publish board event", "event_type", event.Type, "error", err)
	}
}
