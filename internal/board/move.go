package board

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/funil/internal/models"
)

// ApplyMove relocates an item in place: removal from the source column at
// SourceIndex, then insertion into the destination column at DestIndex.
// Returns false without touching the board for no-op moves. When the move
// does not describe the current board an error is returned and the board is
// left unchanged.
func ApplyMove(b *models.Board, mv models.Move) (bool, error) {
	if mv.IsNoop() {
		return false, nil
	}
	if b == nil {
		return false, ErrNoBoard
	}
	if _, err := applyMove(b, mv); err != nil {
		return false, err
	}
	return true, nil
}

// applyMove performs the move and returns the index the item was placed at.
// The destination index is clamped to [0, len(dest)] after removal.
func applyMove(b *models.Board, mv models.Move) (int, error) {
	src := b.Column(mv.SourceColumnID)
	if src == nil {
		return 0, fmt.Errorf("%w: %s", ErrColumnNotFound, mv.SourceColumnID)
	}
	dst := b.Column(mv.DestColumnID)
	if dst == nil {
		return 0, fmt.Errorf("%w: %s", ErrColumnNotFound, mv.DestColumnID)
	}
	if mv.SourceIndex < 0 || mv.SourceIndex >= len(src.Items) {
		return 0, fmt.Errorf("%w: %d in column %s (len %d)",
			ErrIndexOutOfRange, mv.SourceIndex, src.ID, len(src.Items))
	}

	item := src.Items[mv.SourceIndex]
	if mv.ItemID != "" && item.ID != mv.ItemID {
		return 0, fmt.Errorf("%w: expected %s, found %s", ErrItemMismatch, mv.ItemID, item.ID)
	}

	src.Items = slices.Delete(src.Items, mv.SourceIndex, mv.SourceIndex+1)

	idx := min(max(mv.DestIndex, 0), len(dst.Items))
	dst.Items = slices.Insert(dst.Items, idx, item)
	return idx, nil
}

// Validate checks the board invariant that every item belongs to exactly one column
func Validate(b *models.Board) error {
	if b == nil {
		return ErrNoBoard
	}
	seen := make(map[string]string, b.ItemCount())
	for _, col := range b.Columns {
		for _, item := range col.Items {
			if prev, ok := seen[item.ID]; ok {
				return fmt.Errorf("%w: %s in %s and %s", ErrDuplicateItem, item.ID, prev, col.ID)
			}
			seen[item.ID] = col.ID
		}
	}
	return nil
}

// MoveBy builds a move that shifts the item at (columnID, index) by dx
// columns and dy positions. Used by keyboard-driven moves where the
// destination is relative to the selected card. A move that would leave the
// board is returned without destination.
func MoveBy(b *models.Board, columnID string, index, dx, dy int) models.Move {
	mv := models.Move{SourceColumnID: columnID, SourceIndex: index}
	colIdx := b.ColumnIndex(columnID)
	if colIdx < 0 {
		return mv
	}
	src := b.Columns[colIdx]
	if index < 0 || index >= len(src.Items) {
		return mv
	}
	mv.ItemID = src.Items[index].ID

	destCol := colIdx + dx
	if destCol < 0 || destCol >= len(b.Columns) {
		return mv
	}
	dst := b.Columns[destCol]

	destIndex := index + dy
	if dx != 0 {
		destIndex = min(index, len(dst.Items))
	}
	if dx == 0 && (destIndex < 0 || destIndex >= len(src.Items)) {
		return mv
	}

	mv.DestColumnID = dst.ID
	mv.DestIndex = destIndex
	mv.HasDestination = true
	return mv
}

// MoveTo builds a move of itemID to destColumnID at destIndex. A negative or
// too large index means the end of the destination column.
func MoveTo(b *models.Board, itemID, destColumnID string, destIndex int) (models.Move, error) {
	src, srcIndex := b.Locate(itemID)
	if src == nil {
		return models.Move{}, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	dst := b.Column(destColumnID)
	if dst == nil {
		return models.Move{}, fmt.Errorf("%w: %s", ErrColumnNotFound, destColumnID)
	}

	last := len(dst.Items)
	if dst.ID == src.ID {
		last--
	}
	if destIndex < 0 || destIndex > last {
		destIndex = last
	}

	return models.Move{
		ItemID:         itemID,
		SourceColumnID: src.ID,
		SourceIndex:    srcIndex,
		DestColumnID:   dst.ID,
		DestIndex:      destIndex,
		HasDestination: true,
	}, nil
}
