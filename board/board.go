// Package board holds the occupancy grid and the lock transition that
// advances the game by one block.
package board

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/dropblox/dropblox-ai/block"
	"github.com/dropblox/dropblox-ai/move"
)

// Board dimensions are fixed by the game.
const (
	Rows = 33
	Cols = 12
)

var (
	// ErrInvalidPlacement means a command sequence drove the block into an
	// out-of-bounds or occupied square before the terminal drop.
	ErrInvalidPlacement = errors.New("command sequence drives the block into an illegal square")
	// ErrExhaustedPreview means a lock transition needed a block beyond the
	// preview queue. Callers must bound lookahead by the preview length.
	ErrExhaustedPreview = errors.New("no blocks left in the preview queue")
)

// Board is one game state: the occupancy grid, the active block, and the
// preview queue of upcoming shapes. The grid and preview are immutable per
// Board; transitions produce new Board values. Rows untouched by a
// transition are shared with the successor.
type Board struct {
	bitmap  [][]int
	active  *block.Block
	preview []*block.BlockShape
}

// New creates a board over bitmap, taking ownership of it. The bitmap must
// be Rows x Cols with 0/1 cells; the gamestate parser validates that for
// external input.
func New(bitmap [][]int, active *block.Block, preview []*block.BlockShape) *Board {
	return &Board{bitmap: bitmap, active: active, preview: preview}
}

// ActiveBlock returns the block the next commit will place.
func (b *Board) ActiveBlock() *block.Block {
	return b.active
}

// PreviewLen returns the number of upcoming shapes left in the preview.
func (b *Board) PreviewLen() int {
	return len(b.preview)
}

// Occupied reports whether the grid cell at (i, j) is filled.
func (b *Board) Occupied(i, j int) bool {
	return b.bitmap[i][j] != 0
}

// Check reports whether blk is in a legal position: every square in bounds
// and unoccupied. It never modifies the board or the block.
func (b *Board) Check(blk *block.Block) bool {
	for _, sq := range blk.Squares() {
		if sq.I < 0 || sq.I >= Rows || sq.J < 0 || sq.J >= Cols || b.bitmap[sq.I][sq.J] != 0 {
			return false
		}
	}
	return true
}

// CommitSequence resets the active block and drives it through cmds,
// re-checking legality after every command. A Drop is implied if cmds omits
// one; commands after the first Drop are ignored. On success it returns the
// successor board with the block locked in, full rows cleared, and the next
// preview shape active. The receiver is never modified.
//
// It returns ErrInvalidPlacement if the reset position is already illegal
// (spawn collision) or any command lands the block illegally, and
// ErrExhaustedPreview if the preview queue is empty at lock time.
func (b *Board) CommitSequence(cmds []move.MoveCommand) (*Board, error) {
	blk := b.active.Copy()
	blk.Reset()
	if !b.Check(blk) {
		return nil, ErrInvalidPlacement
	}
	for _, cmd := range cmds {
		if cmd == move.Drop {
			return b.lock(blk)
		}
		blk.Apply(cmd)
		if !b.Check(blk) {
			return nil, ErrInvalidPlacement
		}
	}
	return b.lock(blk)
}

// lock drops blk as far as it falls unobstructed, merges it into a copy of
// the grid, clears full rows, and returns the successor board with the next
// preview shape active. blk must start in a legal position.
func (b *Board) lock(blk *block.Block) (*Board, error) {
	if len(b.preview) == 0 {
		return nil, ErrExhaustedPreview
	}
	for b.Check(blk) {
		blk.Down()
	}
	blk.Up()

	bitmap := make([][]int, Rows)
	for i, row := range b.bitmap {
		bitmap[i] = append([]int(nil), row...)
	}
	for _, sq := range blk.Squares() {
		bitmap[sq.I][sq.J] = 1
	}
	bitmap, cleared := removeFullRows(bitmap)
	if cleared > 0 {
		log.Debug().Int("cleared", cleared).Msg("rows-cleared")
	}
	return &Board{
		bitmap:  bitmap,
		active:  block.NewBlock(b.preview[0]),
		preview: b.preview[1:],
	}, nil
}

// removeFullRows deletes every completely filled row and re-pads the grid
// with empty rows at the top, preserving the row count.
func removeFullRows(bitmap [][]int) ([][]int, int) {
	kept := make([][]int, 0, Rows)
	for _, row := range bitmap {
		full := true
		for _, cell := range row {
			if cell == 0 {
				full = false
				break
			}
		}
		if !full {
			kept = append(kept, row)
		}
	}
	cleared := Rows - len(kept)
	if cleared == 0 {
		return bitmap, 0
	}
	out := make([][]int, 0, Rows)
	for n := 0; n < cleared; n++ {
		out = append(out, make([]int, Cols))
	}
	return append(out, kept...), cleared
}

// String renders the grid for debugging, one row per line, X for filled.
func (b *Board) String() string {
	var sb strings.Builder
	for i := 0; i < Rows; i++ {
		for j := 0; j < Cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if b.bitmap[i][j] != 0 {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
