package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropblox/dropblox-ai/block"
	"github.com/dropblox/dropblox-ai/move"
)

func emptyBitmap() [][]int {
	bitmap := make([][]int, Rows)
	for i := range bitmap {
		bitmap[i] = make([]int, Cols)
	}
	return bitmap
}

func singleSquare() *block.BlockShape {
	return &block.BlockShape{
		Center:  block.Point{I: 0, J: 6},
		Offsets: []block.Point{{I: 0, J: 0}},
	}
}

func horizontalDomino() *block.BlockShape {
	return &block.BlockShape{
		Center:  block.Point{I: 0, J: 5},
		Offsets: []block.Point{{I: 0, J: 0}, {I: 0, J: 1}},
	}
}

func countFilled(b *Board) int {
	return strings.Count(b.String(), "X")
}

func TestCheckAgainstBruteForce(t *testing.T) {
	bitmap := emptyBitmap()
	bitmap[5][3] = 1
	bitmap[20][11] = 1
	b := New(bitmap, block.NewBlock(singleSquare()), nil)

	// A one-square block translated everywhere must agree with the direct
	// bounds-and-occupancy predicate.
	for di := -2; di < Rows+2; di++ {
		for dj := -8; dj < Cols+2; dj++ {
			blk := block.NewBlock(singleSquare())
			for n := 0; n < di; n++ {
				blk.Down()
			}
			for n := 0; n > di; n-- {
				blk.Up()
			}
			for n := 0; n < dj; n++ {
				blk.Right()
			}
			for n := 0; n > dj; n-- {
				blk.Left()
			}
			i, j := 0+di, 6+dj
			want := i >= 0 && i < Rows && j >= 0 && j < Cols && bitmap[i][j] == 0
			assert.Equal(t, want, b.Check(blk), "at (%d, %d)", i, j)
		}
	}
}

func TestDominoDropsToBottomRow(t *testing.T) {
	b := New(emptyBitmap(), block.NewBlock(horizontalDomino()), []*block.BlockShape{singleSquare()})

	next, err := b.CommitSequence(nil) // implicit drop, no lateral moves
	require.NoError(t, err)

	assert.True(t, next.Occupied(Rows-1, 5))
	assert.True(t, next.Occupied(Rows-1, 6))
	assert.Equal(t, 2, countFilled(next))
	assert.Equal(t, 0, next.PreviewLen())
}

func TestRowClearShiftsDown(t *testing.T) {
	bitmap := emptyBitmap()
	for j := 0; j < Cols; j++ {
		if j != 7 {
			bitmap[Rows-1][j] = 1
		}
	}
	bitmap[Rows-2][0] = 1 // marker above the full-to-be row
	b := New(bitmap, block.NewBlock(singleSquare()), []*block.BlockShape{singleSquare()})

	next, err := b.CommitSequence([]move.MoveCommand{move.Right})
	require.NoError(t, err)

	// The completed bottom row is gone; only the marker remains, shifted
	// down one row by the empty row padded in at the top.
	assert.Equal(t, 1, countFilled(next))
	assert.True(t, next.Occupied(Rows-1, 0))
}

func TestLockPreservesDimensions(t *testing.T) {
	b := New(emptyBitmap(), block.NewBlock(horizontalDomino()), []*block.BlockShape{singleSquare()})
	next, err := b.CommitSequence([]move.MoveCommand{move.Left, move.Left})
	require.NoError(t, err)

	// String renders exactly Rows lines of Cols cells; a panic or a short
	// render here would mean the grid lost its shape.
	lines := strings.Split(strings.TrimRight(next.String(), "\n"), "\n")
	require.Len(t, lines, Rows)
	for _, line := range lines {
		assert.Len(t, line, Cols*2-1)
		assert.NotEqual(t, strings.Count(line, "X"), Cols, "full row survived the lock")
	}
}

func TestCommitRejectsIllegalPath(t *testing.T) {
	b := New(emptyBitmap(), block.NewBlock(singleSquare()), []*block.BlockShape{singleSquare()})

	cmds := make([]move.MoveCommand, 0, 8)
	for n := 0; n < 8; n++ {
		cmds = append(cmds, move.Left)
	}
	_, err := b.CommitSequence(cmds)
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestCommitRejectsSpawnCollision(t *testing.T) {
	bitmap := emptyBitmap()
	bitmap[0][6] = 1
	b := New(bitmap, block.NewBlock(singleSquare()), []*block.BlockShape{singleSquare()})

	_, err := b.CommitSequence(nil)
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestCommitWithEmptyPreview(t *testing.T) {
	b := New(emptyBitmap(), block.NewBlock(singleSquare()), nil)
	_, err := b.CommitSequence(nil)
	assert.ErrorIs(t, err, ErrExhaustedPreview)
}

func TestCommitLeavesReceiverUntouched(t *testing.T) {
	b := New(emptyBitmap(), block.NewBlock(singleSquare()), []*block.BlockShape{singleSquare()})
	before := b.String()
	beforeSquares := b.ActiveBlock().Squares()

	_, err := b.CommitSequence([]move.MoveCommand{move.Right, move.Right})
	require.NoError(t, err)

	assert.Equal(t, before, b.String())
	assert.Equal(t, beforeSquares, b.ActiveBlock().Squares())
}

func TestCommandsAfterDropIgnored(t *testing.T) {
	b := New(emptyBitmap(), block.NewBlock(singleSquare()), []*block.BlockShape{singleSquare()})

	plain, err := b.CommitSequence([]move.MoveCommand{move.Drop})
	require.NoError(t, err)
	trailing, err := b.CommitSequence([]move.MoveCommand{move.Drop, move.Left, move.Left})
	require.NoError(t, err)

	assert.Equal(t, plain.String(), trailing.String())
}
