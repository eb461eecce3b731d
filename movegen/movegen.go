// Package movegen enumerates every placement of the active block that is
// reachable by lateral moves and rotations followed by a hard drop.
package movegen

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/dropblox/dropblox-ai/board"
	"github.com/dropblox/dropblox-ai/move"
)

// Placement is one reachable resting position: the board that results from
// locking the block there and the command sequence that reaches it.
type Placement struct {
	Board *board.Board
	Moves []move.MoveCommand
}

// Generator produces placements. It keeps no state between calls, so a
// single generator is safe to reuse across recursion levels.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GenAll returns every reachable final placement of b's active block, each
// with the move sequence that produces it. Distinct rotation encodings of
// the same resting geometry are all kept; the set is an overcount, not a
// dedup. An empty result means no legal placement exists, which is a valid
// terminal outcome rather than an error; board.ErrExhaustedPreview is the
// one commit failure that is an error, since locking anything at all was a
// precondition violation. The caller's board is untouched.
func (g *Generator) GenAll(b *board.Board) ([]*Placement, error) {
	blk := b.ActiveBlock().Copy()
	blk.Reset()
	if !b.Check(blk) {
		return nil, nil
	}

	// Normalize to the leftmost legal column, recording the path.
	var prefix []move.MoveCommand
	for blk.CheckedLeft(b) {
		prefix = append(prefix, move.Left)
	}

	// Sweep columns rightward; at each one cycle through the four rotation
	// states and record the combinations that are legal in place. Four
	// rotations return the block to its entry orientation, so the sweep
	// resumes cleanly at every column.
	var candidates [][]move.MoveCommand
	for {
		for r := 0; r < 4; r++ {
			if b.Check(blk) {
				seq := make([]move.MoveCommand, len(prefix), len(prefix)+r)
				copy(seq, prefix)
				for n := 0; n < r; n++ {
					seq = append(seq, move.Rotate)
				}
				candidates = append(candidates, seq)
			}
			blk.Rotate()
		}
		if !blk.CheckedRight(b) {
			break
		}
		prefix = append(prefix, move.Right)
	}

	plays := make([]*Placement, 0, len(candidates))
	for _, seq := range candidates {
		var err error
		plays, err = g.record(b, seq, plays)
		if err != nil {
			return nil, err
		}
	}
	return plays, nil
}

// record simulates the hard drop for seq, appends the down commands that
// reach the resting row, and commits the full sequence to obtain the
// resulting board. Sequences whose path fails commit-time re-checking (a
// transient illegal rotation state on the way) are unreachable and skipped.
func (g *Generator) record(b *board.Board, seq []move.MoveCommand, plays []*Placement) ([]*Placement, error) {
	blk := b.ActiveBlock().Copy()
	blk.Reset()
	blk.ApplyAll(seq)

	full := make([]move.MoveCommand, len(seq), len(seq)+board.Rows)
	copy(full, seq)
	for blk.CheckedDown(b) {
		full = append(full, move.Down)
	}

	next, err := b.CommitSequence(full)
	if errors.Is(err, board.ErrInvalidPlacement) {
		log.Debug().Err(err).Msg("skipping unreachable placement")
		return plays, nil
	}
	if err != nil {
		return nil, err
	}
	return append(plays, &Placement{Board: next, Moves: full}), nil
}
