// Package search picks the move sequence for the active block by
// depth-limited exploration of the placement tree.
package search

import (
	"errors"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/dropblox/dropblox-ai/board"
	"github.com/dropblox/dropblox-ai/equity"
	"github.com/dropblox/dropblox-ai/move"
	"github.com/dropblox/dropblox-ai/movegen"
)

// ErrNoPlayableLine means the active block has no legal placement at all.
var ErrNoPlayableLine = errors.New("no playable line found")

// Solver runs a single-threaded depth-first maximization over placements.
// At each level it enumerates every placement of the current block, recurses
// into the resulting boards with the next preview block, and keeps the best
// score. Depth maxDepth+1 is terminal and scored statically.
type Solver struct {
	gen      *movegen.Generator
	calc     equity.EquityCalculator
	maxDepth int
}

// NewSolver creates a solver that looks maxDepth placements ahead past the
// current one. maxDepth must be less than the board's preview length; the
// search propagates board.ErrExhaustedPreview if a line runs out of blocks.
func NewSolver(gen *movegen.Generator, calc equity.EquityCalculator, maxDepth int) *Solver {
	return &Solver{gen: gen, calc: calc, maxDepth: maxDepth}
}

// Solve returns the command sequence of the best-scoring line from b. It
// returns ErrNoPlayableLine if the current block cannot be placed anywhere.
func (s *Solver) Solve(b *board.Board) ([]move.MoveCommand, error) {
	moves, score, err := s.searchNode(b, 0)
	if err != nil {
		return nil, err
	}
	if math.IsInf(score, -1) && moves == nil {
		return nil, ErrNoPlayableLine
	}
	log.Debug().Float64("score", score).Int("max-depth", s.maxDepth).
		Int("moves", len(moves)).Msg("solve-done")
	return moves, nil
}

// searchNode evaluates one node. Past maxDepth it is terminal and returns
// the static equity. Otherwise it maximizes over the block's placements.
// The running best starts at -Inf, so any playable placement is selected
// even when every line scores negative; a node with no placements keeps the
// -Inf sentinel and loses to every playable sibling.
func (s *Solver) searchNode(b *board.Board, depth int) ([]move.MoveCommand, float64, error) {
	if depth > s.maxDepth {
		return nil, s.calc.Equity(b), nil
	}
	plays, err := s.gen.GenAll(b)
	if err != nil {
		return nil, 0, err
	}
	bestScore := math.Inf(-1)
	var bestMoves []move.MoveCommand
	found := false
	for _, p := range plays {
		_, score, err := s.searchNode(p.Board, depth+1)
		if err != nil {
			return nil, 0, err
		}
		if !found || score > bestScore {
			bestScore = score
			bestMoves = p.Moves
			found = true
		}
	}
	if !found {
		return nil, math.Inf(-1), nil
	}
	return bestMoves, bestScore, nil
}
