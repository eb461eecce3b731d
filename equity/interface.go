package equity

import "github.com/dropblox/dropblox-ai/board"

// EquityCalculator evaluates the desirability of a resulting board. Higher
// is better; the solver maximizes this value across placements.
type EquityCalculator interface {
	Equity(b *board.Board) float64
}
