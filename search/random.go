package search

import (
	"lukechampine.com/frand"

	"github.com/dropblox/dropblox-ai/board"
	"github.com/dropblox/dropblox-ai/move"
)

// RandomMoves is the last-ditch mover: a rotate followed by a lateral walk
// toward a random column. The engine always has something to emit with it,
// even when the solver reports nothing playable.
func RandomMoves() []move.MoveCommand {
	moves := []move.MoveCommand{move.Rotate}
	for n := frand.Intn(board.Cols) - board.Cols/2; n != 0; {
		if n > 0 {
			moves = append(moves, move.Left)
			n--
		} else {
			moves = append(moves, move.Right)
			n++
		}
	}
	return moves
}
