// Package gamestate reads the engine's JSON game-state blob and writes move
// sequences back in the engine's line-oriented wire form.
package gamestate

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/dropblox/dropblox-ai/block"
	"github.com/dropblox/dropblox-ai/board"
	"github.com/dropblox/dropblox-ai/move"
)

type pointJSON struct {
	I int `json:"i"`
	J int `json:"j"`
}

type blockJSON struct {
	Center  pointJSON   `json:"center"`
	Offsets []pointJSON `json:"offsets"`
}

type stateJSON struct {
	Bitmap  [][]int     `json:"bitmap"`
	Block   blockJSON   `json:"block"`
	Preview []blockJSON `json:"preview"`
}

// ParseState decodes a game-state blob into a Board. Malformed input —
// undecodable JSON, wrong grid dimensions, or cells outside {0, 1} — is an
// error; per the engine contract there is no recovering from a corrupt
// state, so callers should abort the decision.
func ParseState(data []byte) (*board.Board, error) {
	var st stateJSON
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decoding game state: %w", err)
	}
	if len(st.Bitmap) != board.Rows {
		return nil, fmt.Errorf("bitmap has %d rows, want %d", len(st.Bitmap), board.Rows)
	}
	for i, row := range st.Bitmap {
		if len(row) != board.Cols {
			return nil, fmt.Errorf("bitmap row %d has %d columns, want %d", i, len(row), board.Cols)
		}
		for j, cell := range row {
			if cell != 0 && cell != 1 {
				return nil, fmt.Errorf("bitmap cell (%d, %d) is %d, want 0 or 1", i, j, cell)
			}
		}
	}
	if len(st.Block.Offsets) == 0 {
		return nil, fmt.Errorf("active block has no offsets")
	}
	preview := lo.Map(st.Preview, func(bj blockJSON, _ int) *block.BlockShape {
		return shapeFromJSON(bj)
	})
	return board.New(st.Bitmap, block.NewBlock(shapeFromJSON(st.Block)), preview), nil
}

func shapeFromJSON(bj blockJSON) *block.BlockShape {
	return &block.BlockShape{
		Center: block.Point{I: bj.Center.I, J: bj.Center.J},
		Offsets: lo.Map(bj.Offsets, func(p pointJSON, _ int) block.Point {
			return block.Point{I: p.I, J: p.J}
		}),
	}
}

// WriteMoves writes one command word per line. The terminal drop is implicit
// in the wire format and never written.
func WriteMoves(w io.Writer, moves []move.MoveCommand) error {
	for _, word := range lo.Map(moves, func(m move.MoveCommand, _ int) string {
		return m.String()
	}) {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}
