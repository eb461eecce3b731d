// Package equity scores resulting boards for the placement search.
package equity

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/dropblox/dropblox-ai/block"
	"github.com/dropblox/dropblox-ai/board"
)

// Default penalty weights, matching the reference tuning.
const (
	DefaultSpaceValue = 10.0
	DefaultFlatValue  = 5.0
)

// BoardScoreCalculator combines two penalties: enclosed empty pockets,
// weighted by the square root of their size, and surface unevenness,
// weighted by the variance of the column heights. Both weights are injected
// so they can be tuned and tested in isolation.
type BoardScoreCalculator struct {
	spaceValue float64
	flatValue  float64
}

func NewBoardScoreCalculator(spaceValue, flatValue float64) *BoardScoreCalculator {
	return &BoardScoreCalculator{spaceValue: spaceValue, flatValue: flatValue}
}

func (c *BoardScoreCalculator) Equity(b *board.Board) float64 {
	return c.pocketPenalty(b) + c.surfacePenalty(b)
}

var neighbors = [4]block.Point{{I: -1}, {I: 1}, {J: 1}, {J: -1}}

// pocketPenalty partitions the empty cells into 4-connected components and
// penalizes every component except the largest, which is open air rather
// than a trapped pocket. Cells are marked visited when enqueued so no cell
// is counted twice. A board with no empty cells has no pockets.
func (c *BoardScoreCalculator) pocketPenalty(b *board.Board) float64 {
	var visited [board.Rows][board.Cols]bool
	var sizes []int
	for i := 0; i < board.Rows; i++ {
		for j := 0; j < board.Cols; j++ {
			if visited[i][j] || b.Occupied(i, j) {
				continue
			}
			visited[i][j] = true
			size := 0
			queue := []block.Point{{I: i, J: j}}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				size++
				for _, d := range neighbors {
					ni, nj := cur.I+d.I, cur.J+d.J
					if ni < 0 || ni >= board.Rows || nj < 0 || nj >= board.Cols {
						continue
					}
					if visited[ni][nj] || b.Occupied(ni, nj) {
						continue
					}
					visited[ni][nj] = true
					queue = append(queue, block.Point{I: ni, J: nj})
				}
			}
			sizes = append(sizes, size)
		}
	}
	if len(sizes) == 0 {
		return 0
	}
	sort.Ints(sizes)
	penalty := 0.0
	for _, s := range sizes[:len(sizes)-1] {
		penalty -= c.spaceValue * math.Sqrt(float64(s))
	}
	return penalty
}

// surfacePenalty measures how jagged the skyline is: the height of each
// column is the row index of its first filled cell from the top (Rows for an
// empty column), and the penalty scales with the summed squared deviation of
// the heights from their mean.
func (c *BoardScoreCalculator) surfacePenalty(b *board.Board) float64 {
	heights := make([]float64, board.Cols)
	for j := 0; j < board.Cols; j++ {
		i := 0
		for i < board.Rows && !b.Occupied(i, j) {
			i++
		}
		heights[j] = float64(i)
	}
	mean := stat.Mean(heights, nil)
	variance := 0.0
	for _, h := range heights {
		variance += (mean - h) * (mean - h)
	}
	return -c.flatValue * variance / 100.0
}
