package block

import (
	"testing"

	"github.com/matryer/is"

	"github.com/dropblox/dropblox-ai/move"
)

func lShape() *BlockShape {
	return &BlockShape{
		Center:  Point{I: 1, J: 5},
		Offsets: []Point{{I: 0, J: -1}, {I: 0, J: 0}, {I: 0, J: 1}, {I: 1, J: 1}},
	}
}

func TestRotateUnrotateInverse(t *testing.T) {
	is := is.New(t)
	b := NewBlock(lShape())
	b.Right()
	b.Down()

	before := b.Squares()
	b.Rotate()
	b.Unrotate()
	is.Equal(b.Squares(), before)

	b.Unrotate()
	b.Rotate()
	is.Equal(b.Squares(), before)
}

func TestTranslationInverses(t *testing.T) {
	is := is.New(t)
	b := NewBlock(lShape())
	before := b.Squares()

	b.Left()
	b.Right()
	is.Equal(b.Squares(), before)

	b.Up()
	b.Down()
	is.Equal(b.Squares(), before)
}

func TestFourFoldPeriodicity(t *testing.T) {
	is := is.New(t)
	// The asymmetric square formula must close under four rotations for
	// every counter value, including transient negatives.
	squaresAt := func(r int) []Point {
		b := NewBlock(lShape())
		for n := 0; n < r; n++ {
			b.Rotate()
		}
		for n := 0; n > r; n-- {
			b.Unrotate()
		}
		return b.Squares()
	}
	for r := -4; r <= 8; r++ {
		is.Equal(squaresAt(r), squaresAt(r+4))
	}
}

func TestSquaresIdempotent(t *testing.T) {
	is := is.New(t)
	b := NewBlock(lShape())
	b.Rotate()
	b.Left()
	is.Equal(b.Squares(), b.Squares())
}

func TestReset(t *testing.T) {
	is := is.New(t)
	b := NewBlock(lShape())
	before := b.Squares()
	b.ApplyAll([]move.MoveCommand{move.Right, move.Right, move.Down, move.Rotate})
	b.Reset()
	is.Equal(b.Squares(), before)
	is.Equal(b.Rotation(), 0)
}

func TestCopySharesShapeNotState(t *testing.T) {
	is := is.New(t)
	b := NewBlock(lShape())
	c := b.Copy()
	c.Rotate()
	c.Down()
	is.Equal(b.Shape(), c.Shape())
	is.Equal(b.Rotation(), 0)
	is.True(b.Squares()[0] != c.Squares()[0])
}

type stubChecker struct {
	allow bool
}

func (s stubChecker) Check(b *Block) bool { return s.allow }

func TestCheckedMovesRollBack(t *testing.T) {
	is := is.New(t)
	b := NewBlock(lShape())
	before := b.Squares()

	deny := stubChecker{allow: false}
	is.True(!b.CheckedLeft(deny))
	is.True(!b.CheckedRight(deny))
	is.True(!b.CheckedUp(deny))
	is.True(!b.CheckedDown(deny))
	is.True(!b.CheckedRotate(deny))
	is.Equal(b.Squares(), before)
	is.Equal(b.Rotation(), 0)
}

func TestCheckedMovesStickWhenLegal(t *testing.T) {
	is := is.New(t)
	b := NewBlock(lShape())
	before := b.Squares()

	allow := stubChecker{allow: true}
	is.True(b.CheckedDown(allow))
	is.True(b.CheckedRotate(allow))
	is.True(b.Squares()[0] != before[0])
	is.Equal(b.Rotation(), 1)
}
