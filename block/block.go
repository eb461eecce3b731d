// Package block models a polyomino piece: an immutable shape positioned on
// the board by a mutable translation and rotation.
package block

import (
	"github.com/dropblox/dropblox-ai/move"
)

// Point is an (i, j) board coordinate; i is the row, j is the column.
type Point struct {
	I int
	J int
}

// BlockShape is the part of a block that never changes once constructed: a
// center point and the offsets of the block's squares relative to it.
type BlockShape struct {
	Center  Point
	Offsets []Point
}

// Block positions a shape on the board. The shape is shared read-only among
// all blocks built from it; the translation and rotation counter belong to
// this block alone.
type Block struct {
	shape       *BlockShape
	translation Point
	rotation    int
}

// NewBlock returns a block for shape at the reset position: translation
// (0, 0), rotation 0.
func NewBlock(shape *BlockShape) *Block {
	return &Block{shape: shape}
}

// Copy returns a block with its own translation and rotation but the same
// shared shape.
func (b *Block) Copy() *Block {
	c := *b
	return &c
}

// Shape returns the block's shared shape.
func (b *Block) Shape() *BlockShape {
	return b.shape
}

// Rotation returns the raw rotation counter. Only its value mod 4 affects
// geometry, but the counter itself may transiently leave 0..3 between an
// apply/undo pair.
func (b *Block) Rotation() int {
	return b.rotation
}

func (b *Block) Left()  { b.translation.J-- }
func (b *Block) Right() { b.translation.J++ }
func (b *Block) Up()    { b.translation.I-- }
func (b *Block) Down()  { b.translation.I++ }

// Rotate and Unrotate are exact inverses, as are Left/Right and Up/Down.
func (b *Block) Rotate()   { b.rotation++ }
func (b *Block) Unrotate() { b.rotation-- }

// Reset moves the block back to translation (0, 0) and rotation 0.
func (b *Block) Reset() {
	b.translation = Point{}
	b.rotation = 0
}

// Squares returns the absolute positions currently occupied by the block.
// It is a pure function of the block's state: calling it twice without an
// intervening move yields identical results.
//
// The rotation mapping is the engine's own asymmetric formula, not a generic
// rotation matrix. Applied to the Euclidean mod-4 counter it closes under
// 4-fold symmetry: rotation r and r+4 occupy the same squares.
func (b *Block) Squares() []Point {
	rot := ((b.rotation % 4) + 4) % 4
	ci := b.shape.Center.I + b.translation.I
	cj := b.shape.Center.J + b.translation.J
	squares := make([]Point, len(b.shape.Offsets))
	for n, off := range b.shape.Offsets {
		if rot%2 == 1 {
			squares[n] = Point{I: ci + (2-rot)*off.J, J: cj - (2-rot)*off.I}
		} else {
			squares[n] = Point{I: ci + (1-rot)*off.I, J: cj + (1-rot)*off.J}
		}
	}
	return squares
}

// Apply performs the geometric effect of cmd on the block. Drop has no
// block-level geometry; the board's lock transition handles it.
func (b *Block) Apply(cmd move.MoveCommand) {
	switch cmd {
	case move.Left:
		b.Left()
	case move.Right:
		b.Right()
	case move.Up:
		b.Up()
	case move.Down:
		b.Down()
	case move.Rotate:
		b.Rotate()
	case move.Drop:
	}
}

// ApplyAll applies each command in order, without legality checks.
func (b *Block) ApplyAll(cmds []move.MoveCommand) {
	for _, cmd := range cmds {
		b.Apply(cmd)
	}
}
