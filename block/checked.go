package block

// Checker reports whether a block's current position is legal on some board.
type Checker interface {
	Check(b *Block) bool
}

// The Checked* methods attempt a move and roll it back via the exact inverse
// if the result is illegal. They report whether the move stuck. Illegal
// attempts are reverted silently; no error is surfaced.

func (b *Block) CheckedLeft(c Checker) bool {
	b.Left()
	if c.Check(b) {
		return true
	}
	b.Right()
	return false
}

func (b *Block) CheckedRight(c Checker) bool {
	b.Right()
	if c.Check(b) {
		return true
	}
	b.Left()
	return false
}

func (b *Block) CheckedUp(c Checker) bool {
	b.Up()
	if c.Check(b) {
		return true
	}
	b.Down()
	return false
}

func (b *Block) CheckedDown(c Checker) bool {
	b.Down()
	if c.Check(b) {
		return true
	}
	b.Up()
	return false
}

func (b *Block) CheckedRotate(c Checker) bool {
	b.Rotate()
	if c.Check(b) {
		return true
	}
	b.Unrotate()
	return false
}
