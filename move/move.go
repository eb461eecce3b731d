// Package move defines the commands that drive the active block.
package move

import "fmt"

// MoveCommand is one of the fixed set of commands understood by the game
// engine. A command sequence plus an implicit terminal Drop describes how to
// drive a block from its reset position to a locked placement.
type MoveCommand uint8

const (
	Left MoveCommand = iota
	Right
	Up
	Down
	Rotate
	Drop
)

func (m MoveCommand) String() string {
	switch m {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case Rotate:
		return "rotate"
	case Drop:
		return "drop"
	}
	return "unknown"
}

// ParseMove maps a wire word back to its command.
func ParseMove(word string) (MoveCommand, error) {
	switch word {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "rotate":
		return Rotate, nil
	case "drop":
		return Drop, nil
	}
	return 0, fmt.Errorf("unknown move command %q", word)
}
