package system

import "fmt"

type Direction int

const (
	MoveNone Direction = iota
	MoveLeft
	MoveRight
)

func (d Direction) String() string {
	switch d {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveNone:
		return "none"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts "left", "right" and "" or "none".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return MoveLeft, nil
	case "right":
		return MoveRight, nil
	case "", "none":
		return MoveNone, nil
	}
	return MoveNone, fmt.Errorf("system: unknown direction %q", s)
}

func (d Direction) sign() int {
	switch d {
	case MoveLeft:
		return -1
	case MoveRight:
		return 1
	}
	return 0
}

// Tap is a new touch at device pixels.
type Tap struct {
	X, Y float64
}

// Intent is the input for one tick.
type Intent struct {
	Move Direction
	Jump bool
	Taps []Tap
}
