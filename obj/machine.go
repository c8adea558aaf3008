package obj

import "github.com/milk9111/timeshift/common"

// TimeMachine lets the player switch timelines while standing in it.
type TimeMachine struct {
	X, Y          int
	Width, Height int
	Inverted      bool

	present, future Sprite
}

// NewTimeMachine centres the machine horizontally on the design x. Upright
// machines stand on y; inverted ones hang from it.
func NewTimeMachine(x, y int, inverted bool, present, future Sprite, scale common.ScreenScale) *TimeMachine {
	m := &TimeMachine{
		Width:    scale.PX(float64(present.Width) / 2),
		Height:   scale.PY(float64(present.Height) / 2),
		Inverted: inverted,
		present:  present,
		future:   future,
	}
	m.X = scale.PX(float64(x)) - m.Width/2
	m.Y = scale.PY(float64(y))
	if !inverted {
		m.Y -= m.Height
	}
	return m
}

func (m *TimeMachine) Rect() common.Rect {
	return common.Rect{X: m.X, Y: m.Y, Width: m.Width, Height: m.Height}
}

// Sprite returns the visual for the active timeline.
func (m *TimeMachine) Sprite(present bool) Sprite {
	if present {
		return m.present
	}
	return m.future
}
