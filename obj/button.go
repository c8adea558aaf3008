package obj

import "github.com/milk9111/timeshift/common"

type ButtonKind int

const (
	ButtonSaveState ButtonKind = iota
	ButtonTimeChange
)

func (k ButtonKind) String() string {
	if k == ButtonTimeChange {
		return "time_change"
	}
	return "save_state"
}

// Button is an on-screen control. Frames holds its visuals; the save button
// switches to its second frame while a state is pending.
type Button struct {
	Kind          ButtonKind
	X, Y          int
	Width, Height int
	Visible       bool
	Frames        []Sprite
	Frame         int
}

// NewButton places a button at device pixels (x, y), sized from its first
// frame multiplied by num/den.
func NewButton(kind ButtonKind, x, y int, frames []Sprite, num, den int, scale common.ScreenScale) *Button {
	var native Sprite
	if len(frames) > 0 {
		native = frames[0]
	}
	den = divisor(den)
	return &Button{
		Kind:    kind,
		X:       x,
		Y:       y,
		Width:   scale.PX(float64(native.Width*num) / float64(den)),
		Height:  scale.PY(float64(native.Height*num) / float64(den)),
		Visible: true,
		Frames:  frames,
	}
}

func (b *Button) Rect() common.Rect {
	return common.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Hit reports a tap on a visible button, edges included.
func (b *Button) Hit(px, py float64) bool {
	return b.Visible && b.Rect().Contains(px, py)
}

func (b *Button) Sprite() Sprite {
	if b.Frame < 0 || b.Frame >= len(b.Frames) {
		return Sprite{}
	}
	return b.Frames[b.Frame]
}

// Opacity dims the button while the player is behind it.
func (b *Button) Opacity(player common.Rect, cfg ButtonConfig) uint8 {
	if b.Rect().Intersects(player) {
		return uint8(cfg.PressedAlpha)
	}
	return uint8(cfg.ReleasedAlpha)
}
