package obj

import "github.com/milk9111/timeshift/common"

// GravityPad inverts the gravity of whatever steps on its active face. An
// inverted pad hangs from a ceiling and fires from its top band.
type GravityPad struct {
	X, Y          int
	Width, Height int
	Inverted      bool

	band     float64
	cooldown int
	off, on  Sprite
}

// NewGravityPad places a pad with its base on the design point (x, y).
func NewGravityPad(x, y int, inverted bool, off, on Sprite, cfg PadConfig, scale common.ScreenScale) *GravityPad {
	d := float64(divisor(cfg.SizeDivisor))
	g := &GravityPad{
		Width:    scale.PX(float64(on.Width) / d),
		Height:   scale.PY(float64(on.Height) / d),
		Inverted: inverted,
		band:     cfg.TriggerBand,
		off:      off,
		on:       on,
	}
	g.X = scale.PX(float64(x))
	g.Y = scale.PY(float64(y))
	if !inverted {
		g.Y -= g.Height
	}
	return g
}

func (g *GravityPad) Rect() common.Rect {
	return common.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
}

// TriggerRect is the band of the pad that fires: the top quarter when
// inverted, the bottom quarter otherwise.
func (g *GravityPad) TriggerRect() common.Rect {
	band := common.Trunc(float64(g.Height) * g.band)
	if g.Inverted {
		return common.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: band}
	}
	top := common.Trunc(float64(g.Height) * (1 - g.band))
	return common.Rect{X: g.X, Y: g.Y + top, Width: g.Width, Height: g.Height - top}
}

func (g *GravityPad) Ready() bool {
	return g.cooldown == 0
}

func (g *GravityPad) Cooldown() int {
	return g.cooldown
}

func (g *GravityPad) trigger(cooldown int) {
	g.cooldown = cooldown
}

// Update counts the cooldown down by one tick.
func (g *GravityPad) Update() {
	if g.cooldown > 0 {
		g.cooldown--
	}
}

// Sprite is the "off" visual while cooling down.
func (g *GravityPad) Sprite() Sprite {
	if g.cooldown > 0 {
		return g.off
	}
	return g.on
}
