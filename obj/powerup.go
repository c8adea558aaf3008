package obj

import "github.com/milk9111/timeshift/common"

// PowerUp is a pickup. It goes inactive while the player holds it and comes
// back when the effect expires.
type PowerUp struct {
	X, Y          int
	Width, Height int
	Type          PowerUpType
	Duration      int
	Sprite        Sprite

	active bool
}

func NewPowerUp(x, y int, typ PowerUpType, sprite Sprite, cfg PowerUpConfig, scale common.ScreenScale) *PowerUp {
	d := float64(divisor(cfg.SizeDivisor))
	return &PowerUp{
		X:        scale.PX(float64(x)),
		Y:        scale.PY(float64(y)),
		Width:    scale.PX(float64(sprite.Width) / d),
		Height:   scale.PY(float64(sprite.Height) / d),
		Type:     typ,
		Duration: cfg.Duration,
		Sprite:   sprite,
		active:   true,
	}
}

func (p *PowerUp) Rect() common.Rect {
	return common.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func (p *PowerUp) Active() bool {
	return p.active
}
