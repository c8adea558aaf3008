package obj

import "github.com/milk9111/timeshift/common"

var unit = common.UnitScale()

func sprite(key SpriteKey, w, h int) Sprite {
	return Sprite{Key: key, Handle: string(key), Width: w, Height: h}
}

// newTestPlayer builds a 40x40 player with its top-left at (x, y).
func newTestPlayer(x, y int, gravity float64) *Player {
	sprites := make([]Sprite, len(PlayerSpriteKeys))
	for i, k := range PlayerSpriteKeys {
		sprites[i] = sprite(k, 160, 160)
	}
	tuning := DefaultTuning()
	p := NewPlayer(0, 0, gravity, sprites, tuning.Player, tuning.PowerUp, unit)
	p.X, p.Y = x, y
	return p
}

// newTestEnemy builds a 30x30 enemy with its top-left at (x, y).
func newTestEnemy(x, y int, gravity float64) *Enemy {
	sprites := make([]Sprite, len(EnemySpriteKeys))
	for i, k := range EnemySpriteKeys {
		sprites[i] = sprite(k, 90, 90)
	}
	e := NewEnemy(0, 0, gravity, sprites, DefaultTuning().Enemy, unit)
	e.X, e.Y = x, y
	return e
}

func block(x, y, w, h int) *Platform {
	return NewPlatform(x, y, w, h, TileStone, unit)
}

// mirror reflects a platform across the horizontal centre line.
func mirror(p *Platform) *Platform {
	return block(p.X, common.BaseHeight-p.Y-p.Height, p.Width, p.Height)
}
