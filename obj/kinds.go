package obj

import (
	"fmt"
	"image/color"
)

// TileType selects a platform's material.
type TileType int

const (
	TileDirt TileType = iota
	TileStone
	TileMetal
	TileDarkMetal
	TileGrass
	TileWood
)

var tileNames = map[TileType]string{
	TileDirt:      "dirt",
	TileStone:     "stone",
	TileMetal:     "metal",
	TileDarkMetal: "dark_metal",
	TileGrass:     "grass",
	TileWood:      "wood",
}

var tileColors = map[TileType]color.RGBA{
	TileDirt:      {R: 0x87, G: 0x5b, B: 0x45, A: 0xff},
	TileStone:     {R: 0x83, G: 0x82, B: 0x82, A: 0xff},
	TileMetal:     {R: 0xac, G: 0xba, B: 0xbb, A: 0xff},
	TileDarkMetal: {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
	TileGrass:     {R: 0x49, G: 0xbf, B: 0x5a, A: 0xff},
}

func (t TileType) String() string {
	if n, ok := tileNames[t]; ok {
		return n
	}
	return fmt.Sprintf("tile(%d)", int(t))
}

// Color is the solid fill for the tile. Textured tiles report false.
func (t TileType) Color() (color.RGBA, bool) {
	c, ok := tileColors[t]
	return c, ok
}

// Textured reports whether the tile is drawn from an image.
func (t TileType) Textured() bool {
	return t == TileWood
}

func ParseTileType(s string) (TileType, error) {
	for t, n := range tileNames {
		if n == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("obj: unknown tile type %q", s)
}

// PowerUpType is the timed ability a pickup grants.
type PowerUpType int

const (
	PowerSpeed PowerUpType = iota
	PowerJump
	PowerShield
)

var powerNames = map[PowerUpType]string{
	PowerSpeed:  "speed",
	PowerJump:   "jump",
	PowerShield: "shield",
}

func (p PowerUpType) String() string {
	if n, ok := powerNames[p]; ok {
		return n
	}
	return fmt.Sprintf("power(%d)", int(p))
}

func ParsePowerUpType(s string) (PowerUpType, error) {
	for p, n := range powerNames {
		if n == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("obj: unknown power-up type %q", s)
}

// Sprite is the pickup's own visual.
func (p PowerUpType) Sprite() SpriteKey {
	switch p {
	case PowerJump:
		return SpritePowerJump
	case PowerShield:
		return SpritePowerShield
	default:
		return SpritePowerSpeed
	}
}

// Background is the level backdrop.
type Background int

const (
	BackgroundFacility Background = iota
	BackgroundSpace
	BackgroundNight
)

var backgroundNames = map[Background]string{
	BackgroundFacility: "facility",
	BackgroundSpace:    "space",
	BackgroundNight:    "night",
}

func (b Background) String() string {
	if n, ok := backgroundNames[b]; ok {
		return n
	}
	return fmt.Sprintf("background(%d)", int(b))
}

func ParseBackground(s string) (Background, error) {
	for b, n := range backgroundNames {
		if n == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("obj: unknown background %q", s)
}
