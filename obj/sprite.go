package obj

import "fmt"

// SpriteKey names a visual in the asset manifest.
type SpriteKey string

const (
	SpritePlayer       SpriteKey = "player"
	SpritePlayerSpeed  SpriteKey = "player_speed"
	SpritePlayerJump   SpriteKey = "player_jump"
	SpritePlayerShield SpriteKey = "player_shield"

	SpriteEnemyNeutral SpriteKey = "enemy_neutral"
	SpriteEnemyAngry   SpriteKey = "enemy_angry"
	SpriteEnemyDead    SpriteKey = "enemy_dead"

	SpritePadOff SpriteKey = "pad_off"
	SpritePadOn  SpriteKey = "pad_on"

	SpriteMachinePresent SpriteKey = "machine_present"
	SpriteMachineFuture  SpriteKey = "machine_future"

	SpriteGoal SpriteKey = "goal"

	SpritePowerSpeed  SpriteKey = "power_speed"
	SpritePowerJump   SpriteKey = "power_jump"
	SpritePowerShield SpriteKey = "power_shield"

	SpriteButtonSave       SpriteKey = "button_save"
	SpriteButtonReturn     SpriteKey = "button_return"
	SpriteButtonTimeChange SpriteKey = "button_time_change"

	SpriteTileWood SpriteKey = "tile_wood"
)

// BackgroundSprite returns the key of a full-screen backdrop.
func BackgroundSprite(bg Background) SpriteKey {
	return SpriteKey("background_" + bg.String())
}

// Sprite is a resolved visual. Handle is opaque to the simulation and may be
// nil when the asset failed to load; Width and Height are native pixels.
type Sprite struct {
	Key    SpriteKey
	Handle any
	Width  int
	Height int
}

// Drawable reports whether the renderer has something to draw.
func (s Sprite) Drawable() bool {
	return s.Handle != nil
}

// SpriteSource resolves sprite keys to their native dimensions and handles.
// A lookup that returns an error along with positive dimensions is degraded:
// the entity keeps its size but is not drawn.
type SpriteSource interface {
	Sprite(key SpriteKey) (Sprite, error)
}

// Fixed is a SpriteSource backed by a map. Unknown keys are an error.
type Fixed map[SpriteKey]Sprite

func (f Fixed) Sprite(key SpriteKey) (Sprite, error) {
	s, ok := f[key]
	if !ok {
		return Sprite{Key: key}, fmt.Errorf("obj: unknown sprite %q", key)
	}
	s.Key = key
	return s, nil
}
