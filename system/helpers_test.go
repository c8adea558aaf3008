package system

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/milk9111/timeshift/common"
	"github.com/milk9111/timeshift/levels"
	"github.com/milk9111/timeshift/obj"
	"github.com/stretchr/testify/require"
)

func testSprites() obj.Fixed {
	sizes := map[obj.SpriteKey]int{
		obj.SpritePlayer: 160, obj.SpritePlayerSpeed: 160, obj.SpritePlayerJump: 160, obj.SpritePlayerShield: 160,
		obj.SpriteEnemyNeutral: 90, obj.SpriteEnemyAngry: 90, obj.SpriteEnemyDead: 90,
		obj.SpritePadOff: 100, obj.SpritePadOn: 100,
		obj.SpriteMachinePresent: 200, obj.SpriteMachineFuture: 200,
		obj.SpriteGoal:       100,
		obj.SpritePowerSpeed: 70, obj.SpritePowerJump: 70, obj.SpritePowerShield: 70,
		obj.SpriteButtonSave: 200, obj.SpriteButtonReturn: 200, obj.SpriteButtonTimeChange: 200,
		obj.SpriteTileWood: 100,
	}
	out := obj.Fixed{}
	for k, n := range sizes {
		out[k] = obj.Sprite{Handle: string(k), Width: n, Height: n}
	}
	for _, bg := range []obj.Background{obj.BackgroundFacility, obj.BackgroundSpace, obj.BackgroundNight} {
		k := obj.BackgroundSprite(bg)
		out[k] = obj.Sprite{Handle: string(k), Width: common.BaseWidth, Height: common.BaseHeight}
	}
	return out
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestWorld(t *testing.T, spec *levels.Spec) *World {
	t.Helper()
	w, err := NewWorld(spec, Options{
		ScreenWidth:  common.BaseWidth,
		ScreenHeight: common.BaseHeight,
		Sprites:      testSprites(),
		Logger:       quietLogger(),
	})
	require.NoError(t, err)
	return w
}

func floor(y int) levels.PlatformSpec {
	return levels.PlatformSpec{X: 0, Y: y, W: common.BaseWidth, H: 100, Tile: levels.Tile(obj.TileStone)}
}

// flatSpec is a level with a full-width floor at y=1000 and the player
// starting on it at x=500.
func flatSpec() *levels.Spec {
	return &levels.Spec{
		Index:      1,
		Name:       "flat",
		Gravity:    3,
		Start:      levels.Point{X: 500, Y: 1000},
		Background: levels.Background(obj.BackgroundNight),
		Goal:       &levels.Point{X: 50, Y: 300},
		Present:    []levels.PlatformSpec{floor(1000)},
		Future:     []levels.PlatformSpec{floor(1000)},
	}
}

func tapOn(b *obj.Button) Intent {
	x, y := b.Rect().Center()
	return Intent{Taps: []Tap{{X: x, Y: y}}}
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}
