package system

import (
	"testing"

	"github.com/milk9111/timeshift/levels"
	"github.com/milk9111/timeshift/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawListOrder(t *testing.T) {
	spec := flatSpec()
	spec.Pads = []levels.PadSpec{{X: 100, Y: 1000}}
	spec.Enemies = []levels.Point{{X: 1000, Y: 1000}}
	spec.Machines = []levels.MachineSpec{{X: 800, Y: 1000}}
	spec.PowerUps = []levels.PowerUpSpec{{X: 700, Y: 800, Type: levels.Power(obj.PowerJump)}}
	spec.Present = append(spec.Present, levels.PlatformSpec{X: 300, Y: 500, W: 100, H: 20, Tile: levels.Tile(obj.TileWood)})
	w := newTestWorld(t, spec)

	var keys []obj.SpriteKey
	for _, cmd := range w.DrawList(nil) {
		keys = append(keys, cmd.Key)
	}
	assert.Equal(t, []obj.SpriteKey{
		obj.BackgroundSprite(obj.BackgroundNight),
		obj.SpritePadOn,
		obj.SpriteEnemyNeutral,
		obj.SpriteGoal,
		obj.SpriteMachinePresent,
		obj.SpritePowerJump,
		"",
		obj.SpriteTileWood,
		obj.SpritePlayer,
		obj.SpriteButtonSave,
	}, keys)
}

func TestDrawListGhostAndButtons(t *testing.T) {
	spec := flatSpec()
	spec.Start = levels.Point{X: 60, Y: 2180}
	spec.Present = append(spec.Present, floor(2180))
	w := newTestWorld(t, spec)

	w.Tick(tapOn(w.SaveButton()))

	cmds := w.DrawList(nil)
	require.GreaterOrEqual(t, len(cmds), 3)

	ghost := cmds[len(cmds)-3]
	assert.Equal(t, obj.SpritePlayer, ghost.Key)
	assert.Equal(t, uint8(122), ghost.Alpha)

	save := cmds[len(cmds)-1]
	assert.Equal(t, obj.SpriteButtonReturn, save.Key)
	assert.Equal(t, uint8(75), save.Alpha, "player stands behind the button")
}

func TestDrawListFadesDeadEnemy(t *testing.T) {
	spec := flatSpec()
	spec.Enemies = []levels.Point{{X: 1000, Y: 1000}}
	w := newTestWorld(t, spec)
	e := w.Level().Enemies[0]
	e.Kill(0, 0)

	for i := 0; i < 50; i++ {
		w.Tick(Intent{})
	}
	var found bool
	for _, cmd := range w.DrawList(nil) {
		if cmd.Key == obj.SpriteEnemyDead {
			found = true
			assert.Equal(t, uint8(127), cmd.Alpha)
		}
	}
	assert.True(t, found)
}

func TestDrawListFillsSolidTiles(t *testing.T) {
	w := newTestWorld(t, flatSpec())
	var fills int
	for _, cmd := range w.DrawList(nil) {
		if cmd.Kind == DrawFill {
			fills++
			c, _ := obj.TileStone.Color()
			assert.Equal(t, c, cmd.Fill)
		}
	}
	assert.Equal(t, 1, fills)
}
