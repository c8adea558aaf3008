package script

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/timeshift/assets"
	"github.com/milk9111/timeshift/common"
	"github.com/milk9111/timeshift/levels"
	"github.com/milk9111/timeshift/system"
)

func TestNewDeclaresEveryGlobal(t *testing.T) {
	src, err := New("empty", []byte(""))
	require.NoError(t, err)
	for _, name := range inputs {
		assert.True(t, src.compiled.IsDefined(name), name)
	}
	for _, out := range outputs {
		assert.True(t, src.compiled.IsDefined(out.name), out.name)
	}

	in, err := src.Next(system.Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, system.Intent{}, in)
}

func TestNextReadsGlobals(t *testing.T) {
	src, err := New("inline", []byte(`
move = x < 100 ? "right" : "left"
jump = !present
save = tick == 3
warp = can_warp
`))
	require.NoError(t, err)

	snap := system.Snapshot{
		Tick:       3,
		X:          50,
		Present:    false,
		CanWarp:    true,
		SaveButton: common.Rect{X: 10, Y: 20, Width: 100, Height: 100},
		TimeButton: common.Rect{X: 200, Y: 20, Width: 40, Height: 40},
	}
	in, err := src.Next(snap)
	require.NoError(t, err)
	assert.Equal(t, system.MoveRight, in.Move)
	assert.True(t, in.Jump)
	require.Len(t, in.Taps, 2)
	assert.Equal(t, system.Tap{X: 60, Y: 70}, in.Taps[0])
	assert.Equal(t, system.Tap{X: 220, Y: 40}, in.Taps[1])

	snap.Tick, snap.X, snap.Present, snap.CanWarp = 4, 500, true, false
	in, err = src.Next(snap)
	require.NoError(t, err)
	assert.Equal(t, system.MoveLeft, in.Move)
	assert.False(t, in.Jump)
	assert.Empty(t, in.Taps)
}

func TestOutputsResetEachTick(t *testing.T) {
	src, err := New("once", []byte(`
if tick == 0 {
	move = "left"
	jump = true
}
`))
	require.NoError(t, err)

	in, err := src.Next(system.Snapshot{Tick: 0})
	require.NoError(t, err)
	assert.Equal(t, system.MoveLeft, in.Move)

	in, err = src.Next(system.Snapshot{Tick: 1})
	require.NoError(t, err)
	assert.Equal(t, system.MoveNone, in.Move)
	assert.False(t, in.Jump)
}

func TestBadScripts(t *testing.T) {
	_, err := New("syntax", []byte(`move = (`))
	assert.Error(t, err)

	src, err := New("direction", []byte(`move = "up"`))
	require.NoError(t, err)
	_, err = src.Next(system.Snapshot{})
	assert.Error(t, err)

	_, err = Load("no_such_script")
	assert.Error(t, err)
}

func TestStdlibImports(t *testing.T) {
	src, err := New("math", []byte(`
math := import("math")
jump = math.abs(y_speed) > 1
`))
	require.NoError(t, err)
	in, err := src.Next(system.Snapshot{YSpeed: -3})
	require.NoError(t, err)
	assert.True(t, in.Jump)
}

func TestBundledScriptDrivesRunner(t *testing.T) {
	src, err := Load("walk_right")
	require.NoError(t, err)

	spec, err := levels.Load(1)
	require.NoError(t, err)
	manifest, err := assets.LoadManifest()
	require.NoError(t, err)
	w, err := system.NewWorld(spec, system.Options{
		ScreenWidth:  common.BaseWidth,
		ScreenHeight: common.BaseHeight,
		Sprites:      manifest,
		Logger:       log.New(io.Discard),
	})
	require.NoError(t, err)

	startX := w.Player().X
	r := &system.Runner{World: w, Source: src, MaxTicks: 10}
	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(10), res.Ticks)
	assert.Greater(t, w.Player().X, startX)
}
