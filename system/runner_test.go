package system

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []int
	s := NewScheduler()
	for i := 0; i < 3; i++ {
		s.Add(PhaseFunc(func(*World) { order = append(order, i) }))
	}
	s.Add(nil)
	s.Update(nil)
	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Len(t, s.Phases(), 3)
}

func TestRunnerStopsAtMaxTicks(t *testing.T) {
	w := newTestWorld(t, flatSpec())
	r := &Runner{
		World:    w,
		Source:   Scripted{{Move: MoveRight}, {Move: MoveRight}},
		MaxTicks: 10,
	}
	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(10), res.Ticks)
	assert.False(t, res.Complete)
	assert.Equal(t, 520, w.Player().X)
}

func TestRunnerStopsOnCompletion(t *testing.T) {
	spec := flatSpec()
	spec.Goal.X, spec.Goal.Y = 700, 1000
	w := newTestWorld(t, spec)

	right := make(Scripted, 100)
	for i := range right {
		right[i] = Intent{Move: MoveRight}
	}
	var seen int
	r := &Runner{World: w, Source: right, OnTick: func(*World) { seen++ }}

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Equal(t, time.Duration(res.Ticks)*TickPeriod, res.Elapsed)
	assert.Equal(t, int(res.Ticks)+1, seen)
}

type failingSource struct{}

func (failingSource) Next(Snapshot) (Intent, error) {
	return Intent{}, errors.New("boom")
}

func TestRunnerSurfacesSourceErrors(t *testing.T) {
	r := &Runner{World: newTestWorld(t, flatSpec()), Source: failingSource{}}
	_, err := r.Run(context.Background())
	assert.ErrorContains(t, err, "boom")
}

func TestRunnerPausedDoesNotTick(t *testing.T) {
	w := newTestWorld(t, flatSpec())
	r := &Runner{World: w, Source: Scripted{}, Period: time.Millisecond}
	r.Pause()
	require.True(t, r.Paused())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, w.Ticks())
}

func TestRunnerNeedsWorldAndSource(t *testing.T) {
	_, err := (&Runner{}).Run(context.Background())
	assert.Error(t, err)
}

func TestSnapshot(t *testing.T) {
	w := newTestWorld(t, flatSpec())
	s := w.Snapshot()
	assert.Equal(t, 500, s.X)
	assert.Equal(t, 960, s.Y)
	assert.True(t, s.Present)
	assert.False(t, s.CanWarp)
	assert.Equal(t, w.SaveButton().Rect(), s.SaveButton)
	assert.Empty(t, s.Power)
}
