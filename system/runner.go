package system

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/milk9111/timeshift/common"
)

// Snapshot is a read-only view of the world handed to input sources.
type Snapshot struct {
	Tick     uint64
	Level    int
	X, Y     int
	XSpeed   float64
	YSpeed   float64
	Gravity  float64
	Present  bool
	Saved    bool
	CanWarp  bool
	Complete bool
	Power    string

	SaveButton common.Rect
	TimeButton common.Rect
}

func (w *World) Snapshot() Snapshot {
	p := w.player
	s := Snapshot{
		Tick:       w.ticks,
		Level:      w.spec.Index,
		X:          p.X,
		Y:          p.Y,
		XSpeed:     p.XSpeed,
		YSpeed:     p.YSpeed,
		Gravity:    p.GravAccel,
		Present:    w.present,
		Saved:      p.SavedState() != nil,
		CanWarp:    w.warp.Visible,
		Complete:   w.complete,
		SaveButton: w.save.Rect(),
		TimeButton: w.warp.Rect(),
	}
	if pw := p.Power(); pw != nil {
		s.Power = pw.Type.String()
	}
	return s
}

// IntentSource produces the input for the next tick.
type IntentSource interface {
	Next(s Snapshot) (Intent, error)
}

// Result summarises a finished run.
type Result struct {
	Ticks    uint64
	Elapsed  time.Duration
	Complete bool
}

// Runner drives a World from an IntentSource. With a positive Period it
// ticks on a wall-clock ticker; otherwise it runs as fast as it can. Pausing
// only takes effect between ticks.
type Runner struct {
	World    *World
	Source   IntentSource
	Period   time.Duration
	MaxTicks uint64
	OnTick   func(w *World)

	paused atomic.Bool
}

func (r *Runner) Pause() {
	r.paused.Store(true)
}

func (r *Runner) Resume() {
	r.paused.Store(false)
}

func (r *Runner) Paused() bool {
	return r.paused.Load()
}

// Run ticks until the level completes, MaxTicks is reached, the source
// fails or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.World == nil || r.Source == nil {
		return Result{}, fmt.Errorf("system: runner needs a world and an input source")
	}

	var ticker *time.Ticker
	if r.Period > 0 {
		ticker = time.NewTicker(r.Period)
		defer ticker.Stop()
	}

	var steps uint64
	for {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return r.result(), ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return r.result(), err
		}

		if r.paused.Load() {
			if ticker == nil {
				time.Sleep(TickPeriod)
			}
			continue
		}

		in, err := r.Source.Next(r.World.Snapshot())
		if err != nil {
			return r.result(), fmt.Errorf("system: input at tick %d: %w", r.World.Ticks(), err)
		}
		r.World.Tick(in)
		steps++
		if r.OnTick != nil {
			r.OnTick(r.World)
		}

		if r.World.Complete() {
			return r.result(), nil
		}
		if r.MaxTicks > 0 && steps >= r.MaxTicks {
			return r.result(), nil
		}
	}
}

func (r *Runner) result() Result {
	return Result{
		Ticks:    r.World.Ticks(),
		Elapsed:  r.World.Elapsed(),
		Complete: r.World.Complete(),
	}
}

// Scripted replays a fixed list of intents, then idles.
type Scripted []Intent

func (s Scripted) Next(snap Snapshot) (Intent, error) {
	if snap.Tick < uint64(len(s)) {
		return s[snap.Tick], nil
	}
	return Intent{}, nil
}
