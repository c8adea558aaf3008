package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/timeshift/common"
	"github.com/milk9111/timeshift/levels"
	"github.com/milk9111/timeshift/obj"
)

// TickPeriod is the wall-clock length of one simulation tick.
const TickPeriod = 10 * time.Millisecond

// Options configures a World. Sprites is required.
type Options struct {
	ScreenWidth  int
	ScreenHeight int
	Sprites      obj.SpriteSource
	Tuning       *obj.Tuning
	Logger       *log.Logger
}

// World owns one running level: its entities, the player, the on-screen
// buttons and the active timeline.
type World struct {
	spec   *levels.Spec
	level  *obj.Level
	player *obj.Player
	save   *obj.Button
	warp   *obj.Button
	bg     obj.Sprite

	present     bool
	complete    bool
	goalReached bool
	ticks       uint64

	scale   common.ScreenScale
	screenW int
	screenH int
	tuning  obj.Tuning
	sprites obj.SpriteSource

	events    EventQueue
	scheduler *Scheduler
	logger    *log.Logger

	// Diagnostics lists sprites that resolved without an image.
	Diagnostics []Diagnostic
}

// NewWorld builds spec for a screen of the given size.
func NewWorld(spec *levels.Spec, opts Options) (*World, error) {
	if spec == nil {
		return nil, errors.New("system: nil level spec")
	}
	if opts.Sprites == nil {
		return nil, errors.New("system: no sprite source")
	}
	if opts.ScreenWidth <= 0 || opts.ScreenHeight <= 0 {
		return nil, fmt.Errorf("system: invalid screen %dx%d", opts.ScreenWidth, opts.ScreenHeight)
	}

	w := &World{
		screenW: opts.ScreenWidth,
		screenH: opts.ScreenHeight,
		scale:   common.NewScreenScale(opts.ScreenWidth, opts.ScreenHeight),
		sprites: opts.Sprites,
		tuning:  obj.DefaultTuning(),
		logger:  opts.Logger,
	}
	if opts.Tuning != nil {
		w.tuning = *opts.Tuning
	}
	if w.logger == nil {
		w.logger = log.Default()
	}
	w.scheduler = NewScheduler(
		PhaseFunc(applyGravity),
		PhaseFunc(resolvePlatforms),
		PhaseFunc(resolvePads),
		PhaseFunc(resolveContacts),
		PhaseFunc(moveHorizontal),
		PhaseFunc(enforceBounds),
		PhaseFunc(purgeEnemies),
		PhaseFunc(settle),
	)

	if err := w.Load(spec); err != nil {
		return nil, err
	}
	return w, nil
}

// Load replaces the running level with spec and resets all state except the
// event queue.
func (w *World) Load(spec *levels.Spec) error {
	if w == nil {
		return errors.New("system: nil world")
	}
	if spec == nil {
		return errors.New("system: nil level spec")
	}

	r := newSpriteResolver(w.sprites)
	lvl := buildLevel(spec, r, w.tuning, w.scale)
	player := obj.NewPlayer(spec.Start.X, spec.Start.Y, spec.Gravity, r.list(obj.PlayerSpriteKeys), w.tuning.Player, w.tuning.PowerUp, w.scale)

	b := w.tuning.Button
	save := obj.NewButton(obj.ButtonSaveState, w.scale.PX(float64(b.SaveX)), w.scale.PY(float64(b.SaveY)),
		r.list([]obj.SpriteKey{obj.SpriteButtonSave, obj.SpriteButtonReturn}), 1, 2, w.scale)
	warp := obj.NewButton(obj.ButtonTimeChange, save.X+save.Width+w.scale.PX(float64(b.Gap)), save.Y,
		r.list([]obj.SpriteKey{obj.SpriteButtonTimeChange}), 3, 7, w.scale)
	warp.Visible = false
	bg := r.get(obj.BackgroundSprite(lvl.Background))

	if r.err != nil {
		return fmt.Errorf("system: load level %d: %w", spec.Index, r.err)
	}

	w.spec = spec
	w.level = lvl
	w.player = player
	w.save = save
	w.warp = warp
	w.bg = bg
	w.present = true
	w.complete = false
	w.goalReached = false
	w.ticks = 0
	w.Diagnostics = r.diags

	for _, d := range r.diags {
		w.logger.Warn("sprite unavailable", "key", d.Key, "err", d.Err)
		w.emit(EventDiagnostic, d.String())
	}
	w.logger.Debug("level loaded", "level", spec.Index, "name", spec.Name,
		"platforms", len(lvl.Present)+len(lvl.Future), "enemies", len(lvl.Enemies))
	return nil
}

// Restart reloads the current level from its spec.
func (w *World) Restart() error {
	return w.Load(w.spec)
}

// Tick advances the simulation by one step. Input is applied first; once
// the goal has been reached the next tick completes the level and later
// ticks do nothing.
func (w *World) Tick(in Intent) {
	if w == nil || w.complete {
		return
	}

	w.applyTaps(in.Taps)
	w.player.SetMove(in.Move.sign())
	if in.Jump {
		w.player.Jump(w.scale)
	} else {
		w.player.ReleaseJump()
	}

	if w.player.Complete() {
		w.finish()
		return
	}

	w.scheduler.Update(w)
	w.ticks++
}

func (w *World) finish() {
	w.complete = true
	elapsed := w.Elapsed()
	w.events.Push(Event{Kind: EventLevelComplete, Tick: w.ticks, Level: w.spec.Index, Elapsed: elapsed})
	w.logger.Debug("level complete", "level", w.spec.Index, "ticks", w.ticks, "elapsed", elapsed)
}

func (w *World) applyTaps(taps []Tap) {
	for _, t := range taps {
		switch {
		case w.save.Hit(t.X, t.Y):
			w.toggleTimeState()
		case w.warp.Hit(t.X, t.Y):
			w.toggleTimeline()
		}
	}
}

// toggleTimeState saves the player's state, or returns to the saved one.
func (w *World) toggleTimeState() {
	if w.player.SavedState() == nil {
		s := w.player.SaveState()
		w.save.Frame = 1
		w.emit(EventStateSaved, fmt.Sprintf("(%d, %d)", s.X, s.Y))
		w.logger.Debug("time state saved", "x", s.X, "y", s.Y, "tick", w.ticks)
		return
	}
	w.player.ReturnToState()
	w.save.Frame = 0
	w.emit(EventStateRestored, fmt.Sprintf("(%d, %d)", w.player.X, w.player.Y))
	w.logger.Debug("time state restored", "x", w.player.X, "y", w.player.Y, "tick", w.ticks)
}

func (w *World) toggleTimeline() {
	w.present = !w.present
	w.emit(EventTimelineChanged, timelineName(w.present))
	w.logger.Debug("timeline changed", "timeline", timelineName(w.present), "tick", w.ticks)
}

// resetPlayer sends the player back to the start of the level in the present.
func (w *World) resetPlayer(reason string) {
	w.present = true
	w.player.Reset(w.spec.Start.X, w.spec.Start.Y, w.spec.Gravity, w.scale)
	w.emit(EventPlayerReset, reason)
	w.logger.Debug("player reset", "reason", reason, "level", w.spec.Index, "tick", w.ticks)
}

func (w *World) emit(kind EventKind, msg string) {
	level := 0
	if w.spec != nil {
		level = w.spec.Index
	}
	w.events.Push(Event{Kind: kind, Tick: w.ticks, Level: level, Message: msg})
}

func timelineName(present bool) string {
	if present {
		return "present"
	}
	return "future"
}

// Events returns the pending events and clears the queue.
func (w *World) Events() []Event {
	return w.events.Drain()
}

func (w *World) Player() *obj.Player {
	return w.player
}

func (w *World) Level() *obj.Level {
	return w.level
}

func (w *World) Spec() *levels.Spec {
	return w.spec
}

func (w *World) SaveButton() *obj.Button {
	return w.save
}

func (w *World) TimeButton() *obj.Button {
	return w.warp
}

// Present reports whether the present timeline is active.
func (w *World) Present() bool {
	return w.present
}

func (w *World) Complete() bool {
	return w.complete
}

// Ticks is the number of simulated ticks since the level was loaded.
func (w *World) Ticks() uint64 {
	return w.ticks
}

func (w *World) Elapsed() time.Duration {
	return time.Duration(w.ticks) * TickPeriod
}

func (w *World) Scale() common.ScreenScale {
	return w.scale
}

func (w *World) Tuning() obj.Tuning {
	return w.tuning
}

// SetTuning replaces the tuning used from the next Load.
func (w *World) SetTuning(t obj.Tuning) {
	w.tuning = t
}
