package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/timeshift/common"
	"github.com/milk9111/timeshift/levels"
	"github.com/milk9111/timeshift/prefabs"
	"github.com/milk9111/timeshift/progress"
	"github.com/milk9111/timeshift/system"
)

const (
	bannerFrames     = 150
	transitionFrames = 20
)

type Game struct {
	world    *system.World
	input    *Input
	renderer *Renderer
	store    progress.Store
	watcher  *prefabs.Watcher
	logger   *log.Logger

	screenW, screenH int
	debug            bool

	paused     bool
	pauseUI    *ebitenui.UI
	transition *Transition

	banner      string
	bannerTimer int
	face        text.Face
}

type GameOptions struct {
	Level   int
	Width   int
	Height  int
	Debug   bool
	Sprites *Provider
	Store   progress.Store
	Watcher *prefabs.Watcher
	Logger  *log.Logger
}

func NewGame(opts GameOptions) (*Game, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}
	spec, err := levels.Load(opts.Level)
	if err != nil {
		return nil, err
	}
	world, err := system.NewWorld(spec, system.Options{
		ScreenWidth:  opts.Width,
		ScreenHeight: opts.Height,
		Sprites:      opts.Sprites,
		Tuning:       &tuning,
		Logger:       opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:    world,
		input:    NewInput(),
		renderer: NewRenderer(),
		store:    opts.Store,
		watcher:  opts.Watcher,
		logger:   opts.Logger,
		screenW:  opts.Width,
		screenH:  opts.Height,
		debug:    opts.Debug,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
	g.transition = NewTransition(transitionFrames, func(target int) {
		if err := g.loadLevel(target); err != nil {
			g.logger.Error("could not load level", "level", target, "err", err)
		}
	})
	return g, nil
}

func (g *Game) Update() error {
	g.pollWatcher()

	in := g.input.Read(g.screenW, g.screenH, g.world.Player().GravAccel,
		g.world.SaveButton().Rect(), g.world.TimeButton().Rect())
	if g.input.PausePressed {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if g.bannerTimer > 0 {
		g.bannerTimer--
	}
	if g.transition.Update() {
		return nil
	}

	g.world.Tick(in)
	g.handleEvents()
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		g.pauseUI = NewPauseUI(g)
	}
}

func (g *Game) handleEvents() {
	for _, evt := range g.world.Events() {
		switch evt.Kind {
		case system.EventLevelComplete:
			g.completeLevel(evt)
		case system.EventPlayerReset, system.EventGravityFlipped, system.EventTimelineChanged:
			g.logger.Debug(evt.Kind.String(), "tick", evt.Tick, "msg", evt.Message)
		}
	}
}

func (g *Game) completeLevel(evt system.Event) {
	improved, err := progress.Record(g.store, evt.Level, evt.Elapsed)
	if err != nil {
		g.logger.Warn("could not save progress", "level", evt.Level, "err", err)
	}
	g.banner = fmt.Sprintf("Level %d complete  %.2fs", evt.Level, evt.Elapsed.Seconds())
	if improved {
		g.banner += "  new best"
	}
	g.bannerTimer = bannerFrames

	next := evt.Level + 1
	if next > levels.Count {
		next = 1
	}
	g.transition.Enter(next)
}

func (g *Game) loadLevel(index int) error {
	spec, err := levels.Load(index)
	if err != nil {
		return err
	}
	return g.world.Load(spec)
}

// pollWatcher reloads tuning and the current level after edits on disk.
// It runs before the tick so a reload never lands mid-tick.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case c, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(c)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("watch error", "err", err)
		default:
			return
		}
	}
}

func (g *Game) reload(c prefabs.Change) {
	switch c.Kind {
	case prefabs.ChangeScript:
		return
	case prefabs.ChangeTuning:
		tuning, err := prefabs.LoadTuning()
		if err != nil {
			g.logger.Warn("tuning reload failed", "path", c.Path, "err", err)
			return
		}
		g.world.SetTuning(tuning)
	}
	if err := g.loadLevel(g.world.Spec().Index); err != nil {
		g.logger.Warn("level reload failed", "path", c.Path, "err", err)
		return
	}
	g.logger.Info("reloaded", "kind", c.Kind, "path", c.Path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.renderer.Draw(screen, g.world)
	g.transition.Draw(screen)

	if g.bannerTimer > 0 {
		alpha := common.Lerp(0, 1, float32(g.bannerTimer)/bannerFrames)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(g.screenW)/2-float64(len(g.banner))*3.5, float64(g.screenH)/3)
		op.ColorScale.ScaleAlpha(alpha)
		text.Draw(screen, g.banner, g.face, op)
	}

	if g.debug {
		p := g.world.Player()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.2f  tick: %d  level: %d\nx: %d y: %d  vx: %.1f vy: %.1f\npresent: %v",
			ebiten.ActualTPS(), g.world.Ticks(), g.world.Spec().Index,
			p.X, p.Y, p.XSpeed, p.YSpeed, g.world.Present()))
	}

	if g.paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
