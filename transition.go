package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/timeshift/common"
)

type transitionPhase int

const (
	phaseIdle transitionPhase = iota
	phaseFadeOut
	phaseFadeIn
)

// Transition fades to black, switches level at the midpoint and fades back.
// The world does not tick while it runs.
type Transition struct {
	Duration int
	Target   int
	// OnSwitch loads the target level once the screen is black.
	OnSwitch func(target int)

	phase   transitionPhase
	frames  int
	overlay *ebiten.Image
}

func NewTransition(duration int, onSwitch func(target int)) *Transition {
	overlay := ebiten.NewImage(1, 1)
	overlay.Fill(color.Black)
	return &Transition{Duration: duration, OnSwitch: onSwitch, overlay: overlay}
}

func (t *Transition) Active() bool {
	return t.phase != phaseIdle
}

// Enter starts a transition to target unless one is already running.
func (t *Transition) Enter(target int) {
	if t.Active() {
		return
	}
	t.phase = phaseFadeOut
	t.frames = 0
	t.Target = target
}

// Update advances one frame and reports whether the transition is running.
func (t *Transition) Update() bool {
	if !t.Active() {
		return false
	}
	t.frames++
	if t.frames < t.Duration {
		return true
	}
	t.frames = 0
	switch t.phase {
	case phaseFadeOut:
		if t.OnSwitch != nil {
			t.OnSwitch(t.Target)
		}
		t.phase = phaseFadeIn
	case phaseFadeIn:
		t.phase = phaseIdle
	}
	return true
}

func (t *Transition) alpha() float32 {
	if t.Duration <= 0 {
		return 0
	}
	p := min(float32(t.frames)/float32(t.Duration), 1)
	switch t.phase {
	case phaseFadeOut:
		return common.Lerp(0, 1, p)
	case phaseFadeIn:
		return common.Lerp(1, 0, p)
	}
	return 0
}

func (t *Transition) Draw(screen *ebiten.Image) {
	a := t.alpha()
	if a <= 0 {
		return
	}
	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.ColorScale.ScaleAlpha(a)
	screen.DrawImage(t.overlay, op)
}
