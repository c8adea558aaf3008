package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/timeshift/common"
	"github.com/milk9111/timeshift/system"
)

// Input polls touches, the mouse and the keyboard once per frame and turns
// them into the next tick's intent.
type Input struct {
	touchIDs []ebiten.TouchID
	pointers []system.Pointer

	// PausePressed is true on the frame the pause key was pressed.
	PausePressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Read samples every device for a screen of w×h pixels. gravity decides
// which half of the screen jumps; save and warp are the on-screen buttons
// the E and Q keys tap.
func (i *Input) Read(w, h int, gravity float64, save, warp common.Rect) system.Intent {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)

	// Held fingers and the left mouse button steer like the touch screen.
	i.pointers = i.pointers[:0]
	i.touchIDs = ebiten.AppendTouchIDs(i.touchIDs[:0])
	for _, id := range i.touchIDs {
		x, y := ebiten.TouchPosition(id)
		i.pointers = append(i.pointers, system.Pointer{X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		i.pointers = append(i.pointers, system.Pointer{X: float64(x), Y: float64(y)})
	}

	var in system.Intent
	in.Move, in.Jump = system.DecodePointers(i.pointers, w, h, gravity)

	// Keyboard: A/D or arrows move, Space/W/Up jump.
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	switch {
	case left && !right:
		in.Move = system.MoveLeft
	case right && !left:
		in.Move = system.MoveRight
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Jump = true
	}

	// New touches and clicks are taps for the buttons.
	i.touchIDs = inpututil.AppendJustPressedTouchIDs(i.touchIDs[:0])
	for _, id := range i.touchIDs {
		x, y := ebiten.TouchPosition(id)
		in.Taps = append(in.Taps, system.Tap{X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Taps = append(in.Taps, system.Tap{X: float64(x), Y: float64(y)})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		x, y := save.Center()
		in.Taps = append(in.Taps, system.Tap{X: x, Y: y})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		x, y := warp.Center()
		in.Taps = append(in.Taps, system.Tap{X: x, Y: y})
	}
	return in
}
