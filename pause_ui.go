package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/timeshift/levels"
	"github.com/milk9111/timeshift/progress"
)

// NewPauseUI builds a centered pause menu with Resume and Restart buttons and
// a level select listing unlocked levels and best times.
// Buttons use colored nine-slices so no theme fonts are needed.
func NewPauseUI(g *Game) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	currentImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x55, B: 0x88, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	grey := color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	newButton := func(label string, img *imageui.NineSlice, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: img, Pressed: img}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	resumeBtn := newButton("Resume", btnImg, func() {
		g.paused = false
	})
	restartBtn := newButton("Restart", btnImg, func() {
		if err := g.world.Restart(); err != nil {
			g.logger.Error("restart failed", "err", err)
		}
		g.paused = false
	})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(g.screenW/2, g.screenH/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(resumeBtn)
	panel.AddChild(restartBtn)

	p, err := loadProgress(g.store)
	if err != nil {
		g.logger.Warn("could not load progress", "err", err)
	}
	current := g.world.Spec().Index
	for level := 1; level <= levels.Count; level++ {
		label := fmt.Sprintf("Level %d", level)
		if best, ok := p.Best(level); ok {
			label += fmt.Sprintf("  best %.2fs", best.Seconds())
		}
		if !p.IsUnlocked(level) {
			panel.AddChild(widget.NewText(
				widget.TextOpts.Text(label+"  locked", &face, grey),
				widget.TextOpts.WidgetOpts(center),
			))
			continue
		}
		img := btnImg
		if level == current {
			img = currentImg
		}
		panel.AddChild(newButton(label, img, func() {
			if err := g.loadLevel(level); err != nil {
				g.logger.Error("could not load level", "level", level, "err", err)
				return
			}
			g.paused = false
		}))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func loadProgress(s progress.Store) (*progress.Progress, error) {
	if s == nil {
		return progress.New(), progress.ErrNoStore
	}
	p, err := s.Load()
	if err != nil {
		return progress.New(), err
	}
	return p, nil
}
