package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/timeshift/prefabs"
	"github.com/milk9111/timeshift/system"
)

var inputs = []string{
	"tick", "level", "x", "y", "x_speed", "y_speed", "gravity",
	"present", "saved", "can_warp", "power", "complete",
}

// outputs are the globals a script sets, with their per-tick reset values.
var outputs = []struct {
	name string
	zero any
}{
	{"move", ""},
	{"jump", false},
	{"save", false},
	{"warp", false},
}

// Source is a tengo script that decides each tick's input. The script sees
// the player snapshot as globals and sets move ("left", "right" or ""),
// jump, save and warp. save and warp tap the matching on-screen button.
type Source struct {
	Name     string
	compiled *tengo.Compiled
}

// Load compiles a script by name from prefabs/scripts or a file path.
func Load(name string) (*Source, error) {
	data, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	return New(name, data)
}

// New compiles src.
func New(name string, src []byte) (*Source, error) {
	s := tengo.NewScript(src)
	for _, in := range inputs {
		var zero any
		switch in {
		case "present", "saved", "can_warp", "complete":
			zero = false
		case "power":
			zero = ""
		case "x_speed", "y_speed", "gravity":
			zero = 0.0
		default:
			zero = 0
		}
		if err := s.Add(in, zero); err != nil {
			return nil, fmt.Errorf("script %s: %w", name, err)
		}
	}
	for _, out := range outputs {
		if err := s.Add(out.name, out.zero); err != nil {
			return nil, fmt.Errorf("script %s: %w", name, err)
		}
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	return &Source{Name: name, compiled: compiled}, nil
}

// Next runs the script once against snap.
func (s *Source) Next(snap system.Snapshot) (system.Intent, error) {
	c := s.compiled
	vals := map[string]any{
		"tick":     int64(snap.Tick),
		"level":    snap.Level,
		"x":        snap.X,
		"y":        snap.Y,
		"x_speed":  snap.XSpeed,
		"y_speed":  snap.YSpeed,
		"gravity":  snap.Gravity,
		"present":  snap.Present,
		"saved":    snap.Saved,
		"can_warp": snap.CanWarp,
		"power":    snap.Power,
		"complete": snap.Complete,
	}
	for _, out := range outputs {
		vals[out.name] = out.zero
	}
	for k, v := range vals {
		if err := c.Set(k, v); err != nil {
			return system.Intent{}, fmt.Errorf("script %s: set %s: %w", s.Name, k, err)
		}
	}
	if err := c.Run(); err != nil {
		return system.Intent{}, fmt.Errorf("script %s: tick %d: %w", s.Name, snap.Tick, err)
	}

	move, err := system.ParseDirection(strings.TrimSpace(c.Get("move").String()))
	if err != nil {
		return system.Intent{}, fmt.Errorf("script %s: %w", s.Name, err)
	}
	in := system.Intent{Move: move, Jump: c.Get("jump").Bool()}
	if c.Get("save").Bool() {
		x, y := snap.SaveButton.Center()
		in.Taps = append(in.Taps, system.Tap{X: x, Y: y})
	}
	if c.Get("warp").Bool() {
		x, y := snap.TimeButton.Center()
		in.Taps = append(in.Taps, system.Tap{X: x, Y: y})
	}
	return in, nil
}
