package levels

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/timeshift/common"
	"github.com/milk9111/timeshift/obj"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownLevel = errors.New("levels: unknown level")
	ErrInvalidLevel = errors.New("levels: invalid level")
)

// Point is a position in design pixels.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type Tile obj.TileType

func (t *Tile) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := obj.ParseTileType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*t = Tile(v)
	return nil
}

func (t Tile) MarshalYAML() (any, error) {
	return obj.TileType(t).String(), nil
}

type Power obj.PowerUpType

func (p *Power) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := obj.ParsePowerUpType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*p = Power(v)
	return nil
}

func (p Power) MarshalYAML() (any, error) {
	return obj.PowerUpType(p).String(), nil
}

type Background obj.Background

func (b *Background) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := obj.ParseBackground(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*b = Background(v)
	return nil
}

func (b Background) MarshalYAML() (any, error) {
	return obj.Background(b).String(), nil
}

// PlatformSpec is a box at (X, Y) of size W x H. Setting To makes it move
// between (X, Y) and To at the given speeds.
type PlatformSpec struct {
	X      int     `yaml:"x"`
	Y      int     `yaml:"y"`
	W      int     `yaml:"w"`
	H      int     `yaml:"h"`
	Tile   Tile    `yaml:"tile"`
	To     *Point  `yaml:"to,omitempty"`
	SpeedX float64 `yaml:"speed_x,omitempty"`
	SpeedY float64 `yaml:"speed_y,omitempty"`
}

func (p PlatformSpec) Moving() bool {
	return p.To != nil
}

type PadSpec struct {
	X        int  `yaml:"x"`
	Y        int  `yaml:"y"`
	Inverted bool `yaml:"inverted,omitempty"`
}

type MachineSpec struct {
	X        int  `yaml:"x"`
	Y        int  `yaml:"y"`
	Inverted bool `yaml:"inverted,omitempty"`
}

type PowerUpSpec struct {
	X    int   `yaml:"x"`
	Y    int   `yaml:"y"`
	Type Power `yaml:"type"`
}

// Spec is one level layout in design coordinates.
type Spec struct {
	Index      int            `yaml:"-"`
	Name       string         `yaml:"name"`
	Gravity    float64        `yaml:"gravity"`
	Start      Point          `yaml:"start"`
	Background Background     `yaml:"background"`
	Goal       *Point         `yaml:"goal"`
	Present    []PlatformSpec `yaml:"present"`
	Future     []PlatformSpec `yaml:"future,omitempty"`
	Pads       []PadSpec      `yaml:"pads,omitempty"`
	Machines   []MachineSpec  `yaml:"machines,omitempty"`
	Enemies    []Point        `yaml:"enemies,omitempty"`
	PowerUps   []PowerUpSpec  `yaml:"power_ups,omitempty"`
}

// Parse decodes and validates a level file.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects layouts the simulation cannot run.
func (s *Spec) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if s.Gravity == 0 || math.IsNaN(s.Gravity) || math.IsInf(s.Gravity, 0) {
		fail("gravity must be a non-zero number, got %v", s.Gravity)
	}
	if !inDesign(s.Start) {
		fail("start %v is outside the %dx%d design area", s.Start, common.BaseWidth, common.BaseHeight)
	}
	if s.Goal == nil {
		fail("goal is required")
	}
	if len(s.Present) == 0 {
		fail("present timeline has no platforms")
	}
	if len(s.Machines) > 0 && len(s.Future) == 0 {
		fail("time machines need a future timeline")
	}
	for i, p := range s.Present {
		if err := p.validate(); err != nil {
			fail("present[%d]: %w", i, err)
		}
	}
	for i, p := range s.Future {
		if err := p.validate(); err != nil {
			fail("future[%d]: %w", i, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %w", ErrInvalidLevel, s.Name, errors.Join(errs...))
}

func (p PlatformSpec) validate() error {
	if p.W <= 0 || p.H <= 0 {
		return fmt.Errorf("size %dx%d must be positive", p.W, p.H)
	}
	if !p.Moving() {
		if p.SpeedX != 0 || p.SpeedY != 0 {
			return errors.New("speed set on a platform without a destination")
		}
		return nil
	}
	if p.SpeedX == 0 && p.SpeedY == 0 {
		return errors.New("moving platform has no speed")
	}
	if p.SpeedX != 0 && p.X == p.To.X {
		return errors.New("horizontal speed with no horizontal range")
	}
	if p.SpeedY != 0 && p.Y == p.To.Y {
		return errors.New("vertical speed with no vertical range")
	}
	return nil
}

func inDesign(p Point) bool {
	return p.X >= 0 && p.X <= common.BaseWidth && p.Y >= 0 && p.Y <= common.BaseHeight
}
