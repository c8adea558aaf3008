package obj

// PlayerConfig tunes player movement. Speeds are design pixels per tick.
type PlayerConfig struct {
	JumpSpeed             float64 `yaml:"jump_speed"`
	MoveSpeed             float64 `yaml:"move_speed"`
	SpeedBoost            float64 `yaml:"speed_boost"`
	JumpBoost             float64 `yaml:"jump_boost"`
	CeilingDamping        float64 `yaml:"ceiling_damping"`
	CeilingThresholdRatio float64 `yaml:"ceiling_threshold_ratio"`
	WallDebounce          int     `yaml:"wall_debounce"`
	JumpWindow            int     `yaml:"jump_window"`
	SizeDivisor           int     `yaml:"size_divisor"`
}

// EnemyConfig tunes enemy pursuit and death.
type EnemyConfig struct {
	ChargeSpeed      float64 `yaml:"charge_speed"`
	AttackRange      float64 `yaml:"attack_range"`
	AttackCooldown   int     `yaml:"attack_cooldown"`
	Friction         float64 `yaml:"friction"`
	CeilingThreshold float64 `yaml:"ceiling_threshold"`
	CeilingDamping   float64 `yaml:"ceiling_damping"`
	DeathLaunch      float64 `yaml:"death_launch"`
	AfterDeath       int     `yaml:"after_death"`
	WallDebounce     int     `yaml:"wall_debounce"`
	SizeDivisor      int     `yaml:"size_divisor"`
}

// PadConfig tunes gravity pads.
type PadConfig struct {
	Cooldown    int     `yaml:"cooldown"`
	TriggerBand float64 `yaml:"trigger_band"`
	SizeDivisor int     `yaml:"size_divisor"`
}

// PowerUpConfig tunes pickups and the flicker before expiry.
type PowerUpConfig struct {
	Duration      int `yaml:"duration"`
	FlickerWindow int `yaml:"flicker_window"`
	FlickerPeriod int `yaml:"flicker_period"`
	SizeDivisor   int `yaml:"size_divisor"`
}

// ButtonConfig places the on-screen buttons in design pixels.
type ButtonConfig struct {
	SaveX         int `yaml:"save_x"`
	SaveY         int `yaml:"save_y"`
	Gap           int `yaml:"gap"`
	PressedAlpha  int `yaml:"pressed_alpha"`
	ReleasedAlpha int `yaml:"released_alpha"`
	GhostAlpha    int `yaml:"ghost_alpha"`
}

// Tuning groups every tunable the simulation reads.
type Tuning struct {
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Pad     PadConfig     `yaml:"pad"`
	PowerUp PowerUpConfig `yaml:"power_up"`
	Button  ButtonConfig  `yaml:"button"`
}

// DefaultTuning returns the built-in values.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerConfig{
			JumpSpeed:             40,
			MoveSpeed:             10,
			SpeedBoost:            1.5,
			JumpBoost:             1.5,
			CeilingDamping:        0.7,
			CeilingThresholdRatio: 0.7,
			WallDebounce:          8,
			JumpWindow:            3,
			SizeDivisor:           4,
		},
		Enemy: EnemyConfig{
			ChargeSpeed:      30,
			AttackRange:      200,
			AttackCooldown:   50,
			Friction:         0.9,
			CeilingThreshold: 10,
			CeilingDamping:   0.7,
			DeathLaunch:      5,
			AfterDeath:       100,
			WallDebounce:     8,
			SizeDivisor:      3,
		},
		Pad: PadConfig{
			Cooldown:    50,
			TriggerBand: 0.25,
			SizeDivisor: 2,
		},
		PowerUp: PowerUpConfig{
			Duration:      300,
			FlickerWindow: 50,
			FlickerPeriod: 10,
			SizeDivisor:   7,
		},
		Button: ButtonConfig{
			SaveX:         15,
			SaveY:         2100,
			Gap:           20,
			PressedAlpha:  75,
			ReleasedAlpha: 175,
			GhostAlpha:    122,
		},
	}
}

func divisor(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
