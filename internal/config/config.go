// Package config provides YAML-based game configuration loading and
// difficulty management for bulletcraft.
package config

import (
	"time"

	"github.com/vovakirdan/bulletcraft/internal/module"
)

// GameConfig contains all tunable numbers of a run.
type GameConfig struct {
	Canvas     CanvasConfig        `yaml:"canvas"`
	Player     PlayerConfig        `yaml:"player"`
	Bullets    BulletConfig        `yaml:"bullets"`
	Bricks     BrickConfig         `yaml:"bricks"`
	Marbles    MarbleConfig        `yaml:"marbles"`
	Bumpers    BumperConfig        `yaml:"bumpers"`
	Slots      SlotConfig          `yaml:"slots"`
	AOE        AOEConfig           `yaml:"aoe"`
	Inventory  map[module.Type]int `yaml:"inventory"`
	Difficulty DifficultyConfig    `yaml:"difficulty"`
}

// CanvasConfig is the logical play field in canvas units.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player.
type PlayerConfig struct {
	Health       int     `yaml:"health"`
	BottomOffset float64 `yaml:"bottom_offset"` // distance of the player line from the bottom edge
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Speed            float64       `yaml:"speed"`
	Radius           float64       `yaml:"radius"`
	Damage           int           `yaml:"damage"`
	BorderDecay      float64       `yaml:"border_decay"`       // speed factor kept after an edge bounce
	GroupInterval    time.Duration `yaml:"group_interval"`     // delay between firing groups of one shot
	VolleySpread     float64       `yaml:"volley_spread"`      // degrees
	ScatterSpread    float64       `yaml:"scatter_spread"`     // degrees
	CleanupMargin    float64       `yaml:"cleanup_margin"`     // how far below the canvas before removal
	MinVerticalSpeed float64       `yaml:"min_vertical_speed"` // slower bullets only bounce between the side walls and are removed
}

// BrickConfig defines the brick grid.
type BrickConfig struct {
	PerRow           int     `yaml:"per_row"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Spacing          float64 `yaml:"spacing"`
	Left             float64 `yaml:"left"`
	Top              float64 `yaml:"top"`
	GridSize         float64 `yaml:"grid_size"` // distance bricks descend per round
	HealthMultiplier int     `yaml:"health_multiplier"`
	Points           int     `yaml:"points"`
}

// MarbleConfig defines loading-phase marbles.
type MarbleConfig struct {
	Radius         float64       `yaml:"radius"`
	Gravity        float64       `yaml:"gravity"`
	BounceDecay    float64       `yaml:"bounce_decay"`
	MinSpeedX      float64       `yaml:"min_speed_x"`
	MaxSpeedX      float64       `yaml:"max_speed_x"`
	PerPhase       int           `yaml:"per_phase"`
	LaunchInterval time.Duration `yaml:"launch_interval"`
	LaunchY        float64       `yaml:"launch_y"`
}

// BumperConfig defines the bumper field.
type BumperConfig struct {
	Radius     float64       `yaml:"radius"`
	Cooldown   time.Duration `yaml:"cooldown"`
	Escalation time.Duration `yaml:"escalation"` // added to the cooldown per previous hit
	Layers     []LayerConfig `yaml:"layers"`
}

// LayerConfig is one horizontal row of bumpers.
type LayerConfig struct {
	Y     float64 `yaml:"y"`
	Count int     `yaml:"count"`
}

// SlotConfig defines the bullet slots.
type SlotConfig struct {
	Width              float64   `yaml:"width"`
	Height             float64   `yaml:"height"`
	X                  []float64 `yaml:"x"`
	BottomOffset       float64   `yaml:"bottom_offset"`
	EnergyPerModule    float64   `yaml:"energy_per_module"`
	FullSlotEfficiency float64   `yaml:"full_slot_efficiency"`
}

// AOEConfig defines the blast ring of AOE bullets.
type AOEConfig struct {
	MaxRadius   float64 `yaml:"max_radius"`
	ExpandSpeed float64 `yaml:"expand_speed"` // px/s
	Damage      int     `yaml:"damage"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "round" or "none"
	MaxAt int    `yaml:"max_at"` // round at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	HealthMultiplier float64 `yaml:"health_multiplier"` // extra brick health factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
