package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/bulletcraft/internal/module"
)

//go:embed defaults/bulletcraft.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default configuration.
// It matches defaults/bulletcraft.yaml and backs it up if the embed is unreadable.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Health:       5,
			BottomOffset: 50,
		},
		Bullets: BulletConfig{
			Speed:            500,
			Radius:           5,
			Damage:           1,
			BorderDecay:      0.95,
			GroupInterval:    200 * time.Millisecond,
			VolleySpread:     20,
			ScatterSpread:    30,
			CleanupMargin:    50,
			MinVerticalSpeed: 20,
		},
		Bricks: BrickConfig{
			PerRow:           8,
			Width:            80,
			Height:           30,
			Spacing:          10,
			Left:             50,
			Top:              50,
			GridSize:         40,
			HealthMultiplier: 2,
			Points:           10,
		},
		Marbles: MarbleConfig{
			Radius:         8,
			Gravity:        500,
			BounceDecay:    0.8,
			MinSpeedX:      -100,
			MaxSpeedX:      100,
			PerPhase:       3,
			LaunchInterval: 300 * time.Millisecond,
			LaunchY:        50,
		},
		Bumpers: BumperConfig{
			Radius:     15,
			Cooldown:   500 * time.Millisecond,
			Escalation: 100 * time.Millisecond,
			Layers: []LayerConfig{
				{Y: 200, Count: 3},
				{Y: 280, Count: 3},
				{Y: 360, Count: 2},
			},
		},
		Slots: SlotConfig{
			Width:              100,
			Height:             40,
			X:                  []float64{50, 170, 290},
			BottomOffset:       120,
			EnergyPerModule:    10,
			FullSlotEfficiency: 0.5,
		},
		AOE: AOEConfig{
			MaxRadius:   50,
			ExpandSpeed: 200,
			Damage:      1,
		},
		Inventory: DefaultInventory(),
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "round",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				HealthMultiplier: 1.0,
			},
		},
	}
}

// DefaultInventory returns the starting module counts.
func DefaultInventory() map[module.Type]int {
	return map[module.Type]int{
		module.Normal:           10,
		module.Piercing:         5,
		module.AOE:              5,
		module.BouncePlus:       5,
		module.ScatterPlus:      3,
		module.VolleyPlus:       3,
		module.CollisionTrigger: 2,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
