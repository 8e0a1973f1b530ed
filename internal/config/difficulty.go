package config

import "math"

// DifficultyManager calculates dynamic game parameters based on the round.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for a round.
func (d *DifficultyManager) Level(round int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 1 {
		return 1.0
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "round":
		progress = float64(round-1) / (maxAt - 1)
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// BrickHealth returns the health of a brick spawned in round.
// Without progression this is round × baseMultiplier.
func (d *DifficultyManager) BrickHealth(baseMultiplier, round int) int {
	health := round * baseMultiplier
	if !d.IsEnabled() {
		return health
	}
	scaled := float64(health) * (1.0 + d.Level(round)*d.cfg.Scaling.HealthMultiplier)
	return int(math.Round(scaled))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
