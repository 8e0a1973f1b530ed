package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bulletcraft/internal/module"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "bulletcraft.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.bulletcraft/configs/bulletcraft.yaml ->
// ./configs/bulletcraft.yaml -> embedded default.
// Files are decoded over the defaults, so partial files are fine.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bulletcraft", "configs", filename)
}

// Validate reports every out-of-range value in cfg.
func (cfg GameConfig) Validate() error {
	var errs []error

	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas must be positive, got %vx%v", cfg.Canvas.Width, cfg.Canvas.Height))
	}
	if cfg.Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player.health must be positive, got %d", cfg.Player.Health))
	}
	if cfg.Bullets.Speed <= 0 {
		errs = append(errs, fmt.Errorf("bullets.speed must be positive, got %v", cfg.Bullets.Speed))
	}
	if v := cfg.Bullets.MinVerticalSpeed; v < 0 || v >= cfg.Bullets.Speed {
		errs = append(errs, fmt.Errorf("bullets.min_vertical_speed must be in [0, speed), got %v", v))
	}
	if cfg.Bricks.PerRow <= 0 {
		errs = append(errs, fmt.Errorf("bricks.per_row must be positive, got %d", cfg.Bricks.PerRow))
	}
	if len(cfg.Slots.X) != 3 {
		errs = append(errs, fmt.Errorf("slots.x must list 3 positions, got %d", len(cfg.Slots.X)))
	}
	if cfg.Slots.EnergyPerModule <= 0 {
		errs = append(errs, fmt.Errorf("slots.energy_per_module must be positive, got %v", cfg.Slots.EnergyPerModule))
	}
	if e := cfg.Slots.FullSlotEfficiency; e < 0 || e >= 1 {
		errs = append(errs, fmt.Errorf("slots.full_slot_efficiency must be in [0, 1), got %v", e))
	}
	for t, n := range cfg.Inventory {
		if _, ok := module.Lookup(t); !ok {
			errs = append(errs, fmt.Errorf("inventory: unknown module %q", t))
		}
		if n < 0 {
			errs = append(errs, fmt.Errorf("inventory: negative count for %s", t))
		}
	}

	return errors.Join(errs...)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}

	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 8
		cfg.Bricks.HealthMultiplier = 1
		cfg.Marbles.PerPhase = 4
	case DifficultyHard:
		cfg.Player.Health = 3
		cfg.Bricks.HealthMultiplier = 3
		cfg.Marbles.PerPhase = 2
	}
}
