package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/bulletcraft/internal/module"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded YAML and DefaultGameConfig() disagree:\n%+v\n%+v", cfg, DefaultGameConfig())
	}
}

func TestDefaultsValid(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Errorf("DefaultGameConfig().Validate() = %v", err)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  health: 9\nbullets:\n  group_interval: 50ms\ninventory:\n  AOE: 1\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Player.Health != 9 {
		t.Errorf("Player.Health = %d, expected 9", cfg.Player.Health)
	}
	if cfg.Bullets.GroupInterval != 50*time.Millisecond {
		t.Errorf("GroupInterval = %v, expected 50ms", cfg.Bullets.GroupInterval)
	}
	if cfg.Bullets.Speed != 500 {
		t.Errorf("unset fields should keep defaults, Speed = %v", cfg.Bullets.Speed)
	}
	if cfg.Inventory[module.AOE] != 1 || cfg.Inventory[module.Normal] != 10 {
		t.Errorf("Inventory = %v, expected AOE overridden and NORMAL kept", cfg.Inventory)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("inventory:\n  LASER: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should reject unknown inventory modules")
	}

	slots := filepath.Join(dir, "slots.yaml")
	if err := os.WriteFile(slots, []byte("slots:\n  x: [1, 2]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(slots); err == nil {
		t.Error("Load() should require three slot positions")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		health  int
		enabled bool
	}{
		{DifficultyEasy, 8, true},
		{DifficultyNormal, 5, true},
		{DifficultyHard, 3, true},
		{DifficultyFixed, 5, false},
		{"", 5, false},
	}

	for _, tc := range tests {
		cfg := DefaultGameConfig()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Player.Health != tc.health {
			t.Errorf("%q: Player.Health = %d, expected %d", tc.preset, cfg.Player.Health, tc.health)
		}
		if cfg.Difficulty.Enabled != tc.enabled {
			t.Errorf("%q: Difficulty.Enabled = %v, expected %v", tc.preset, cfg.Difficulty.Enabled, tc.enabled)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) failed")
	}
	if ParsePreset("insane") != "" {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestBrickHealth(t *testing.T) {
	fixed := NewDifficultyManager(DifficultyConfig{})
	for round := 1; round <= 5; round++ {
		if got := fixed.BrickHealth(2, round); got != round*2 {
			t.Errorf("fixed BrickHealth(2, %d) = %d, expected %d", round, got, round*2)
		}
	}

	scaled := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0,
		Progression:  ProgressionConfig{Type: "round", MaxAt: 11},
		Scaling:      ScalingConfig{HealthMultiplier: 1},
	})
	if got := scaled.BrickHealth(2, 1); got != 2 {
		t.Errorf("round 1 BrickHealth = %d, expected 2", got)
	}
	if got := scaled.Level(6); got != 0.5 {
		t.Errorf("Level(6) = %v, expected 0.5", got)
	}
	if got := scaled.BrickHealth(2, 11); got != 44 {
		t.Errorf("round 11 BrickHealth = %d, expected 44", got)
	}
	if got := scaled.Level(50); got != 1 {
		t.Errorf("Level() should clamp at 1, got %v", got)
	}
}

func TestLoadLoadout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loadout.yaml")
	data := []byte("slots:\n  slot-b: [volley-plus, PIERCING]\n  slot-a: [bounce_plus, normal]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	l, err := LoadLoadout(path)
	if err != nil {
		t.Fatalf("LoadLoadout() error = %v", err)
	}
	if ids := l.SlotIDs(); !reflect.DeepEqual(ids, []string{"slot-a", "slot-b"}) {
		t.Errorf("SlotIDs() = %v", ids)
	}

	progs, err := l.Programs()
	if err != nil {
		t.Fatalf("Programs() error = %v", err)
	}
	want := []module.Type{module.BouncePlus, module.Normal}
	if !reflect.DeepEqual(progs["slot-a"], want) {
		t.Errorf("slot-a = %v, expected %v", progs["slot-a"], want)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("slots:\n  slot-a: [laser]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLoadout(bad); err == nil {
		t.Error("LoadLoadout() should reject unknown module names")
	}
}
