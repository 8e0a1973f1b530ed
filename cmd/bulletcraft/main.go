// bulletcraft is a brick breaker played with programmable bullets.
//
// Usage:
//
//	bulletcraft play         - Play in the terminal
//	bulletcraft menu         - Start menu with difficulty choice and run history
//	bulletcraft sim          - Run the autopilot headless
//	bulletcraft modules      - List the module catalogue
//	bulletcraft scores       - Show the best runs
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.bulletcraft/runs.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bulletcraft/internal/config"
	"github.com/vovakirdan/bulletcraft/internal/core"
	"github.com/vovakirdan/bulletcraft/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bulletcraft",
	Short: "bulletcraft - break bricks with programmable bullets",
	Long: `bulletcraft is a brick breaker in which every shot runs a small program.

Marbles fall through a bumper field and collect modules. Modules that land
in one of three slots form the slot's program: modifiers (bounce, scatter,
volley, collision trigger) shape the next base module (normal, piercing,
AOE) to their right.

Available commands:
  play     - Play in the terminal
  menu     - Start menu with difficulty choice and run history
  sim      - Run the autopilot without a terminal
  modules  - List the module catalogue
  scores   - View the best runs

Examples:
  bulletcraft play
  bulletcraft play --difficulty hard --loadout ./loadout.yaml
  bulletcraft sim --seed 42 --ticks 20000
  bulletcraft scores --tui`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bulletcraft/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal UI discards them otherwise)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger. Interactive commands pass
// interactive=true so that, without --log-file, nothing is written over the
// terminal UI.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bulletcraft",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the game config and applies the difficulty preset.
func loadGameConfig(preset config.DifficultyPreset) (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// parsePreset validates --difficulty.
func parsePreset() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return "", nil
	}
	p := config.ParsePreset(flagDifficulty)
	if p == "" {
		return "", fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
	}
	return p, nil
}

// runtimeConfig creates the runtime config, seeding from the clock when no
// seed was given.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// openStore opens the runs database. A failure is logged and yields nil;
// the game works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		return nil
	}
	return store
}

// presetLabel is the difficulty recorded with a run.
func presetLabel(p config.DifficultyPreset) string {
	if p == "" {
		return string(config.DifficultyNormal)
	}
	return string(p)
}
