package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bulletcraft/internal/config"
	"github.com/vovakirdan/bulletcraft/internal/core"
	"github.com/vovakirdan/bulletcraft/internal/engine"
	"github.com/vovakirdan/bulletcraft/internal/platform/tui"
	"github.com/vovakirdan/bulletcraft/internal/storage"
)

var flagLoadout string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D  - Aim
  Space            - Fire the selected slot
  1/2/3            - Select slot A/B/C
  N/Enter          - Force the next phase
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More health, softer bricks, an extra marble
  normal - Brick health grows with the round
  hard   - Less health, tougher bricks, one marble fewer
  fixed  - No progression, brick health from the config only

A loadout file fills slots before the first round:

  slots:
    slot-a: [bounce-plus, normal]
    slot-b: [volley-plus, piercing]

Examples:
  bulletcraft play
  bulletcraft play --difficulty easy
  bulletcraft play --seed 42 --loadout ./loadout.yaml
  bulletcraft play --config ./my-bulletcraft.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLoadout, "loadout", "", "Path to a slot loadout YAML")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := parsePreset()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return playGame(runtimeConfig(width, height), preset, store, logger)
}

// playGame builds an engine for one session and runs the game view.
func playGame(rt core.RuntimeConfig, preset config.DifficultyPreset, store *storage.Store, logger *log.Logger) error {
	cfg, err := loadGameConfig(preset)
	if err != nil {
		return err
	}

	eng := engine.New(cfg, rt, engine.WithLogger(logger.WithPrefix("engine")))
	if flagLoadout != "" {
		l, err := config.LoadLoadout(flagLoadout)
		if err != nil {
			return err
		}
		if err := eng.ApplyLoadout(l); err != nil {
			return fmt.Errorf("loadout %s: %w", flagLoadout, err)
		}
	}

	logger.Info("game started", "seed", rt.Seed, "difficulty", presetLabel(preset))

	return tui.Run(eng, rt, tui.Options{
		Store:      store,
		Difficulty: presetLabel(preset),
		Logger:     logger,
	})
}
