package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bulletcraft/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu with difficulty choice and run history",
	Long: `Start bulletcraft in interactive menu mode.

Pick a difficulty to start a game. After the game ends, you return to the
menu to play again. Tab opens the run history.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Run history
  Q            - Quit

Examples:
  bulletcraft menu
  bulletcraft menu --fps 30
  bulletcraft menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	for {
		highScore := 0
		if store != nil {
			if hs, err := store.HighScore(); err == nil {
				highScore = hs
			}
		}

		result, err := tui.RunMenu(cfg, highScore)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			if err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			continue
		}

		// Fresh seed for each game unless one was pinned.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := playGame(cfg, result.Preset, store, logger); err != nil {
			logger.Error("game failed", "error", err)
		}
	}
}
