package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bulletcraft/internal/platform/tui"
	"github.com/vovakirdan/bulletcraft/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagClearRuns   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs.

Examples:
  bulletcraft scores
  bulletcraft scores --limit 25
  bulletcraft scores --tui
  bulletcraft scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive run table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Best runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bulletcraft play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-10s  %-20s  %s\n", "Rank", "Score", "Round", "Difficulty", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-10s  %-20s  %s\n", "----", "-----", "-----", "----------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-10s  %-20d  %s\n",
			i+1, r.Score, r.Round, r.Difficulty, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Best round: %d  Average: %.1f\n", st.Runs, st.HighScore, st.BestRound, st.AvgScore)
	}
	return nil
}
