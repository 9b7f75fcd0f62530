package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawler/internal/registry"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Without a mode, summarize every mode. With a mode, display its top
scores with the fighter, difficulty, level reached and result.

Examples:
  brawler scores
  brawler scores brawler
  brawler scores brawler-turns --limit 20
  brawler scores brawler --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if len(args) == 0 {
		printSummary(store)
		return
	}

	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brawler list' to see available modes.")
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Scores for %s cleared.\n", gameID)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s (%s)\n", info.Title, info.Pacing())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'brawler play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-11s  %-6s  %-3s  %-7s  %s\n", "Rank", "Score", "Fighter", "Diff", "Lvl", "Result", "Date")
	fmt.Printf("  %-4s  %-6s  %-11s  %-6s  %-3s  %-7s  %s\n", "----", "-----", "-------", "----", "---", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-11s  %-6s  %-3d  %-7s  %s\n",
			i+1, e.Score, e.Character, e.Difficulty, e.Level, e.Outcome, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	if len(all) == 0 {
		fmt.Println("No fights recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-14s  %5s  %9s  %6s  %8s  %s\n", "Mode", "Runs", "Victories", "Best", "Average", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-14s  %5d  %9d  %6d  %8.0f  %s\n",
			id, s.GamesCount, s.Victories, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
