package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/replay"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

var flagReplayList bool

var replayCmd = &cobra.Command{
	Use:   "replay [file|id]",
	Short: "Re-run a recorded fight headless",
	Long: `Re-run a recorded fight without a terminal UI and print how it ended.

The fight is rebuilt from its seed, fighter, difficulty and configuration,
then fed the recorded commands one step at a time. When the recording
carries its final state, the replay must end in exactly the same state.

The argument is a replay file, or the ID of a replay in the scores database.
With --log-level debug every combat event is logged to stderr.

Examples:
  brawler replay --list
  brawler replay ~/.brawler/replays/brawler_20250101_120000_abcd1234.yaml
  brawler replay 6f1c2f0e-8a0b-4c8e-9d1e-2b1f0c3d4e5f --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayList, "list", false, "List recent replays")
}

func runReplay(_ *cobra.Command, args []string) {
	if flagReplayList || len(args) == 0 {
		listReplays()
		return
	}

	path, err := resolveReplay(args[0])
	if err != nil {
		fail("%v", err)
	}

	data, err := replay.Load(path)
	if err != nil {
		fail("%v", err)
	}

	logger := newLogger(os.Stderr, "replay")
	logger.Info("replaying", "id", data.ID, "game", data.GameID, "seed", data.Seed, "steps", data.Steps())

	result, err := replay.Play(*data, func(_ brawler.Command, res brawler.StepResult) {
		for _, e := range res.Events {
			logger.Debug(e.String(), "tick", e.Tick, "kind", e.Kind)
		}
	})
	if err != nil && !errors.Is(err, replay.ErrMismatch) {
		fail("%v", err)
	}

	fmt.Printf("Replay %s\n", data.ID)
	fmt.Printf("  Mode:       %s\n", data.GameID)
	fmt.Printf("  Fighter:    %s\n", data.Archetype)
	fmt.Printf("  Difficulty: %s\n", data.Difficulty)
	fmt.Printf("  Seed:       %d\n", data.Seed)
	fmt.Printf("  Steps:      %d\n", data.Steps())
	fmt.Println()
	fmt.Printf("  Result:     %s\n", result.Phase)
	fmt.Printf("  Level:      %d\n", result.Level)
	fmt.Printf("  Score:      %d\n", result.Score)

	switch {
	case err != nil:
		fmt.Println("  Verified:   NO")
		fail("%v", err)
	case data.Final == nil:
		fmt.Println("  Verified:   no final state recorded")
	default:
		fmt.Println("  Verified:   yes")
	}
}

// resolveReplay accepts a file path, or a replay ID from the database.
func resolveReplay(arg string) (string, error) {
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return "", fmt.Errorf("no replay file %q and no database: %w", arg, err)
	}
	defer store.Close()

	rec, err := store.ReplayByID(arg)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", fmt.Errorf("no replay file or ID %q", arg)
	}
	return rec.Path, nil
}

func listReplays() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	recs, err := store.RecentReplays(20)
	if err != nil {
		fail("listing replays: %v", err)
	}
	if len(recs) == 0 {
		fmt.Println("No replays recorded yet.")
		return
	}

	fmt.Printf("  %-36s  %-14s  %-11s  %6s  %6s  %s\n", "ID", "Mode", "Fighter", "Score", "Steps", "Date")
	for _, r := range recs {
		fmt.Printf("  %-36s  %-14s  %-11s  %6d  %6d  %s\n",
			r.ID, r.GameID, r.Character, r.Score, r.Steps, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
