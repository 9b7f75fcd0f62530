package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/platform/tui"
	"github.com/vovakirdan/tui-brawler/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Pick a fighter and play",
	Long: `Start a fight in the given mode (default: brawler, real time).

Without --character a picker asks for the fighter and difficulty.

Controls:
  ←/→ or A/D  - Walk
  ↑/↓ or W/S  - Change lane
  Z/J         - Attack
  Space/X     - Jump
  P           - Pause
  Esc/B       - Back (when paused or after the fight)
  R           - Restart (after the fight)
  Q/Ctrl+C    - Quit

Examples:
  brawler play
  brawler play brawler-turns
  brawler play --character speed --difficulty hard
  brawler play --seed 42 --config ./my-brawler.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

var turnsCmd = &cobra.Command{
	Use:   "turns",
	Short: "Play turn by turn",
	Long: `Start a turn-based fight: the world only advances when you act.
Moves cover more ground and attacks recover faster than in real time.

Same as 'brawler play brawler-turns'.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		playDriver(brawler.IDTurnBased)
	},
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := brawler.IDRealTime
	if len(args) == 1 {
		gameID = args[0]
	}
	playDriver(gameID)
}

func playDriver(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brawler list' to see available modes.")
		os.Exit(1)
	}

	cfg := runtimeConfig()
	if flagCharacter == "" {
		ok, err := pickFighter(cfg)
		if err != nil {
			fail("%v", err)
		}
		if !ok {
			return
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	store := openStore()
	runErr := tui.Run(game, store, cfg, tui.Options{Logger: logger, ReplayDir: flagReplayDir})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

// pickFighter runs the fighter picker and applies the choice.
// It reports false when the user backed out.
func pickFighter(cfg core.RuntimeConfig) (bool, error) {
	defaults := tui.Selection{Difficulty: brawlerDifficulty()}
	sel, err := tui.RunSelector(brawler.LoadConfig(false), cfg, defaults)
	if err != nil || sel == nil {
		return false, err
	}

	brawler.SetArchetype(sel.Archetype)
	brawler.SetDifficultyPreset(string(sel.Difficulty))
	return true, nil
}
