// brawler is a terminal beat-'em-up: clear three waves of enemies with one
// of four fighters, in real time or turn by turn.
//
// Usage:
//
//	brawler list               - List available modes
//	brawler characters         - Show the fighters and difficulty tiers
//	brawler play [mode]        - Pick a fighter and play (default: real-time)
//	brawler turns              - Play the turn-based mode
//	brawler menu               - Start menu to pick modes interactively
//	brawler serve              - Start SSH server for remote play
//	brawler scores [mode]      - Show high scores
//	brawler replay <file|id>   - Re-run a recorded fight headless
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible fights
//	--db <path>           - Set database path (default: ~/.brawler/scores.db)
//	--config <path>       - Custom brawler.yaml
//	--difficulty <name>   - easy, normal or hard
//	--character <id>      - Skip the fighter picker
//	--log-file <path>     - Write logs to a file (TUI commands)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/replay"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagCharacter  string
	flagReplayDir  string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brawler",
	Short: "Brawler - a beat-'em-up in your terminal",
	Long: `Brawler is a side-scrolling beat-'em-up for the terminal.

Pick one of four fighters and clear three escalating waves of enemies.
Every fight is recorded and can be replayed exactly from its seed.

Available commands:
  list        - Show the available modes
  characters  - Show the fighters and difficulty tiers
  play        - Pick a fighter and play
  turns       - Play turn by turn
  menu        - Interactive mode picker
  serve       - Start SSH server for remote play
  scores      - View high scores
  replay      - Re-run a recorded fight

Examples:
  brawler play
  brawler play --character tank --difficulty hard
  brawler turns
  brawler serve --ssh :2222
  brawler replay ~/.brawler/replays/brawler_20250101_120000_abcd1234.yaml`,
	PersistentPreRunE: applyGlobalFlags,
	SilenceUsage:      true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.brawler/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom brawler config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagCharacter, "character", "", "Fighter ID (skips the picker)")
	pf.StringVar(&flagReplayDir, "replay-dir", replay.DefaultDir(), "Where finished fights are recorded (empty disables)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(turnsCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// applyGlobalFlags validates the shared flags and hands them to the driver.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadBrawler(flagConfig); err != nil {
			return err
		}
	}

	brawler.SetConfigPath(flagConfig)
	brawler.SetDifficultyPreset(flagDifficulty)

	if flagCharacter != "" {
		if _, ok := brawler.LoadConfig(false).Archetype(flagCharacter); !ok {
			return fmt.Errorf("unknown character %q (run 'brawler characters')", flagCharacter)
		}
		brawler.SetArchetype(flagCharacter)
	}
	return nil
}

// newLogger builds a logger at the --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// tuiLogger returns the logger for full-screen commands. The alt screen owns
// stdout, so without --log-file logs are discarded.
func tuiLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard, "brawler"), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f, "brawler"), func() { f.Close() }, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// nextSeed returns the seed for a new fight: --seed when given, else the clock.
func nextSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openStore opens the scores database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// brawlerDifficulty returns the --difficulty preset, normal when unset.
func brawlerDifficulty() config.DifficultyPreset {
	p, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.DifficultyNormal
	}
	return p
}
