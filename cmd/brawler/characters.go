package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Show the fighters and difficulty tiers",
	Long: `Lists the fighters from the active configuration with their stats,
followed by the enemy damage modifier of each difficulty.`,
	Run: runCharacters,
}

func runCharacters(_ *cobra.Command, _ []string) {
	cfg := brawler.LoadConfig(false)

	fmt.Println("Fighters:")
	fmt.Println()
	fmt.Printf("  %-12s %-12s %4s %4s %4s\n", "ID", "Name", "ATK", "SPD", "HP")
	fmt.Printf("  %-12s %-12s %4s %4s %4s\n", "--", "----", "---", "---", "--")
	for _, a := range cfg.Archetypes {
		fmt.Printf("  %-12s %-12s %4d %4d %4d  %s\n",
			a.ID, a.Name, a.AttackPower, a.MoveSpeed, a.MaxHealth, a.Description)
	}

	e := cfg.Enemy
	fmt.Println()
	fmt.Printf("Enemies: ATK %d, SPD %d, HP %d; wave size is level + %d\n",
		e.AttackPower, e.MoveSpeed, e.MaxHealth, cfg.Waves.BaseSize)

	fmt.Println()
	fmt.Println("Difficulty (enemy damage):")
	for _, p := range config.Presets() {
		fmt.Printf("  %-8s x%.1f\n", p, cfg.Difficulty.Modifier(p))
	}
}
