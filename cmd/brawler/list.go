package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-brawler/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows the registered drivers: the same fight, stepped in real time or turn by turn.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "ID", "Pacing", "Title")
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "--", "------", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, g.ID, g.Pacing(), g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'brawler play <id>' to fight.")
}
