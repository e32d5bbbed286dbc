package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruitfall/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes",
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Println("Game modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'fruitfall play <id>' to play a mode.")
}
