package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boulder/internal/games/boulderdash"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs and best cave clears",
	Long: `Display the top 10 runs and the best clear of every cave of --pack.

Examples:
  boulder scores
  boulder scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	pack, _, err := lookupCave("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(boulderdash.GameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("Best runs")
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("  No runs recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	records, err := store.BestRecords(pack.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving cave records: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("Best clears - %s\n", pack.Title)
	fmt.Println()
	if len(records) == 0 {
		fmt.Println("  No caves cleared yet.")
		fmt.Println()
		fmt.Println("Play 'boulder play' to set the first record!")
		return
	}
	fmt.Printf("  %-4s  %-5s  %-8s  %-6s  %s\n", "Cave", "Level", "Score", "Turns", "Date")
	fmt.Printf("  %-4s  %-5s  %-8s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")
	for _, r := range records {
		fmt.Printf("  %-4s  %-5d  %-8d  %-6d  %s\n", r.Cave, r.Level, r.Score, r.Turns, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
