package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/timeshift/progress"
)

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the fastest recorded run of each level",
	Args:  cobra.NoArgs,
	RunE:  showBest,
}

func showBest(cmd *cobra.Command, args []string) error {
	store, err := progress.OpenSQL(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.BestRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No completed runs recorded yet.")
		fmt.Println()
		fmt.Println("Try 'timeshift run --level 1 --record'.")
		return nil
	}

	fmt.Printf("  %-5s  %-8s  %-6s  %-20s  %s\n", "Level", "Time", "Ticks", "Script", "Date")
	fmt.Printf("  %-5s  %-8s  %-6s  %-20s  %s\n", "-----", "----", "-----", "------", "----")
	for _, r := range runs {
		date := ""
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-5d  %-8s  %-6d  %-20s  %s\n",
			r.Level, fmt.Sprintf("%.2fs", r.Elapsed.Seconds()), r.Ticks, r.Script, date)
	}
	return nil
}
