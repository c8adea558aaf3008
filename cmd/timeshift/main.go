// timeshift runs the platformer simulation headless.
//
// Usage:
//
//	timeshift run --level 2 --script walk_right   - Run a level with scripted input
//	timeshift levels                               - Validate and list the level catalog
//	timeshift best                                 - Show the fastest recorded runs
//
// Global flags:
//
//	--debug       - Log simulation events
//	--db <path>   - Run history database (default: ~/.timeshift/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagDebug  bool
	flagDBPath string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "timeshift",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "timeshift",
	Short: "Headless tools for the timeshift platformer",
	Long: `timeshift runs levels without a window, driven by tengo input scripts,
and keeps a history of runs in SQLite.

Examples:
  timeshift levels
  timeshift run --level 1 --script walk_right --max-ticks 2000
  timeshift run --level 2 --script ./my_route.tengo --record
  timeshift best`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log simulation events")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.timeshift/runs.db", "Path to run history database")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(bestCmd)
}
