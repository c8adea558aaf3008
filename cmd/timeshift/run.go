package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/milk9111/timeshift/assets"
	"github.com/milk9111/timeshift/common"
	"github.com/milk9111/timeshift/levels"
	"github.com/milk9111/timeshift/prefabs"
	"github.com/milk9111/timeshift/progress"
	"github.com/milk9111/timeshift/script"
	"github.com/milk9111/timeshift/system"
)

var (
	flagLevel    int
	flagScript   string
	flagMaxTicks uint64
	flagRealtime bool
	flagRecord   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a level with scripted input",
	Long: `Run a level headless. Input comes from a tengo script, either a bundled
one from prefabs/scripts or a path to a file. The run stops when the level
is complete or after --max-ticks.

Examples:
  timeshift run --level 1 --script walk_right
  timeshift run --level 3 --script save_and_return --realtime`,
	Args: cobra.NoArgs,
	RunE: runLevel,
}

func init() {
	runCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to run (1-10)")
	runCmd.Flags().StringVar(&flagScript, "script", "walk_right", "Input script name or path")
	runCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 6000, "Stop after this many ticks (0 = until complete)")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick at 10ms wall-clock intervals")
	runCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the run in the history database")
}

func runLevel(cmd *cobra.Command, args []string) error {
	spec, err := levels.Load(flagLevel)
	if err != nil {
		return err
	}
	src, err := script.Load(flagScript)
	if err != nil {
		return fmt.Errorf("load script %q (bundled: %s): %w",
			flagScript, strings.Join(prefabs.ScriptNames(), ", "), err)
	}
	manifest, err := assets.LoadManifest()
	if err != nil {
		return err
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}

	world, err := system.NewWorld(spec, system.Options{
		ScreenWidth:  common.BaseWidth,
		ScreenHeight: common.BaseHeight,
		Sprites:      manifest,
		Tuning:       &tuning,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	runner := &system.Runner{
		World:    world,
		Source:   src,
		MaxTicks: flagMaxTicks,
		OnTick: func(w *system.World) {
			for _, evt := range w.Events() {
				logger.Debug(evt.Kind.String(), "tick", evt.Tick, "msg", evt.Message)
			}
		},
	}
	if flagRealtime {
		runner.Period = system.TickPeriod
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := runner.Run(ctx)
	if err != nil && ctx.Err() == nil {
		return err
	}

	status := "incomplete"
	if res.Complete {
		status = "complete"
	}
	fmt.Printf("Level %d (%s): %s after %d ticks (%.2fs)\n",
		spec.Index, spec.Name, status, res.Ticks, res.Elapsed.Seconds())

	if !flagRecord {
		return nil
	}
	store, err := progress.OpenSQL(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if _, err := store.RecordRun(progress.Run{
		Level:     spec.Index,
		Ticks:     res.Ticks,
		Elapsed:   res.Elapsed,
		Completed: res.Complete,
		Script:    src.Name,
	}); err != nil {
		return err
	}
	if res.Complete {
		improved, err := progress.Record(store, spec.Index, res.Elapsed)
		if err != nil {
			return err
		}
		if improved {
			fmt.Println("New best time!")
		}
	}
	return nil
}
