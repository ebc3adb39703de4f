package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexswap/internal/bench"
	"github.com/vovakirdan/hexswap/internal/games/hexswap"
	"github.com/vovakirdan/hexswap/internal/storage"
)

var (
	flagFrames int
	flagNoSave bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the simulation headless and time it",
	Long: `Drive the game without a display using seeded random input, measure
the wall time of every frame and record the run in the history database.

Examples:
  hexswap bench
  hexswap bench --frames 10000 --seed 42
  hexswap bench --no-save`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to run")
	benchCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

func runBench(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		fail("%v", err)
	}

	s, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	logger.Info("bench started", "frames", flagFrames, "seed", s.runtime.Seed)
	run, err := bench.Run(cmd.Context(), bench.Options{
		Frames: flagFrames,
		Seed:   s.runtime.Seed,
		Params: hexswap.Params{
			Config:      s.runtime,
			ErrorLogger: logger,
		},
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) || run.Frames == 0 {
			fail("%v", err)
		}
		logger.Warn("bench interrupted", "frames", run.Frames)
	}

	printRun(run)

	if flagNoSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	id, err := store.SaveRun(run)
	if err != nil {
		logger.Error("run not saved", "error", err)
		return
	}
	logger.Info("run saved", "id", id, "db", flagDBPath)
}

func printRun(r storage.Run) {
	fmt.Printf("Frames:          %d\n", r.Frames)
	fmt.Printf("Seed:            %d\n", r.Seed)
	fmt.Printf("Swaps:           %d\n", r.Swaps)
	fmt.Printf("Matches:         %d\n", r.Matches)
	fmt.Printf("Peak animations: %d\n", r.PeakAnimations)
	fmt.Printf("Total time:      %v\n", time.Duration(r.TotalNs))
	fmt.Printf("Average frame:   %v\n", r.AvgFrame())
	fmt.Printf("Slowest frame:   %v\n", time.Duration(r.MaxFrameNs))
}
