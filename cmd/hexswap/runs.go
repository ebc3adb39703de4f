package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexswap/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent bench runs",
	Long: `Display the most recent bench runs and totals over the whole history.

Examples:
  hexswap runs
  hexswap runs --limit 25
  hexswap runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fail("%v", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Println("Recent bench runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'hexswap bench' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-20s  %8s  %6s  %7s  %12s  %12s\n",
		"Date", "Seed", "Frames", "Swaps", "Matches", "Avg frame", "Max frame")
	fmt.Printf("  %-16s  %-20s  %8s  %6s  %7s  %12s  %12s\n",
		"----", "----", "------", "-----", "-------", "---------", "---------")

	for _, r := range runs {
		fmt.Printf("  %-16s  %-20d  %8d  %6d  %7d  %12v  %12v\n",
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.Seed, r.Frames, r.Swaps, r.Matches,
			r.AvgFrame(), time.Duration(r.MaxFrameNs))
	}

	stats, err := store.Stats()
	if err != nil {
		fail("retrieving totals: %v", err)
	}
	fmt.Println()
	fmt.Printf("%d runs, %d frames, average frame %v, slowest frame %v\n",
		stats.Runs, stats.TotalFrames,
		time.Duration(stats.AvgFrameNs), time.Duration(stats.WorstFrame))
}
