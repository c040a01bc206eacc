package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/usmanser71/runner-game-pro/internal/runner"
)

var (
	flagRuns     int
	flagTicks    int
	flagStepMS   int
	flagParallel int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot simulations",
	Long: `Play runs without a terminal using a simple autopilot that jumps
over obstacles. Each run has its own loop and seed, and runs execute
in parallel.

Examples:
  runner sim
  runner sim --runs 16 --ticks 60000 --seed 42
  runner sim --difficulty hard --step 8`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 4, "Number of runs")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Maximum ticks per run")
	simCmd.Flags().IntVar(&flagStepMS, "step", 16, "Fixed tick length in milliseconds")
	simCmd.Flags().IntVar(&flagParallel, "parallel", runtime.NumCPU(), "Runs executed at the same time")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadRunnerConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagRuns <= 0 || flagTicks <= 0 || flagStepMS <= 0 {
		fail("--runs, --ticks and --step must be positive")
	}
	logger := newLogger(os.Stderr, "runner-sim")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}
	step := time.Duration(flagStepMS) * time.Millisecond

	results := make([]runner.Summary, flagRuns)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, flagParallel))
	for i := range results {
		seed := base + int64(i)
		g.Go(func() error {
			sum, err := runner.RunHeadless(ctx, cfg, seed, flagTicks, step)
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = sum
			logger.Debug("run finished", "run", i+1, "seed", seed, "score", sum.Score, "crashed", sum.Crashed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fail("%v", err)
	}

	printSummaries(results)
}

func printSummaries(results []runner.Summary) {
	fmt.Printf("  %-4s  %-20s  %-7s  %-6s  %-9s  %s\n", "Run", "Seed", "Score", "Coins", "Time", "Result")
	fmt.Printf("  %-4s  %-20s  %-7s  %-6s  %-9s  %s\n", "---", "----", "-----", "-----", "----", "------")

	best, total := 0, 0
	for i, s := range results {
		result := "survived"
		if s.Crashed {
			result = "crashed"
		}
		fmt.Printf("  %-4d  %-20d  %-7d  %-6d  %-9s  %s\n",
			i+1, s.Seed, s.Score, s.Coins, s.Elapsed.Round(time.Millisecond), result)
		best = max(best, s.Score)
		total += s.Score
	}

	fmt.Println()
	fmt.Printf("Best: %d  Average: %.1f\n", best, float64(total)/float64(len(results)))
}
