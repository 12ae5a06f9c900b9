package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wator/internal/sweep"
)

var (
	flagMetric   string
	flagTrials   int
	flagWorkers  int
	flagFrom     float64
	flagTo       float64
	flagStep     float64
	flagSweepCSV string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <param>",
	Short: "Sweep one parameter over many trials",
	Long: `Run many independent simulations for each value of one parameter.

Metrics:
  outcomes - chance that both species die out, sharks die out, or neither
  ratios   - Lotka-Volterra ratio estimates a/b and d/c

Every other parameter comes from the config file and the run defaults.
Run 'wator params' to see the sweepable parameters and their ranges.

Examples:
  wator sweep breed_time
  wator sweep initial_sharks --trials 50 --workers 8
  wator sweep energy_gain --metric ratios --from 2 --to 10
  wator sweep aspect_ratio --csv aspect.csv`,
	Args: cobra.ExactArgs(1),
	Run:  runSweep,
}

func init() {
	sweepCmd.Flags().StringVar(&flagMetric, "metric", "outcomes", "What to measure: outcomes, ratios")
	sweepCmd.Flags().IntVar(&flagTrials, "trials", 0, "Trials per value (default from config)")
	sweepCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel workers (default from config, 0 = all CPUs)")
	sweepCmd.Flags().Float64Var(&flagFrom, "from", 0, "First value (default from parameter)")
	sweepCmd.Flags().Float64Var(&flagTo, "to", 0, "Last value (default from parameter)")
	sweepCmd.Flags().Float64Var(&flagStep, "step", 0, "Value increment (default from parameter)")
	sweepCmd.Flags().StringVar(&flagSweepCSV, "csv", "", "Write results to this CSV file instead of stdout")
}

func runSweep(cmd *cobra.Command, args []string) {
	name := args[0]

	param, err := sweep.Lookup(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown parameter %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'wator params' to see sweepable parameters.")
		os.Exit(1)
	}
	if flagMetric != "outcomes" && flagMetric != "ratios" {
		fmt.Fprintf(os.Stderr, "Error: unknown metric %q (want outcomes or ratios)\n", flagMetric)
		os.Exit(1)
	}

	logger := newLogger()
	cfg := loadConfig()

	base := sweep.NewScenario(cfg.Setup(), cfg.Params(), cfg.Run.Steps)

	rng := param.DefaultRange(base)
	flags := cmd.Flags()
	if flags.Changed("from") {
		rng.From = flagFrom
	}
	if flags.Changed("to") {
		rng.To = flagTo
	}
	if flags.Changed("step") {
		rng.Step = flagStep
	}
	values := rng.Values()

	runner := &sweep.Runner{
		Trials:  cfg.Sweep.Trials,
		Workers: cfg.Sweep.Workers,
		Seed:    resolveSeed(cfg),
		Logger:  logger,
	}
	if flags.Changed("trials") {
		runner.Trials = flagTrials
	}
	if flags.Changed("workers") {
		runner.Workers = flagWorkers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting sweep",
		"param", param.Name,
		"metric", flagMetric,
		"range", rng,
		"values", len(values),
		"trials", runner.Trials,
		"seed", runner.Seed,
	)

	var rows any
	switch flagMetric {
	case "ratios":
		rows, err = runner.Ratios(ctx, base, param, values)
	default:
		rows, err = runner.Outcomes(ctx, base, param, values)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeSweep(rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("sweep finished", "param", param.Name, "values", len(values))
}

func writeSweep(rows any) error {
	if flagSweepCSV == "" {
		return writeResults(os.Stdout, rows)
	}

	f, err := os.Create(flagSweepCSV)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", flagSweepCSV, err)
	}
	if err := writeResults(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", flagSweepCSV, err)
	}
	return nil
}

func writeResults(out io.Writer, rows any) error {
	if err := sweep.WriteCSV(out, rows); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}
