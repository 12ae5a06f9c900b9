// wator runs Wa-Tor predator-prey simulations on a toroidal grid.
//
// Usage:
//
//	wator run                - Run one simulation and print a summary
//	wator sweep <param>      - Sweep one parameter over many trials
//	wator params             - List sweepable parameters
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible runs
//	--config <path>      - Load parameters from a YAML file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wator/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wator",
	Short: "Wa-Tor - fish and sharks on a toroidal ocean",
	Long: `Wa-Tor simulates fish and sharks living on a wrap-around grid.
Fish move and breed, sharks hunt fish and starve without them.

Available commands:
  run      - Run one simulation
  sweep    - Vary one parameter over many trials
  params   - Show sweepable parameters

Examples:
  wator run --steps 1000 --show
  wator run --layout circular --csv counts.csv
  wator sweep breed_time --trials 10
  wator sweep energy_gain --metric ratios --from 2 --to 10
  wator params`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time based)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(paramsCmd)
}

// newLogger builds the stderr logger shared by all commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "wator",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the config or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// resolveSeed picks the --seed flag, then the config seed, then the clock.
func resolveSeed(cfg config.Config) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if cfg.Run.Seed != 0 {
		return cfg.Run.Seed
	}
	return time.Now().UnixNano()
}
