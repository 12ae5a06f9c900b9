package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wator/internal/analysis"
	"github.com/vovakirdan/wator/internal/config"
	"github.com/vovakirdan/wator/internal/render"
	"github.com/vovakirdan/wator/internal/wator"
)

var (
	flagRows        int
	flagCols        int
	flagFish        int
	flagSharks      int
	flagSteps       int
	flagLayout      string
	flagBreedTime   int
	flagEnergyGain  int
	flagBreedEnergy int
	flagStartEnergy int
	flagCSV         string
	flagShow        bool
	flagEvery       int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation",
	Long: `Run a single Wa-Tor simulation and print a summary.

The run stops after --steps generations, or earlier once every creature
is gone or fish fill the whole grid.

Flags override values loaded from the config file.

Examples:
  wator run
  wator run --rows 80 --cols 120 --steps 2000
  wator run --layout circular --show
  wator run --seed 42 --csv counts.csv`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows")
	runCmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns")
	runCmd.Flags().IntVar(&flagFish, "fish", 0, "Initial fish")
	runCmd.Flags().IntVar(&flagSharks, "sharks", 0, "Initial sharks")
	runCmd.Flags().IntVar(&flagSteps, "steps", 0, "Maximum number of steps")
	runCmd.Flags().StringVar(&flagLayout, "layout", "", "Initial layout: random, circular")
	runCmd.Flags().IntVar(&flagBreedTime, "breed-time", 0, "Fish breed once older than this")
	runCmd.Flags().IntVar(&flagEnergyGain, "energy-gain", 0, "Energy a shark gains per fish")
	runCmd.Flags().IntVar(&flagBreedEnergy, "breed-energy", 0, "Sharks breed once their energy exceeds this")
	runCmd.Flags().IntVar(&flagStartEnergy, "start-energy", 0, "Energy of a newborn shark")
	runCmd.Flags().StringVar(&flagCSV, "csv", "", "Write per-generation counts to this CSV file")
	runCmd.Flags().BoolVar(&flagShow, "show", false, "Print the final grid")
	runCmd.Flags().IntVar(&flagEvery, "every", 100, "Log progress every N generations (0 = never)")
}

// countRow is one line of the per-generation CSV.
type countRow struct {
	Generation    int `csv:"generation"`
	Fish          int `csv:"fish"`
	Sharks        int `csv:"sharks"`
	FishBorn      int `csv:"fish_born"`
	SharksBorn    int `csv:"sharks_born"`
	FishEaten     int `csv:"fish_eaten"`
	SharksStarved int `csv:"sharks_starved"`
}

// applyRunFlags copies explicitly set flags over the loaded config.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Grid.Rows = flagRows
	}
	if flags.Changed("cols") {
		cfg.Grid.Cols = flagCols
	}
	if flags.Changed("fish") {
		cfg.Population.Fish = flagFish
	}
	if flags.Changed("sharks") {
		cfg.Population.Sharks = flagSharks
	}
	if flags.Changed("steps") {
		cfg.Run.Steps = flagSteps
	}
	if flags.Changed("layout") {
		cfg.Population.Layout = flagLayout
	}
	if flags.Changed("breed-time") {
		cfg.Fish.BreedTime = flagBreedTime
	}
	if flags.Changed("energy-gain") {
		cfg.Shark.EnergyGain = flagEnergyGain
	}
	if flags.Changed("breed-energy") {
		cfg.Shark.BreedEnergy = flagBreedEnergy
	}
	if flags.Changed("start-energy") {
		cfg.Shark.StartEnergy = flagStartEnergy
	}
}

func runRun(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg := loadConfig()
	applyRunFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := resolveSeed(cfg)
	rng := rand.New(rand.NewSource(seed))
	setup, params := cfg.Setup(), cfg.Params()

	grid, err := wator.Seed(setup, params.BreedTime, params.BreedEnergy, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting run",
		"grid", fmt.Sprintf("%dx%d", setup.Rows, setup.Cols),
		"fish", grid.FishCount(),
		"sharks", grid.SharkCount(),
		"layout", setup.Layout,
		"steps", cfg.Run.Steps,
		"seed", seed,
	)

	sim := wator.NewSimulation(grid, params, rng)
	counts := wator.Counts{
		Fish:   []int{grid.FishCount()},
		Sharks: []int{grid.SharkCount()},
	}
	rows := []countRow{{Fish: grid.FishCount(), Sharks: grid.SharkCount()}}

	for sim.Generation() < cfg.Run.Steps && !sim.Done() {
		res := sim.Advance()
		counts.Fish = append(counts.Fish, res.Fish)
		counts.Sharks = append(counts.Sharks, res.Sharks)
		rows = append(rows, countRow{
			Generation:    res.Generation,
			Fish:          res.Fish,
			Sharks:        res.Sharks,
			FishBorn:      res.FishBorn,
			SharksBorn:    res.SharksBorn,
			FishEaten:     res.FishEaten,
			SharksStarved: res.SharksStarved,
		})

		if flagEvery > 0 && res.Generation%flagEvery == 0 {
			logger.Info("progress", "generation", res.Generation, "fish", res.Fish, "sharks", res.Sharks)
		}
		logger.Debug("step",
			"generation", res.Generation,
			"fish_born", res.FishBorn,
			"sharks_born", res.SharksBorn,
			"fish_eaten", res.FishEaten,
			"sharks_starved", res.SharksStarved,
		)
	}

	final := sim.Current()
	fish, sharks := counts.Last()
	outcome := wator.OutcomeOf(final)
	logger.Info("run finished", "steps", counts.Steps(), "outcome", outcome)

	if flagCSV != "" {
		if err := writeCountsCSV(flagCSV, rows); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("wrote counts", "path", flagCSV, "rows", len(rows))
	}

	if flagShow {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Println(render.Styled(final))
			fmt.Println(render.Legend())
		} else {
			fmt.Println(render.ASCII(final))
		}
		fmt.Println()
	}

	ab, dc := analysis.CriticalPoints(counts.Fish, counts.Sharks)

	fmt.Printf("Steps:       %d\n", counts.Steps())
	fmt.Printf("Fish:        %d\n", fish)
	fmt.Printf("Sharks:      %d\n", sharks)
	fmt.Printf("Outcome:     %s\n", outcome)
	fmt.Printf("a/b:         %s\n", formatEstimate(ab))
	fmt.Printf("d/c:         %s\n", formatEstimate(dc))
}

func writeCountsCSV(path string, rows []countRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func formatEstimate(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", v)
}
