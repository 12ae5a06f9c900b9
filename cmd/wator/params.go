package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wator/internal/sweep"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "List sweepable parameters",
	Long: `Shows every parameter 'wator sweep' can vary, with the range swept
by default. Ranges that depend on other parameters use the loaded config.`,
	Args: cobra.NoArgs,
	Run:  runParams,
}

func runParams(cmd *cobra.Command, args []string) {
	params := sweep.List()

	if len(params) == 0 {
		fmt.Println("No parameters available.")
		return
	}

	cfg := loadConfig()
	base := sweep.NewScenario(cfg.Setup(), cfg.Params(), cfg.Run.Steps)

	fmt.Println("Sweepable parameters:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	ranges := make([]string, len(params))
	maxRangeLen := 5 // "Range" header
	for i, p := range params {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
		ranges[i] = p.DefaultRange(base).String()
		if len(ranges[i]) > maxRangeLen {
			maxRangeLen = len(ranges[i])
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxNameLen, "Name", maxRangeLen, "Range", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxNameLen, "----", maxRangeLen, "-----", "-----------")

	// Print parameters
	for i, p := range params {
		fmt.Printf("  %-*s  %-*s  %s\n", maxNameLen, p.Name, maxRangeLen, ranges[i], p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'wator sweep <name>' to sweep a parameter.")
}
