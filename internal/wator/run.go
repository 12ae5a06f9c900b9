package wator

import "math/rand"

// Outcome describes how a run ended.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeExtinct
	OutcomeFishSaturated
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeExtinct:
		return "extinct"
	case OutcomeFishSaturated:
		return "fish_saturated"
	default:
		return "unknown"
	}
}

// Classify returns the outcome implied by final population counts on a
// grid with size cells.
func Classify(fish, sharks, size int) Outcome {
	switch {
	case fish+sharks == 0:
		return OutcomeExtinct
	case fish == size:
		return OutcomeFishSaturated
	default:
		return OutcomeOngoing
	}
}

// OutcomeOf classifies a grid.
func OutcomeOf(g *Grid) Outcome {
	return Classify(g.FishCount(), g.SharkCount(), g.Size())
}

// Terminal reports whether no further step can change the kind of outcome.
func Terminal(g *Grid) bool {
	return g.IsExtinct() || g.IsFishSaturated()
}

// Run applies Step up to steps times and returns every generation,
// starting with g itself. It stops early once a generation is extinct or
// saturated with fish, so an early finish yields fewer than steps+1 grids.
// Each returned grid is a separate allocation.
func Run(g *Grid, steps int, p Params, rng *rand.Rand) []*Grid {
	history := []*Grid{g}
	current := g
	for k := 0; k < steps && !Terminal(current); k++ {
		current = Step(current, p, rng)
		history = append(history, current)
	}
	return history
}

// Counts holds parallel per-generation population series.
type Counts struct {
	Fish   []int
	Sharks []int
}

// Len returns the number of recorded generations.
func (c Counts) Len() int {
	return len(c.Fish)
}

// Steps returns the number of steps applied, which excludes the initial grid.
func (c Counts) Steps() int {
	return max(c.Len()-1, 0)
}

// Last returns the final fish and shark counts.
func (c Counts) Last() (fish, sharks int) {
	if len(c.Fish) == 0 {
		return 0, 0
	}
	return c.Fish[len(c.Fish)-1], c.Sharks[len(c.Sharks)-1]
}

// RunCounts is the memory-light form of Run. It follows the same
// termination rule but only records population counts per generation.
// g is not modified.
func RunCounts(g *Grid, steps int, p Params, rng *rand.Rand) Counts {
	sim := NewSimulation(g, p, rng)
	counts := Counts{
		Fish:   []int{g.FishCount()},
		Sharks: []int{g.SharkCount()},
	}
	for sim.Generation() < steps && !sim.Done() {
		res := sim.Advance()
		counts.Fish = append(counts.Fish, res.Fish)
		counts.Sharks = append(counts.Sharks, res.Sharks)
	}
	return counts
}
