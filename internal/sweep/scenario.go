// Package sweep runs many independent Wa-Tor trials while varying one
// parameter and tabulates outcome chances and ratio estimates.
package sweep

import (
	"fmt"
	"math"

	"github.com/vovakirdan/wator/internal/wator"
)

// Scenario is everything needed to run one trial.
type Scenario struct {
	Setup       wator.Setup
	Params      wator.Params
	Steps       int
	AspectRatio float64 // Cols/Rows, used when the side length is swept
}

// NewScenario builds a scenario and derives the aspect ratio from the grid.
func NewScenario(setup wator.Setup, params wator.Params, steps int) Scenario {
	aspect := 1.0
	if setup.Rows > 0 {
		aspect = float64(setup.Cols) / float64(setup.Rows)
	}
	return Scenario{
		Setup:       setup,
		Params:      params,
		Steps:       steps,
		AspectRatio: aspect,
	}
}

// Validate checks the scenario before any trial is dispatched.
func (s Scenario) Validate() error {
	if err := s.Setup.Validate(); err != nil {
		return err
	}
	if err := s.Params.Validate(); err != nil {
		return err
	}
	if s.Steps < 0 {
		return fmt.Errorf("sweep: steps must be >= 0, got %d", s.Steps)
	}
	return nil
}

// Range is an inclusive arithmetic sequence of parameter values.
type Range struct {
	From float64
	To   float64
	Step float64
}

// Values expands the range. A non-positive step yields just From.
func (r Range) Values() []float64 {
	if r.Step <= 0 || r.To < r.From {
		return []float64{r.From}
	}
	n := int(math.Floor((r.To-r.From)/r.Step+1e-9)) + 1
	values := make([]float64, n)
	for i := range values {
		values[i] = r.From + float64(i)*r.Step
	}
	return values
}

// String returns a compact representation like "1..15 step 1".
func (r Range) String() string {
	return fmt.Sprintf("%g..%g step %g", r.From, r.To, r.Step)
}
