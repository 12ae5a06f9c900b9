package sweep

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wator/internal/analysis"
	"github.com/vovakirdan/wator/internal/wator"
)

// Runner executes trials on a pool of workers.
type Runner struct {
	Trials  int   // trials per value
	Workers int   // 0 means GOMAXPROCS
	Seed    int64 // base seed; each trial derives its own
	Logger  *log.Logger
}

type job struct {
	value int
	trial int
	sc    Scenario
}

type result struct {
	value  int
	trial  int
	counts wator.Counts
	size   int
	err    error
}

// TrialSeed returns the seed used for one trial. Results depend only on
// the base seed and the trial's coordinates, never on scheduling.
func TrialSeed(base int64, value, trial, trials int) int64 {
	return base + int64(value*trials+trial)
}

func (r *Runner) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.New(io.Discard)
}

func (r *Runner) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// scenarios applies every value to a copy of base and validates the result.
func scenarios(base Scenario, p Param, values []float64) ([]Scenario, error) {
	out := make([]Scenario, len(values))
	for i, v := range values {
		sc := base
		p.Apply(&sc, v)
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("%s=%g: %w", p.Name, v, err)
		}
		out[i] = sc
	}
	return out, nil
}

// run executes r.Trials trials per scenario and hands every finished trial
// to collect. collect is only called from the calling goroutine.
func (r *Runner) run(ctx context.Context, p Param, scs []Scenario, collect func(result)) error {
	if r.Trials <= 0 {
		return fmt.Errorf("sweep: trials must be > 0, got %d", r.Trials)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := r.logger()
	jobs := make(chan job)
	results := make(chan result)

	var wg sync.WaitGroup
	for w := 0; w < r.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := r.trial(j)
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for vi, sc := range scs {
			for t := 0; t < r.Trials; t++ {
				select {
				case jobs <- job{value: vi, trial: t, sc: sc}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	remaining := make([]int, len(scs))
	for i := range remaining {
		remaining[i] = r.Trials
	}

	var firstErr error
	for res := range results {
		if firstErr != nil {
			continue
		}
		if res.err != nil {
			firstErr = res.err
			cancel()
			continue
		}
		collect(res)
		logger.Debug("trial done", "param", p.Name, "value", res.value, "trial", res.trial, "generations", res.counts.Len())

		remaining[res.value]--
		if remaining[res.value] == 0 {
			logger.Info("value done", "param", p.Name, "index", res.value, "trials", r.Trials)
		}
	}

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

func (r *Runner) trial(j job) result {
	rng := rand.New(rand.NewSource(TrialSeed(r.Seed, j.value, j.trial, r.Trials)))
	g, err := wator.Seed(j.sc.Setup, j.sc.Params.BreedTime, j.sc.Params.BreedEnergy, rng)
	if err != nil {
		return result{value: j.value, trial: j.trial, err: err}
	}
	return result{
		value:  j.value,
		trial:  j.trial,
		counts: wator.RunCounts(g, j.sc.Steps, j.sc.Params, rng),
		size:   g.Size(),
	}
}

// Outcomes estimates the chance of each final outcome for every value.
func (r *Runner) Outcomes(ctx context.Context, base Scenario, p Param, values []float64) ([]OutcomeRow, error) {
	scs, err := scenarios(base, p, values)
	if err != nil {
		return nil, err
	}

	tally := make([][3]int, len(values))
	err = r.run(ctx, p, scs, func(res result) {
		fish, sharks := res.counts.Last()
		switch wator.Classify(fish, sharks, res.size) {
		case wator.OutcomeExtinct:
			tally[res.value][0]++
		case wator.OutcomeFishSaturated:
			tally[res.value][1]++
		default:
			tally[res.value][2]++
		}
	})
	if err != nil {
		return nil, err
	}

	rows := make([]OutcomeRow, len(values))
	n := float64(r.Trials)
	for i, v := range values {
		rows[i] = OutcomeRow{
			Param:         p.Name,
			Value:         v,
			Trials:        r.Trials,
			Extinct:       float64(tally[i][0]) / n,
			FishSaturated: float64(tally[i][1]) / n,
			Ongoing:       float64(tally[i][2]) / n,
		}
	}
	return rows, nil
}

// Ratios estimates a/b and d/c for every value, averaging over the trials
// that produced an estimate.
func (r *Runner) Ratios(ctx context.Context, base Scenario, p Param, values []float64) ([]RatioRow, error) {
	scs, err := scenarios(base, p, values)
	if err != nil {
		return nil, err
	}

	ab := make([][]float64, len(values))
	dc := make([][]float64, len(values))
	for i := range values {
		ab[i] = make([]float64, r.Trials)
		dc[i] = make([]float64, r.Trials)
	}

	err = r.run(ctx, p, scs, func(res result) {
		ab[res.value][res.trial], dc[res.value][res.trial] = analysis.CriticalPoints(res.counts.Fish, res.counts.Sharks)
	})
	if err != nil {
		return nil, err
	}

	rows := make([]RatioRow, len(values))
	for i, v := range values {
		rows[i] = RatioRow{
			Param:  p.Name,
			Value:  v,
			Trials: r.Trials,
			AB:     analysis.NaNMean(ab[i]),
			DC:     analysis.NaNMean(dc[i]),
		}
	}
	return rows, nil
}
