package wator

import "math/rand"

// Simulation steps a grid in place of repeated allocation.
// It owns two buffers and alternates between them by generation parity:
// one is read while the other is written, then they swap.
//
// The grid returned by Current is only valid until the next Advance.
// Clone it to keep a snapshot.
type Simulation struct {
	params     Params
	rng        *rand.Rand
	buffers    [2]*Grid
	generation int
	st         stepper
	last       StepResult
}

// NewSimulation copies g into the first buffer. g itself is never touched.
func NewSimulation(g *Grid, p Params, rng *rand.Rand) *Simulation {
	return &Simulation{
		params:  p,
		rng:     rng,
		buffers: [2]*Grid{g.Clone(), NewGrid(g.Rows, g.Cols)},
		last: StepResult{
			Fish:   g.FishCount(),
			Sharks: g.SharkCount(),
		},
	}
}

// Current returns the grid for the current generation.
func (s *Simulation) Current() *Grid {
	return s.buffers[s.generation%2]
}

// Generation returns the number of steps applied so far.
func (s *Simulation) Generation() int {
	return s.generation
}

// Last returns the result of the most recent Advance.
func (s *Simulation) Last() StepResult {
	return s.last
}

// Done reports whether the current generation is extinct or saturated with fish.
func (s *Simulation) Done() bool {
	fish, sharks := s.last.Fish, s.last.Sharks
	size := s.Current().Size()
	return fish+sharks == 0 || fish == size
}

// Advance applies one step and returns what happened.
func (s *Simulation) Advance() StepResult {
	old := s.buffers[s.generation%2]
	next := s.buffers[(s.generation+1)%2]
	s.st.apply(old, next, s.params, s.rng)
	s.generation++
	s.st.result.Generation = s.generation
	s.last = s.st.result
	return s.last
}
