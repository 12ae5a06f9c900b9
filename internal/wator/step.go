package wator

import (
	"math"
	"math/rand"
)

// StepResult summarizes what happened during one step.
type StepResult struct {
	Generation    int
	FishBorn      int
	SharksBorn    int
	FishEaten     int
	SharksStarved int
	Fish          int
	Sharks        int
}

// Step advances g by one generation and returns the new grid.
// g is only read; the result is freshly allocated and owned by the caller.
//
// Occupied cells are visited once each in an order shuffled by rng.
// A mover may only enter a cell that is empty in g (or vacated earlier this
// step) and still unclaimed in the new grid, so the first creature to claim
// a cell wins it. Sharks prefer adjacent fish and eat them; an eaten fish
// is skipped when its turn comes. Sharks whose energy drops to zero or
// below are simply not written.
func Step(g *Grid, p Params, rng *rand.Rand) *Grid {
	next := NewGrid(g.Rows, g.Cols)
	var st stepper
	st.apply(g, next, p, rng)
	return next
}

// stepper carries per-step scratch space so a Simulation can reuse it.
type stepper struct {
	order  []int
	done   []bool // old-grid cells already visited or eaten this step
	cands  []int
	result StepResult
}

func (st *stepper) apply(old, next *Grid, p Params, rng *rand.Rand) {
	next.reset()
	st.result = StepResult{}

	if cap(st.done) < old.Size() {
		st.done = make([]bool, old.Size())
	}
	st.done = st.done[:old.Size()]
	clear(st.done)

	st.order = st.order[:0]
	for idx, cell := range old.Cells {
		if !cell.IsEmpty() {
			st.order = append(st.order, idx)
		}
	}
	rng.Shuffle(len(st.order), func(i, j int) {
		st.order[i], st.order[j] = st.order[j], st.order[i]
	})

	for _, idx := range st.order {
		if st.done[idx] {
			continue // eaten earlier this step
		}
		cell := old.Cells[idx]
		switch cell.Kind {
		case KindFish:
			st.moveFish(old, next, idx, cell, p, rng)
		case KindShark:
			st.moveShark(old, next, idx, cell, p, rng)
		}
		st.done[idx] = true
	}

	st.result.Fish = next.FishCount()
	st.result.Sharks = next.SharkCount()
}

func (st *stepper) moveFish(old, next *Grid, idx int, fish Cell, p Params, rng *rand.Rand) {
	st.collect(old, next, idx, st.isFree)
	if len(st.cands) == 0 {
		st.place(next, idx, fish)
		return
	}

	dest := st.cands[rng.Intn(len(st.cands))]
	if fish.Age() > p.BreedTime {
		st.place(next, dest, Fish(1))
		st.place(next, idx, Fish(1))
		st.result.FishBorn++
		return
	}
	st.place(next, dest, Fish(fish.Age()+1))
}

func (st *stepper) moveShark(old, next *Grid, idx int, shark Cell, p Params, rng *rand.Rand) {
	energy := shark.Energy()
	canBreed := energy > p.BreedEnergy

	st.collect(old, next, idx, st.hasPrey)
	if len(st.cands) > 0 {
		dest := st.cands[rng.Intn(len(st.cands))]
		st.eat(old, next, dest)
		if canBreed {
			shared := SharedGain(p.EnergyGain)
			st.place(next, dest, Shark(energy+shared-p.StartEnergy-1))
			st.place(next, idx, Shark(p.StartEnergy+shared))
			st.result.SharksBorn++
			return
		}
		st.place(next, dest, Shark(energy+p.EnergyGain-1))
		return
	}

	st.collect(old, next, idx, st.isFree)
	if len(st.cands) > 0 {
		dest := st.cands[rng.Intn(len(st.cands))]
		if canBreed {
			st.place(next, dest, Shark(energy-p.StartEnergy-1))
			st.place(next, idx, Shark(p.StartEnergy))
			st.result.SharksBorn++
			return
		}
		st.place(next, dest, Shark(energy-1))
		return
	}

	st.place(next, idx, Shark(energy-1))
}

// collect fills st.cands with the neighbors of idx accepted by keep.
// On grids narrower than three cells a neighbor may appear twice.
func (st *stepper) collect(old, next *Grid, idx int, keep func(old, next *Grid, n int) bool) {
	st.cands = st.cands[:0]
	for _, n := range old.neighborIndices(idx) {
		if keep(old, next, n) {
			st.cands = append(st.cands, n)
		}
	}
}

// isFree reports whether n is empty in the old grid (or already vacated)
// and not yet claimed in the new grid.
func (st *stepper) isFree(old, next *Grid, n int) bool {
	vacant := old.Cells[n].IsEmpty() || st.done[n]
	return vacant && next.Cells[n].IsEmpty()
}

// hasPrey reports whether n holds a fish that has not been eaten, either
// still waiting for its turn in the old grid or already moved into the new one.
func (st *stepper) hasPrey(old, next *Grid, n int) bool {
	return (old.Cells[n].IsFish() && !st.done[n]) || next.Cells[n].IsFish()
}

func (st *stepper) eat(old, next *Grid, n int) {
	if old.Cells[n].IsFish() && !st.done[n] {
		st.done[n] = true
	} else {
		next.Cells[n] = Empty()
	}
	st.result.FishEaten++
}

// place commits cell to the new grid. Sharks without energy are dropped here.
func (st *stepper) place(next *Grid, idx int, cell Cell) {
	if cell.IsShark() && cell.Energy() <= 0 {
		st.result.SharksStarved++
		return
	}
	if present := next.Cells[idx]; !present.IsEmpty() {
		panic(InvariantViolation{Pos: next.pos(idx), Present: present, Placed: cell})
	}
	next.Cells[idx] = cell
}

// SharedGain is the energy each shark receives when a feeding shark breeds:
// half the energy gain, rounded half to even.
func SharedGain(energyGain int) int {
	return int(math.RoundToEven(float64(energyGain) / 2))
}
