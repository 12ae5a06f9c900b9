package wator

// Params holds the life-cycle rules applied on every step.
type Params struct {
	BreedTime   int // Fish breed once their age exceeds this
	EnergyGain  int // Energy a shark gains from eating a fish
	BreedEnergy int // Sharks breed once their energy exceeds this
	StartEnergy int // Energy handed to a newborn shark
}

// DefaultParams returns the classic parameter set.
func DefaultParams() Params {
	return Params{
		BreedTime:   3,
		EnergyGain:  4,
		BreedEnergy: 10,
		StartEnergy: 9,
	}
}

// Validate checks that the parameters are usable.
func (p Params) Validate() error {
	if p.BreedTime < 1 {
		return configErrorf(CodeInvalidParam, "breed_time must be >= 1, got %d", p.BreedTime)
	}
	if p.BreedEnergy < 1 {
		return configErrorf(CodeInvalidParam, "breed_energy must be >= 1, got %d", p.BreedEnergy)
	}
	if p.EnergyGain < 0 {
		return configErrorf(CodeInvalidParam, "energy_gain must be >= 0, got %d", p.EnergyGain)
	}
	if p.StartEnergy < 0 {
		return configErrorf(CodeInvalidParam, "start_energy must be >= 0, got %d", p.StartEnergy)
	}
	return nil
}

// Layout selects an initial placement strategy.
type Layout string

const (
	LayoutRandom   Layout = "random"
	LayoutCircular Layout = "circular"
)

// Setup describes the initial ocean.
type Setup struct {
	Rows          int
	Cols          int
	InitialFish   int
	InitialSharks int
	Layout        Layout
}

// Validate checks dimensions and that the population fits the grid.
func (s Setup) Validate() error {
	if s.Rows < 1 || s.Cols < 1 {
		return configErrorf(CodeInvalidDims, "grid must be at least 1x1, got %dx%d", s.Rows, s.Cols)
	}
	if s.InitialFish < 0 || s.InitialSharks < 0 {
		return configErrorf(CodeInvalidParam, "initial populations must be >= 0, got fish=%d sharks=%d",
			s.InitialFish, s.InitialSharks)
	}
	if total, capacity := s.InitialFish+s.InitialSharks, s.Rows*s.Cols; total > capacity {
		return configErrorf(CodeOverCapacity, "%d creatures do not fit a %dx%d grid (%d cells)",
			total, s.Rows, s.Cols, capacity)
	}
	switch s.Layout {
	case LayoutRandom, LayoutCircular, "":
	default:
		return configErrorf(CodeUnknownLayout, "unknown layout %q", s.Layout)
	}
	return nil
}
