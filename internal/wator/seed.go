package wator

import (
	"math"
	"math/rand"
)

// Seed builds the initial grid for setup using its layout.
// An empty layout means random.
func Seed(s Setup, breedTime, breedEnergy int, rng *rand.Rand) (*Grid, error) {
	switch s.Layout {
	case LayoutCircular:
		return InitCircular(s, breedTime, breedEnergy, rng)
	case LayoutRandom, "":
		return InitRandom(s, breedTime, breedEnergy, rng)
	default:
		return nil, configErrorf(CodeUnknownLayout, "unknown layout %q", s.Layout)
	}
}

// InitRandom scatters InitialFish fish and then InitialSharks sharks over
// distinct positions drawn uniformly without replacement.
// Fish ages are uniform in [1, breedTime], shark energies in [1, breedEnergy].
func InitRandom(s Setup, breedTime, breedEnergy int, rng *rand.Rand) (*Grid, error) {
	if err := validateSeed(s, breedTime, breedEnergy); err != nil {
		return nil, err
	}

	g := NewGrid(s.Rows, s.Cols)
	order := rng.Perm(g.Size())
	for i, idx := range order[:s.InitialFish+s.InitialSharks] {
		if i < s.InitialFish {
			g.Cells[idx] = Fish(randomAge(breedTime, rng))
		} else {
			g.Cells[idx] = Shark(randomEnergy(breedEnergy, rng))
		}
	}
	return g, nil
}

// InitCircular places sharks in a central disk of area ~InitialSharks and
// fish in the surrounding ring of area ~InitialFish. The pixelated disk
// only approximates the requested counts.
func InitCircular(s Setup, breedTime, breedEnergy int, rng *rand.Rand) (*Grid, error) {
	if err := validateSeed(s, breedTime, breedEnergy); err != nil {
		return nil, err
	}

	g := NewGrid(s.Rows, s.Cols)
	rowCenter := float64(s.Rows) / 2
	colCenter := float64(s.Cols) / 2
	sharkArea := float64(s.InitialSharks) / math.Pi
	totalArea := float64(s.InitialSharks+s.InitialFish) / math.Pi

	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			y := float64(row) - rowCenter
			x := float64(col) - colCenter
			r2 := x*x + y*y
			switch {
			case r2 < sharkArea:
				g.Set(P(row, col), Shark(randomEnergy(breedEnergy, rng)))
			case r2 < totalArea:
				g.Set(P(row, col), Fish(randomAge(breedTime, rng)))
			}
		}
	}
	return g, nil
}

func validateSeed(s Setup, breedTime, breedEnergy int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if breedTime < 1 {
		return configErrorf(CodeInvalidParam, "breed_time must be >= 1, got %d", breedTime)
	}
	if breedEnergy < 1 {
		return configErrorf(CodeInvalidParam, "breed_energy must be >= 1, got %d", breedEnergy)
	}
	return nil
}

func randomAge(breedTime int, rng *rand.Rand) int {
	return 1 + rng.Intn(breedTime)
}

func randomEnergy(breedEnergy int, rng *rand.Rand) int {
	return 1 + rng.Intn(breedEnergy)
}
