package wator

import (
	"errors"
	"math/rand"
	"testing"
)

func TestInitRandomCounts(t *testing.T) {
	s := Setup{Rows: 10, Cols: 12, InitialFish: 40, InitialSharks: 15}

	for seed := int64(1); seed <= 5; seed++ {
		g, err := InitRandom(s, 3, 10, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("InitRandom() failed: %v", err)
		}
		if g.FishCount() != 40 {
			t.Errorf("seed %d: FishCount() = %d, want 40", seed, g.FishCount())
		}
		if g.SharkCount() != 15 {
			t.Errorf("seed %d: SharkCount() = %d, want 15", seed, g.SharkCount())
		}
		for _, cell := range g.Cells {
			switch {
			case cell.IsFish() && (cell.Age() < 1 || cell.Age() > 3):
				t.Errorf("fish age %d outside [1,3]", cell.Age())
			case cell.IsShark() && (cell.Energy() < 1 || cell.Energy() > 10):
				t.Errorf("shark energy %d outside [1,10]", cell.Energy())
			}
		}
	}
}

func TestInitRandomFillsWholeGrid(t *testing.T) {
	s := Setup{Rows: 4, Cols: 4, InitialFish: 10, InitialSharks: 6}
	g, err := InitRandom(s, 2, 5, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("InitRandom() failed: %v", err)
	}
	if g.Occupied() != 16 {
		t.Errorf("Occupied() = %d, want 16", g.Occupied())
	}
}

func TestInitRandomDeterministic(t *testing.T) {
	s := Setup{Rows: 8, Cols: 8, InitialFish: 20, InitialSharks: 5}
	a, _ := InitRandom(s, 3, 10, rand.New(rand.NewSource(99)))
	b, _ := InitRandom(s, 3, 10, rand.New(rand.NewSource(99)))
	if !a.Equal(b) {
		t.Error("same seed should produce the same grid")
	}
}

func TestInitOverCapacity(t *testing.T) {
	s := Setup{Rows: 3, Cols: 3, InitialFish: 6, InitialSharks: 4}
	inits := map[string]func(Setup, int, int, *rand.Rand) (*Grid, error){
		"random":   InitRandom,
		"circular": InitCircular,
	}

	for name, init := range inits {
		t.Run(name, func(t *testing.T) {
			g, err := init(s, 3, 10, rand.New(rand.NewSource(1)))
			if err == nil {
				t.Fatal("expected error for population exceeding capacity")
			}
			if g != nil {
				t.Error("expected nil grid on error")
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("expected ErrConfiguration, got %v", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) || cfgErr.Code != CodeOverCapacity {
				t.Errorf("expected %s, got %v", CodeOverCapacity, err)
			}
		})
	}
}

func TestInitRejectsBadParams(t *testing.T) {
	tests := []struct {
		name        string
		setup       Setup
		breedTime   int
		breedEnergy int
		code        string
	}{
		{"zero_rows", Setup{Rows: 0, Cols: 5}, 3, 10, CodeInvalidDims},
		{"negative_fish", Setup{Rows: 5, Cols: 5, InitialFish: -1}, 3, 10, CodeInvalidParam},
		{"zero_breed_time", Setup{Rows: 5, Cols: 5, InitialFish: 1}, 0, 10, CodeInvalidParam},
		{"zero_breed_energy", Setup{Rows: 5, Cols: 5, InitialSharks: 1}, 3, 0, CodeInvalidParam},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := InitRandom(tc.setup, tc.breedTime, tc.breedEnergy, rand.New(rand.NewSource(1)))
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Code != tc.code {
				t.Errorf("Code = %s, want %s", cfgErr.Code, tc.code)
			}
		})
	}
}

func TestInitCircularLayout(t *testing.T) {
	s := Setup{Rows: 50, Cols: 50, InitialFish: 300, InitialSharks: 100, Layout: LayoutCircular}
	g, err := InitCircular(s, 3, 10, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("InitCircular() failed: %v", err)
	}

	// The disk and ring are pixelated, so counts are close to but not
	// exactly the requested ones.
	if g.SharkCount() != 97 {
		t.Errorf("SharkCount() = %d, want 97", g.SharkCount())
	}
	if g.FishCount() != 304 {
		t.Errorf("FishCount() = %d, want 304", g.FishCount())
	}

	if !g.Get(P(25, 25)).IsShark() {
		t.Errorf("center should hold a shark, got %v", g.Get(P(25, 25)))
	}
	if !g.Get(P(25, 33)).IsFish() {
		t.Errorf("ring should hold a fish, got %v", g.Get(P(25, 33)))
	}
	if !g.Get(P(0, 0)).IsEmpty() {
		t.Errorf("corner should be empty, got %v", g.Get(P(0, 0)))
	}
}

func TestInitCircularSmallGrid(t *testing.T) {
	s := Setup{Rows: 10, Cols: 10, InitialFish: 20, InitialSharks: 10}
	g, err := InitCircular(s, 3, 10, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("InitCircular() failed: %v", err)
	}
	if g.SharkCount() != 9 || g.FishCount() != 20 {
		t.Errorf("got %d sharks, %d fish; want 9, 20", g.SharkCount(), g.FishCount())
	}
}

func TestSeedDispatchesOnLayout(t *testing.T) {
	s := Setup{Rows: 10, Cols: 10, InitialFish: 20, InitialSharks: 10, Layout: LayoutCircular}
	g, err := Seed(s, 3, 10, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}
	if g.SharkCount() != 9 {
		t.Errorf("circular layout expected 9 sharks, got %d", g.SharkCount())
	}

	s.Layout = "spiral"
	if _, err := Seed(s, 3, 10, rand.New(rand.NewSource(1))); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected configuration error for unknown layout, got %v", err)
	}
}
