package config

import (
	_ "embed"
)

//go:embed defaults/wator.yaml
var defaultYAML []byte

// Default returns the hard-coded default configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows: 50,
			Cols: 50,
		},
		Population: PopulationConfig{
			Fish:   300,
			Sharks: 100,
			Layout: "random",
		},
		Fish: FishConfig{
			BreedTime: 3,
		},
		Shark: SharkConfig{
			EnergyGain:  4,
			BreedEnergy: 10,
			StartEnergy: 9,
		},
		Run: RunConfig{
			Steps: 500,
		},
		Sweep: SweepConfig{
			Trials: 25,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
