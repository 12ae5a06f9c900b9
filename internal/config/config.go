// Package config provides YAML-based simulation configuration loading.
package config

import (
	"fmt"

	"github.com/vovakirdan/wator/internal/wator"
)

// Config contains every setting a run or sweep needs.
type Config struct {
	Grid       GridConfig       `yaml:"grid"`
	Population PopulationConfig `yaml:"population"`
	Fish       FishConfig       `yaml:"fish"`
	Shark      SharkConfig      `yaml:"shark"`
	Run        RunConfig        `yaml:"run"`
	Sweep      SweepConfig      `yaml:"sweep"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// PopulationConfig defines the initial population.
type PopulationConfig struct {
	Fish   int    `yaml:"fish"`
	Sharks int    `yaml:"sharks"`
	Layout string `yaml:"layout"` // "random" or "circular"
}

// FishConfig defines fish behaviour.
type FishConfig struct {
	BreedTime int `yaml:"breed_time"`
}

// SharkConfig defines shark behaviour.
type SharkConfig struct {
	EnergyGain  int `yaml:"energy_gain"`
	BreedEnergy int `yaml:"breed_energy"`
	StartEnergy int `yaml:"start_energy"`
}

// RunConfig defines a single simulation run.
type RunConfig struct {
	Steps int   `yaml:"steps"`
	Seed  int64 `yaml:"seed"` // 0 = time based
}

// SweepConfig defines parameter sweep execution.
type SweepConfig struct {
	Trials  int `yaml:"trials"`
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// Setup returns the grid setup described by the config.
func (c Config) Setup() wator.Setup {
	return wator.Setup{
		Rows:          c.Grid.Rows,
		Cols:          c.Grid.Cols,
		InitialFish:   c.Population.Fish,
		InitialSharks: c.Population.Sharks,
		Layout:        wator.Layout(c.Population.Layout),
	}
}

// Params returns the behaviour parameters described by the config.
func (c Config) Params() wator.Params {
	return wator.Params{
		BreedTime:   c.Fish.BreedTime,
		EnergyGain:  c.Shark.EnergyGain,
		BreedEnergy: c.Shark.BreedEnergy,
		StartEnergy: c.Shark.StartEnergy,
	}
}

// Validate checks the config for values no simulation could run with.
func (c Config) Validate() error {
	if err := c.Setup().Validate(); err != nil {
		return err
	}
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Run.Steps < 0 {
		return fmt.Errorf("run.steps must be >= 0, got %d", c.Run.Steps)
	}
	if c.Sweep.Trials < 1 {
		return fmt.Errorf("sweep.trials must be >= 1, got %d", c.Sweep.Trials)
	}
	if c.Sweep.Workers < 0 {
		return fmt.Errorf("sweep.workers must be >= 0, got %d", c.Sweep.Workers)
	}
	return nil
}
