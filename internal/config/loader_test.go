package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/wator/internal/wator"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return home, work
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "grid:\n  rows: 20\n  cols: 30\npopulation:\n  fish: 50\n  sharks: 10\n  layout: circular\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grid.Rows != 20 || cfg.Grid.Cols != 30 {
		t.Errorf("grid = %+v, want 20x30", cfg.Grid)
	}
	if cfg.Population.Layout != "circular" {
		t.Errorf("layout = %q, want circular", cfg.Population.Layout)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Shark != Default().Shark || cfg.Run.Steps != 500 {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	malformed := filepath.Join(dir, "malformed.yaml")
	writeFile(t, malformed, "grid: [not, a, map\n")

	crowded := filepath.Join(dir, "crowded.yaml")
	writeFile(t, crowded, "grid:\n  rows: 10\n  cols: 10\npopulation:\n  fish: 90\n  sharks: 20\n")

	tests := []struct {
		name     string
		path     string
		wantConf bool
	}{
		{"missing file", filepath.Join(dir, "absent.yaml"), false},
		{"malformed yaml", malformed, false},
		{"over capacity", crowded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, wator.ErrConfiguration); got != tt.wantConf {
				t.Errorf("errors.Is(err, ErrConfiguration) = %v, want %v (%v)", got, tt.wantConf, err)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	t.Run("user config wins", func(t *testing.T) {
		home, work := isolate(t)
		writeFile(t, filepath.Join(home, ".wator", "config.yaml"), "run:\n  steps: 111\n")
		writeFile(t, filepath.Join(work, "configs", FileName), "run:\n  steps: 222\n")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Run.Steps != 111 {
			t.Errorf("steps = %d, want 111 from user config", cfg.Run.Steps)
		}
	})

	t.Run("local configs directory", func(t *testing.T) {
		_, work := isolate(t)
		writeFile(t, filepath.Join(work, "configs", FileName), "run:\n  steps: 222\n")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Run.Steps != 222 {
			t.Errorf("steps = %d, want 222 from local config", cfg.Run.Steps)
		}
	})

	t.Run("invalid user config is skipped", func(t *testing.T) {
		home, work := isolate(t)
		writeFile(t, filepath.Join(home, ".wator", "config.yaml"), "fish:\n  breed_time: 0\n")
		writeFile(t, filepath.Join(work, "configs", FileName), "run:\n  steps: 333\n")

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Run.Steps != 333 {
			t.Errorf("steps = %d, want 333 from local config", cfg.Run.Steps)
		}
	})
}

func TestConfigConversion(t *testing.T) {
	cfg := Default()
	cfg.Population.Layout = "circular"

	setup := cfg.Setup()
	if setup.Rows != 50 || setup.Cols != 50 || setup.InitialFish != 300 || setup.InitialSharks != 100 {
		t.Errorf("Setup() = %+v", setup)
	}
	if setup.Layout != wator.LayoutCircular {
		t.Errorf("Setup().Layout = %q, want circular", setup.Layout)
	}
	if p := cfg.Params(); p != wator.DefaultParams() {
		t.Errorf("Params() = %+v, want %+v", p, wator.DefaultParams())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative steps", func(c *Config) { c.Run.Steps = -1 }},
		{"zero trials", func(c *Config) { c.Sweep.Trials = 0 }},
		{"negative workers", func(c *Config) { c.Sweep.Workers = -2 }},
		{"unknown layout", func(c *Config) { c.Population.Layout = "spiral" }},
		{"zero rows", func(c *Config) { c.Grid.Rows = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
