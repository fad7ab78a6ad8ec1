package main

import (
	"os"
	"path/filepath"
	"testing"

	"elevsim/src/config"
)

func TestLoadConfigFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := os.WriteFile(path, []byte("num_rounds: 15\nseed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name   string
		args   []string
		rounds int
		seed   int64
	}{
		{"defaults", nil, config.NumRounds, 1},
		{"file only", []string{"-config", path}, 15, 7},
		{"explicit zero seed", []string{"-config", path, "-seed", "0"}, 15, 0},
		{"explicit rounds", []string{"-config", path, "-rounds", "3"}, 3, 7},
		{"explicit zero rounds", []string{"-rounds", "0"}, 0, 1},
	}
	for _, tc := range testCases {
		cfg, err := loadConfig(tc.args)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if cfg.NumRounds != tc.rounds || cfg.Seed != tc.seed {
			t.Errorf("%s: got rounds %d seed %d, expected rounds %d seed %d",
				tc.name, cfg.NumRounds, cfg.Seed, tc.rounds, tc.seed)
		}
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig([]string{"-rounds", "many"}); err == nil {
		t.Error("Expected an error for a non-integer round count")
	}
	if _, err := loadConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.NumRounds = 0
	if _, err := run(cfg); err == nil {
		t.Error("Expected an error for zero rounds")
	}
}
