package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if cfg.Simulation.Simulations != 1000 {
		t.Errorf("Simulations = %d, want 1000", cfg.Simulation.Simulations)
	}
	if !cfg.Database.AutoMigrate {
		t.Error("AutoMigrate should default to true")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative simulations", func(c *Config) { c.Simulation.Simulations = -1 }},
		{"negative workers", func(c *Config) { c.Simulation.Workers = -2 }},
		{"negative turns", func(c *Config) { c.Simulation.Turns = -1 }},
		{"empty charts dir", func(c *Config) { c.Charts.OutputDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Simulation.Simulations = 5000
	cfg.Simulation.Seed = 42
	cfg.Database.Path = "/tmp/cards.db"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Simulation.Simulations != 5000 {
		t.Errorf("Simulations = %d, want 5000", loaded.Simulation.Simulations)
	}
	if loaded.Simulation.Seed != 42 {
		t.Errorf("Seed = %d, want 42", loaded.Simulation.Seed)
	}
	if loaded.Database.Path != "/tmp/cards.db" {
		t.Errorf("Database.Path = %q", loaded.Database.Path)
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Simulation.Simulations != DefaultConfig().Simulation.Simulations {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestDatabasePathPrefersExplicit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Path = "/data/cards.db"

	path, err := cfg.DatabasePath()
	if err != nil {
		t.Fatalf("DatabasePath: %v", err)
	}
	if path != "/data/cards.db" {
		t.Errorf("DatabasePath = %q, want explicit path", path)
	}
}
