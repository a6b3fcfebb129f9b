// Package config loads and persists the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// Database configuration
	Database DatabaseConfig `toml:"database"`

	// Simulation defaults
	Simulation SimulationConfig `toml:"simulation"`

	// Chart output configuration
	Charts ChartsConfig `toml:"charts"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// DatabaseConfig contains card catalog database settings.
type DatabaseConfig struct {
	Path        string `toml:"path"`         // Path to SQLite database (empty = default location)
	AutoMigrate bool   `toml:"auto_migrate"` // Run schema migrations on open
}

// SimulationConfig contains Monte Carlo simulation defaults.
type SimulationConfig struct {
	Simulations int    `toml:"simulations"` // Trials per run
	Workers     int    `toml:"workers"`     // Parallel workers (0 = NumCPU)
	Turns       int    `toml:"turns"`       // Turn horizon per trial
	Seed        uint64 `toml:"seed"`        // Fixed seed (0 = random per run)
}

// ChartsConfig contains HTML chart output settings.
type ChartsConfig struct {
	OutputDir string `toml:"output_dir"` // Directory for rendered charts
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:        "",
			AutoMigrate: true,
		},
		Simulation: SimulationConfig{
			Simulations: 1000,
			Workers:     0,
			Turns:       10,
			Seed:        0,
		},
		Charts: ChartsConfig{
			OutputDir: "charts",
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// Dir returns the application data directory, creating it if needed.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".manalysis")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return dir, nil
}

// DatabasePath resolves the configured database path, defaulting to
// cards.db under the application data directory.
func (c *Config) DatabasePath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cards.db"), nil
}

func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads the configuration from disk. Returns default config if the
// file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from an explicit path. Returns
// default config if the file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo saves the configuration to an explicit path.
func (c *Config) SaveTo(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Simulation.Simulations < 0 {
		return fmt.Errorf("simulations cannot be negative: %d", c.Simulation.Simulations)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers cannot be negative: %d", c.Simulation.Workers)
	}
	if c.Simulation.Turns < 0 {
		return fmt.Errorf("turns cannot be negative: %d", c.Simulation.Turns)
	}
	if c.Charts.OutputDir == "" {
		return fmt.Errorf("charts output directory cannot be empty")
	}
	return nil
}
