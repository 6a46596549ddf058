package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the simulation configuration.
type Config struct {
	Seed           int64  `yaml:"seed"`
	GeneratorType  string `yaml:"generator_type"` // "default" or "flat"
	RenderDistance int    `yaml:"render_distance"`
	MeshBudget     int    `yaml:"mesh_budget"` // dirty-mesh rebuilds per tick
	Workers        int    `yaml:"workers"`     // mesh/generation worker goroutines
	TickRate       int    `yaml:"tick_rate"`   // simulation ticks per second
	MetricsAddr    string `yaml:"metrics_addr"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		GeneratorType:  "default",
		RenderDistance: 8,
		MeshBudget:     4,
		Workers:        runtime.NumCPU(),
		TickRate:       20,
		MetricsAddr:    ":9090",
	}
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["generator"] {
		cfg.GeneratorType = fromFile.GeneratorType
	}
	if !explicitFlags["render-distance"] {
		cfg.RenderDistance = fromFile.RenderDistance
	}
	if !explicitFlags["mesh-budget"] {
		cfg.MeshBudget = fromFile.MeshBudget
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
	if !explicitFlags["tick-rate"] {
		cfg.TickRate = fromFile.TickRate
	}
	if !explicitFlags["metrics-addr"] {
		cfg.MetricsAddr = fromFile.MetricsAddr
	}
}

// Validate reports configuration values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.RenderDistance < 1 {
		return fmt.Errorf("render_distance must be at least 1, got %d", c.RenderDistance)
	}
	if c.MeshBudget < 1 {
		return fmt.Errorf("mesh_budget must be at least 1, got %d", c.MeshBudget)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.TickRate < 1 {
		return fmt.Errorf("tick_rate must be at least 1, got %d", c.TickRate)
	}
	switch c.GeneratorType {
	case "default", "flat":
	default:
		return fmt.Errorf("unknown generator_type %q", c.GeneratorType)
	}
	return nil
}
