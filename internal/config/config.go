package config

import (
	"fmt"
	"runtime"
	"time"
)

// Config holds the global configuration for an assembly run
type Config struct {
	// Input settings
	InputFile string
	RolesFile string // Path to role-classification YAML file (empty = defaults)

	// Output settings
	OutputFile string
	Projection int // Target SRID (4326 or 3857)

	// Processing settings
	Workers int

	// Relation selection
	RelationID int64 // Assemble a single relation (0 = all multipolygon relations)

	// Logging and metrics
	Verbose         bool
	LogFile         string        // Path to log file (empty = no file logging)
	MetricsInterval time.Duration // Interval for system metrics logging (0 = disabled)
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		OutputFile: "multipolygons.geojson",
		Projection: 3857, // assemble in planar coordinates by default
		Workers:    runtime.NumCPU(),
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("input file is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if c.Projection != 4326 && c.Projection != 3857 {
		return fmt.Errorf("unsupported projection: %d (supported: 4326, 3857)", c.Projection)
	}
	return nil
}
