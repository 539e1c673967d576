package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the simulation driver
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Delay          time.Duration `json:"delay"`
	Iterations     int           `json:"iterations"`
	Pattern        string        `json:"pattern"`
	PatternX       int           `json:"pattern_x"`
	PatternY       int           `json:"pattern_y"`
	RandomDensity  float64       `json:"random_density"`
	Seed           int64         `json:"seed"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	ReportInterval time.Duration `json:"report_interval"`
	ShowGrid       bool          `json:"show_grid"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          60,
		Height:         30,
		Delay:          150 * time.Millisecond,
		Iterations:     1000,
		Pattern:        "glider",
		PatternX:       5,
		PatternY:       5,
		RandomDensity:  0.15,
		Seed:           1,
		UseMemoryPool:  true,
		ReportInterval: 2 * time.Second,
		ShowGrid:       true,
	}
}

// LoadConfig loads configuration from JSON file on top of DefaultConfig
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values a simulation run cannot work with.
// Iterations of -1 means run until interrupted.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.Delay < 0:
		return errors.Wrapf(ErrInvalidConfig, "delay must not be negative, got %v", c.Delay)
	case c.Iterations < -1:
		return errors.Wrapf(ErrInvalidConfig, "iterations must be -1 or more, got %d", c.Iterations)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density must be within [0,1], got %v", c.RandomDensity)
	case c.ReportInterval < 0:
		return errors.Wrapf(ErrInvalidConfig, "report_interval must not be negative, got %v", c.ReportInterval)
	}
	return nil
}
