// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"fabcost/core/model"
	"fabcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Models contains default cost-model coefficients
	Models ModelsConfig `json:"models"`

	// Domain contains default sampling settings
	Domain DomainConfig `json:"domain"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Chart contains figure rendering configuration
	Chart ChartConfig `json:"chart"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ModelsConfig contains default cost-model coefficients
type ModelsConfig struct {
	// Volume holds the volume model defaults
	Volume model.VolumeCostModel `json:"volume"`

	// Complexity holds the complexity model defaults
	Complexity model.ComplexityCostModel `json:"complexity"`
}

// DomainConfig contains default sampling settings
type DomainConfig struct {
	// MaxVolume is the upper bound of the volume domain
	MaxVolume float64 `json:"max_volume"`

	// MaxComplexity is the upper bound of the complexity domain
	MaxComplexity float64 `json:"max_complexity"`

	// Points is the number of samples per curve
	Points int `json:"points"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default summary format (cli, json, markdown)
	DefaultFormat string `json:"default_format"`

	// SavePath is a default figure path; empty disables saving
	SavePath string `json:"save_path,omitempty"`

	// NoShow suppresses the interactive chart window
	NoShow bool `json:"no_show"`
}

// ChartConfig contains figure rendering settings
type ChartConfig struct {
	// WidthInches is the figure width
	WidthInches float64 `json:"width_inches"`

	// HeightInches is the figure height
	HeightInches float64 `json:"height_inches"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Models: ModelsConfig{
			Volume:     model.DefaultVolumeModel(),
			Complexity: model.DefaultComplexityModel(),
		},
		Domain: DomainConfig{
			MaxVolume:     100.0,
			MaxComplexity: 100.0,
			Points:        500,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Chart: ChartConfig{
			WidthInches:  14,
			HeightInches: 6,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
