// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"lpboost/core/tier"
	"lpboost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing defaults
	Pricing PricingConfig `json:"pricing"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// BasePrice is the default price of the first LP step
	BasePrice float64 `json:"base_price"`

	// Currency is the quote currency code
	Currency string `json:"currency"`

	// Tiers maps growth-tier names to percentage rates
	Tiers map[string]float64 `json:"tiers"`

	// RateCardPath points to an operator rate card (HCL); when set it
	// overrides BasePrice, Currency, and Tiers
	RateCardPath string `json:"rate_card_path,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowTable shows the sampled progression table
	ShowTable bool `json:"show_table"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			BasePrice: 0.50,
			Currency:  "USD",
			Tiers: map[string]float64{
				"low":  tier.DefaultLowRate,
				"mid":  tier.DefaultMidRate,
				"high": tier.DefaultHighRate,
			},
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowTable:     true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file, falling back to defaults when the
// file does not exist
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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
func Set(cfg *Config) {
	globalConfig = cfg
}
