// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/bloom-classifier/internal/extraction"
	"github.com/jonathan/bloom-classifier/internal/rules"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Behavior
	APIKey      string `json:"api_key,omitempty"`
	Model       string `json:"model,omitempty"`
	Locale      string `json:"locale,omitempty" validate:"omitempty,oneof=en id"`
	BatchSize   int    `json:"batch_size,omitempty" validate:"omitempty,min=1,max=64"`
	DatabaseURL string `json:"database_url,omitempty"`
	Verbose     bool   `json:"verbose,omitempty"`

	// Server
	Port int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`

	// Tuning overrides the empirically set pipeline constants. Absent fields
	// keep their defaults.
	Tuning *TuningConfig `json:"tuning,omitempty"`
}

// TuningConfig mirrors the tunable constants of the segmenter and the rule
// engine. Pointer fields distinguish "absent" from an explicit zero.
type TuningConfig struct {
	DuplicateTriggerRatio *float64 `json:"duplicate_trigger_ratio,omitempty" validate:"omitempty,gte=0,lte=1"`
	HalfSimilarity        *float64 `json:"half_similarity,omitempty" validate:"omitempty,gte=0,lte=1"`
	UncertainCutoff       *float64 `json:"uncertain_cutoff,omitempty" validate:"omitempty,gte=0,lte=1"`
	UncertainConfidence   *float64 `json:"uncertain_confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
	MaxConfidence         *float64 `json:"max_confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("config error: field %s failed %s validation", e.Field(), e.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Locale == "" {
		result.Locale = defaults.Locale
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.BatchSize == 0 {
		result.BatchSize = defaults.BatchSize
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if result.Tuning == nil {
		result.Tuning = defaults.Tuning
	}

	return result
}

// SegmenterTuning builds the segmenter constants with any overrides applied.
func (c *Config) SegmenterTuning() extraction.Tuning {
	t := extraction.DefaultTuning()
	if c.Tuning == nil {
		return t
	}
	if c.Tuning.DuplicateTriggerRatio != nil {
		t.DuplicateTriggerRatio = *c.Tuning.DuplicateTriggerRatio
	}
	if c.Tuning.HalfSimilarity != nil {
		t.HalfSimilarity = *c.Tuning.HalfSimilarity
	}
	return t
}

// RulesTuning builds the rule engine constants with any overrides applied.
func (c *Config) RulesTuning() rules.Tuning {
	t := rules.DefaultTuning()
	if c.Tuning == nil {
		return t
	}
	if c.Tuning.UncertainCutoff != nil {
		t.UncertainCutoff = *c.Tuning.UncertainCutoff
	}
	if c.Tuning.UncertainConfidence != nil {
		t.UncertainConfidence = *c.Tuning.UncertainConfidence
	}
	if c.Tuning.MaxConfidence != nil {
		t.MaxConfidence = *c.Tuning.MaxConfidence
	}
	return t
}
