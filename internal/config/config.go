// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Record   string `json:"record,omitempty"`   // Path to experience record JSON
	Policy   string `json:"policy,omitempty"`   // Path to policy tables JSON (empty uses built-in)
	Template string `json:"template,omitempty"` // Path to LaTeX template
	Output   string `json:"output,omitempty"`   // Output directory

	// Sources
	Sources []string `json:"sources,omitempty"` // Job posting sources: URLs, files, or raw text

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA sites
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	RenderLaTeX bool   `json:"render_latex,omitempty"` // Also render a .tex (and .pdf when pdflatex exists)
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for run persistence

	// Limits
	MaxSkills int `json:"max_skills,omitempty"` // Maximum skills in the rendered resume
	MinRoles  int `json:"min_roles,omitempty"`  // Minimum roles in the rendered resume
	MaxRoles  int `json:"max_roles,omitempty"`  // Maximum roles in the rendered resume

	// Confidence overrides (0 uses defaults)
	ExactConfidence   float64 `json:"exact_confidence,omitempty"`
	DomainConfidence  float64 `json:"domain_confidence,omitempty"`
	SynonymConfidence float64 `json:"synonym_confidence,omitempty"`
}

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
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxSkills < 0 {
		return fmt.Errorf("config error: 'max_skills' must be non-negative")
	}
	if c.MinRoles < 0 || c.MaxRoles < 0 {
		return fmt.Errorf("config error: role limits must be non-negative")
	}
	if c.MaxRoles > 0 && c.MinRoles > c.MaxRoles {
		return fmt.Errorf("config error: 'min_roles' must not exceed 'max_roles'")
	}

	for _, conf := range []struct {
		name  string
		value float64
	}{
		{"exact_confidence", c.ExactConfidence},
		{"domain_confidence", c.DomainConfidence},
		{"synonym_confidence", c.SynonymConfidence},
	} {
		if conf.value < 0 || conf.value > 1 {
			return fmt.Errorf("config error: '%s' must be in [0, 1]", conf.name)
		}
	}

	if c.Record != "" {
		if _, err := os.Stat(c.Record); os.IsNotExist(err) {
			return fmt.Errorf("config error: record file not found: %s", c.Record)
		}
	}
	if c.Policy != "" {
		if _, err := os.Stat(c.Policy); os.IsNotExist(err) {
			return fmt.Errorf("config error: policy file not found: %s", c.Policy)
		}
	}
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Record == "" {
		result.Record = defaults.Record
	}
	if result.Policy == "" {
		result.Policy = defaults.Policy
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if len(result.Sources) == 0 {
		result.Sources = defaults.Sources
	}

	if result.MaxSkills == 0 {
		result.MaxSkills = defaults.MaxSkills
	}
	if result.MinRoles == 0 {
		result.MinRoles = defaults.MinRoles
	}
	if result.MaxRoles == 0 {
		result.MaxRoles = defaults.MaxRoles
	}

	if result.ExactConfidence == 0 {
		result.ExactConfidence = defaults.ExactConfidence
	}
	if result.DomainConfidence == 0 {
		result.DomainConfidence = defaults.DomainConfidence
	}
	if result.SynonymConfidence == 0 {
		result.SynonymConfidence = defaults.SynonymConfidence
	}

	return result
}
