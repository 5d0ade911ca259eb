// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Paths
	SkillsCSV string `json:"skills_csv,omitempty"` // Path to the skill vocabulary CSV

	// Upstream services
	JobAPIBaseURL string `json:"job_api_base_url,omitempty"` // Base URL of the job posting API
	JobAPIKey     string `json:"job_api_key,omitempty"`      // Bearer token for the job posting API
	DatabaseURL   string `json:"database_url,omitempty"`     // PostgreSQL connection URL

	// Behavior
	APIKey       string `json:"api_key,omitempty"`       // Gemini API key
	Port         int    `json:"port,omitempty"`          // HTTP listen port
	SystemPrompt string `json:"system_prompt,omitempty"` // System prompt for the chat assistant
	Verbose      bool   `json:"verbose,omitempty"`       // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.SkillsCSV != "" {
		if _, err := os.Stat(c.SkillsCSV); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills CSV not found: %s", c.SkillsCSV)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags and environment variables.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.SkillsCSV == "" {
		result.SkillsCSV = defaults.SkillsCSV
	}
	if result.JobAPIBaseURL == "" {
		result.JobAPIBaseURL = defaults.JobAPIBaseURL
	}
	if result.JobAPIKey == "" {
		result.JobAPIKey = defaults.JobAPIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SystemPrompt == "" {
		result.SystemPrompt = defaults.SystemPrompt
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FromEnv builds defaults from environment variables, the lowest-priority
// configuration source.
func FromEnv() Config {
	return Config{
		SkillsCSV:     os.Getenv("SKILLS_CSV"),
		JobAPIBaseURL: os.Getenv("JOB_API_BASE_URL"),
		JobAPIKey:     os.Getenv("JOB_API_KEY"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		APIKey:        os.Getenv("GEMINI_API_KEY"),
		SystemPrompt:  os.Getenv("SYSTEM_PROMPT"),
	}
}
