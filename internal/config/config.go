// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/resume-studio/internal/types"
)

// Config represents the application configuration, loadable from a JSON file
// with environment-variable overrides. All fields are optional; missing
// values use defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Paths
	DataDir string `json:"data_dir,omitempty"` // SQLite state directory
	OutDir  string `json:"out_dir,omitempty"`  // Export output directory

	// AI service
	APIKey string `json:"api_key,omitempty"` // Gemini API key

	// Export
	ChromePath string `json:"chrome_path,omitempty"` // Chrome/Chromium binary for PDF rasterizing
	Template   string `json:"template,omitempty"`    // Default resume template name

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the configuration used when nothing is specified.
func Defaults() Config {
	return Config{
		Port:     8080,
		DataDir:  "data",
		OutDir:   "exports",
		Template: string(types.TemplateClassic),
	}
}

// Load loads configuration from a JSON file. Returns an error if the file
// cannot be read or parsed.
func Load(path string) (*Config, error) {
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

// ApplyEnv overrides fields from environment variables. GEMINI_API_KEY always
// wins over the config file so keys need not be written to disk.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("CHROME_PATH"); v != "" {
		c.ChromePath = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		c.DataDir = v
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in 0-65535, got %d", c.Port)
	}
	if c.Template != "" && !types.Template(c.Template).Valid() {
		return fmt.Errorf("config error: unknown template %q", c.Template)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
