// Package config provides configuration types and defaults for dv2.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/log"
	"github.com/Open-Technology-Foundation/dejavu2-cli/internal/presentation"
)

// Config holds all configuration options for dv2.
type Config struct {
	ModelsFile    string       `mapstructure:"models_file"`
	AgentsFile    string       `mapstructure:"agents_file"`
	CaseSensitive bool         `mapstructure:"case_sensitive"`
	Output        OutputConfig `mapstructure:"output"`
	Sort          SortConfig   `mapstructure:"sort"`
}

// OutputConfig holds default rendering options; command-line flags override
// them per invocation.
type OutputConfig struct {
	Format   string `mapstructure:"format"`
	NoHeader bool   `mapstructure:"no_header"`
	GroupBy  string `mapstructure:"group_by"` // tree grouping field
}

// SortConfig holds the default ordering applied when --sort is not given.
type SortConfig struct {
	Fields  []string `mapstructure:"fields"`
	Reverse bool     `mapstructure:"reverse"`
}

// DefaultConfigDir returns ~/.config/dv2, or empty when the home directory
// is unavailable.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "dv2")
}

// DefaultModelsFile returns the default model registry location.
func DefaultModelsFile() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return "Models.json"
	}
	return filepath.Join(dir, "Models.json")
}

// DefaultAgentsFile returns the default agent registry location.
func DefaultAgentsFile() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return "Agents.json"
	}
	return filepath.Join(dir, "Agents.json")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		ModelsFile: DefaultModelsFile(),
		AgentsFile: DefaultAgentsFile(),
		Output: OutputConfig{
			Format: "table",
		},
	}
}

// Validate checks the configuration for errors.
func Validate(cfg Config) error {
	if _, err := presentation.New(cfg.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	for i, field := range cfg.Sort.Fields {
		if field == "" {
			return fmt.Errorf("sort.fields[%d]: field name is empty", i)
		}
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with
// comments.
func DefaultConfigTemplate() string {
	return `# dv2 configuration

# Registry file locations
# models_file: ~/.config/dv2/Models.json
# agents_file: ~/.config/dv2/Agents.json

# Case-sensitive string matching in filters and sorting
case_sensitive: false

# Output defaults (overridden by command-line flags)
output:
  format: table     # table, json, csv, yaml, tree
  no_header: false
  # group_by: parent  # grouping field for the tree format

# Default ordering applied when --sort is not given
# sort:
#   fields: [parent, model]
#   reverse: false
`
}

// WriteDefault creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefault(configPath string) error {
	log.Debug(log.CatConfig, "writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "created default config", "path", configPath)
	return nil
}
