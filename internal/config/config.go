// Package config loads findfiles configuration from YAML and merges it
// with command-line flags. Flags always take precedence over file values,
// which take precedence over defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the per-directory configuration file name.
const DefaultConfigFile = ".findfiles.yaml"

// Config represents findfiles configuration options
type Config struct {
	// Sort is the default sort specification (p/n/s/c/m letters, '-' for
	// descending) applied when no --sort flag is given
	Sort string `yaml:"sort"`

	// Output selects the default output mode: table, tab or bare
	Output string `yaml:"output"`

	// GroupDirs groups table output under parent-directory headings
	GroupDirs bool `yaml:"group_dirs"`

	// LogLevel sets the logging verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables file logging when set to a directory path
	LogDir string `yaml:"log_dir"`

	// Shell is the shell used to run --execute command lines
	Shell string `yaml:"shell"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Sort:     "p",
		Output:   "table",
		LogLevel: "info",
		LogDir:   "",
		Shell:    "/bin/sh",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from the file over the defaults.
	if fileCfg.Sort != "" {
		cfg.Sort = fileCfg.Sort
	}
	if fileCfg.Output != "" {
		cfg.Output = fileCfg.Output
	}
	if fileCfg.GroupDirs {
		cfg.GroupDirs = fileCfg.GroupDirs
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.Shell != "" {
		cfg.Shell = fileCfg.Shell
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .findfiles.yaml in the given
// directory, falling back to defaults when the file is absent.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultConfigFile))
}

// MergeWithFlags overrides config values with CLI flag values.
// Only non-nil pointers (flags explicitly set) are applied.
func (c *Config) MergeWithFlags(sort, output, logLevel, logDir *string, groupDirs *bool) {
	if sort != nil {
		c.Sort = *sort
	}
	if output != nil {
		c.Output = *output
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if groupDirs != nil {
		c.GroupDirs = *groupDirs
	}
}

// Validate checks that the merged configuration is usable.
func (c *Config) Validate() error {
	switch c.Output {
	case "table", "tab", "bare":
	default:
		return fmt.Errorf("invalid output mode %q (expected table, tab or bare)", c.Output)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", c.LogLevel)
	}

	if c.Shell == "" {
		return fmt.Errorf("shell must not be empty")
	}

	return nil
}
