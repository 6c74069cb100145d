// Package config loads application configuration from an optional YAML file
// and environment variables. Environment variables win.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// database
	DatabasePath string `yaml:"database_path"`

	// logging
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Load reads configuration with sensible defaults. If JOBTRACK_CONFIG points
// at a YAML file (or jobtrack.yaml exists in the working directory) it is
// applied first, then environment variables override.
func Load() (*Config, error) {
	cfg := &Config{
		DatabasePath: filepath.Join(defaultDataDir(), "jobs.db"),
		LogLevel:     "info",
		LogFile:      "",
	}

	if path := configFile(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.DatabasePath = getEnv("JOBTRACK_DB", cfg.DatabasePath)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)

	return cfg, nil
}

// configFile returns the config file to load, empty when there is none.
func configFile() string {
	if path := os.Getenv("JOBTRACK_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat("jobtrack.yaml"); err == nil {
		return "jobtrack.yaml"
	}
	return ""
}

// defaultDataDir places the database under the user home, falling back to
// the working directory when the home cannot be resolved.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jobtrack"
	}
	return filepath.Join(home, ".jobtrack")
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
