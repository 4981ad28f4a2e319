package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for sp
type Config struct {
	// Matching behavior
	Parallel   bool `yaml:"parallel" env:"SP_PARALLEL"`
	FilterOnly bool `yaml:"filter_only" env:"SP_FILTER_ONLY"`

	// Workers is the parallel pool size; zero selects one worker per CPU
	Workers int `yaml:"workers" env:"SP_WORKERS"`

	// Highlight is the hex color used to mark matches
	Highlight string `yaml:"highlight" env:"SP_HIGHLIGHT"`

	// Log file rotation
	Log LogConfig `yaml:"log"`
}

// LogConfig holds log file rotation settings
type LogConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days"`
	Compress   bool `yaml:"compress"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Highlight: "#706EFF",
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load loads configuration from file and environment. An explicit path
// wins over the discovered config file location; empty means discover.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := path
	if configPath == "" {
		configPath = getConfigPath()
	}
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("SP_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "sp", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "sp", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (flag, env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if parallel := os.Getenv("SP_PARALLEL"); parallel != "" {
		switch parallel {
		case "true", "1", "yes":
			cfg.Parallel = true
		case "false", "0", "no":
			cfg.Parallel = false
		default:
			return fmt.Errorf("invalid SP_PARALLEL value: %q (use true/false)", parallel)
		}
	}

	if filter := os.Getenv("SP_FILTER_ONLY"); filter != "" {
		switch filter {
		case "true", "1", "yes":
			cfg.FilterOnly = true
		case "false", "0", "no":
			cfg.FilterOnly = false
		default:
			return fmt.Errorf("invalid SP_FILTER_ONLY value: %q (use true/false)", filter)
		}
	}

	if workers := os.Getenv("SP_WORKERS"); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return fmt.Errorf("invalid SP_WORKERS: %w", err)
		}
		cfg.Workers = n
	}

	if highlight := os.Getenv("SP_HIGHLIGHT"); highlight != "" {
		cfg.Highlight = highlight
	}

	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must be non-negative")
	}

	if cfg.Highlight == "" {
		return fmt.Errorf("highlight color must not be empty")
	}

	if cfg.Log.MaxSizeMB < 0 {
		return fmt.Errorf("log.max_size_mb must be non-negative")
	}

	if cfg.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_backups must be non-negative")
	}

	if cfg.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log.max_age_days must be non-negative")
	}

	return nil
}
