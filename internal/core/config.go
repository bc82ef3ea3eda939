package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds global configuration for coinprice.
type Config struct {
	API      APIConfig      `json:"api"`
	Defaults DefaultsConfig `json:"defaults"`
}

// APIConfig holds settings for the upstream price API.
type APIConfig struct {
	BaseURL   string `json:"base_url"`
	TimeoutMS int    `json:"timeout_ms"`
}

// DefaultsConfig holds default values for lookups.
type DefaultsConfig struct {
	Currency string `json:"currency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "https://api.coingecko.com/api/v3",
			TimeoutMS: 15000,
		},
		Defaults: DefaultsConfig{
			Currency: "usd",
		},
	}
}

// LoadConfig loads configuration from config.json in the config directory.
// Falls back to default configuration if config.json doesn't exist.
// Environment variables override both file and default values.
func LoadConfig(configDir string) (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config.json
	configPath := filepath.Join(configDir, "config.json")
	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config.json: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config.json: %w", err)
	}
	// If file doesn't exist, we continue with defaults

	// Apply environment variable overrides
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) error {
	if val, ok := os.LookupEnv("COINPRICE_API_BASE_URL"); ok {
		cfg.API.BaseURL = val
	}

	if val, ok := os.LookupEnv("COINPRICE_TIMEOUT_MS"); ok {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid COINPRICE_TIMEOUT_MS: %w", err)
		}
		cfg.API.TimeoutMS = parsed
	}

	if val, ok := os.LookupEnv("COINPRICE_DEFAULT_CURRENCY"); ok {
		cfg.Defaults.Currency = val
	}

	return nil
}

// HTTPTimeout returns the configured upstream timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.API.TimeoutMS) * time.Millisecond
}
