package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.BaseURL != "https://api.coingecko.com/api/v3" {
		t.Errorf("expected coingecko base URL, got %q", cfg.API.BaseURL)
	}

	if cfg.API.TimeoutMS != 15000 {
		t.Errorf("expected timeout 15000ms, got %d", cfg.API.TimeoutMS)
	}

	if cfg.Defaults.Currency != "usd" {
		t.Errorf("expected default currency usd, got %q", cfg.Defaults.Currency)
	}
}

func TestLoadConfig_DefaultsWhenFileDoesntExist(t *testing.T) {
	tempDir := t.TempDir()

	cfg, err := LoadConfig(tempDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults when file doesn't exist
	if cfg.API.BaseURL != "https://api.coingecko.com/api/v3" {
		t.Errorf("expected default base URL, got %q", cfg.API.BaseURL)
	}

	if cfg.Defaults.Currency != "usd" {
		t.Errorf("expected default currency, got %q", cfg.Defaults.Currency)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	tempDir := t.TempDir()

	// Create a config file with custom values
	customConfig := &Config{
		API: APIConfig{
			BaseURL:   "https://coingecko.example.test/api/v3",
			TimeoutMS: 3000,
		},
		Defaults: DefaultsConfig{
			Currency: "eur",
		},
	}

	data, err := json.Marshal(customConfig)
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}

	configPath := filepath.Join(tempDir, "config.json")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(tempDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "https://coingecko.example.test/api/v3" {
		t.Errorf("expected custom base URL, got %q", cfg.API.BaseURL)
	}

	if cfg.API.TimeoutMS != 3000 {
		t.Errorf("expected timeout 3000ms, got %d", cfg.API.TimeoutMS)
	}

	if cfg.Defaults.Currency != "eur" {
		t.Errorf("expected currency eur, got %q", cfg.Defaults.Currency)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "config.json")
	if err := os.WriteFile(configPath, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := LoadConfig(tempDir)
	if err == nil {
		t.Fatal("expected error for invalid config.json")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	tempDir := t.TempDir()

	t.Setenv("COINPRICE_API_BASE_URL", "http://127.0.0.1:9999/api/v3")
	t.Setenv("COINPRICE_TIMEOUT_MS", "500")
	t.Setenv("COINPRICE_DEFAULT_CURRENCY", "gbp")

	cfg, err := LoadConfig(tempDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "http://127.0.0.1:9999/api/v3" {
		t.Errorf("expected env base URL, got %q", cfg.API.BaseURL)
	}

	if cfg.API.TimeoutMS != 500 {
		t.Errorf("expected timeout 500ms, got %d", cfg.API.TimeoutMS)
	}

	if cfg.Defaults.Currency != "gbp" {
		t.Errorf("expected currency gbp, got %q", cfg.Defaults.Currency)
	}
}

func TestLoadConfig_InvalidEnvTimeout(t *testing.T) {
	tempDir := t.TempDir()

	t.Setenv("COINPRICE_TIMEOUT_MS", "not-a-number")

	_, err := LoadConfig(tempDir)
	if err == nil {
		t.Fatal("expected error for invalid COINPRICE_TIMEOUT_MS")
	}
}

func TestHTTPTimeout(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HTTPTimeout() != 15*time.Second {
		t.Errorf("expected 15s, got %v", cfg.HTTPTimeout())
	}
}
