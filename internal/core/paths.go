package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDir returns the base configuration directory for coinprice.
// It follows the XDG Base Directory Specification:
// - $COINPRICE_CONFIG_DIR (full override)
// - $XDG_CONFIG_HOME/coinprice
// - ~/.config/coinprice (fallback)
func ConfigDir() (string, error) {
	// Check for full override
	if dir := os.Getenv("COINPRICE_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	// Check XDG_CONFIG_HOME
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "coinprice"), nil
	}

	// Fallback to ~/.config/coinprice
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".config", "coinprice"), nil
}
