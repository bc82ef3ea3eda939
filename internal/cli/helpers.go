package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/coinwatch/coinprice/internal/core"
	"github.com/coinwatch/coinprice/internal/errors"
	"golang.org/x/term"
)

// outputJSON marshals and prints JSON to stdout.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// isTerminal checks if the given file descriptor is a TTY.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// getExitCode maps error codes to CLI exit codes.
func getExitCode(err error) int {
	if err == nil {
		return 0
	}

	code := errors.Code(err)
	switch code {
	case errors.CodeInvalidParams, errors.CodeUnknownTool:
		return 2 // Bad request
	case errors.CodePriceNotFound:
		return 3 // Price not found
	case errors.CodeUpstreamFailed:
		return 4 // Upstream failure
	case "":
		// Not a coinprice error - could be usage error
		return 1 // General error
	default:
		return 1 // General error
	}
}

// loadConfig loads the configuration from the config directory.
func loadConfig() (*core.Config, error) {
	configDir, err := core.ConfigDir()
	if err != nil {
		return nil, errors.ConfigInvalid(err)
	}

	cfg, err := core.LoadConfig(configDir)
	if err != nil {
		return nil, errors.ConfigInvalid(err)
	}

	return cfg, nil
}

// printError prints an error to stderr with appropriate formatting.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
