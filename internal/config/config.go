// Package config reads the process configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Run modes.
const (
	ModeCLI   = "cli"
	ModeServe = "serve"
)

type Config struct {
	// Mode selects the boundary layer: the interactive menu (cli) or the
	// local HTTP API (serve).
	Mode string

	// DataDir holds both persisted stores.
	DataDir          string
	BudgetsFile      string
	TransactionsFile string

	// HTTP server (serve mode only)
	Port int
}

// Load reads the configuration. A .env file in the working directory is
// applied first if present; real environment variables win over it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Mode:             getEnv("BUDGETS_MODE", ModeCLI),
		DataDir:          getEnv("DATA_DIR", "data"),
		BudgetsFile:      getEnv("BUDGETS_FILE", "current_budgets.csv"),
		TransactionsFile: getEnv("TRANSACTIONS_FILE", "last_uploaded_transactions.csv"),
		Port:             getEnvInt("PORT", 8080),
	}
}

// Validate reports configuration values the process cannot start with.
func (c Config) Validate() error {
	if c.Mode != ModeCLI && c.Mode != ModeServe {
		return fmt.Errorf("invalid mode %q: must be %q or %q", c.Mode, ModeCLI, ModeServe)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	return nil
}

// BudgetsPath returns the full path of the budget store.
func (c Config) BudgetsPath() string {
	return filepath.Join(c.DataDir, c.BudgetsFile)
}

// TransactionsPath returns the full path of the transaction store.
func (c Config) TransactionsPath() string {
	return filepath.Join(c.DataDir, c.TransactionsFile)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}
