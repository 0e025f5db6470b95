package config

import (
	"os"
	"strings"
)

const (
	defaultAppName     = "Ryz Labs Wallet Terminal"
	defaultLogLevel    = "info"
	defaultLogDir      = "logs"
	defaultHistoryFile = "history.txt"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName     string
	LogLevel    string
	LogDir      string
	HistoryFile string
	// Address is offered as the default wallet address when the user enters
	// a blank one at the prompt. Empty means no default.
	Address string
}

// Load reads configuration values from the environment and populates a Config
// instance. Every value has a usable default; nothing is required.
func Load() Config {
	return Config{
		AppName:     getEnv("APP_NAME", defaultAppName),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		LogDir:      getEnv("LOG_DIR", defaultLogDir),
		HistoryFile: getEnv("HISTORY_FILE", defaultHistoryFile),
		Address:     os.Getenv("WALLET_ADDRESS"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
