// Package config loads environment-driven settings, optionally from a .env
// file in the working directory.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the TIDYLIST_* environment settings.
type Config struct {
	// LogPath, when set, receives a grouped log entry for every cleaned file.
	LogPath string
	// Overwrite allows rewriting list files in place. Defaults to true.
	Overwrite bool
	// Verbose echoes dropped entries to stderr.
	Verbose bool
}

// Load reads .env (if present) and the environment. A missing .env is not an
// error; unset variables keep their defaults.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{Overwrite: true}
	cfg.LogPath = os.Getenv("TIDYLIST_LOG")
	if v := os.Getenv("TIDYLIST_OVERWRITE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Overwrite = b
		}
	}
	if v := os.Getenv("TIDYLIST_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
	return cfg
}
