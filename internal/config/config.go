// Package config resolves runtime settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDB           = "POKERLOG_DB"
	EnvLogUseCases  = "POKERLOG_LOG_USE_CASES"
	EnvLogLevel     = "POKERLOG_LOG_LEVEL"
	EnvDotenvPath   = "POKERLOG_ENV_FILE"
	defaultDotenv   = ".env"
	defaultDataDir  = ".pokerlog"
	defaultDatabase = "pokerlog.db"
)

// Config holds everything main needs to wire the application.
type Config struct {
	DBPath      string
	LogUseCases bool
	LogLevel    slog.Level
}

// Default returns a Config rooted at ~/.pokerlog.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath:   filepath.Join(home, defaultDataDir, defaultDatabase),
		LogLevel: slog.LevelWarn,
	}, nil
}

// Load reads the .env file (if any) into the process environment without
// overriding variables that are already set, then applies overrides on top
// of Default. Unparseable values are ignored.
func Load() (Config, error) {
	envFile := os.Getenv(EnvDotenvPath)
	if envFile == "" {
		envFile = defaultDotenv
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg, err := Default()
	if err != nil {
		// Without a home directory the database path must come from the env.
		if os.Getenv(EnvDB) == "" {
			return Config{}, err
		}
		cfg = Config{LogLevel: slog.LevelWarn}
	}

	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.ToUpper(v))); err == nil {
			cfg.LogLevel = lvl
		}
	}
	return cfg, nil
}
