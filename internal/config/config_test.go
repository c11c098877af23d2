package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(EnvDotenvPath, filepath.Join(dir, "missing.env"))
	t.Setenv(EnvDB, "")
	t.Setenv(EnvLogUseCases, "")
	t.Setenv(EnvLogLevel, "")
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".pokerlog", "pokerlog.db"), cfg.DBPath)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDB, "/tmp/poker.db")
	t.Setenv(EnvLogUseCases, "true")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/poker.db", cfg.DBPath)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_InvalidValuesIgnored(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLogUseCases, "sometimes")
	t.Setenv(EnvLogLevel, "loud")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoad_DotenvFile(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, "pokerlog.env")
	require.NoError(t, os.WriteFile(envFile, []byte("POKERLOG_DB=/data/from-dotenv.db\nPOKERLOG_LOG_USE_CASES=1\n"), 0o644))
	t.Setenv(EnvDotenvPath, envFile)
	// godotenv only fills variables that are unset.
	require.NoError(t, os.Unsetenv(EnvDB))
	require.NoError(t, os.Unsetenv(EnvLogUseCases))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/from-dotenv.db", cfg.DBPath)
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_DotenvDoesNotOverrideEnv(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, "pokerlog.env")
	require.NoError(t, os.WriteFile(envFile, []byte("POKERLOG_DB=/data/from-dotenv.db\n"), 0o644))
	t.Setenv(EnvDotenvPath, envFile)
	t.Setenv(EnvDB, "/data/from-env.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/from-env.db", cfg.DBPath)
}
