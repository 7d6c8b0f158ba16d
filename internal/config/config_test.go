package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigToml = `
[development]
host = "localhost"
port = 9000
log_level = "trace"
log_to_stdout = true
data_root = "./data"
store_backend = "memory"

[production]
host = ""
port = 9000
log_level = "debug"
logs_path = "/var/log/gymplan/service.log"
data_root = "/var/lib/gymplan/data"
store_backend = "postgres"
store_fallback_enabled = true
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "gymplan"
database_rate_limit = 120
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigToml), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestConfig(t)

	cfg, err := Load("development", path)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.True(t, cfg.LogToStdout)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.Equal(t, "development", cfg.Environment)

	cfg, err = Load("prod", path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.StoreBackend)
	assert.True(t, cfg.StoreFallbackEnabled)
	assert.Equal(t, 120, cfg.DatabaseRateLimit)
	assert.Equal(t, "prod", cfg.Environment)
}

func TestLoad_UnknownEnv(t *testing.T) {
	path := writeTestConfig(t)
	_, err := Load("staging", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown env")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("development", "/nope/config.toml")
	require.Error(t, err)
}
