package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingSecretFails(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "does-not-exist.toml"))
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingSessionSecret)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
[app]
port = 9090

[session]
secret = "file-secret-value"
store = "cookie"

[sqlite]
path = "/tmp/test-carpool.db"
`)
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "file-secret-value", cfg.Session.Secret)
	assert.Equal(t, "/tmp/test-carpool.db", cfg.SQLite.Path)
	// Untouched fields keep their defaults.
	assert.Equal(t, "carpoolhub", cfg.Session.CookieName)
	assert.Equal(t, SessionStoreCookie, cfg.Session.Store)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
[app]
port = 9090

[session]
secret = "file-secret-value"
`)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("APP_PORT", "7070")
	t.Setenv("SESSION_SECRET", "env-secret-value")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.App.Port)
	assert.Equal(t, "env-secret-value", cfg.Session.Secret)
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	path := writeConfigFile(t, `
[session]
secret = "file-secret-value"
store = "memcached"
`)
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestHTTPAddr(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.Host = "127.0.0.1"
	cfg.App.Port = 8081
	assert.Equal(t, "127.0.0.1:8081", cfg.HTTPAddr())
}
