package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carpoolhub/internal/config"
)

func setBootstrapEnv(t *testing.T, store string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CONFIG_FILE", filepath.Join(dir, "does-not-exist.toml"))
	t.Setenv("SESSION_SECRET", "test-secret-value-0123456789")
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "test.db"))
	t.Setenv("SESSION_STORE", store)
}

func TestNewWithCookieStore(t *testing.T) {
	setBootstrapEnv(t, config.SessionStoreCookie)

	app, err := New(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	assert.NotNil(t, app.SessionStore)
	// The cookie store never touches redis.
	assert.Nil(t, app.Redis)
}

func TestNewWithUnreachableRedisFails(t *testing.T) {
	setBootstrapEnv(t, config.SessionStoreRedis)
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")

	_, err := New(context.Background())
	assert.Error(t, err)
}

func TestNewWithRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	setBootstrapEnv(t, config.SessionStoreRedis)
	t.Setenv("REDIS_ADDR", mr.Addr())

	app, err := New(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	assert.NotNil(t, app.Redis)
	assert.NotNil(t, app.SessionStore)
}
