package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: sqlite
  url: "file:test.db"
jwt:
  secret_key: "s"
`)
	require.NoError(t, LoadConfig(dir))

	assert.Equal(t, DefaultServerPort, Cfg.Server.Port)
	assert.Equal(t, "sqlite", Cfg.Database.Driver)
	assert.True(t, Cfg.Auth.Enabled)
	assert.Equal(t, DefaultAccessTokenTTL, Cfg.JWT.AccessTokenTTL)
	assert.Equal(t, "none", Cfg.Audio.Provider)
	assert.Equal(t, "local", Cfg.Audio.Store)
	assert.Equal(t, DefaultAudioTimeout, Cfg.Audio.RequestTimeout)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, `
auth:
  enabled: true
database:
  url: "postgres://from-file"
audio:
  provider: polly
  request_timeout: 5s
`)
	t.Setenv("DATABASE_URL", "postgres://from-env")
	t.Setenv("AUTH_ENABLED", "false")

	require.NoError(t, LoadConfig(dir))

	assert.Equal(t, "postgres://from-env", Cfg.Database.URL)
	assert.False(t, Cfg.Auth.Enabled)
	assert.Equal(t, "polly", Cfg.Audio.Provider)
	assert.Equal(t, 5*time.Second, Cfg.Audio.RequestTimeout)
}
