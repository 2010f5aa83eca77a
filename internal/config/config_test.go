package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"STORE_URL", "SUPABASE_URL", "DATABASE_URL",
		"STORE_SERVICE_KEY", "SUPABASE_SERVICE_ROLE_KEY", "STORE_QUERY_TIMEOUT",
		"HTTP_ADDR", "PORT", "TRANSPORT_VARIANT", "MAX_DURATION",
		"AUTH_REQUIRED", "KAFKA_ENABLED", "KAFKA_BROKERS", "KAFKA_TOPIC", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
	// keep .env files near the package dir out of the picture
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "standard", cfg.Server.Transport)
	assert.Equal(t, 25*time.Second, cfg.Server.MaxDuration)
	assert.Equal(t, 8*time.Second, cfg.Store.Timeout())
	assert.True(t, cfg.Auth.Required)
	assert.ErrorIs(t, cfg.Store.Validate(), ErrMissingStoreConfig)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "invaders.yaml")
	yamlData := `
store:
  url: postgres://file-host/db
  service_key: file-key
  query_timeout: 12s
server:
  transport: edge
  max_duration: 10s
auth:
  required: false
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0o644))

	t.Setenv("STORE_URL", "postgres://env-host/db")
	t.Setenv("PORT", "8080")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env-host/db", cfg.Store.URL)
	assert.Equal(t, "file-key", cfg.Store.ServiceKey)
	assert.Equal(t, 12*time.Second, cfg.Store.Timeout())
	assert.Equal(t, "edge", cfg.Server.Transport)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.False(t, cfg.Auth.Required)
	assert.NoError(t, cfg.Store.Validate())
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUPABASE_URL", "postgres://legacy/db")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "legacy-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://legacy/db", cfg.Store.URL)
	assert.Equal(t, "legacy-key", cfg.Store.ServiceKey)
}

func TestLoad_InvalidEnv(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad timeout", key: "STORE_QUERY_TIMEOUT", val: "soon"},
		{name: "bad duration", key: "MAX_DURATION", val: "25"},
		{name: "bad bool", key: "AUTH_REQUIRED", val: "maybe"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestStoreConfig_Timeout(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{in: 0, want: DefaultQueryTimeout},
		{in: 100 * time.Millisecond, want: MinQueryTimeout},
		{in: 10 * time.Second, want: 10 * time.Second},
		{in: time.Minute, want: MaxQueryTimeout},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, StoreConfig{QueryTimeout: tc.in}.Timeout(), tc.in.String())
	}
}

func TestServerConfig_WarnDelay(t *testing.T) {
	assert.Equal(t, 20*time.Second, ServerConfig{MaxDuration: 25 * time.Second}.WarnDelay())
	assert.Equal(t, 5*time.Second, ServerConfig{MaxDuration: 25 * time.Second, WarnAfter: 5 * time.Second}.WarnDelay())
}
