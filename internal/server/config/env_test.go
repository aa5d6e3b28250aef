package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv_OverridesOnlyPresentVariables(t *testing.T) {
	t.Setenv("CREDVAULT_DATABASE_DRIVER", "sqlite")
	t.Setenv("CREDVAULT_DATABASE_DSN", "/var/lib/credvault/vault.db")
	t.Setenv("CREDVAULT_SESSION_TTL", "45m")
	t.Setenv("CREDVAULT_POOL_SIZE", "3")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "/var/lib/credvault/vault.db", cfg.DatabaseDSN)
	assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 3, cfg.PoolSize)
	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
	assert.Equal(t, 20, cfg.MaxOverflow)
}

func Test_parseEnv_BadValue(t *testing.T) {
	t.Setenv("CREDVAULT_POOL_SIZE", "many")

	cfg := &Config{}
	require.Error(t, parseEnv(cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"database_dsn": "from-json.db",
		"log_level":    "warn",
		"secret_key":   "json-key",
	})
	t.Setenv("CREDVAULT_CONFIG", "")
	t.Setenv("CREDVAULT_LOG_LEVEL", "error")
	t.Setenv("CREDVAULT_SECRET_KEY", "env-key")

	cfg, err := LoadConfig([]string{"-c", path, "-s", "flag-key"})
	require.NoError(t, err)

	assert.Equal(t, "from-json.db", cfg.DatabaseDSN, "json overrides defaults")
	assert.Equal(t, "error", cfg.LogLevel, "env overrides json")
	assert.Equal(t, "flag-key", cfg.SecretKey, "flags override env")
}
