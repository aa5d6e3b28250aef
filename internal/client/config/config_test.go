package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CREDVAULT_CONFIG", "")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(&Config{ServerEndpointAddr: "127.0.0.1:50051", RequestTimeout: 5 * time.Second}, cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Setenv("CREDVAULT_CONFIG", "")
	path := filepath.Join(t.TempDir(), "cli.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_endpoint_addr":"json:1","request_timeout":"2s"}`), 0o600))

	cfg, err := LoadConfig([]string{"-c", path})
	require.NoError(t, err)
	assert.Equal(t, "json:1", cfg.ServerEndpointAddr)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)

	t.Setenv("CREDVAULT_CLI_SERVER_ENDPOINT_ADDR", "env:2")
	cfg, err = LoadConfig([]string{"-c", path})
	require.NoError(t, err)
	assert.Equal(t, "env:2", cfg.ServerEndpointAddr)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)

	cfg, err = LoadConfig([]string{"-c", path, "-a", "flag:3", "-t", "9"})
	require.NoError(t, err)
	assert.Equal(t, "flag:3", cfg.ServerEndpointAddr)
	assert.Equal(t, 9*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv("CREDVAULT_CONFIG", "")

	_, err := LoadConfig([]string{"-t", "abc"})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-a", ""})
	require.Error(t, err)
}
