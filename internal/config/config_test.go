package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "jwt:\n  secret: test-secret\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "1s", cfg.Stores.SimulatedLatency)
	assert.Equal(t, time.Second, cfg.SimulatedLatency())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: \"9090\"\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfigFile(t, "jwt:\n  secret: test-secret\n")

	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("STORES_SIMULATED_LATENCY", "250ms")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.SimulatedLatency())
}

func TestLoadConfigRejectsBadLatency(t *testing.T) {
	path := writeConfigFile(t, "jwt:\n  secret: test-secret\nstores:\n  simulated_latency: soon\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
