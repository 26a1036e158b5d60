package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "http://localhost:8080", cfg.APIURL)
	require.Equal(t, "default", cfg.Profile)
	require.Equal(t, 30*time.Second, cfg.CheckInterval)
	require.Equal(t, "dev", cfg.Env)
	require.NotEmpty(t, cfg.CredentialsDB)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MUU_API_URL", "https://farm.example.com")
	t.Setenv("MUU_PROFILE", "staging")
	t.Setenv("MUU_CHECK_INTERVAL", "10s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadConfig()

	require.Equal(t, "https://farm.example.com", cfg.APIURL)
	require.Equal(t, "staging", cfg.Profile)
	require.Equal(t, 10*time.Second, cfg.CheckInterval)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigBareSecondsInterval(t *testing.T) {
	t.Setenv("MUU_CHECK_INTERVAL", "45")

	cfg := LoadConfig()
	require.Equal(t, 45*time.Second, cfg.CheckInterval)
}
