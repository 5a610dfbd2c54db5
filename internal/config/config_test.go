package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresUpstreamBaseURL(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://accounting.local")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PREVIEW_SAMPLE_ROWS", "")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 5, cfg.App.PreviewSampleRows)
	assert.Equal(t, time.Duration(0), cfg.Upstream.Timeout, "no client-side timeout unless configured")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://accounting.local")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "30")
	t.Setenv("PREVIEW_SAMPLE_ROWS", "10")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 10, cfg.App.PreviewSampleRows)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
}
