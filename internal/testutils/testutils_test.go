package testutils

import (
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigForTests(t *testing.T) {
	cfg := ConfigForTests(t)
	assert.Equal(t, "test", cfg.GetAppEnv())
	assert.Equal(t, "test-session-secret", cfg.GetSessionSecret())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.GetTracingEnabled())
}

func TestCaptureLogs(t *testing.T) {
	buf := CaptureLogs(t)
	slog.Info("captured", "key", "value")
	assert.Contains(t, buf.String(), "key=value")
}

func TestContentFS(t *testing.T) {
	fs := ContentFS(t, map[string]string{"nested/site.yaml": "brand: {}"})
	body, err := afero.ReadFile(fs, "nested/site.yaml")
	require.NoError(t, err)
	assert.Equal(t, "brand: {}", string(body))
}
