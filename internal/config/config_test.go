package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PROPNET_MAX_STEPS", "")
	assert.Equal(t, "warn", LogLevel())
	assert.Equal(t, 0, MaxSteps())

	t.Setenv("PROPNET_MAX_STEPS", "-3")
	assert.Equal(t, 0, MaxSteps())
	t.Setenv("PROPNET_MAX_STEPS", "lots")
	assert.Equal(t, 0, MaxSteps())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PROPNET_MAX_STEPS=500\nLOG_LEVEL=debug\n"), 0o600))

	t.Setenv("PROPNET_ENV", path)
	t.Setenv("PROPNET_MAX_STEPS", "")
	require.NoError(t, os.Unsetenv("PROPNET_MAX_STEPS"))
	t.Setenv("LOG_LEVEL", "error")

	require.NoError(t, Load())
	assert.Equal(t, 500, MaxSteps())
	assert.Equal(t, "error", LogLevel(), "environment wins over the file")
}
