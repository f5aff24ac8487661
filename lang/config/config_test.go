package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/lox/lang/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lox.config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_call_depth: 500\nfixed_clock: \"1700000000\"\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.MaxCallDepth)
	assert.Equal(t, "1700000000", cfg.FixedClock)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lox.config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_call_depth: 500\n"), 0o644))

	t.Setenv("LOX_MAX_CALL_DEPTH", "42")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.MaxCallDepth)
}
