package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"CALC_LOG_LEVEL", "CALC_LOG_FILE", "CALC_STRICT_PARENS",
		"CALC_LISTEN", "CALC_API_KEY", "CALC_SERVER_URL",
	} {
		if v, ok := os.LookupEnv(name); ok {
			os.Unsetenv(name)
			t.Cleanup(func() { os.Setenv(name, v) })
		}
	}
	// Keep DefaultPath away from the developer's real config.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
log_level: debug
log_file: /tmp/calc.log
strict_parens: true
listen: 127.0.0.1:9000
api_key: secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/calc.log", cfg.LogFile)
	assert.True(t, cfg.StrictParens)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Empty(t, cfg.ServerURL)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "strict_parens: true\nlisten: :1\n")
	t.Setenv("CALC_STRICT_PARENS", "false")
	t.Setenv("CALC_LISTEN", ":2")
	t.Setenv("CALC_SERVER_URL", "http://localhost:8787")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.StrictParens)
	assert.Equal(t, ":2", cfg.Listen)
	assert.Equal(t, "http://localhost:8787", cfg.ServerURL)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "strict_parens: [")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadInvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("CALC_STRICT_PARENS", "maybe")

	_, err := Load("")
	assert.ErrorContains(t, err, "CALC_STRICT_PARENS")
}

func TestLoadInvalidLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("CALC_LOG_LEVEL", "loud")

	_, err := Load("")
	assert.ErrorContains(t, err, "log_level")
}
