package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestLoadDefaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Count:     100000,
		Initial:   0,
		Threshold: 1024,
		Output:    "text",
		LogLevel:  "info",
		Metrics:   false,
	}, cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slicegrow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 2000\ninitial: 16\noutput: yaml\nlog-level: debug\n"), 0o600))

	v, err := New(path)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.Count)
	assert.Equal(t, 16, cfg.Initial)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1024, cfg.Threshold)
}

func TestLoadFromEnvConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 77\n"), 0o600))
	t.Setenv("SLICEGROW_CONFIG_FILE", path)

	v, err := New("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.Count)
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slicegrow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 2000\n"), 0o600))
	t.Setenv("SLICEGROW_COUNT", "50")
	t.Setenv("SLICEGROW_LOG_LEVEL", "warn")

	v, err := New(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Count)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SLICEGROW_COUNT", "50")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int(KeyCount, 0, "")
	fs.String(KeyOutput, "text", "")
	fs.String("unrelated", "", "")
	require.NoError(t, fs.Parse([]string{"--count=9", "--output=json"}))

	v, err := New("")
	require.NoError(t, err)
	require.NoError(t, BindFlags(v, fs))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Count)
	assert.Equal(t, "json", cfg.Output)
}

func TestValidate(t *testing.T) {
	cfg := Config{Count: -1, Initial: -2, Threshold: -3, Output: "xml"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 4)
	assert.Contains(t, err.Error(), "text|json|yaml")

	ok := Config{Count: 10, Output: "json"}
	assert.NoError(t, ok.Validate())
}
