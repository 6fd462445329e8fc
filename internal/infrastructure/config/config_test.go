package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "warn", "")
	fs.String("log-format", "console", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "package-sorter", cfg.App.Name)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SORT_LOG_LEVEL", "debug")
	t.Setenv("SORT_LOG_FORMAT", "json")
	t.Setenv("SORT_APP_ENVIRONMENT", "development")

	cfg, err := Load(newFlags())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("SORT_LOG_LEVEL", "debug")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--log-level=error"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_UnsetFlagsKeepEnvironment(t *testing.T) {
	t.Setenv("SORT_LOG_FORMAT", "json")

	cfg, err := Load(newFlags())
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
}
