// Package config provides configuration management for the application.
// It follows the 12-Factor App methodology by loading configuration
// from environment variables, with command-line flags taking precedence.
//
// Only ambient settings live here. The sorting thresholds are fixed in the
// domain and deliberately have no configuration key.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable (e.g., SORT_LOG_LEVEL).
const EnvPrefix = "SORT"

// Config holds all application configuration.
type Config struct {
	// App contains application-level configuration
	App AppConfig `mapstructure:"app"`

	// Log contains logging configuration
	Log LogConfig `mapstructure:"log"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	// Name of the application
	Name string `mapstructure:"name"`

	// Environment the application is running in (e.g., development, production)
	Environment string `mapstructure:"environment"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the output format (json, console)
	Format string `mapstructure:"format"`
}

// Load loads the configuration from flags, environment variables and defaults.
// It follows this precedence (highest to lowest):
//  1. Command-line flags that were explicitly set
//  2. Environment variables
//  3. Default values
//
// Parameters:
//   - flags: flag set to bind (may be nil)
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "package-sorter")
	v.SetDefault("app.environment", "production")

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
}

// bindFlags binds the known flags present in flags to their configuration keys.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
