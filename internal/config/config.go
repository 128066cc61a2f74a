// Package config loads the settings of the slicegrow command line tool
// using Viper for configuration from files, environment variables and flags.
//
// Precedence, highest first: command-line flags, SLICEGROW_* environment
// variables, the config file (--config, SLICEGROW_CONFIG_FILE, or
// .slicegrow.yaml in the working directory), built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// EnvPrefix prefixes every environment variable the tool reads.
const EnvPrefix = "SLICEGROW"

// Keys shared by flags, env vars and the config file.
const (
	KeyCount     = "count"
	KeyInitial   = "initial"
	KeyThreshold = "threshold"
	KeyOutput    = "output"
	KeyLogLevel  = "log-level"
	KeyMetrics   = "metrics"
)

// Output formats understood by the report package.
var OutputFormats = []string{"text", "json", "yaml"}

// Config is the resolved tool configuration.
type Config struct {
	Count     int    `mapstructure:"count"`
	Initial   int    `mapstructure:"initial"`
	Threshold int    `mapstructure:"threshold"`
	Output    string `mapstructure:"output"`
	LogLevel  string `mapstructure:"log-level"`
	Metrics   bool   `mapstructure:"metrics"`
}

// New returns a Viper instance with defaults, env binding and, when present,
// a config file. cfgFile overrides SLICEGROW_CONFIG_FILE, which overrides
// the default search for .slicegrow.yaml.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	explicit := true
	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case os.Getenv(EnvPrefix+"_CONFIG_FILE") != "":
		v.SetConfigFile(os.Getenv(EnvPrefix + "_CONFIG_FILE"))
	default:
		explicit = false
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".slicegrow")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default file is fine; a named file must exist and parse.
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// SetDefaults installs the built-in defaults.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyCount, 100000)
	v.SetDefault(KeyInitial, 0)
	v.SetDefault(KeyThreshold, 1024)
	v.SetDefault(KeyOutput, "text")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyMetrics, false)
}

// BindFlags binds every flag in fs whose name is a config key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		switch f.Name {
		case KeyCount, KeyInitial, KeyThreshold, KeyOutput, KeyLogLevel, KeyMetrics:
			err = multierr.Append(err, v.BindPFlag(f.Name, f))
		}
	})
	return err
}

// Load resolves and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	if c.Count < 0 {
		err = multierr.Append(err, fmt.Errorf("count must not be negative, got %d", c.Count))
	}
	if c.Initial < 0 {
		err = multierr.Append(err, fmt.Errorf("initial capacity must not be negative, got %d", c.Initial))
	}
	if c.Threshold < 0 {
		err = multierr.Append(err, fmt.Errorf("threshold must not be negative, got %d", c.Threshold))
	}
	if !slices.Contains(OutputFormats, c.Output) {
		err = multierr.Append(err, fmt.Errorf("output must be one of %s, got %q",
			strings.Join(OutputFormats, "|"), c.Output))
	}
	return err
}
