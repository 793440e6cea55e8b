package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/govalues/bignum/internal/logging"
	"github.com/govalues/bignum/internal/render"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding the configuration.
const EnvPrefix = "BIGCALC"

// Mode selects the arithmetic used by the calculator.
type Mode string

const (
	IntegerMode  Mode = "integer"
	RationalMode Mode = "rational"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the calculator settings.
type Config struct {
	Mode      Mode          `mapstructure:"mode"`
	Precision int           `mapstructure:"precision"`
	Output    render.Format `mapstructure:"output"`
	Color     bool          `mapstructure:"color"`
	LogLevel  string        `mapstructure:"log-level"`
	LogFormat string        `mapstructure:"log-format"`
}

// Default returns the configuration used when no other source sets a value.
func Default() *Config {
	return &Config{
		Mode:      RationalMode,
		Precision: 20,
		Output:    render.Text,
		Color:     true,
		LogLevel:  "warn",
		LogFormat: logging.FormatPlain,
	}
}

// Load builds the configuration from, in increasing priority, the defaults,
// the configuration file (if file is not empty), BIGCALC_* environment
// variables and the flags that were set on the command line.
// The file format is inferred from its extension.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("mode", string(def.Mode))
	v.SetDefault("precision", def.Precision)
	v.SetDefault("output", string(def.Output))
	v.SetDefault("color", def.Color)
	v.SetDefault("log-level", def.LogLevel)
	v.SetDefault("log-format", def.LogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
	}

	if flags != nil {
		err := v.BindPFlags(flags)
		if err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	c := new(Config)
	err := v.Unmarshal(c)
	if err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every setting has an acceptable value.
func (c *Config) Validate() error {
	switch c.Mode {
	case IntegerMode, RationalMode:
	default:
		return fmt.Errorf("mode %q: want %q or %q: %w", c.Mode, IntegerMode, RationalMode, ErrInvalid)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision %d: must not be negative: %w", c.Precision, ErrInvalid)
	}
	if _, err := render.ParseFormat(string(c.Output)); err != nil {
		return fmt.Errorf("output: %v: %w", err, ErrInvalid)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %v: %w", err, ErrInvalid)
	}
	if _, err := logging.NewConsoleWriterWith(io.Discard, c.LogFormat); err != nil {
		return fmt.Errorf("log format: %v: %w", err, ErrInvalid)
	}
	return nil
}
