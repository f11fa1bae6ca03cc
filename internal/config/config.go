// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the CLI reads, e.g. RESUME_ANALYSER_LOG_LEVEL
const EnvPrefix = "RESUME_ANALYSER"

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Lexicon is a JSON file replacing the built-in tables
	Lexicon   string `json:"lexicon,omitempty" mapstructure:"lexicon"`
	Format    string `json:"format,omitempty" mapstructure:"format" validate:"omitempty,oneof=json text markdown"`
	LogLevel  string `json:"log_level,omitempty" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `json:"log_format,omitempty" mapstructure:"log_format" validate:"omitempty,oneof=text json"`

	// OutputDir receives extracted text and metadata
	OutputDir   string `json:"output_dir,omitempty" mapstructure:"output_dir"`
	SchemaDir   string `json:"schema_dir,omitempty" mapstructure:"schema_dir"`
	Concurrency int    `json:"concurrency,omitempty" mapstructure:"concurrency" validate:"min=0"`
	// MetricsFile is the Prometheus textfile written after a batch
	MetricsFile string `json:"metrics_file,omitempty" mapstructure:"metrics_file"`
	Trace       bool   `json:"trace,omitempty" mapstructure:"trace"`
}

// keys lists every setting viper should look up in the environment
var keys = []string{
	"lexicon", "format", "log_level", "log_format", "output_dir",
	"schema_dir", "concurrency", "metrics_file", "trace",
}

// Defaults are the values used when neither a file, the environment nor a flag sets one
func Defaults() Config {
	return Config{
		Format:    "json",
		LogLevel:  "warn",
		LogFormat: "text",
		SchemaDir: "schemas",
	}
}

// LoadConfig loads configuration from a JSON or YAML file and overlays the environment.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return unmarshal(v)
}

// LoadEnv builds a configuration from RESUME_ANALYSER_* environment variables alone
func LoadEnv() (*Config, error) {
	return unmarshal(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' has invalid value %v (%s)", fe.Field(), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Lexicon != "" {
		if _, err := os.Stat(c.Lexicon); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.Lexicon)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Lexicon == "" {
		result.Lexicon = defaults.Lexicon
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.SchemaDir == "" {
		result.SchemaDir = defaults.SchemaDir
	}
	if result.MetricsFile == "" {
		result.MetricsFile = defaults.MetricsFile
	}

	// Int fields: use default if zero
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so only true is merged
	result.Trace = result.Trace || defaults.Trace

	return result
}
