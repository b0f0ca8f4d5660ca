// Package config provides Viper-based configuration loading for the power converter.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Error policies for ConvertConfig.OnError.
const (
	// OnErrorAbort stops the run at the first file that fails.
	OnErrorAbort = "abort"
	// OnErrorSkip logs the failure and continues with the next file.
	OnErrorSkip = "skip"
)

// ConvertConfig holds directory conversion settings.
type ConvertConfig struct {
	// SourceDir is the directory whose power files are converted.
	SourceDir string `mapstructure:"source_dir"`
	// SourceSegment is the path element replaced when deriving output paths.
	SourceSegment string `mapstructure:"source_segment"`
	// OutputSegment replaces SourceSegment in output paths.
	OutputSegment string `mapstructure:"output_segment"`
	// InputExt selects eligible files, e.g. ".yml".
	InputExt string `mapstructure:"input_ext"`
	// OutputExt replaces InputExt on written files, e.g. ".roll20".
	OutputExt string `mapstructure:"output_ext"`
	// OnError is the per-file failure policy: "abort" or "skip".
	OnError string `mapstructure:"on_error"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Convert ConvertConfig `mapstructure:"convert"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateConvert(c.Convert); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateConvert(c ConvertConfig) error {
	var errs []string
	if c.SourceDir == "" {
		errs = append(errs, "convert.source_dir must not be empty")
	}
	if c.SourceSegment == "" {
		errs = append(errs, "convert.source_segment must not be empty")
	}
	if c.OutputSegment == "" {
		errs = append(errs, "convert.output_segment must not be empty")
	}
	if strings.ContainsAny(c.SourceSegment+c.OutputSegment, `/\`) {
		errs = append(errs, "convert.source_segment and convert.output_segment must be single path elements")
	}
	if !strings.HasPrefix(c.InputExt, ".") {
		errs = append(errs, fmt.Sprintf("convert.input_ext must start with '.', got %q", c.InputExt))
	}
	if !strings.HasPrefix(c.OutputExt, ".") {
		errs = append(errs, fmt.Sprintf("convert.output_ext must start with '.', got %q", c.OutputExt))
	}
	if c.InputExt != "" && c.InputExt == c.OutputExt {
		errs = append(errs, "convert.output_ext must differ from convert.input_ext")
	}
	validPolicies := map[string]bool{OnErrorAbort: true, OnErrorSkip: true}
	if !validPolicies[c.OnError] {
		errs = append(errs, fmt.Sprintf("convert.on_error must be one of [abort, skip], got %q", c.OnError))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides.
//
// Precondition: path must be empty or a valid path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := NewViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// NewViper returns a Viper instance with defaults and POWERCONV_ environment
// overrides applied.
//
// Postcondition: Returns a non-nil Viper.
func NewViper() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with POWERCONV_ prefix
	v.SetEnvPrefix("POWERCONV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("convert.source_dir", "abilities/AEkorne")
	v.SetDefault("convert.source_segment", "abilities")
	v.SetDefault("convert.output_segment", "generated")
	v.SetDefault("convert.input_ext", ".yml")
	v.SetDefault("convert.output_ext", ".roll20")
	v.SetDefault("convert.on_error", OnErrorAbort)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
