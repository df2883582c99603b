// Package config provides Viper-based configuration loading for the combat sheet.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variable overrides, e.g. COMBATSHEET_RULES_DIR.
const EnvPrefix = "COMBATSHEET"

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// RulesConfig locates the rule book and tunes how it is applied.
type RulesConfig struct {
	// Dir holds equipment/, actions/ and tables.yaml.
	Dir string `mapstructure:"dir"`
	// ScriptDir holds house-rule Lua scripts; empty disables scripting.
	ScriptDir string `mapstructure:"script_dir"`
	// InstructionLimit caps the Lua opcodes per hook call; 0 uses the default.
	InstructionLimit int `mapstructure:"instruction_limit"`
	// ApplyDistanceModifier adds the ranged distance modifier to attack numbers.
	ApplyDistanceModifier bool `mapstructure:"apply_distance_modifier"`
}

// EvaluationConfig tunes batch scenario evaluation.
type EvaluationConfig struct {
	// Workers is the number of scenarios evaluated concurrently.
	Workers int `mapstructure:"workers"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Rules      RulesConfig      `mapstructure:"rules"`
	Evaluation EvaluationConfig `mapstructure:"evaluation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateRules(c.Rules); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateEvaluation(c.Evaluation); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
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

func validateRules(r RulesConfig) error {
	var errs []string
	if r.Dir == "" {
		errs = append(errs, "rules.dir must not be empty")
	}
	if r.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("rules.instruction_limit must be >= 0, got %d", r.InstructionLimit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateEvaluation(e EvaluationConfig) error {
	if e.Workers < 1 {
		return errors.New("evaluation.workers must be >= 1")
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// New returns a Viper instance with defaults and COMBATSHEET_ environment
// overrides, for callers running without a config file.
//
// Postcondition: Returns a non-nil Viper.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
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
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("rules.dir", "content/rules")
	v.SetDefault("rules.script_dir", "")
	v.SetDefault("rules.instruction_limit", 0)
	v.SetDefault("rules.apply_distance_modifier", false)

	v.SetDefault("evaluation.workers", 4)
}
