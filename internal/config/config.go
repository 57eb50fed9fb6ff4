// Package config provides Viper-based configuration loading for specsim runs.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Search modes.
const (
	ModeAttack = "attack"
	ModeLinks  = "links"
	ModeHyper  = "hyper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// CalculatorConfig describes the target boss and the character's progression.
// It is read-only for the duration of a run.
type CalculatorConfig struct {
	// BossGuardPercent is the target boss defense rate, e.g. 300.
	BossGuardPercent float64 `mapstructure:"boss_guard_percent"`
	// BossElementalResistPercent is the target boss elemental resistance.
	BossElementalResistPercent float64 `mapstructure:"boss_elemental_resist_percent"`
	// Level is the character level used to compute hyper stat points.
	Level int `mapstructure:"level"`
	// UsedHyperLevels lists hyper stat levels already committed to lines the
	// search does not consider.
	UsedHyperLevels []int `mapstructure:"used_hyper_levels"`
	// LinkSlots is the number of free link skill slots.
	LinkSlots int `mapstructure:"link_slots"`
}

// SearchConfig selects what a run computes.
type SearchConfig struct {
	// Mode is one of "attack", "links", "hyper".
	Mode string `mapstructure:"mode"`
	// Workers bounds the goroutines used to score candidates.
	Workers int `mapstructure:"workers"`
	// LinkCatalog is an optional YAML link catalog; empty uses the built-in one.
	LinkCatalog string `mapstructure:"link_catalog"`
	// HyperCategories names the hyper stat lines to enumerate, in order.
	// Empty uses every built-in line.
	HyperCategories []string `mapstructure:"hyper_categories"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Calculator CalculatorConfig `mapstructure:"calculator"`
	Search     SearchConfig     `mapstructure:"search"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCalculator(c.Calculator); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSearch(c.Search); err != nil {
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

// Level bounds are checked by the hyper package when points are computed;
// only values no run could use are rejected here.
func validateCalculator(c CalculatorConfig) error {
	var errs []string
	if c.BossGuardPercent < 0 {
		errs = append(errs, fmt.Sprintf("calculator.boss_guard_percent must be >= 0, got %g", c.BossGuardPercent))
	}
	if c.BossElementalResistPercent < 0 || c.BossElementalResistPercent > 100 {
		errs = append(errs, fmt.Sprintf("calculator.boss_elemental_resist_percent must be 0-100, got %g", c.BossElementalResistPercent))
	}
	if c.Level < 1 {
		errs = append(errs, fmt.Sprintf("calculator.level must be >= 1, got %d", c.Level))
	}
	for _, k := range c.UsedHyperLevels {
		if k < 0 {
			errs = append(errs, fmt.Sprintf("calculator.used_hyper_levels must not contain negative levels, got %d", k))
			break
		}
	}
	if c.LinkSlots < 0 {
		errs = append(errs, fmt.Sprintf("calculator.link_slots must be >= 0, got %d", c.LinkSlots))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSearch(s SearchConfig) error {
	var errs []string
	validModes := map[string]bool{ModeAttack: true, ModeLinks: true, ModeHyper: true}
	if !validModes[s.Mode] {
		errs = append(errs, fmt.Sprintf("search.mode must be one of [attack, links, hyper], got %q", s.Mode))
	}
	if s.Workers < 1 {
		errs = append(errs, fmt.Sprintf("search.workers must be >= 1, got %d", s.Workers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// New returns a Viper instance with defaults and SPECSIM_ environment
// overrides applied.
//
// Postcondition: Returns a non-nil *viper.Viper.
func New() *viper.Viper {
	v := viper.New()

	// Environment variable overrides with SPECSIM_ prefix
	v.SetEnvPrefix("SPECSIM")
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
	v.SetDefault("logging.format", "console")

	v.SetDefault("calculator.boss_guard_percent", 300)
	v.SetDefault("calculator.boss_elemental_resist_percent", 50)
	v.SetDefault("calculator.level", 227)
	v.SetDefault("calculator.used_hyper_levels", []int{10, 10, 10})
	v.SetDefault("calculator.link_slots", 12)

	v.SetDefault("search.mode", ModeAttack)
	v.SetDefault("search.workers", 4)
	v.SetDefault("search.link_catalog", "")
	v.SetDefault("search.hyper_categories", []string{})
}
