package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Calculator: CalculatorConfig{
			BossGuardPercent:           300,
			BossElementalResistPercent: 50,
			Level:                      227,
			UsedHyperLevels:            []int{10, 10},
			LinkSlots:                  12,
		},
		Search: SearchConfig{
			Mode:    ModeLinks,
			Workers: 4,
		},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 300.0, cfg.Calculator.BossGuardPercent)
	assert.Equal(t, 50.0, cfg.Calculator.BossElementalResistPercent)
	assert.Equal(t, 227, cfg.Calculator.Level)
	assert.Equal(t, []int{10, 10, 10}, cfg.Calculator.UsedHyperLevels)
	assert.Equal(t, 12, cfg.Calculator.LinkSlots)
	assert.Equal(t, ModeAttack, cfg.Search.Mode)
	assert.Equal(t, 4, cfg.Search.Workers)
	assert.Empty(t, cfg.Search.LinkCatalog)
	assert.Empty(t, cfg.Search.HyperCategories)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
calculator:
  boss_guard_percent: 380
  boss_elemental_resist_percent: 0
  level: 251
  used_hyper_levels: [5, 5]
  link_slots: 8
search:
  mode: hyper
  workers: 2
  hyper_categories:
    - Damage
    - Boss Damage
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 380.0, cfg.Calculator.BossGuardPercent)
	assert.Equal(t, 251, cfg.Calculator.Level)
	assert.Equal(t, []int{5, 5}, cfg.Calculator.UsedHyperLevels)
	assert.Equal(t, 8, cfg.Calculator.LinkSlots)
	assert.Equal(t, ModeHyper, cfg.Search.Mode)
	assert.Equal(t, 2, cfg.Search.Workers)
	assert.Equal(t, []string{"Damage", "Boss Damage"}, cfg.Search.HyperCategories)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SPECSIM_SEARCH_MODE", "links")
	t.Setenv("SPECSIM_CALCULATOR_LEVEL", "275")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ModeLinks, cfg.Search.Mode)
	assert.Equal(t, 275, cfg.Calculator.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidValueRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  mode: exhaustive\n"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateLoggingLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := validConfig()
		cfg.Logging.Level = level
		assert.NoError(t, cfg.Validate(), "level %q should be valid", level)
	}
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestValidateLoggingFormat(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		cfg := validConfig()
		cfg.Logging.Format = format
		assert.NoError(t, cfg.Validate(), "format %q should be valid", format)
	}
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestValidateSearchMode(t *testing.T) {
	for _, mode := range []string{ModeAttack, ModeLinks, ModeHyper} {
		cfg := validConfig()
		cfg.Search.Mode = mode
		assert.NoError(t, cfg.Validate(), "mode %q should be valid", mode)
	}
	cfg := validConfig()
	cfg.Search.Mode = "invalid"
	assert.Error(t, cfg.Validate())
}

func TestValidateSearchWorkers(t *testing.T) {
	cfg := validConfig()
	cfg.Search.Workers = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateCalculator(t *testing.T) {
	cfg := validConfig()
	cfg.Calculator.BossGuardPercent = -1
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Calculator.BossElementalResistPercent = 101
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Calculator.Level = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Calculator.UsedHyperLevels = []int{3, -1}
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Calculator.LinkSlots = -1
	assert.Error(t, cfg.Validate())
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	cfg.Search.Workers = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "search.workers")
}

// Property-based tests

func TestPropertyValidResistRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		resist := rapid.Float64Range(0, 100).Draw(t, "resist")
		cfg := validConfig()
		cfg.Calculator.BossElementalResistPercent = resist
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid resist %g rejected: %v", resist, err)
		}
	})
}

func TestPropertyInvalidWorkers(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		workers := rapid.IntRange(-1000, 0).Draw(t, "workers")
		cfg := validConfig()
		cfg.Search.Workers = workers
		if err := cfg.Validate(); err == nil {
			t.Fatalf("invalid workers %d accepted", workers)
		}
	})
}
