// Package calculator runs one configured search against a base stat sheet.
package calculator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/specsim/internal/config"
	"github.com/cory-johannsen/specsim/internal/game/damage"
	"github.com/cory-johannsen/specsim/internal/game/hyper"
	"github.com/cory-johannsen/specsim/internal/game/link"
	"github.com/cory-johannsen/specsim/internal/game/stat"
	"github.com/cory-johannsen/specsim/internal/observability"
)

// HyperResult is the outcome of a hyper stat search.
type HyperResult struct {
	// Budget is the points available to the searched categories.
	Budget     int
	Categories []hyper.Category
	Ranking    hyper.Ranking
}

// Result holds whichever output the configured mode produced.
type Result struct {
	RunID string
	Mode  string
	// DisplayAttack is set in attack mode.
	DisplayAttack float64
	// Links is set in links mode.
	Links []link.Pick
	// Hyper is set in hyper mode.
	Hyper *HyperResult
}

// Calculator evaluates a base stat sheet under one configuration.
//
// Invariant: cfg has passed Validate.
type Calculator struct {
	cfg    config.Config
	base   stat.Set
	logger *zap.Logger
}

// New constructs a Calculator. A nil logger discards logs.
//
// Precondition: cfg.Validate() == nil.
func New(cfg config.Config, base stat.Set, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{cfg: cfg, base: base, logger: logger}
}

// Boss returns the boss parameters from configuration.
func (c *Calculator) Boss() damage.Boss {
	return damage.Boss{
		GuardPercent:           c.cfg.Calculator.BossGuardPercent,
		ElementalResistPercent: c.cfg.Calculator.BossElementalResistPercent,
	}
}

// Run executes the configured mode under a fresh run ID.
//
// Postcondition: Returns a Result whose populated field matches cfg.Search.Mode,
// or a non-nil error.
func (c *Calculator) Run(ctx context.Context) (Result, error) {
	logger, runID := observability.WithRunID(c.logger)
	start := time.Now()
	mode := c.cfg.Search.Mode
	logger.Info("run started", zap.String("mode", mode))

	res := Result{RunID: runID, Mode: mode}
	var err error
	switch mode {
	case config.ModeAttack:
		res.DisplayAttack = c.Attack()
	case config.ModeLinks:
		res.Links, err = c.Links(ctx, logger)
	case config.ModeHyper:
		var hr HyperResult
		hr, err = c.Hyper(ctx, logger)
		res.Hyper = &hr
	default:
		err = fmt.Errorf("unknown search mode %q", mode)
	}
	if err != nil {
		logger.Error("run failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return Result{}, err
	}

	logger.Info("run finished", zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

// Attack returns the floored stat-window attack of the base sheet.
func (c *Calculator) Attack() float64 {
	return damage.DisplayAttack(c.base)
}

// Links fills the configured link slots greedily from the configured catalog.
func (c *Calculator) Links(ctx context.Context, logger *zap.Logger) ([]link.Pick, error) {
	catalog, err := link.LoadCatalog(c.cfg.Search.LinkCatalog)
	if err != nil {
		return nil, fmt.Errorf("loading link catalog: %w", err)
	}
	logger.Info("link catalog loaded",
		zap.Int("links", len(catalog)),
		zap.Int("slots", c.cfg.Calculator.LinkSlots),
	)

	sel := link.NewSelector(logger, c.cfg.Search.Workers)
	picks, err := sel.SelectTopNDetailed(ctx, c.cfg.Calculator.LinkSlots, c.base, c.Boss(), catalog)
	if err != nil {
		return nil, fmt.Errorf("selecting links: %w", err)
	}
	return picks, nil
}

// Hyper scores every hyper stat allocation the remaining budget allows.
func (c *Calculator) Hyper(ctx context.Context, logger *zap.Logger) (HyperResult, error) {
	budget, err := hyper.BudgetRemaining(c.cfg.Calculator.Level, c.cfg.Calculator.UsedHyperLevels)
	if err != nil {
		return HyperResult{}, fmt.Errorf("computing hyper stat budget: %w", err)
	}

	categories := hyper.DefaultCategories()
	if names := c.cfg.Search.HyperCategories; len(names) > 0 {
		var unknown []string
		categories, unknown = hyper.CategoriesByName(categories, names)
		if len(unknown) > 0 {
			return HyperResult{}, fmt.Errorf("unknown hyper stat categories: %s", strings.Join(unknown, ", "))
		}
	}
	logger.Info("hyper stat search",
		zap.Int("level", c.cfg.Calculator.Level),
		zap.Int("budget", budget),
		zap.Int("categories", len(categories)),
	)

	ranking, err := hyper.Best(ctx, categories, hyper.CostPerLevel(), budget, c.base, c.Boss(), c.cfg.Search.Workers)
	if err != nil {
		return HyperResult{}, fmt.Errorf("ranking hyper stat allocations: %w", err)
	}
	logger.Debug("hyper stat ranking",
		zap.Int("feasible", ranking.Feasible),
		zap.Ints("best", ranking.Best),
		zap.Float64("damage", ranking.Damage),
	)
	return HyperResult{Budget: budget, Categories: categories, Ranking: ranking}, nil
}
