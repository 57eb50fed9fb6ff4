package link

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/specsim/internal/game/damage"
	"github.com/cory-johannsen/specsim/internal/game/stat"
)

// Pick is one step of a greedy selection.
type Pick struct {
	Link stat.Modifier
	// Damage is the boss line damage after this pick is folded in.
	Damage float64
	// Gain is Damage minus the damage before this pick.
	Gain float64
}

// Selector fills link slots greedily: each step takes the unused link with
// the largest resulting boss line damage and never revisits earlier picks.
// The result is not guaranteed to be the best combination of n links.
type Selector struct {
	logger  *zap.Logger
	workers int
}

// NewSelector creates a Selector that scores candidates on up to workers
// goroutines. workers <= 1 scores sequentially; a nil logger discards logs.
func NewSelector(logger *zap.Logger, workers int) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Selector{logger: logger, workers: workers}
}

// SelectTopN returns up to n links from catalog in pick order.
//
// Postcondition: len(result) == min(max(n, 0), len(catalog)); no link appears
// twice; ties go to the earliest catalog entry.
func (s *Selector) SelectTopN(ctx context.Context, n int, base stat.Set, boss damage.Boss, catalog []stat.Modifier) ([]stat.Modifier, error) {
	picks, err := s.SelectTopNDetailed(ctx, n, base, boss, catalog)
	if err != nil {
		return nil, err
	}
	out := make([]stat.Modifier, len(picks))
	for i, p := range picks {
		out[i] = p.Link
	}
	return out, nil
}

// SelectTopNDetailed is SelectTopN with the damage and marginal gain of each
// pick.
func (s *Selector) SelectTopNDetailed(ctx context.Context, n int, base stat.Set, boss damage.Boss, catalog []stat.Modifier) ([]Pick, error) {
	n = max(0, min(n, len(catalog)))

	running := base
	current := damage.BossLineDamage(running, boss)
	used := make([]bool, len(catalog))
	scores := make([]float64, len(catalog))
	picks := make([]Pick, 0, n)

	for step := 0; step < n; step++ {
		if err := s.score(ctx, running, boss, catalog, used, scores); err != nil {
			return nil, err
		}

		best := -1
		for i := range catalog {
			if used[i] {
				continue
			}
			if best < 0 || scores[i] > scores[best] {
				best = i
			}
		}

		used[best] = true
		running = running.Apply(catalog[best])
		pick := Pick{Link: catalog[best], Damage: scores[best], Gain: scores[best] - current}
		current = scores[best]
		picks = append(picks, pick)

		s.logger.Debug("link selected",
			zap.Int("step", step+1),
			zap.String("link", pick.Link.Name),
			zap.Float64("damage", pick.Damage),
			zap.Float64("gain", pick.Gain),
		)
	}
	return picks, nil
}

// score fills scores[i] with the damage of running plus catalog[i] for every
// unused i.
func (s *Selector) score(ctx context.Context, running stat.Set, boss damage.Boss, catalog []stat.Modifier, used []bool, scores []float64) error {
	if s.workers == 1 {
		for i := range catalog {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !used[i] {
				scores[i] = damage.BossLineDamage(running.Apply(catalog[i]), boss)
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range catalog {
		if used[i] {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores[i] = damage.BossLineDamage(running.Apply(catalog[i]), boss)
			return nil
		})
	}
	return g.Wait()
}
