package hyper

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cory-johannsen/specsim/internal/game/damage"
	"github.com/cory-johannsen/specsim/internal/game/stat"
)

// ctxCheckInterval is how many allocations a subtree scores between
// cancellation checks.
const ctxCheckInterval = 1024

// Ranking is the outcome of scoring every feasible allocation.
type Ranking struct {
	// Best is the first allocation in Walk order with the greatest damage.
	Best Allocation
	// Damage is the boss line damage of base with Best applied.
	Damage float64
	// Feasible is the number of allocations scored.
	Feasible int
}

// Best scores every feasible allocation of categories under budget against
// boss and returns the highest. Subtrees rooted at each level of the first
// category are scored on up to workers goroutines; their winners are reduced
// in level order, so the result matches a sequential walk.
//
// Postcondition: Feasible == Count(categories, cost, budget). Feasible is 0
// and Best is nil when budget is negative.
func Best(ctx context.Context, categories []Category, cost []int, budget int, base stat.Set, boss damage.Boss, workers int) (Ranking, error) {
	if budget < 0 {
		return Ranking{}, nil
	}
	if len(categories) == 0 {
		return Ranking{Best: Allocation{}, Damage: damage.BossLineDamage(base, boss), Feasible: 1}, nil
	}
	if workers < 1 {
		workers = 1
	}

	// One subtree per affordable level of the first category.
	var roots []int
	spent := 0
	for level := 0; level <= len(cost); level++ {
		if level > 0 {
			spent += cost[level-1]
			if spent > budget {
				break
			}
		}
		roots = append(roots, spent)
	}

	results := make([]Ranking, len(roots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for level, rootCost := range roots {
		g.Go(func() error {
			r, err := rankSubtree(gctx, categories, cost, budget-rootCost, level, base, boss)
			if err != nil {
				return err
			}
			results[level] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Ranking{}, err
	}

	var out Ranking
	for _, r := range results {
		if out.Best == nil || r.Damage > out.Damage {
			out.Best = r.Best
			out.Damage = r.Damage
		}
		out.Feasible += r.Feasible
	}
	return out, nil
}

// rankSubtree scores every allocation whose first category is at firstLevel.
func rankSubtree(ctx context.Context, categories []Category, cost []int, remaining, firstLevel int, base stat.Set, boss damage.Boss) (Ranking, error) {
	var (
		out Ranking
		err error
	)
	walk(len(categories), cost, remaining, Allocation{firstLevel}, func(a Allocation) bool {
		if out.Feasible%ctxCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				return false
			}
		}
		out.Feasible++
		d := damage.BossLineDamage(base.Apply(a.Modifier(categories)), boss)
		if out.Best == nil || d > out.Damage {
			out.Best = a
			out.Damage = d
		}
		return true
	})
	return out, err
}
