package hyper_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/specsim/internal/game/damage"
	"github.com/cory-johannsen/specsim/internal/game/hyper"
	"github.com/cory-johannsen/specsim/internal/game/stat"
)

var testBoss = damage.Boss{GuardPercent: 300, ElementalResistPercent: 50}

// bruteForce lists every level vector in lexicographic order whose cost fits
// budget, without pruning.
func bruteForce(n int, cost []int, budget int) []hyper.Allocation {
	var out []hyper.Allocation
	cur := make(hyper.Allocation, n)
	var rec func(i int)
	rec = func(i int) {
		if i == n {
			if cur.Cost(cost) <= budget {
				out = append(out, append(make(hyper.Allocation, 0, n), cur...))
			}
			return
		}
		for level := 0; level <= len(cost); level++ {
			cur[i] = level
			rec(i + 1)
		}
	}
	rec(0)
	return out
}

func TestEnumerate_ZeroBudget_SingleAllZero(t *testing.T) {
	got := hyper.Enumerate(hyper.DefaultCategories(), hyper.CostPerLevel(), 0)
	require.Len(t, got, 1)
	assert.Equal(t, hyper.Allocation{0, 0, 0, 0, 0, 0, 0, 0}, got[0])
}

func TestEnumerate_NoCategories_SingleEmpty(t *testing.T) {
	got := hyper.Enumerate(nil, hyper.CostPerLevel(), 100)
	require.Len(t, got, 1)
	assert.Empty(t, got[0])
}

func TestEnumerate_NegativeBudget_Nothing(t *testing.T) {
	assert.Empty(t, hyper.Enumerate(hyper.DefaultCategories()[:2], hyper.CostPerLevel(), -1))
}

func TestEnumerate_SmallCase_ExactSetAndOrder(t *testing.T) {
	cats := hyper.DefaultCategories()[:2]
	// Budget 3: each category reaches level 2 at most (1 + 2 = 3).
	got := hyper.Enumerate(cats, hyper.CostPerLevel(), 3)
	want := []hyper.Allocation{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1},
		{2, 0},
	}
	assert.Equal(t, want, got)
}

func TestEnumerate_SingleCategory_AllLevelsUnderFullBudget(t *testing.T) {
	got := hyper.Enumerate(hyper.DefaultCategories()[:1], hyper.CostPerLevel(), 550)
	require.Len(t, got, hyper.MaxLevel+1)
	for level, a := range got {
		assert.Equal(t, hyper.Allocation{level}, a)
	}
}

func TestEnumerate_ResultsDoNotAlias(t *testing.T) {
	got := hyper.Enumerate(hyper.DefaultCategories()[:3], hyper.CostPerLevel(), 10)
	require.Greater(t, len(got), 2)
	snapshot := make([]hyper.Allocation, len(got))
	for i, a := range got {
		snapshot[i] = append(hyper.Allocation(nil), a...)
	}
	got[0][0] = 99
	for i := 1; i < len(got); i++ {
		assert.Equal(t, snapshot[i], got[i])
	}
}

func TestPropertyEnumerate_MatchesBruteForceAndFitsBudget(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 3).Draw(rt, "categories")
		budget := rapid.IntRange(0, 120).Draw(rt, "budget")
		cost := hyper.CostPerLevel()
		cats := hyper.DefaultCategories()[:n]

		got := hyper.Enumerate(cats, cost, budget)
		for _, a := range got {
			require.Len(rt, a, n)
			assert.LessOrEqual(rt, a.Cost(cost), budget)
		}
		assert.Equal(rt, bruteForce(n, cost, budget), got)
		assert.Equal(rt, len(got), hyper.Count(cats, cost, budget))
	})
}

func TestWalk_StopsWhenVisitReturnsFalse(t *testing.T) {
	seen := 0
	hyper.Walk(2, hyper.CostPerLevel(), 100, func(hyper.Allocation) bool {
		seen++
		return seen < 3
	})
	assert.Equal(t, 3, seen)
}

func TestAllocation_Modifier_UsesCumulativeEffect(t *testing.T) {
	cats := hyper.DefaultCategories()
	a := hyper.Allocation{0, 0, 7, 0, 0, 0, 0, 2}
	mod := a.Modifier(cats)
	// Crit rate: 5 levels at 1 then 2 at 2 = 9. Attack: 2 levels at 3 = 6.
	assert.Equal(t, []stat.Delta{
		{ID: stat.CritRatePercent, Value: 9},
		{ID: stat.Atk, Value: 6},
	}, mod.Effects)
}

func TestCategoriesByName(t *testing.T) {
	got, unknown := hyper.CategoriesByName(hyper.DefaultCategories(), []string{"Boss Damage", "Luck", "Damage"})
	require.Len(t, got, 2)
	assert.Equal(t, "Boss Damage", got[0].Name)
	assert.Equal(t, "Damage", got[1].Name)
	assert.Equal(t, []string{"Luck"}, unknown)
}

func TestBest_MatchesSequentialScan(t *testing.T) {
	cats := hyper.DefaultCategories()[:4]
	cost := hyper.CostPerLevel()
	budget := 60
	base := stat.Reference()

	var (
		want    hyper.Allocation
		wantDmg float64
		count   int
	)
	for _, a := range hyper.Enumerate(cats, cost, budget) {
		count++
		d := damage.BossLineDamage(base.Apply(a.Modifier(cats)), testBoss)
		if want == nil || d > wantDmg {
			want, wantDmg = a, d
		}
	}

	for _, workers := range []int{1, 3, 16} {
		got, err := hyper.Best(context.Background(), cats, cost, budget, base, testBoss, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got.Best, "workers=%d", workers)
		assert.Equal(t, wantDmg, got.Damage, "workers=%d", workers)
		assert.Equal(t, count, got.Feasible, "workers=%d", workers)
	}
}

func TestBest_ZeroBudget_AllZero(t *testing.T) {
	got, err := hyper.Best(context.Background(), hyper.DefaultCategories(), hyper.CostPerLevel(), 0, stat.Reference(), testBoss, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Feasible)
	assert.Equal(t, hyper.Allocation{0, 0, 0, 0, 0, 0, 0, 0}, got.Best)
	assert.Equal(t, damage.BossLineDamage(stat.Reference(), testBoss), got.Damage)
}

func TestBest_NoCategories(t *testing.T) {
	got, err := hyper.Best(context.Background(), nil, hyper.CostPerLevel(), 50, stat.Reference(), testBoss, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Feasible)
	assert.Empty(t, got.Best)
}

func TestBest_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := hyper.Best(ctx, hyper.DefaultCategories(), hyper.CostPerLevel(), 300, stat.Reference(), testBoss, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
