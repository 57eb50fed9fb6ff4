// Package hyper models hyper stat point allocation: the per-level cost and
// effect tables, the point budget earned by level, and the exhaustive
// enumeration of allocations that fit a budget.
package hyper

import (
	"github.com/cory-johannsen/specsim/internal/game/stat"
)

// MaxLevel is the highest level a hyper stat category can reach.
const MaxLevel = 15

// CostPerLevel returns the point cost of raising a category from level i to
// level i+1, indexed by i.
//
// Invariant: entries are non-negative and non-decreasing.
func CostPerLevel() []int {
	return []int{1, 2, 4, 8, 10, 15, 20, 25, 30, 35, 50, 65, 80, 95, 110}
}

// CumulativeCost returns the total cost of raising a category from 0 to
// level under cost.
//
// Precondition: 0 <= level <= len(cost).
func CumulativeCost(cost []int, level int) int {
	total := 0
	for _, c := range cost[:level] {
		total += c
	}
	return total
}

// Category is one hyper stat line.
type Category struct {
	Name string
	Stat stat.ID
	// Effects[i] is the increment granted by reaching level i+1.
	Effects []float64
}

// Effect returns the total increment granted at level.
func (c Category) Effect(level int) float64 {
	total := 0.0
	for _, e := range c.Effects[:min(level, len(c.Effects))] {
		total += e
	}
	return total
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// DefaultCategories returns the damage-relevant hyper stat lines in
// enumeration order.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Main Stat", Stat: stat.MainStatPercentExempt, Effects: repeat(30, MaxLevel)},
		{Name: "Sub Stat", Stat: stat.SubStatPercentExempt, Effects: repeat(30, MaxLevel)},
		{Name: "Critical Rate", Stat: stat.CritRatePercent, Effects: append(repeat(1, 5), repeat(2, 10)...)},
		{Name: "Critical Damage", Stat: stat.CritDmgPercent, Effects: repeat(1, MaxLevel)},
		{Name: "Ignore DEF", Stat: stat.IgnoreGuardPercent, Effects: repeat(3, MaxLevel)},
		{Name: "Damage", Stat: stat.DmgPercent, Effects: repeat(3, MaxLevel)},
		{Name: "Boss Damage", Stat: stat.BossDmgPercent, Effects: append(repeat(3, 5), repeat(4, 10)...)},
		{Name: "Attack", Stat: stat.Atk, Effects: repeat(3, MaxLevel)},
	}
}

// CategoriesByName returns the categories of all whose names appear in
// wanted, in the order of wanted. The second result lists unknown names.
func CategoriesByName(all []Category, wanted []string) ([]Category, []string) {
	byName := make(map[string]Category, len(all))
	for _, c := range all {
		byName[c.Name] = c
	}
	var out []Category
	var unknown []string
	for _, name := range wanted {
		c, ok := byName[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		out = append(out, c)
	}
	return out, unknown
}
