package hyper

import (
	"github.com/cory-johannsen/specsim/internal/game/stat"
)

// Allocation assigns a level to each category, by category index.
type Allocation []int

// Cost returns the total points the allocation spends under cost.
//
// Precondition: every level is in [0, len(cost)].
func (a Allocation) Cost(cost []int) int {
	total := 0
	for _, level := range a {
		total += CumulativeCost(cost, level)
	}
	return total
}

// Modifier converts the allocation into a single modifier carrying the total
// effect of each invested category.
//
// Precondition: len(a) == len(categories).
func (a Allocation) Modifier(categories []Category) stat.Modifier {
	mod := stat.Modifier{Name: "hyper stats"}
	for i, level := range a {
		if level == 0 {
			continue
		}
		c := categories[i]
		mod.Effects = append(mod.Effects, stat.Delta{ID: c.Stat, Value: c.Effect(level)})
	}
	return mod
}

// Walk visits every allocation of levels 0..len(cost) to n categories whose
// total cost fits budget. Categories are walked in index order and levels in
// ascending order, so the visit order is lexicographic. A negative budget
// visits nothing. Walk stops early when visit returns false.
//
// Each Allocation passed to visit is freshly allocated; visit may keep it.
//
// Precondition: cost entries are non-negative and non-decreasing.
func Walk(n int, cost []int, budget int, visit func(Allocation) bool) {
	if budget < 0 {
		return
	}
	walk(n, cost, budget, Allocation{}, visit)
}

// walk extends prefix by one category. Each level gets its own copy of the
// path, so sibling branches never share backing arrays.
func walk(n int, cost []int, remaining int, prefix Allocation, visit func(Allocation) bool) bool {
	depth := len(prefix)
	if depth == n {
		return visit(prefix)
	}
	spent := 0
	for level := 0; level <= len(cost); level++ {
		if level > 0 {
			spent += cost[level-1]
			// Higher levels only cost more.
			if spent > remaining {
				break
			}
		}
		next := append(prefix[:depth:depth], level)
		if !walk(n, cost, remaining-spent, next, visit) {
			return false
		}
	}
	return true
}

// Enumerate returns every feasible allocation of categories under budget, in
// Walk order. The result is exhaustive, not just the allocations that spend
// the whole budget.
//
// Postcondition: With no categories the result is one empty allocation; with
// budget 0 it is one all-zero allocation.
func Enumerate(categories []Category, cost []int, budget int) []Allocation {
	var out []Allocation
	Walk(len(categories), cost, budget, func(a Allocation) bool {
		out = append(out, a)
		return true
	})
	return out
}

// Count returns the number of feasible allocations without retaining them.
func Count(categories []Category, cost []int, budget int) int {
	n := 0
	Walk(len(categories), cost, budget, func(Allocation) bool {
		n++
		return true
	})
	return n
}
