// Package validate is the authoritative feasibility oracle for DCKP
// solutions. Constructors and local searchers maintain TotalProfit and
// TotalWeight incrementally for speed; Validate independently
// recomputes both from scratch and performs the full pairwise conflict
// audit, so that bugs in the incremental bookkeeping are detectable —
// tests must call Validate rather than trust cached aggregates (spec.md
// §4.2, §8).
package validate

import (
	"github.com/tsilva-dev/dckp-solver/internal/instance"
	"github.com/tsilva-dev/dckp-solver/internal/solution"
)

// CheckCapacity reports whether adding an item of the given weight to a
// solution currently at currentWeight keeps it within capacity.
//
// Complexity: O(1).
func CheckCapacity(inst *instance.Instance, currentWeight, itemWeight int) bool {
	return currentWeight+itemWeight <= inst.Capacity()
}

// CheckConflicts reports whether item can be added to selected without
// creating a conflict.
//
// Complexity: O(|selected| * log d).
func CheckConflicts(inst *instance.Instance, item int, selected []int) bool {
	for _, s := range selected {
		if inst.HasConflict(item, s) {
			return false
		}
	}
	return true
}

// Validate recomputes profit, weight, and pairwise-conflict feasibility
// from scratch, overwriting sol.TotalProfit, sol.TotalWeight, and
// sol.IsFeasible with the recomputed values. It is the single operation
// in this module authorized to set IsFeasible.
//
// Complexity: O(n) for the profit/weight recomputation plus O(k^2 log d)
// for the pairwise conflict audit over k = sol.Len() selected items.
func Validate(sol *solution.Solution) bool {
	items := sol.Items()
	inst := sol.Instance()

	profit, weight := 0, 0
	for _, i := range items {
		profit += inst.Profit(i)
		weight += inst.Weight(i)
	}

	capacityOK := weight <= inst.Capacity()

	conflictFree := true
	for a := 0; a < len(items) && conflictFree; a++ {
		for b := a + 1; b < len(items); b++ {
			if inst.HasConflict(items[a], items[b]) {
				conflictFree = false
				break
			}
		}
	}

	sol.TotalProfit = profit
	sol.TotalWeight = weight
	sol.IsFeasible = capacityOK && conflictFree
	return sol.IsFeasible
}

// RecalculateMetrics recomputes TotalProfit and TotalWeight only,
// leaving IsFeasible untouched. Used where a caller needs fresh
// aggregates without paying for (or disturbing) the feasibility audit.
func RecalculateMetrics(sol *solution.Solution) {
	items := sol.Items()
	inst := sol.Instance()

	profit, weight := 0, 0
	for _, i := range items {
		profit += inst.Profit(i)
		weight += inst.Weight(i)
	}
	sol.TotalProfit = profit
	sol.TotalWeight = weight
}
