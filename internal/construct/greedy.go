// Package construct implements the constructive phase of the DCKP
// heuristic stack: four deterministic greedy orderings and the
// randomised GRASP constructor, both building a Solution one item at a
// time under a feasibility filter (spec.md §4.3, §4.4).
package construct

import (
	"sort"
	"time"

	"github.com/tsilva-dev/dckp-solver/internal/instance"
	"github.com/tsilva-dev/dckp-solver/internal/solution"
	"github.com/tsilva-dev/dckp-solver/internal/validate"
)

// Strategy selects one of the four greedy scoring functions.
type Strategy int

const (
	// MaxProfit orders items by descending profit.
	MaxProfit Strategy = iota
	// MinWeight orders items by ascending weight.
	MinWeight
	// MaxProfitWeight orders items by descending profit/weight ratio.
	MaxProfitWeight
	// MinConflicts orders items by ascending conflict degree.
	MinConflicts
)

// String returns the method-name suffix used in spec.md §4.3's
// "Greedy_<strategy>" naming convention.
func (s Strategy) String() string {
	switch s {
	case MaxProfit:
		return "MAX_PROFIT"
	case MinWeight:
		return "MIN_WEIGHT"
	case MaxProfitWeight:
		return "MAX_PROFIT_WEIGHT"
	case MinConflicts:
		return "MIN_CONFLICTS"
	default:
		return "UNKNOWN"
	}
}

// profitWeightSentinel is the finite score substituted for items whose
// weight is zero, so MaxProfitWeight never divides by zero yet keeps a
// deterministic, strictly-profit-proportional ordering among zero-weight
// items (spec.md §4.3 boundary behaviour).
const profitWeightSentinel = 1000.0

// score returns the strategy's real-valued score for item i. Higher is
// visited first.
func score(inst *instance.Instance, s Strategy, i int) float64 {
	switch s {
	case MaxProfit:
		return float64(inst.Profit(i))
	case MinWeight:
		return -float64(inst.Weight(i))
	case MaxProfitWeight:
		w := inst.Weight(i)
		if w == 0 {
			return profitWeightSentinel * float64(inst.Profit(i))
		}
		return float64(inst.Profit(i)) / float64(w)
	case MinConflicts:
		return -float64(inst.ConflictDegree(i))
	default:
		return 0
	}
}

// orderedByScore returns item indices sorted by descending score, ties
// broken by ascending index for determinism (spec.md §4.3, §5).
func orderedByScore(inst *instance.Instance, s Strategy) []int {
	n := inst.NItems()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := score(inst, s, order[a]), score(inst, s, order[b])
		if sa != sb {
			return sa > sb
		}
		return order[a] < order[b]
	})
	return order
}

// Construct runs a single deterministic greedy pass with strategy s over
// inst and returns the resulting Solution. The solution is validated
// before return, per spec.md §4.3's "at the end, call validate" step.
func Construct(inst *instance.Instance, s Strategy) *solution.Solution {
	start := time.Now()
	sol := solution.New(inst)

	for _, i := range orderedByScore(inst, s) {
		if !validate.CheckCapacity(inst, sol.TotalWeight, inst.Weight(i)) {
			continue
		}
		if !validate.CheckConflicts(inst, i, sol.Items()) {
			continue
		}
		sol.AddItem(i)
	}

	validate.Validate(sol)
	sol.Elapsed = time.Since(start)
	sol.MethodName = "Greedy_" + s.String()
	return sol
}

// allStrategies lists the four greedy strategies in the fixed order used
// by ConstructAll and CSV emission.
var allStrategies = []Strategy{MaxProfit, MinWeight, MaxProfitWeight, MinConflicts}

// ConstructAll runs all four greedy strategies and returns their
// solutions in the fixed order MAX_PROFIT, MIN_WEIGHT,
// MAX_PROFIT_WEIGHT, MIN_CONFLICTS (spec.md §4.3's constructAll()).
func ConstructAll(inst *instance.Instance) []*solution.Solution {
	out := make([]*solution.Solution, 0, len(allStrategies))
	for _, s := range allStrategies {
		out = append(out, Construct(inst, s))
	}
	return out
}

// Best returns the solution of maximum TotalProfit among sols. Panics if
// sols is empty — callers always pass a non-empty slice from
// ConstructAll.
func Best(sols []*solution.Solution) *solution.Solution {
	best := sols[0]
	for _, s := range sols[1:] {
		if s.Better(best) {
			best = s
		}
	}
	return best
}
