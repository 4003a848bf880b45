// Package localsearch implements the hill-climbing and Variable
// Neighbourhood Descent phases of the DCKP heuristic stack (spec.md
// §4.5, §4.6): a best-improvement 1-1 swap climber, and a three-tier
// VND cycling add/drop, 1-1 swap, and 2-1 swap neighbourhoods with
// restart-to-first on improvement.
package localsearch

import (
	"github.com/tsilva-dev/dckp-solver/internal/instance"
	"github.com/tsilva-dev/dckp-solver/internal/solution"
)

// move describes a candidate neighbour as the set of items to drop and
// add, plus the resulting total profit — enough for best-improvement
// arbitration without materializing every candidate Solution up front.
type move struct {
	drop   []int
	add    []int
	profit int
}

// apply returns a new Solution obtained from base by dropping m.drop and
// adding m.add. base is never mutated (neighbours must not alias the
// producer's internal state, spec.md §5).
func (m move) apply(base *solution.Solution) *solution.Solution {
	next := base.Clone()
	for _, d := range m.drop {
		next.RemoveItem(d)
	}
	for _, a := range m.add {
		next.AddItem(a)
	}
	return next
}

// swap11Neighbours enumerates every 1-1 swap neighbour of sol: remove i
// from selected, add j from outside selected, admissible iff the
// resulting weight respects capacity and j conflicts with no remaining
// selected member (spec.md §4.5). Enumeration order is i ascending over
// selected, j ascending over non-selected (spec.md §5), which is also
// the order in which moves are appended here — callers relying on
// first-wins tie-breaking over equal profit must preserve this order.
func swap11Neighbours(inst *instance.Instance, sol *solution.Solution) []move {
	selected := sol.Items()
	inSel := make([]bool, inst.NItems())
	for _, i := range selected {
		inSel[i] = true
	}

	var moves []move
	for _, i := range selected {
		newWeight := sol.TotalWeight - inst.Weight(i)
		for j := 0; j < inst.NItems(); j++ {
			if inSel[j] {
				continue
			}
			if newWeight+inst.Weight(j) > inst.Capacity() {
				continue
			}
			if conflictsWithAnyExcept(inst, j, selected, i) {
				continue
			}
			profit := sol.TotalProfit - inst.Profit(i) + inst.Profit(j)
			moves = append(moves, move{drop: []int{i}, add: []int{j}, profit: profit})
		}
	}
	return moves
}

// addDropNeighbours enumerates the N1 neighbourhood of spec.md §4.6: ADD
// moves (add j if capacity and conflict-free) followed by DROP moves
// (remove any i, always admissible). ADD moves are listed j ascending;
// DROP moves i ascending, ADD before DROP to keep a single deterministic
// scan order.
func addDropNeighbours(inst *instance.Instance, sol *solution.Solution) []move {
	selected := sol.Items()
	inSel := make([]bool, inst.NItems())
	for _, i := range selected {
		inSel[i] = true
	}

	var moves []move
	for j := 0; j < inst.NItems(); j++ {
		if inSel[j] {
			continue
		}
		if sol.TotalWeight+inst.Weight(j) > inst.Capacity() {
			continue
		}
		if conflictsWithAnyExcept(inst, j, selected) {
			continue
		}
		moves = append(moves, move{add: []int{j}, profit: sol.TotalProfit + inst.Profit(j)})
	}
	for _, i := range selected {
		moves = append(moves, move{drop: []int{i}, profit: sol.TotalProfit - inst.Profit(i)})
	}
	return moves
}

// swap21Neighbours enumerates the N3 neighbourhood of spec.md §4.6: drop
// an unordered pair {i1, i2} from selected and add j, admissible iff
// profits[j] strictly exceeds profits[i1]+profits[i2] (the admission
// filter, applied before the profit-of-neighbour test), capacity holds,
// and j conflicts with no remaining selected member. Returns nil when
// |selected| < 2, per spec.md §8's boundary behaviour.
func swap21Neighbours(inst *instance.Instance, sol *solution.Solution) []move {
	selected := sol.Items()
	if len(selected) < 2 {
		return nil
	}

	var moves []move
	for a := 0; a < len(selected); a++ {
		i1 := selected[a]
		for b := a + 1; b < len(selected); b++ {
			i2 := selected[b]
			pairProfit := inst.Profit(i1) + inst.Profit(i2)
			pairWeight := inst.Weight(i1) + inst.Weight(i2)

			for j := 0; j < inst.NItems(); j++ {
				if j == i1 || j == i2 {
					continue
				}
				if sol.Contains(j) {
					continue
				}
				if inst.Profit(j) <= pairProfit {
					continue
				}
				if sol.TotalWeight-pairWeight+inst.Weight(j) > inst.Capacity() {
					continue
				}
				if conflictsWithAnyExcept(inst, j, selected, i1, i2) {
					continue
				}
				profit := sol.TotalProfit - pairProfit + inst.Profit(j)
				moves = append(moves, move{drop: []int{i1, i2}, add: []int{j}, profit: profit})
			}
		}
	}
	return moves
}

// conflictsWithAnyExcept reports whether item conflicts with any member
// of selected other than those listed in except.
func conflictsWithAnyExcept(inst *instance.Instance, item int, selected []int, except ...int) bool {
	for _, s := range selected {
		if containsInt(except, s) {
			continue
		}
		if inst.HasConflict(item, s) {
			return true
		}
	}
	return false
}

func containsInt(a []int, x int) bool {
	for _, v := range a {
		if v == x {
			return true
		}
	}
	return false
}

// bestImproving scans moves and returns the one with strictly the
// greatest profit exceeding currentProfit. Ties keep the first
// enumerated (spec.md §5). Returns (move{}, false) if no improving move
// exists — a local optimum for this neighbourhood.
func bestImproving(moves []move, currentProfit int) (move, bool) {
	var best move
	found := false
	for _, m := range moves {
		if m.profit <= currentProfit {
			continue
		}
		if !found || m.profit > best.profit {
			best = m
			found = true
		}
	}
	return best, found
}
