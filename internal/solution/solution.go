// Package solution holds the mutable, selected-item-set representation
// produced by constructors and refined by local search, plus the cached
// aggregates (total profit, total weight, feasibility) that every
// component in this module reads.
package solution

import (
	"time"

	"github.com/tsilva-dev/dckp-solver/internal/instance"
)

// Solution is a candidate subset of an Instance's items, with aggregates
// maintained incrementally by AddItem/RemoveItem.
//
// IsFeasible is only authoritative once Validate (package validate) has
// run; AddItem/RemoveItem never touch it, since a solution under
// construction is routinely infeasible-by-omission (not yet checked)
// rather than infeasible-by-violation.
type Solution struct {
	inst        *instance.Instance
	selected    *orderedSet
	TotalProfit int
	TotalWeight int
	IsFeasible  bool
	Elapsed     time.Duration
	MethodName  string
}

// New creates an empty Solution bound to inst. Two solutions built from
// the same Instance never alias each other's selected set.
func New(inst *instance.Instance) *Solution {
	return &Solution{
		inst:     inst,
		selected: &orderedSet{},
	}
}

// Clone returns an independent copy: mutating the clone's selected set,
// aggregates, or metadata never affects the receiver.
func (s *Solution) Clone() *Solution {
	return &Solution{
		inst:        s.inst,
		selected:    s.selected.clone(),
		TotalProfit: s.TotalProfit,
		TotalWeight: s.TotalWeight,
		IsFeasible:  s.IsFeasible,
		Elapsed:     s.Elapsed,
		MethodName:  s.MethodName,
	}
}

// Instance returns the Instance this Solution was built against.
func (s *Solution) Instance() *instance.Instance {
	return s.inst
}

// Contains reports whether item i is selected. O(log n).
func (s *Solution) Contains(i int) bool {
	return s.selected.contains(i)
}

// Len returns the number of selected items.
func (s *Solution) Len() int {
	return s.selected.len()
}

// Items returns the selected item indices in ascending order. The
// returned slice is owned by the Solution and must not be mutated.
func (s *Solution) Items() []int {
	return s.selected.slice()
}

// AddItem inserts item i and updates TotalProfit/TotalWeight. Adding an
// already-selected item is a no-op: aggregates are untouched, matching
// spec.md §3's idempotence contract.
func (s *Solution) AddItem(i int) {
	if !s.selected.add(i) {
		return
	}
	s.TotalProfit += s.inst.Profit(i)
	s.TotalWeight += s.inst.Weight(i)
}

// RemoveItem deletes item i and updates TotalProfit/TotalWeight.
// Removing an absent item is a no-op.
func (s *Solution) RemoveItem(i int) {
	if !s.selected.remove(i) {
		return
	}
	s.TotalProfit -= s.inst.Profit(i)
	s.TotalWeight -= s.inst.Weight(i)
}

// Better reports whether s strictly beats other by total profit — the
// only ordering relation solutions support (spec.md §3).
func (s *Solution) Better(other *Solution) bool {
	return s.TotalProfit > other.TotalProfit
}
