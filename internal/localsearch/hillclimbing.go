package localsearch

import (
	"time"

	"github.com/tsilva-dev/dckp-solver/internal/instance"
	"github.com/tsilva-dev/dckp-solver/internal/solution"
	"github.com/tsilva-dev/dckp-solver/internal/validate"
)

// HillClimbingOptions configures the best-improvement 1-1 swap climber.
type HillClimbingOptions struct {
	// MaxIterations caps the number of accepted moves. Reaching the cap
	// is a normal termination, not an error (spec.md §7).
	MaxIterations int
}

// DefaultHillClimbingOptions returns a generous default cap; in practice
// the climber almost always reaches a local optimum well before it.
func DefaultHillClimbingOptions() HillClimbingOptions {
	return HillClimbingOptions{MaxIterations: 10000}
}

// HillClimb runs best-improvement hill climbing over the 1-1 swap
// neighbourhood starting from start. start is never mutated; the
// returned Solution is an independent copy carrying the climbed result
// (spec.md §4.5).
func HillClimb(inst *instance.Instance, start *solution.Solution, opts HillClimbingOptions) *solution.Solution {
	begin := time.Now()
	cur := start.Clone()

	for iter := 0; iter < opts.MaxIterations; iter++ {
		neighbours := swap11Neighbours(inst, cur)
		best, found := bestImproving(neighbours, cur.TotalProfit)
		if !found {
			break // local optimum
		}
		cur = best.apply(cur)
	}

	validate.Validate(cur)
	cur.Elapsed = time.Since(begin)
	cur.MethodName = "HillClimbing"
	return cur
}
