package localsearch

import (
	"time"

	"github.com/tsilva-dev/dckp-solver/internal/instance"
	"github.com/tsilva-dev/dckp-solver/internal/solution"
	"github.com/tsilva-dev/dckp-solver/internal/validate"
)

// VNDOptions configures the Variable Neighbourhood Descent schedule.
type VNDOptions struct {
	// MaxIterations caps the schedule's iteration counter t (spec.md
	// §4.6). Reaching the cap is a normal termination.
	MaxIterations int
}

// DefaultVNDOptions mirrors DefaultHillClimbingOptions' generous cap.
func DefaultVNDOptions() VNDOptions {
	return VNDOptions{MaxIterations: 10000}
}

// neighbourhoodGenerators lists the three VND neighbourhoods in
// increasing order of cost/strength, matching spec.md §4.6's N1 (k=1)
// through N3 (k=3).
var neighbourhoodGenerators = []func(*instance.Instance, *solution.Solution) []move{
	addDropNeighbours,
	swap11Neighbours,
	swap21Neighbours,
}

// VND runs Variable Neighbourhood Descent starting from start: explore
// neighbourhood N_k for the strictly-best-improving move; on
// improvement move there and restart at k=1; otherwise escalate to
// k+1. Terminates when k exceeds 3 (all neighbourhoods clean) or the
// iteration cap is reached (spec.md §4.6).
func VND(inst *instance.Instance, start *solution.Solution, opts VNDOptions) *solution.Solution {
	begin := time.Now()
	cur := start.Clone()

	k := 0 // 0-indexed into neighbourhoodGenerators; spec.md's k=1 is index 0
	for t := 0; k < len(neighbourhoodGenerators) && t < opts.MaxIterations; t++ {
		neighbours := neighbourhoodGenerators[k](inst, cur)
		best, found := bestImproving(neighbours, cur.TotalProfit)
		if found {
			cur = best.apply(cur)
			k = 0
		} else {
			k++
		}
	}

	validate.Validate(cur)
	cur.Elapsed = time.Since(begin)
	cur.MethodName = "VND"
	return cur
}
