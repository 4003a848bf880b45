package construct_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsilva-dev/dckp-solver/internal/construct"
	"github.com/tsilva-dev/dckp-solver/internal/instance"
	"github.com/tsilva-dev/dckp-solver/internal/validate"
)

func loadInst(t *testing.T, body string) *instance.Instance {
	t.Helper()
	path := t.TempDir() + "/i.txt"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	inst, err := instance.Load(path)
	require.NoError(t, err)
	return inst
}

func TestConstruct_TrivialSingleton(t *testing.T) {
	inst := loadInst(t, "1 10 0\n5\n3\n")
	for _, s := range []construct.Strategy{construct.MaxProfit, construct.MinWeight, construct.MaxProfitWeight, construct.MinConflicts} {
		sol := construct.Construct(inst, s)
		require.Equal(t, []int{0}, sol.Items())
		require.Equal(t, 5, sol.TotalProfit)
		require.Equal(t, 3, sol.TotalWeight)
		require.True(t, sol.IsFeasible)
	}
}

func TestConstruct_CapacityTight(t *testing.T) {
	inst := loadInst(t, "3 5 0\n4 3 3\n3 2 2\n")

	maxProfit := construct.Construct(inst, construct.MaxProfit)
	require.Equal(t, []int{0, 1}, maxProfit.Items())
	require.Equal(t, 7, maxProfit.TotalProfit)
	require.Equal(t, 5, maxProfit.TotalWeight)

	maxRatio := construct.Construct(inst, construct.MaxProfitWeight)
	require.Equal(t, []int{1, 2}, maxRatio.Items())
	require.Equal(t, 6, maxRatio.TotalProfit)
	require.Equal(t, 4, maxRatio.TotalWeight)
}

func TestConstruct_ConflictBlocksGreedy(t *testing.T) {
	inst := loadInst(t, "3 10 1\n10 9 8\n5 5 5\n1 2\n")

	sol := construct.Construct(inst, construct.MaxProfit)
	require.Equal(t, []int{0, 2}, sol.Items())
	require.Equal(t, 18, sol.TotalProfit)
}

func TestConstruct_MaxProfitWeightZeroWeightSentinel(t *testing.T) {
	inst := loadInst(t, "2 10 0\n5 1\n0 1\n")

	sol := construct.Construct(inst, construct.MaxProfitWeight)
	// Item 0 has weight 0 => sentinel score 1000*5=5000, beats item 1's 1/1=1.
	require.Equal(t, []int{0, 1}, sol.Items())
}

func TestConstructAll_FixedOrder(t *testing.T) {
	inst := loadInst(t, "3 5 0\n4 3 3\n3 2 2\n")
	sols := construct.ConstructAll(inst)
	require.Len(t, sols, 4)
	require.Equal(t, "Greedy_MAX_PROFIT", sols[0].MethodName)
	require.Equal(t, "Greedy_MIN_WEIGHT", sols[1].MethodName)
	require.Equal(t, "Greedy_MAX_PROFIT_WEIGHT", sols[2].MethodName)
	require.Equal(t, "Greedy_MIN_CONFLICTS", sols[3].MethodName)
}

func TestBest_PicksMaxProfit(t *testing.T) {
	inst := loadInst(t, "3 5 0\n4 3 3\n3 2 2\n")
	sols := construct.ConstructAll(inst)
	best := construct.Best(sols)
	require.Equal(t, 7, best.TotalProfit)
}

func TestGRASP_Reproducibility(t *testing.T) {
	inst := loadInst(t, "6 15 2\n6 5 4 8 3 7\n4 3 2 5 2 6\n1 2\n3 5\n")

	run := func() construct.GRASPResult {
		g := construct.NewGRASP(construct.GRASPOptions{Iterations: 50, Alpha: 0.3, Seed: 42})
		return g.Run(inst)
	}

	a := run()
	b := run()
	require.Equal(t, a.Best.Items(), b.Best.Items())
	require.Equal(t, a.Best.TotalProfit, b.Best.TotalProfit)
}

func TestGRASP_SetSeedIsDeterministicFromThatPoint(t *testing.T) {
	inst := loadInst(t, "5 10 1\n5 4 3 6 2\n3 2 4 3 1\n1 2\n")

	g1 := construct.NewGRASP(construct.GRASPOptions{Iterations: 20, Alpha: 0.5, Seed: 1})
	g1.SetSeed(7)
	r1 := g1.Run(inst)

	g2 := construct.NewGRASP(construct.GRASPOptions{Iterations: 20, Alpha: 0.5, Seed: 7})
	r2 := g2.Run(inst)

	require.Equal(t, r1.Best.Items(), r2.Best.Items())
}

func TestGRASP_AlphaZeroAlwaysMaxScore(t *testing.T) {
	inst := loadInst(t, "4 20 0\n10 8 6 4\n2 2 2 2\n")
	g := construct.NewGRASP(construct.GRASPOptions{Iterations: 1, Alpha: 0, Seed: 42})
	result := g.Run(inst)

	// Pure greedy by score: highest profit-per-weight first, all fit.
	require.True(t, result.Best.IsFeasible)
	require.Equal(t, []int{0, 1, 2, 3}, result.Best.Items())
}

func TestGRASP_NonPositiveIterationsClampedToOne(t *testing.T) {
	inst := loadInst(t, "3 10 0\n4 3 3\n3 2 2\n")

	for _, iters := range []int{0, -5} {
		g := construct.NewGRASP(construct.GRASPOptions{Iterations: iters, Alpha: 0.3, Seed: 42})
		result := g.Run(inst)

		require.NotNil(t, result.Best)
		require.True(t, result.Best.IsFeasible)
	}
}

func TestGRASP_AlphaOneDrawsFromFullCandidateRange(t *testing.T) {
	// Widely separated profits, all mutually compatible, and a capacity
	// that fits exactly one item: every item is a candidate for the first
	// draw and the finished solution holds only that draw. alpha=1 sets
	// the RCL threshold to s_min, so the RCL is every feasible candidate,
	// not just the top scorers.
	inst := loadInst(t, "5 1 0\n50 1 1 1 1\n1 1 1 1 1\n")

	seen := map[int]bool{}
	for seed := int64(0); seed < 30; seed++ {
		g := construct.NewGRASP(construct.GRASPOptions{Iterations: 1, Alpha: 1, Seed: seed})
		result := g.Run(inst)
		require.NotEmpty(t, result.Best.Items())
		seen[result.Best.Items()[0]] = true
	}

	// A pure-greedy (alpha=0) run would always start with item 0 (profit
	// 50, dominant score). Seeing other first picks across seeds proves
	// the RCL was not narrowed to the top scorer alone.
	require.Greater(t, len(seen), 1)
}

func TestGRASP_ProducesFeasibleSolutions(t *testing.T) {
	inst := loadInst(t, "8 20 3\n9 3 7 2 8 5 6 1\n4 2 5 1 6 3 4 1\n1 2\n3 4\n5 6\n")
	g := construct.NewGRASP(construct.GRASPOptions{Iterations: 30, Alpha: 0.4, Seed: 42})
	result := g.Run(inst)

	require.True(t, validate.Validate(result.Best))
	require.LessOrEqual(t, result.Best.TotalWeight, inst.Capacity())
}
