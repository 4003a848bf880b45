package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tsilva-dev/dckp-solver/internal/construct"
	"github.com/tsilva-dev/dckp-solver/internal/driver"
	"github.com/tsilva-dev/dckp-solver/internal/localsearch"
	"github.com/tsilva-dev/dckp-solver/internal/logging"
)

// graspFlags holds the GRASP/local-search knobs shared by every
// subcommand that runs the solver, bound via pflag through cobra.
type graspFlags struct {
	iterations int
	alpha      float64
	seed       int64
	hcMaxIter  int
	vndMaxIter int
}

func (f *graspFlags) register(cmd *cobra.Command) {
	defaults := construct.DefaultGRASPOptions()
	cmd.Flags().IntVar(&f.iterations, "iterations", defaults.Iterations, "GRASP multi-start iteration count")
	cmd.Flags().Float64Var(&f.alpha, "alpha", defaults.Alpha, "GRASP RCL threshold in [0,1]")
	cmd.Flags().Int64Var(&f.seed, "seed", defaults.Seed, "GRASP RNG seed")
	cmd.Flags().IntVar(&f.hcMaxIter, "hc-max-iterations", localsearch.DefaultHillClimbingOptions().MaxIterations, "hill-climbing iteration cap")
	cmd.Flags().IntVar(&f.vndMaxIter, "vnd-max-iterations", localsearch.DefaultVNDOptions().MaxIterations, "VND iteration cap")
}

func (f *graspFlags) options() driver.Options {
	return driver.Options{
		GRASP: construct.GRASPOptions{Iterations: f.iterations, Alpha: f.alpha, Seed: f.seed},
		HC:    localsearch.HillClimbingOptions{MaxIterations: f.hcMaxIter},
		VND:   localsearch.VNDOptions{MaxIterations: f.vndMaxIter},
	}
}

// newRootCommand builds the dckp command tree: single, batch,
// batch-etapa1, batch-etapa2 (spec.md §6), plus the supplemented
// summary subcommand (SPEC_FULL.md §7). The root's PersistentPreRunE
// wires internal/logging so the driver's Warn-level reporting of load
// failures and validate-time infeasibility (spec.md §7) goes through
// the console writer/level configured there instead of zerolog's
// default JSON-to-stdout.
func newRootCommand() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:           "dckp",
		Short:         "Heuristic solver for the Disjunctively Constrained Knapsack Problem",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(os.Stderr, debug)
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug-level logging")

	root.AddCommand(
		newSingleCommand(),
		newBatchCommand(),
		newBatchEtapa1Command(),
		newBatchEtapa2Command(),
		newSummaryCommand(),
	)
	return root
}
