package main

import (
	"github.com/spf13/cobra"

	"github.com/tsilva-dev/dckp-solver/internal/driver"
	"github.com/tsilva-dev/dckp-solver/internal/ioformat"
)

// newSingleCommand implements `dckp single <path> [csv]` (spec.md §6):
// load one instance, run all greedy strategies, GRASP, then HC and VND
// seeded by the GRASP solution.
func newSingleCommand() *cobra.Command {
	var flags graspFlags

	cmd := &cobra.Command{
		Use:   "single <path> [csv]",
		Short: "Run the full heuristic stack on one instance",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := driver.Single(args[0], flags.options())
			if err != nil {
				return err
			}
			if len(args) == 2 {
				return ioformat.WriteCSV(args[1], records)
			}
			return ioformat.WriteCSVTo(cmd.OutOrStdout(), records)
		},
	}
	flags.register(cmd)
	return cmd
}
