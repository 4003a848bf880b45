package main

import (
	"github.com/spf13/cobra"

	"github.com/tsilva-dev/dckp-solver/internal/ioformat"
	"github.com/tsilva-dev/dckp-solver/internal/report"
)

// newSummaryCommand implements `dckp summary <csv> [out.csv]`: reduce a
// result CSV previously produced by single/batch to one best-profit row
// per instance (SPEC_FULL.md §7's supplemented report.BestPerInstance).
func newSummaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <csv> [out]",
		Short: "Reduce a result CSV to the best-profit record per instance",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := ioformat.ReadCSV(args[0])
			if err != nil {
				return err
			}
			best := report.BestPerInstance(records)

			if len(args) == 2 {
				return ioformat.WriteCSV(args[1], best)
			}
			return ioformat.WriteCSVTo(cmd.OutOrStdout(), best)
		},
	}
	return cmd
}
