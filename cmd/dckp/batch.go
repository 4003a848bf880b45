package main

import (
	"github.com/spf13/cobra"

	"github.com/tsilva-dev/dckp-solver/internal/driver"
	"github.com/tsilva-dev/dckp-solver/internal/ioformat"
)

// batchRunner is satisfied by driver.Batch, driver.BatchEtapa1, and
// driver.BatchEtapa2, letting the three subcommands share one
// command-building helper.
type batchRunner func(dir string, opts driver.Options) ([]ioformat.Record, error)

func newBatchSubcommand(use, short string, run batchRunner) *cobra.Command {
	var flags graspFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := run(args[0], flags.options())
			if err != nil {
				return err
			}
			return ioformat.WriteCSV(args[1], records)
		},
	}
	flags.register(cmd)
	return cmd
}

// newBatchCommand implements `dckp batch <dir> <csv>`: constructive
// layer plus both local searches (spec.md §4.7, §6).
func newBatchCommand() *cobra.Command {
	return newBatchSubcommand("batch <dir> <csv>", "Run the combined constructive + local-search layer over a directory", driver.Batch)
}

// newBatchEtapa1Command implements `dckp batch-etapa1 <dir> <csv>`:
// constructive layer only.
func newBatchEtapa1Command() *cobra.Command {
	return newBatchSubcommand("batch-etapa1 <dir> <csv>", "Run only the constructive layer over a directory", driver.BatchEtapa1)
}

// newBatchEtapa2Command implements `dckp batch-etapa2 <dir> <csv>`:
// GRASP followed by HC and VND, both seeded from the same GRASP
// solution.
func newBatchEtapa2Command() *cobra.Command {
	return newBatchSubcommand("batch-etapa2 <dir> <csv>", "Run GRASP plus both local searches, seeded from the same GRASP solution", driver.BatchEtapa2)
}
