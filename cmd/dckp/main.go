// Command dckp is the CLI surface over the DCKP heuristic solver core.
// It is a thin adapter: argument parsing and process exit codes live
// here; all search logic lives in the internal packages (spec.md §1
// places the CLI itself out of scope for the core).
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("dckp: fatal error")
		os.Exit(1)
	}
}
