// Package driver orchestrates the constructive and local-search layers
// over instances read from disk and emits the tabular result records of
// spec.md §4.7, §6. It is deliberately thin: all search logic lives in
// construct and localsearch; this package only sequences calls and
// turns their outputs into Records.
package driver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tsilva-dev/dckp-solver/internal/construct"
	"github.com/tsilva-dev/dckp-solver/internal/instance"
	"github.com/tsilva-dev/dckp-solver/internal/ioformat"
	"github.com/tsilva-dev/dckp-solver/internal/localsearch"
	"github.com/tsilva-dev/dckp-solver/internal/solution"
)

// Options configures the knobs the driver exposes to its GRASP and
// local-search stages (spec.md §1's "exposed knobs").
type Options struct {
	GRASP construct.GRASPOptions
	HC    localsearch.HillClimbingOptions
	VND   localsearch.VNDOptions
}

// DefaultOptions wires the defaults of every underlying component.
func DefaultOptions() Options {
	return Options{
		GRASP: construct.DefaultGRASPOptions(),
		HC:    localsearch.DefaultHillClimbingOptions(),
		VND:   localsearch.DefaultVNDOptions(),
	}
}

// recordsFor turns a slice of solutions produced for one instance into
// Records, in the order given.
func recordsFor(instName string, sols ...*solution.Solution) []ioformat.Record {
	out := make([]ioformat.Record, 0, len(sols))
	for _, s := range sols {
		if !s.IsFeasible {
			// spec.md §7: infeasibility detected at validate time is reported
			// on standard error but never aborts the run; the record is still
			// emitted with Feasible=false so downstream analysis can filter it.
			log.Warn().
				Str("instance", instName).
				Str("method", s.MethodName).
				Int("weight", s.TotalWeight).
				Msg("solution failed validation")
		}
		out = append(out, ioformat.Record{
			Instance: instName,
			Method:   s.MethodName,
			Profit:   s.TotalProfit,
			Weight:   s.TotalWeight,
			NumItems: s.Len(),
			Time:     s.Elapsed.Seconds(),
			Feasible: s.IsFeasible,
		})
	}
	return out
}

// Single runs all four greedy strategies, GRASP with opts.GRASP, then
// HillClimbing and VND both seeded from the GRASP solution (spec.md
// §4.7's single(path) mode). A load failure is returned to the caller
// rather than silently skipped, matching single-mode's error-status
// contract.
func Single(path string, opts Options) ([]ioformat.Record, error) {
	inst, err := instance.Load(path)
	if err != nil {
		return nil, err
	}

	var records []ioformat.Record
	records = append(records, recordsFor(inst.Name(), construct.ConstructAll(inst)...)...)

	grasp := construct.NewGRASP(opts.GRASP)
	graspResult := grasp.Run(inst)
	records = append(records, recordsFor(inst.Name(), graspResult.Best)...)

	hc := localsearch.HillClimb(inst, graspResult.Best, opts.HC)
	vnd := localsearch.VND(inst, graspResult.Best, opts.VND)
	records = append(records, recordsFor(inst.Name(), hc, vnd)...)

	return records, nil
}

// isInstanceFile reports whether path is treated as an instance file by
// the batch walkers: a regular file whose basename does not start with
// "." and whose path does not contain ".csv" (spec.md §4.7).
func isInstanceFile(path string, d os.DirEntry) bool {
	if !d.Type().IsRegular() {
		return false
	}
	name := d.Name()
	if strings.HasPrefix(name, ".") {
		return false
	}
	if strings.Contains(path, ".csv") {
		return false
	}
	return true
}

// walk lists every instance file under dir, in lexical order (the order
// filepath.WalkDir guarantees).
func walk(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if isInstanceFile(path, d) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// BatchEtapa1 walks dir and runs the constructive layer only (spec.md
// §4.7's batch-etapa1 mode). A per-instance load failure is logged and
// the instance skipped; only a fatal directory-walk error aborts.
func BatchEtapa1(dir string, opts Options) ([]ioformat.Record, error) {
	return walkAndRun(dir, func(inst *instance.Instance) []ioformat.Record {
		return recordsFor(inst.Name(), construct.ConstructAll(inst)...)
	})
}

// BatchEtapa2 walks dir and runs GRASP, then HC and VND both seeded from
// the SAME GRASP solution (no chaining), per spec.md §4.7.
func BatchEtapa2(dir string, opts Options) ([]ioformat.Record, error) {
	return walkAndRun(dir, func(inst *instance.Instance) []ioformat.Record {
		grasp := construct.NewGRASP(opts.GRASP)
		graspResult := grasp.Run(inst)
		hc := localsearch.HillClimb(inst, graspResult.Best, opts.HC)
		vnd := localsearch.VND(inst, graspResult.Best, opts.VND)
		return recordsFor(inst.Name(), graspResult.Best, hc, vnd)
	})
}

// Batch walks dir and runs the constructive layer plus both local
// searches (spec.md §4.7's combined batch mode).
func Batch(dir string, opts Options) ([]ioformat.Record, error) {
	return walkAndRun(dir, func(inst *instance.Instance) []ioformat.Record {
		var recs []ioformat.Record
		recs = append(recs, recordsFor(inst.Name(), construct.ConstructAll(inst)...)...)

		grasp := construct.NewGRASP(opts.GRASP)
		graspResult := grasp.Run(inst)
		hc := localsearch.HillClimb(inst, graspResult.Best, opts.HC)
		vnd := localsearch.VND(inst, graspResult.Best, opts.VND)
		recs = append(recs, recordsFor(inst.Name(), graspResult.Best, hc, vnd)...)
		return recs
	})
}

// walkAndRun is the shared skeleton of the three batch modes: walk dir,
// load each instance, hand it to run, and accumulate Records. A load
// failure is logged at Warn and the instance skipped (spec.md §7); a
// directory-walk error is fatal and returned.
func walkAndRun(dir string, run func(*instance.Instance) []ioformat.Record) ([]ioformat.Record, error) {
	paths, err := walk(dir)
	if err != nil {
		return nil, err
	}

	var records []ioformat.Record
	for _, path := range paths {
		inst, err := instance.Load(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping instance: load failed")
			continue
		}
		records = append(records, run(inst)...)
	}
	return records, nil
}
