// Package report provides a small read-only aggregation over driver
// records: the best (max-profit) method per instance. This is a
// supplemented feature (SPEC_FULL.md §7) — a view over already-produced
// records, not a new solving mode.
package report

import "github.com/tsilva-dev/dckp-solver/internal/ioformat"

// BestPerInstance reduces records to one entry per instance: the record
// with the greatest Profit. Infeasible records are not excluded — that
// filtering is left to the caller, consistent with spec.md §7's
// "preserves the infeasibility flag so analysis can filter it out".
// Ties keep the first record encountered for that instance, matching
// the first-wins tie-breaking convention used throughout this module.
func BestPerInstance(records []ioformat.Record) []ioformat.Record {
	order := make([]string, 0)
	best := make(map[string]ioformat.Record)

	for _, r := range records {
		cur, ok := best[r.Instance]
		if !ok {
			order = append(order, r.Instance)
			best[r.Instance] = r
			continue
		}
		if r.Profit > cur.Profit {
			best[r.Instance] = r
		}
	}

	out := make([]ioformat.Record, 0, len(order))
	for _, name := range order {
		out = append(out, best[name])
	}
	return out
}
