// Package ioformat implements the on-disk record formats named in
// spec.md §6: the result CSV and the optional per-solution dump file.
package ioformat

// Record is one (instance, method) result row, as produced by the
// experiment driver and written to CSV.
type Record struct {
	Instance string
	Method   string
	Profit   int
	Weight   int
	NumItems int
	Time     float64 // elapsed seconds
	Feasible bool
}
