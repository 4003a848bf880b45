package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tsilva-dev/dckp-solver/internal/solution"
)

// WriteSolutionDump writes sol to path in the spec.md §6 dump format:
//
//	<total_profit> <total_weight> <num_items>
//	<i_1> <i_2> ... <i_k>
//
// Item indices are written 1-based, matching the on-disk instance
// format's convention.
func WriteSolutionDump(path string, sol *solution.Solution) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ioformat: create %s: %w", path, err)
	}
	defer f.Close()
	return WriteSolutionDumpTo(f, sol)
}

// WriteSolutionDumpTo writes the dump format to w.
func WriteSolutionDumpTo(w io.Writer, sol *solution.Solution) error {
	items := sol.Items()
	if _, err := fmt.Fprintf(w, "%d %d %d\n", sol.TotalProfit, sol.TotalWeight, len(items)); err != nil {
		return err
	}
	for idx, i := range items {
		if idx > 0 {
			if _, err := fmt.Fprint(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%d", i+1); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// SolutionDump is the parsed form of a dumped solution: the metadata
// line plus the 0-based item indices (converted back from the on-disk
// 1-based form).
type SolutionDump struct {
	TotalProfit int
	TotalWeight int
	NumItems    int
	Items       []int
}

// ReadSolutionDump parses the spec.md §6 dump format from r. This reader
// has no counterpart in spec.md (which only specifies the write format)
// but is useful for re-validating a previously dumped solution against a
// freshly loaded instance (SPEC_FULL.md §7).
func ReadSolutionDump(r io.Reader) (SolutionDump, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	nextInt := func() (int, bool) {
		if !sc.Scan() {
			return 0, false
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, false
		}
		return v, true
	}

	var d SolutionDump
	var ok bool
	if d.TotalProfit, ok = nextInt(); !ok {
		return SolutionDump{}, fmt.Errorf("ioformat: malformed dump header")
	}
	if d.TotalWeight, ok = nextInt(); !ok {
		return SolutionDump{}, fmt.Errorf("ioformat: malformed dump header")
	}
	if d.NumItems, ok = nextInt(); !ok {
		return SolutionDump{}, fmt.Errorf("ioformat: malformed dump header")
	}

	d.Items = make([]int, 0, d.NumItems)
	for i := 0; i < d.NumItems; i++ {
		v, ok := nextInt()
		if !ok {
			return SolutionDump{}, fmt.Errorf("ioformat: truncated item list")
		}
		d.Items = append(d.Items, v-1)
	}
	return d, nil
}
