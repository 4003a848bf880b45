package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tsilva-dev/dckp-solver/internal/graph"
)

// Load reads an Instance from the whitespace-tokenised text format
// described in spec.md §4.1 / §6:
//
//	<n_items> <capacity> <n_conflicts>
//	<profit_1> ... <profit_n>
//	<weight_1> ... <weight_n>
//	<u_1> <v_1>
//	...
//
// Item indices in the conflict section are 1-based on disk and are
// converted to 0-based here. Tokens are read until EOF regardless of the
// declared n_conflicts; an odd trailing token (a u with no matching v) is
// discarded. Out-of-range or self-referencing pairs are silently dropped
// by the conflict-graph builder — one edge lost, never a fatal error.
//
// Complexity: O(n + e log e) where e is the number of token pairs read,
// dominated by the conflict-graph build.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	inst, err := LoadReader(f)
	if err != nil {
		return nil, err
	}
	inst.name = filepath.Base(path)
	return inst, nil
}

// LoadReader parses the instance format from an already-open reader,
// without assigning a Name. Exposed so tests and callers holding an
// in-memory buffer (e.g. an embedded instance) can skip the filesystem.
func LoadReader(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
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

	nItems, ok := nextInt()
	if !ok {
		return nil, ErrMalformedHeader
	}
	capacity, ok := nextInt()
	if !ok {
		return nil, ErrMalformedHeader
	}
	declaredConflicts, ok := nextInt()
	if !ok {
		return nil, ErrMalformedHeader
	}
	_ = declaredConflicts // only used as a hint; the reader ignores it (spec §4.1)

	if nItems <= 0 {
		return nil, ErrInvalidItemCount
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	profits := make([]int, nItems)
	for i := 0; i < nItems; i++ {
		v, ok := nextInt()
		if !ok {
			return nil, ErrTruncatedBody
		}
		profits[i] = v
	}

	weights := make([]int, nItems)
	for i := 0; i < nItems; i++ {
		v, ok := nextInt()
		if !ok {
			return nil, ErrTruncatedBody
		}
		weights[i] = v
	}

	var pairs [][2]int
	for {
		u, ok := nextInt()
		if !ok {
			break
		}
		v, ok := nextInt()
		if !ok {
			break // odd trailing token; discard it
		}
		// Convert from 1-based (on disk) to 0-based (internal).
		pairs = append(pairs, [2]int{u - 1, v - 1})
	}

	g, err := graph.Build(nItems, pairs)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}

	return &Instance{
		capacity: capacity,
		profits:  profits,
		weights:  weights,
		conflict: g,
		nEdges:   len(pairs),
	}, nil
}
