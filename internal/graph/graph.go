// Package graph provides a conflict graph over a dense range of integer
// item indices [0, n).
//
// Unlike the string-keyed, map-of-maps adjacency used elsewhere in this
// module's ancestry, a DCKP conflict graph is built once from a small
// integer domain and then only ever queried, never mutated — so the
// backing structure favours query complexity over incremental-edit
// complexity: sorted, de-duplicated []int adjacency per vertex, giving
// O(log d) membership via binary search.
//
// This file declares the Graph type, its construction, and degree/edge
// queries. It does not support mutation after Build: conflict graphs are
// immutable for the lifetime of a run (see instance.Instance).
package graph

import (
	"errors"
	"sort"
)

// Sentinel errors for conflict-graph construction.
var (
	// ErrNegativeSize indicates a negative vertex count was requested.
	ErrNegativeSize = errors.New("graph: vertex count must be non-negative")
)

// Graph is an immutable, integer-indexed undirected adjacency structure.
//
// adjacency[i] is the sorted, de-duplicated list of vertices j such that
// an edge (i, j) was present in the input pair list. Self-loops (i == i)
// and out-of-range indices are dropped silently during Build — callers
// that need to report a dropped edge must inspect the input themselves.
type Graph struct {
	n         int
	adjacency [][]int
	edgeCount int
}

// Build constructs a Graph over vertices [0, n) from an unordered list of
// (u, v) pairs. Pairs with u == v, or with either endpoint outside
// [0, n), are silently discarded — exactly one edge dropped, never an
// abort, matching the tolerant-parsing contract the caller (instance
// loader) needs for malformed conflict sections.
//
// Complexity: O(n + e log e) where e = len(pairs), dominated by the
// per-vertex sort.
func Build(n int, pairs [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	g := &Graph{
		n:         n,
		adjacency: make([][]int, n),
	}

	for _, p := range pairs {
		u, v := p[0], p[1]
		if u == v {
			continue
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			continue
		}
		g.adjacency[u] = append(g.adjacency[u], v)
		g.adjacency[v] = append(g.adjacency[v], u)
		g.edgeCount++
	}

	for i := 0; i < n; i++ {
		g.adjacency[i] = sortDedup(g.adjacency[i])
	}

	return g, nil
}

// sortDedup sorts a in place and removes adjacent duplicates, returning
// the (possibly shorter) slice.
func sortDedup(a []int) []int {
	if len(a) < 2 {
		return a
	}
	sort.Ints(a)
	out := a[:1]
	for _, v := range a[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// N returns the number of vertices the Graph was built over.
func (g *Graph) N() int {
	return g.n
}

// HasConflict reports whether i and j are adjacent.
//
// Complexity: O(log d) where d = min(degree(i), degree(j)), via binary
// search into whichever adjacency list is shorter.
func (g *Graph) HasConflict(i, j int) bool {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return false
	}
	ai, aj := g.adjacency[i], g.adjacency[j]
	if len(ai) <= len(aj) {
		return searchSorted(ai, j)
	}
	return searchSorted(aj, i)
}

// searchSorted reports whether x is present in the sorted slice a.
func searchSorted(a []int, x int) bool {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case a[mid] == x:
			return true
		case a[mid] < x:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}

// Degree returns the conflict degree of vertex i: the number of items
// that conflict with it.
//
// Complexity: O(1).
func (g *Graph) Degree(i int) int {
	if i < 0 || i >= g.n {
		return 0
	}
	return len(g.adjacency[i])
}

// Neighbors returns the sorted adjacency list of vertex i. The returned
// slice is owned by the Graph and must not be mutated by the caller.
func (g *Graph) Neighbors(i int) []int {
	if i < 0 || i >= g.n {
		return nil
	}
	return g.adjacency[i]
}

// EdgeCount returns the number of input pairs retained after
// Build (self-loops and out-of-range pairs excluded, duplicate pairs
// counted once per occurrence in the input, not de-duplicated across
// repeated identical pairs — de-duplication only applies within a
// single vertex's adjacency list).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Density returns the conflict density as a percentage:
// 100 * distinctEdges / (n*(n-1)/2), where distinctEdges counts each
// unordered pair at most once regardless of how many times it appeared
// in the input. Returns 0 when n < 2.
func (g *Graph) Density() float64 {
	if g.n < 2 {
		return 0
	}
	distinct := 0
	for i := 0; i < g.n; i++ {
		for _, j := range g.adjacency[i] {
			if j > i {
				distinct++
			}
		}
	}
	maxPairs := float64(g.n) * float64(g.n-1) / 2
	return 100 * float64(distinct) / maxPairs
}

// HasConflictWithAny reports whether i conflicts with any member of the
// given slice of selected item indices, excluding the optional skip set.
//
// Complexity: O(len(selected) * log d).
func (g *Graph) HasConflictWithAny(i int, selected []int, skip ...int) bool {
	for _, s := range selected {
		if containsInt(skip, s) {
			continue
		}
		if g.HasConflict(i, s) {
			return true
		}
	}
	return false
}

func containsInt(a []int, x int) bool {
	for _, v := range a {
		if v == x {
			return true
		}
	}
	return false
}
