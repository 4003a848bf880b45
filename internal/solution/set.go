package solution

import "sort"

// orderedSet is an ascending, duplicate-free slice of item indices with
// O(log n) membership via binary search and O(n) insertion/removal
// (the shift cost of keeping the slice sorted). Spec.md §9 asks only for
// "an ordered integer set with O(log n) membership and ordered
// iteration" — it does not mandate O(log n) mutation, and DCKP instances
// are small enough (hundreds of items) that the shift cost never
// dominates construction or local search.
type orderedSet struct {
	items []int
}

// search returns the index at which x is present, or would be inserted
// to keep items sorted, and whether it is already present.
func (s *orderedSet) search(x int) (int, bool) {
	idx := sort.SearchInts(s.items, x)
	return idx, idx < len(s.items) && s.items[idx] == x
}

// contains reports membership in O(log n).
func (s *orderedSet) contains(x int) bool {
	_, found := s.search(x)
	return found
}

// add inserts x if absent. Returns true iff the set changed.
func (s *orderedSet) add(x int) bool {
	idx, found := s.search(x)
	if found {
		return false
	}
	s.items = append(s.items, 0)
	copy(s.items[idx+1:], s.items[idx:])
	s.items[idx] = x
	return true
}

// remove deletes x if present. Returns true iff the set changed.
func (s *orderedSet) remove(x int) bool {
	idx, found := s.search(x)
	if !found {
		return false
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return true
}

// len returns the cardinality of the set.
func (s *orderedSet) len() int {
	return len(s.items)
}

// clone returns an independent copy; mutating the clone never aliases
// the receiver's backing array.
func (s *orderedSet) clone() *orderedSet {
	items := make([]int, len(s.items))
	copy(items, s.items)
	return &orderedSet{items: items}
}

// slice returns the ascending item list. The caller must not mutate it.
func (s *orderedSet) slice() []int {
	return s.items
}
