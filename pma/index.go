package pma

import "sort"

// segmentIndex is the ordered array of segment-minimum keys. It supports
// O(log S) predecessor lookup: the segment a key belongs (or would belong)
// to. Spread and resize rewrite the whole affected slice directly; Insert's
// non-rebalancing path updates a single entry.
type segmentIndex struct {
	mins []int64
}

// find returns the segment whose segment_min is the largest one ≤ key. If
// every segment_min exceeds key, it returns segment 0 so insertion anchors
// at the left end.
func (idx *segmentIndex) find(key int64) int {
	n := len(idx.mins)
	i := sort.Search(n, func(i int) bool { return idx.mins[i] > key })
	if i == 0 {
		return 0
	}
	return i - 1
}
