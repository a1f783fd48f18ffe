package pma

// Single-segment operations. A segment is the contiguous slot range
// [segStart, segStart+segCap). These are free functions over *storage
// rather than PMA methods so they can be exercised in isolation.

// insertInSegment locates the insertion offset and the segment's free slot
// with one linear scan, then moves the gap to the insertion point with a
// single contiguous shift. Precondition: the segment has at least one free
// slot and key is not already present. Returns true iff key is smaller than
// every key already occupying the segment (i.e. it becomes the new
// segment minimum).
func insertInSegment(st *storage, segStart, segCap int, key, value int64) bool {
	insertPos := segCap // "past end" sentinel
	lastGap := -1
	found := false
	sawSmaller := false

	for i := 0; i < segCap; i++ {
		slot := segStart + i
		if st.occupied[slot] {
			if !found {
				if st.keys[slot] >= key {
					insertPos = i
					found = true
				} else {
					sawSmaller = true
				}
			}
		} else {
			lastGap = i
		}
	}

	switch {
	case lastGap < insertPos:
		// gap sits to the left of the insertion point: shift the run
		// (lastGap, insertPos) left by one, open a hole at insertPos-1.
		for i := lastGap + 1; i < insertPos; i++ {
			st.copySlot(segStart+i-1, segStart+i)
		}
		st.setSlot(segStart+insertPos-1, key, value)
	default:
		// lastGap > insertPos: shift the run [insertPos, lastGap) right by
		// one, open a hole at insertPos.
		for i := lastGap; i > insertPos; i-- {
			st.copySlot(segStart+i, segStart+i-1)
		}
		st.setSlot(segStart+insertPos, key, value)
	}

	return !sawSmaller
}

// segmentMinimum scans from slot 0 until the first occupied slot and
// returns its key. ok is false iff the segment is empty.
func segmentMinimum(st *storage, segStart, segCap int) (key int64, ok bool) {
	for i := 0; i < segCap; i++ {
		slot := segStart + i
		if st.occupied[slot] {
			return st.keys[slot], true
		}
	}
	return 0, false
}

// findInSegment scans the segment for an exact key match and returns its
// offset within the segment.
func findInSegment(st *storage, segStart, segCap int, key int64) (offset int, ok bool) {
	for i := 0; i < segCap; i++ {
		slot := segStart + i
		if st.occupied[slot] && st.keys[slot] == key {
			return i, true
		}
	}
	return 0, false
}

// deleteInSegment clears the slot at the given offset. Segments never
// require the occupied run to be contiguous — only that a left-to-right
// scan visits keys in order — so no shifting is needed: clearing the bit
// is the whole operation.
func deleteInSegment(st *storage, segStart, offset int) {
	st.clearSlot(segStart + offset)
}
