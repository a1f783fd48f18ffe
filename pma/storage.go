package pma

// storage owns the four parallel arrays backing a PMA: keys, values, the
// occupancy bit per slot, and the per-segment counts. It is the sole owner
// of this memory; a resize allocates a fresh storage and the façade drops
// the old one, never mutating both in place: allocate before touching any
// old storage, swap only on success.
//
// A 64-byte cache-line alignment has no idiomatic Go equivalent without cgo
// or unsafe; release() stands in for a move-only owner releasing its memory
// deterministically on drop.
type storage struct {
	keys          []int64
	values        []int64
	occupied      []bool
	segmentCounts []int32
}

func newStorageAlloc(capacity, numSegments int) *storage {
	return &storage{
		keys:          make([]int64, capacity),
		values:        make([]int64, capacity),
		occupied:      make([]bool, capacity),
		segmentCounts: make([]int32, numSegments),
	}
}

func (s *storage) setSlot(slot int, key, value int64) {
	s.keys[slot] = key
	s.values[slot] = value
	s.occupied[slot] = true
}

func (s *storage) clearSlot(slot int) {
	s.occupied[slot] = false
}

func (s *storage) copySlot(dst, src int) {
	s.keys[dst] = s.keys[src]
	s.values[dst] = s.values[src]
	s.occupied[dst] = s.occupied[src]
}

// release drops references to the backing arrays. Called on the old
// storage immediately after a successful resize swap.
func (s *storage) release() {
	s.keys = nil
	s.values = nil
	s.occupied = nil
	s.segmentCounts = nil
}
