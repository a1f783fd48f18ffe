// Package pma implements an in-memory ordered key-value index on the
// Packed Memory Array technique: a sorted, gapped slot array that bounds
// most insertions to a small neighborhood (amortized O(log² n)) while
// keeping point and range lookups O(log n) and scans contiguous.
//
// The index is monomorphic over int64 keys and values, single-threaded,
// and carries no durability; concurrent external use requires an external
// lock around the whole PMA.
package pma

import (
	"fmt"

	"go.uber.org/zap"
)

// PMA is an ordered key-value index. The zero value is not usable; build
// one with New.
type PMA struct {
	segCap      int
	numSegments int
	numElements int
	height      int

	storage  *storage
	segIndex *segmentIndex

	rhoH, tauH  float64
	maxCapacity int
	logger      *zap.Logger
}

// New constructs an empty PMA with the given segment capacity, which must
// be a positive power of two.
func New(segmentCapacity int, opts ...Option) (*PMA, error) {
	if segmentCapacity <= 0 || !isPowerOfTwo(segmentCapacity) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSegmentCapacity, segmentCapacity)
	}

	p := &PMA{
		segCap:      segmentCapacity,
		numSegments: 1,
		numElements: 0,
		height:      computeHeight(1),
		storage:     newStorageAlloc(segmentCapacity, 1),
		segIndex:    &segmentIndex{mins: make([]int64, 1)},
		rhoH:        0.25,
		tauH:        0.75,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func isPowerOfTwo(n int) bool {
	return n&(n-1) == 0
}

// Insert adds (key, value) to the index. A duplicate key is a silent
// no-op. The only error it can return is ErrAllocationFailed, and only
// when WithMaxCapacity bounds the PMA and a resize would exceed it — in
// that case the PMA is left exactly as it was before the call.
func (p *PMA) Insert(key, value int64) error {
	if p.numElements == 0 {
		p.storage.setSlot(0, key, value)
		p.storage.segmentCounts[0] = 1
		p.segIndex.mins[0] = key
		p.numElements = 1
		return nil
	}

	target := p.segIndex.find(key)
	segStart := target * p.segCap
	if _, ok := findInSegment(p.storage, segStart, p.segCap, key); ok {
		return nil
	}

	if int(p.storage.segmentCounts[target]) == p.segCap {
		if _, err := p.rebalanceInsert(target, key, value); err != nil {
			return err
		}
		p.numElements++
		return nil
	}

	isNewMin := insertInSegment(p.storage, segStart, p.segCap, key, value)
	p.storage.segmentCounts[target]++
	p.numElements++
	if isNewMin {
		p.segIndex.mins[target] = key
	}
	return nil
}

// Find returns the value stored at key, if any.
func (p *PMA) Find(key int64) (int64, bool) {
	if p.numElements == 0 {
		return 0, false
	}
	target := p.segIndex.find(key)
	segStart := target * p.segCap
	offset, ok := findInSegment(p.storage, segStart, p.segCap, key)
	if !ok {
		return 0, false
	}
	return p.storage.values[segStart+offset], true
}

// RangeResult is the aggregate returned by RangeSum.
type RangeResult struct {
	HasResult bool
	First     int64
	Last      int64
	Count     int64
	SumKeys   int64
	SumValues int64
}

// RangeSum aggregates every live key k with lo <= k <= hi. lo > hi yields a
// zero-value (empty) result rather than an error.
func (p *PMA) RangeSum(lo, hi int64) RangeResult {
	var res RangeResult
	if lo > hi || p.numElements == 0 {
		return res
	}

	start := p.segIndex.find(lo)
	for s := start; s < p.numSegments; s++ {
		segStart := s * p.segCap
		for i := 0; i < p.segCap; i++ {
			slot := segStart + i
			if !p.storage.occupied[slot] {
				continue
			}
			k := p.storage.keys[slot]
			if k < lo {
				continue
			}
			if k > hi {
				return res
			}
			if !res.HasResult {
				res.First = k
				res.HasResult = true
			}
			res.Last = k
			res.Count++
			res.SumKeys += k
			res.SumValues += p.storage.values[slot]
		}
	}
	return res
}

// IsSorted is a diagnostic that scans every occupied slot checking
// monotonicity. It should always return true after any public operation.
func (p *PMA) IsSorted() bool {
	first := true
	var prev int64
	for s := 0; s < p.numSegments; s++ {
		segStart := s * p.segCap
		for i := 0; i < p.segCap; i++ {
			slot := segStart + i
			if !p.storage.occupied[slot] {
				continue
			}
			k := p.storage.keys[slot]
			if !first && k < prev {
				return false
			}
			prev = k
			first = false
		}
	}
	return true
}

// Delete removes key if present, returning whether it was found. Deletion
// may trigger a rebalance-on-underflow spread (no resize) when density
// falls below lower(ℓ) at some calibrator level. Halving capacity on
// underflow is left out: an eager shrink paired with a growable array
// invites thrashing between resize sizes under insert/delete churn near a
// threshold.
func (p *PMA) Delete(key int64) bool {
	if p.numElements == 0 {
		return false
	}
	target := p.segIndex.find(key)
	segStart := target * p.segCap
	offset, ok := findInSegment(p.storage, segStart, p.segCap, key)
	if !ok {
		return false
	}

	deleteInSegment(p.storage, segStart, offset)
	p.storage.segmentCounts[target]--
	p.numElements--

	if count := p.storage.segmentCounts[target]; count > 0 {
		if newMin, ok := segmentMinimum(p.storage, segStart, p.segCap); ok {
			p.segIndex.mins[target] = newMin
		}
	}

	if level, ws, we, needsReflow := p.climbForUnderflow(target); needsReflow {
		p.logger.Debug("pma underflow reflow",
			zap.Int("level", level),
			zap.Int("window_start", ws),
			zap.Int("window_end", we),
		)
		p.reflow(ws, we)
	}
	return true
}

// Len returns the number of elements currently stored.
func (p *PMA) Len() int { return p.numElements }

// Capacity returns the total slot count (segment_capacity * segment_count).
func (p *PMA) Capacity() int { return p.numSegments * p.segCap }

// Height returns ⌈log₂(segment count)⌉ + 1.
func (p *PMA) Height() int { return p.height }

// SegmentCount returns the number of segments.
func (p *PMA) SegmentCount() int { return p.numSegments }

// SegmentSize returns the fixed per-segment slot count (C).
func (p *PMA) SegmentSize() int { return p.segCap }
