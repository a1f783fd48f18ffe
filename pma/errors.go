package pma

import "errors"

// Sentinel errors returned by the PMA façade. All other failure conditions
// (duplicate key, missing key, lo > hi) are self-describing return values,
// never errors — see Find, Delete and RangeSum.
var (
	// ErrInvalidSegmentCapacity is returned by New when segmentCapacity is
	// not a positive power of two.
	ErrInvalidSegmentCapacity = errors.New("pma: segment capacity must be a positive power of two")

	// ErrAllocationFailed is returned by Insert when a resize would grow the
	// array past a configured WithMaxCapacity ceiling. It is the only error
	// Insert can return.
	ErrAllocationFailed = errors.New("pma: allocation failed during resize")
)
