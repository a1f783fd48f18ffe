package pma

import "testing"

func TestGatherReturnsSortedElements(t *testing.T) {
	p, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []int64{5, 1, 9, 3, 7} {
		if err := p.Insert(k, k*10); err != nil {
			t.Fatal(err)
		}
	}
	elems := gather(p.storage, p.segCap, 0, p.numSegments)
	prev := int64(-1)
	for _, e := range elems {
		if e.key <= prev {
			t.Fatalf("gather did not return sorted elements: %v", elems)
		}
		prev = e.key
	}
	if len(elems) != 5 {
		t.Fatalf("gather returned %d elements, want 5", len(elems))
	}
}

func TestMergeInsertPositions(t *testing.T) {
	tests := []struct {
		name     string
		elems    []kv
		key      int64
		wantPos  int
		wantKeys []int64
	}{
		{"into empty", nil, 5, 0, []int64{5}},
		{"at start", []kv{{2, 0}, {4, 0}}, 1, 0, []int64{1, 2, 4}},
		{"in middle", []kv{{2, 0}, {4, 0}}, 3, 1, []int64{2, 3, 4}},
		{"at end", []kv{{2, 0}, {4, 0}}, 5, 2, []int64{2, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, pos := mergeInsert(tt.elems, tt.key, 0)
			if pos != tt.wantPos {
				t.Errorf("insertedAt = %d, want %d", pos, tt.wantPos)
			}
			if len(merged) != len(tt.wantKeys) {
				t.Fatalf("merged = %v, want keys %v", merged, tt.wantKeys)
			}
			for i, e := range merged {
				if e.key != tt.wantKeys[i] {
					t.Errorf("merged[%d].key = %d, want %d", i, e.key, tt.wantKeys[i])
				}
			}
		})
	}
}

func TestDistributeIntoEvenSplit(t *testing.T) {
	st := newStorageAlloc(16, 4)
	idx := &segmentIndex{mins: make([]int64, 4)}
	elems := make([]kv, 9)
	for i := range elems {
		elems[i] = kv{int64(i), int64(i) * 10}
	}
	target := distributeInto(st, idx, 4, 0, 4, elems, 9-1)

	// 9 elements over 4 segments: base=2, extras=1 -> first segment gets 3.
	wantCounts := []int32{3, 2, 2, 2}
	for i, want := range wantCounts {
		if st.segmentCounts[i] != want {
			t.Errorf("segmentCounts[%d] = %d, want %d", i, st.segmentCounts[i], want)
		}
	}
	if target != 3 {
		t.Errorf("target segment = %d, want 3 (holding the last element)", target)
	}
	if idx.mins[0] != 0 || idx.mins[1] != 3 || idx.mins[2] != 5 || idx.mins[3] != 7 {
		t.Errorf("segment mins = %v, want [0 3 5 7]", idx.mins)
	}
}

func TestDistributeIntoCarriesForwardEmptySegmentMin(t *testing.T) {
	st := newStorageAlloc(8, 4)
	idx := &segmentIndex{mins: make([]int64, 4)}
	// A single element spread across 4 segments: only segment 0 is
	// non-empty, and segments 1-3 must carry its min forward so the
	// segment_min array stays non-decreasing.
	elems := []kv{{10, 0}}
	distributeInto(st, idx, 2, 0, 4, elems, -1)

	for i, want := range []int64{10, 10, 10, 10} {
		if idx.mins[i] != want {
			t.Errorf("mins[%d] = %d, want %d", i, idx.mins[i], want)
		}
	}
	if st.segmentCounts[0] != 1 {
		t.Errorf("segmentCounts[0] = %d, want 1", st.segmentCounts[0])
	}
	for i := 1; i < 4; i++ {
		if st.segmentCounts[i] != 0 {
			t.Errorf("segmentCounts[%d] = %d, want 0", i, st.segmentCounts[i])
		}
	}
}

func TestRebalanceInsertTriggersResizeWhenRootSaturated(t *testing.T) {
	p, err := New(4)
	if err != nil {
		t.Fatal(err)
	}
	for i := int64(0); i < 4; i++ {
		if err := p.Insert(i, i); err != nil {
			t.Fatal(err)
		}
	}
	if p.SegmentCount() != 1 {
		t.Fatalf("expected a single segment before saturating it, got %d", p.SegmentCount())
	}
	if err := p.Insert(4, 4); err != nil {
		t.Fatal(err)
	}
	if p.SegmentCount() <= 1 {
		t.Errorf("expected a resize once the single root segment saturated, segments = %d", p.SegmentCount())
	}
	if !p.IsSorted() {
		t.Errorf("expected sortedness to be preserved across a resize")
	}
}
