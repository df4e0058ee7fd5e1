package metrics

import "testing"

func TestTakeSnapshot(t *testing.T) {
	t.Parallel()
	snap := TakeSnapshot()
	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

var sink []byte

func TestSnapshotSince(t *testing.T) {
	t.Parallel()
	before := TakeSnapshot()
	sink = make([]byte, 1<<20)
	after := TakeSnapshot()

	d := after.Since(before)
	if d.Allocated < 1<<20 {
		t.Errorf("Allocated = %d, want at least 1 MiB", d.Allocated)
	}
	if after.Sys < before.Sys {
		t.Error("Sys should not decrease between snapshots")
	}
}
