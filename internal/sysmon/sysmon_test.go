package sysmon

import (
	"runtime"
	"testing"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
	if s.Goroutines < 1 {
		t.Errorf("Goroutines = %d", s.Goroutines)
	}
}

func TestSample_MemPercentNonZero(t *testing.T) {
	s := Sample()
	if s.MemPercent == 0 {
		t.Error("expected non-zero MemPercent on a running system")
	}
}

func TestHostInfo(t *testing.T) {
	h := HostInfo()
	if h.CPUModel == "" {
		t.Error("empty CPU model")
	}
	if h.LogicalCores != runtime.NumCPU() {
		t.Errorf("LogicalCores = %d, want %d", h.LogicalCores, runtime.NumCPU())
	}
	if h2 := HostInfo(); h2 != h {
		t.Errorf("HostInfo changed between calls: %+v vs %+v", h, h2)
	}
}
