package format

import (
	"strings"
	"testing"
	"time"
)

func TestProgressStateAverage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		n       int
		updates map[int]float64
		want    float64
	}{
		{"untouched", 3, nil, 0},
		{"two strategies", 2, map[int]float64{0: 0.5, 1: 1}, 0.75},
		{"clamped above", 1, map[int]float64{0: 1.5}, 1},
		{"clamped below", 1, map[int]float64{0: -0.5}, 0},
		{"out of range ignored", 2, map[int]float64{5: 0.5, -1: 0.5, 0: 0.5}, 0.25},
		{"no strategies", 0, map[int]float64{0: 1}, 0},
		{"negative count", -4, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ps := NewProgressState(tt.n)
			for i, v := range tt.updates {
				ps.Update(i, v)
			}
			if got := ps.CalculateAverage(); got != tt.want {
				t.Errorf("CalculateAverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateWithETAAverages(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(2)
	if avg, eta := p.UpdateWithETA(0, 0.25); avg != 0.125 || eta < 0 {
		t.Errorf("first update = (%v, %v), want (0.125, >= 0)", avg, eta)
	}
	if avg, _ := p.UpdateWithETA(1, 0.5); avg != 0.375 {
		t.Errorf("second update average = %v, want 0.375", avg)
	}
	if p.Elapsed() < 0 {
		t.Error("negative elapsed time")
	}
}

func TestGetETA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		progress float64
		rate     float64
		min, max time.Duration
	}{
		{"no rate yet", 0.5, 0, 0, 0},
		{"half done at 10%/s", 0.5, 0.1, 4 * time.Second, 6 * time.Second},
		{"finished", 1, 0.1, 0, 0},
		{"capped", 0.001, 1e-7, 24 * time.Hour, 24 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewProgressWithETA(1)
			p.Update(0, tt.progress)
			p.progressRate = tt.rate
			if eta := p.GetETA(); eta < tt.min || eta > tt.max {
				t.Errorf("GetETA() = %v, want in [%v, %v]", eta, tt.min, tt.max)
			}
		})
	}
}

func TestFormatETA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		eta  time.Duration
		want string
	}{
		{0, "calculating..."},
		{-time.Second, "calculating..."},
		{500 * time.Millisecond, "< 1s"},
		{45 * time.Second, "45s"},
		{time.Minute, "1m"},
		{2*time.Minute + 30*time.Second, "2m30s"},
		{2 * time.Hour, "2h"},
		{3*time.Hour + 45*time.Minute, "3h45m"},
	}
	for _, tt := range tests {
		if got := FormatETA(tt.eta); got != tt.want {
			t.Errorf("FormatETA(%v) = %q, want %q", tt.eta, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		progress float64
		want     string
	}{
		{0, "░░░░░░░░"},
		{0.5, "████░░░░"},
		{1, "████████"},
		{1.2, "████████"},
		{-0.1, "░░░░░░░░"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.progress, 8); got != tt.want {
			t.Errorf("ProgressBar(%v, 8) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}

func TestFormatProgressBarWithETA(t *testing.T) {
	t.Parallel()
	got := FormatProgressBarWithETA(0.5, 30*time.Second, 4)
	if want := "[██░░]  50.0% ETA: 30s"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := FormatProgressBarWithETA(1, 0, 4); !strings.HasSuffix(got, "100.0% ETA: calculating...") {
		t.Errorf("complete bar = %q", got)
	}
}
