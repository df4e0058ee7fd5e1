package tui

import (
	"slices"
	"testing"
)

func TestRingBuffer(t *testing.T) {
	t.Parallel()
	r := NewRingBuffer(3)
	if r.Len() != 0 || r.Last() != 0 || r.Slice() != nil {
		t.Fatal("new buffer is not empty")
	}
	for _, v := range []float64{1, 2, 3, 4} {
		r.Push(v)
	}
	if got := r.Slice(); !slices.Equal(got, []float64{2, 3, 4}) {
		t.Errorf("Slice = %v", got)
	}
	if r.Last() != 4 || r.Len() != 3 {
		t.Errorf("Last = %v, Len = %d", r.Last(), r.Len())
	}

	r.Resize(2)
	if got := r.Slice(); !slices.Equal(got, []float64{3, 4}) {
		t.Errorf("after shrink Slice = %v", got)
	}
	r.Resize(4)
	r.Push(5)
	if got := r.Slice(); !slices.Equal(got, []float64{3, 4, 5}) {
		t.Errorf("after grow Slice = %v", got)
	}
	r0 := NewRingBuffer(0)
	r0.Push(1)
	r0.Push(2)
	if got := r0.Slice(); !slices.Equal(got, []float64{2}) {
		t.Errorf("zero-capacity buffer Slice = %v", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	t.Parallel()
	if got := RenderSparkline([]float64{0, 50, 100, -5, 200}); got != "▁▄█▁█" {
		t.Errorf("RenderSparkline = %q", got)
	}
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("RenderSparkline(nil) = %q", got)
	}
}
