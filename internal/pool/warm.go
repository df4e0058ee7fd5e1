package pool

import "sync/atomic"

// ─────────────────────────────────────────────────────────────────────────────
// Pool Pre-warming
// ─────────────────────────────────────────────────────────────────────────────

// Warm pre-allocates count buffers in the class that serves requests of
// words words, so the first large multiplications of a session do not pay
// for allocation. It is a no-op for sizes beyond MaxPooledWords.
func Warm(words, count int) {
	idx := classIndex(words)
	if idx < 0 {
		return
	}
	for i := 0; i < count; i++ {
		wordSlicePools[idx].Put(make([]Word, wordSliceSizes[idx]))
	}
}

// BuffersFor returns how many buffers to pre-allocate for operands of the
// given word length. Larger operands recurse deeper in Karatsuba and Toom-3
// and keep more scratch buffers alive at once.
func BuffersFor(words int) int {
	switch {
	case words >= 1<<16:
		return 6
	case words >= 1<<12:
		return 4
	default:
		return 2
	}
}

var warmed atomic.Bool

// EnsureWarmed warms the pools once per process for operands of the given
// word length (scratch needs roughly four times the operand length).
// It reports whether this call performed the warm-up.
func EnsureWarmed(words int) bool {
	if !warmed.CompareAndSwap(false, true) {
		return false
	}
	Warm(4*words, BuffersFor(words))
	return true
}

// resetWarmed re-arms EnsureWarmed. Test helper.
func resetWarmed() {
	warmed.Store(false)
}
