// Package pool recycles word buffers used as scratch space by the magnitude
// kernels. Buffers are grouped into power-of-four capacity classes so that a
// released buffer can serve any later request of the same class.
package pool

import (
	"math/bits"
	"sync"

	"github.com/agbru/bignum/internal/arith"
)

type Word = arith.Word

// ─────────────────────────────────────────────────────────────────────────────
// Word Slice Pools
// ─────────────────────────────────────────────────────────────────────────────

// wordSlicePools pools []Word slices by size class:
// 64, 256, 1K, 4K, 16K, 64K, 256K, 1M, 4M words.
var wordSlicePools = [...]sync.Pool{
	{New: func() any { return make([]Word, 64) }},
	{New: func() any { return make([]Word, 256) }},
	{New: func() any { return make([]Word, 1024) }},
	{New: func() any { return make([]Word, 4096) }},
	{New: func() any { return make([]Word, 16384) }},
	{New: func() any { return make([]Word, 65536) }},
	{New: func() any { return make([]Word, 262144) }},
	{New: func() any { return make([]Word, 1048576) }}, // 1M words = 8MB on 64-bit
	{New: func() any { return make([]Word, 4194304) }}, // 4M words = 32MB on 64-bit
}

// wordSliceSizes defines the capacity of each pool class.
var wordSliceSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304}

// MaxPooledWords is the largest request served from a pool. Larger requests
// are allocated directly and left to the garbage collector.
const MaxPooledWords = 4194304

// classIndex returns the pool index for a given size, or -1 if the size is
// too large for pooling.
//
// Sizes are powers of 4 starting from 4^3 = 64, so the index follows from
// bits.Len(size-1) in O(1).
func classIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > wordSliceSizes[len(wordSliceSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Acquire returns a zeroed word slice of length size. The backing array may
// be larger than requested.
//
// The slice should be returned with Release once the caller is done with it:
//
//	buf := pool.Acquire(n)
//	defer pool.Release(buf)
//
// A released slice must not be referenced again; in particular it must never
// become the backing array of a value returned to a caller.
func Acquire(size int) []Word {
	s := AcquireUnsafe(size)
	clear(s)
	return s
}

// AcquireUnsafe is Acquire without clearing. Use it only when every element
// is overwritten before being read.
func AcquireUnsafe(size int) []Word {
	idx := classIndex(size)
	if idx < 0 {
		return make([]Word, size)
	}
	slice := wordSlicePools[idx].Get().([]Word)
	return slice[:size]
}

// Release returns a slice obtained from Acquire to its pool. Slices whose
// capacity does not match a class exactly were allocated directly and are
// ignored. Safe to call with nil.
func Release(slice []Word) {
	if slice == nil {
		return
	}
	c := cap(slice)
	idx := classIndex(c)
	if idx >= 0 && wordSliceSizes[idx] == c {
		wordSlicePools[idx].Put(slice[:c])
	}
}
