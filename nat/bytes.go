package nat

import (
	"math"
)

// ByteOrder selects the byte order of Bytes and FromBytes.
type ByteOrder int

const (
	// BigEndian places the most significant byte first.
	BigEndian ByteOrder = iota
	// LittleEndian places the least significant byte first.
	LittleEndian
)

const wordBytes = WordBits / 8

// Bytes returns the magnitude of x as a minimal byte slice in the given
// order. Bytes of zero is empty.
func (x Nat) Bytes(order ByteOrder) []byte {
	v := x.view()
	buf := make([]byte, len(v)*wordBytes)
	for i, w := range v {
		for j := 0; j < wordBytes; j++ {
			buf[i*wordBytes+j] = byte(w >> (8 * j))
		}
	}
	for len(buf) > 0 && buf[len(buf)-1] == 0 {
		buf = buf[:len(buf)-1]
	}
	if order == BigEndian {
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return buf
}

// FromBytes returns the magnitude encoded by b in the given order.
func FromBytes(b []byte, order ByteOrder) Nat {
	z := make(vec, (len(b)+wordBytes-1)/wordBytes)
	for i := range b {
		k := i
		if order == BigEndian {
			k = len(b) - 1 - i
		}
		z[k/wordBytes] |= Word(b[i]) << (8 * (k % wordBytes))
	}
	return fromVec(z.norm())
}

// Float64 returns the float64 nearest to x, ties to even, and +Inf when x
// exceeds the float64 range.
func (x Nat) Float64() float64 {
	v := x.view()
	n := v.bitLen()
	if n <= 64 {
		u, _ := x.Uint64()
		return float64(u)
	}
	// The top 64 bits plus a sticky bit for the rest round exactly like x.
	s := uint(n - 64)
	m := uint64(v.bitsAt(s, 32)) | uint64(v.bitsAt(s+32, 32))<<32
	if v.trailingZeroBits() < s {
		m |= 1
	}
	return math.Ldexp(float64(m), int(s))
}
