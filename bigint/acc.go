package bigint

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/nat"
)

// Acc is a mutable accumulator for sums and products that reuses its
// buffer between operations. The zero value holds 0.
//
// Value snapshots the current total without copying and marks the buffer
// shared; the next mutation then copies it first, so a snapshot never
// changes. An Acc must not be used from several goroutines at once.
type Acc struct {
	neg    bool
	mag    []nat.Word // normalized
	shared bool
}

// NewAcc returns an accumulator holding x.
func NewAcc(x Int) *Acc {
	a := new(Acc)
	return a.Set(x)
}

// Set replaces the total with x.
func (a *Acc) Set(x Int) *Acc {
	a.mag = x.mag.Words()
	a.neg = x.sign == Negative
	a.shared = false
	return a
}

// Shared reports whether the buffer is referenced by a snapshot.
func (a *Acc) Shared() bool { return a.shared }

// Value returns the current total.
func (a *Acc) Value() Int {
	if len(a.mag) == 0 {
		return Int{}
	}
	a.shared = true
	s := Positive
	if a.neg {
		s = Negative
	}
	return makeInt(s, nat.Wrap(a.mag))
}

// own makes the buffer private with room for n words.
func (a *Acc) own(n int) {
	if !a.shared && cap(a.mag) >= n {
		return
	}
	buf := make([]nat.Word, len(a.mag), max(n, len(a.mag))+n/8+2)
	copy(buf, a.mag)
	a.mag = buf
	a.shared = false
}

func (a *Acc) norm() {
	i := len(a.mag)
	for i > 0 && a.mag[i-1] == 0 {
		i--
	}
	a.mag = a.mag[:i]
	if i == 0 {
		a.neg = false
	}
}

// Add adds x to the total.
func (a *Acc) Add(x Int) *Acc {
	return a.add(x.sign == Negative, x.mag.Words())
}

// Sub subtracts x from the total.
func (a *Acc) Sub(x Int) *Acc {
	return a.add(x.sign != Negative, x.mag.Words())
}

func (a *Acc) add(neg bool, y []nat.Word) *Acc {
	if len(y) == 0 {
		return a
	}
	m, n := len(a.mag), len(y)
	if a.neg == neg || m == 0 {
		if m == 0 {
			a.neg = neg
		}
		size := max(m, n)
		a.own(size + 1)
		a.mag = a.mag[:size+1]
		for i := m; i <= size; i++ {
			a.mag[i] = 0
		}
		c := arith.AddVV(a.mag[:n], a.mag[:n], y)
		if size > n {
			c = arith.AddVW(a.mag[n:size], a.mag[n:size], c)
		}
		a.mag[size] = c
		a.norm()
		return a
	}

	// Opposite signs: subtract the smaller magnitude from the larger.
	a.own(max(m, n))
	if cmpWords(a.mag, y) >= 0 {
		b := arith.SubVV(a.mag[:n], a.mag[:n], y)
		arith.SubVW(a.mag[n:], a.mag[n:], b)
	} else {
		a.mag = a.mag[:n]
		for i := m; i < n; i++ {
			a.mag[i] = 0
		}
		b := arith.SubVV(a.mag[:m], y[:m], a.mag[:m])
		copy(a.mag[m:], y[m:])
		arith.SubVW(a.mag[m:], a.mag[m:], b)
		a.neg = neg
	}
	a.norm()
	return a
}

// Mul multiplies the total by x.
func (a *Acc) Mul(x Int) *Acc {
	p := a.Value().Mul(x)
	a.Set(p)
	return a
}

// MulWord multiplies the total by w in place.
func (a *Acc) MulWord(w nat.Word) *Acc {
	m := len(a.mag)
	if m == 0 {
		return a
	}
	a.own(m + 1)
	a.mag = a.mag[:m+1]
	a.mag[m] = arith.MulAddVWW(a.mag[:m], a.mag[:m], w, 0)
	a.norm()
	return a
}

func cmpWords(x, y []nat.Word) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}
