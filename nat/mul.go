package nat

import (
	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/pool"
)

// ─────────────────────────────────────────────────────────────────────────────
// Public API
// ─────────────────────────────────────────────────────────────────────────────

// Mul returns x * y using the process-wide thresholds.
func (x Nat) Mul(y Nat) Nat {
	return MulWith(x, y, CurrentThresholds())
}

// MulWith returns x * y using the given thresholds.
func MulWith(x, y Nat, th Thresholds) Nat {
	return fromVec(mulVec(x.view(), y.view(), th.normalized()))
}

// Sqr returns x * x using the process-wide thresholds.
func (x Nat) Sqr() Nat {
	return SqrWith(x, CurrentThresholds())
}

// SqrWith returns x * x using the given thresholds.
func SqrWith(x Nat, th Thresholds) Nat {
	return fromVec(sqrVec(x.view(), th.normalized()))
}

// mulVec returns x*y in a freshly allocated vector. th must be normalized.
func mulVec(x, y vec, th Thresholds) vec {
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return nil
	}
	z := vec(nil).make(m + n)
	mulTo(z, x, y, th)
	return z.norm()
}

// sqrVec returns x*x in a freshly allocated vector. th must be normalized.
func sqrVec(x vec, th Thresholds) vec {
	if len(x) == 0 {
		return nil
	}
	z := vec(nil).make(2 * len(x))
	sqrTo(z, x, th)
	return z.norm()
}

// ─────────────────────────────────────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────────────────────────────────────

// mulTo sets z[0:len(x)+len(y)] = x*y. The operands need not be normalized
// and z must not alias either of them. Every word of z is written.
func mulTo(z, x, y vec, th Thresholds) {
	if len(x) < len(y) {
		x, y = y, x
	}
	m, n := len(x), len(y)
	z = z[:m+n]
	switch {
	case n == 0:
		z.clear()
	case n == 1:
		z[m] = arith.MulAddVWW(z[:m], x, y[0], 0)
	case n < th.Karatsuba:
		basicMul(z, x, y)
	case m >= 2*n:
		mulChunked(z, x, y, th)
	case n < th.Toom3:
		karatsuba(z, x, y, th)
	default:
		toom3(z, x, y, th)
	}
}

// sqrTo sets z[0:2*len(x)] = x*x. z must not alias x.
func sqrTo(z, x vec, th Thresholds) {
	n := len(x)
	z = z[:2*n]
	switch {
	case n == 0:
	case n == 1:
		z[1], z[0] = arith.MulWW(x[0], x[0])
	case n < th.Karatsuba:
		basicSqr(z, x)
	case n < th.Toom3:
		karatsubaSqr(z, x, th)
	default:
		toom3Sqr(z, x, th)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Schoolbook
// ─────────────────────────────────────────────────────────────────────────────

// basicMul sets z = x*y with the quadratic method.
func basicMul(z, x, y vec) {
	z[0 : len(x)+len(y)].clear()
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = arith.AddMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// basicSqr sets z = x*x. Each cross product x[i]*x[j] with j < i is
// computed once and doubled, then the diagonal squares are added.
func basicSqr(z, x vec) {
	n := len(x)
	t := vec(pool.Acquire(2 * n))
	defer pool.Release(t)

	z[1], z[0] = arith.MulWW(x[0], x[0])
	for i := 1; i < n; i++ {
		d := x[i]
		z[2*i+1], z[2*i] = arith.MulWW(d, d)
		t[2*i] = arith.AddMulVVW(t[i:2*i], x[0:i], d)
	}
	t[2*n-1] = arith.ShlVU(t[1:2*n-1], t[1:2*n-1], 1)
	arith.AddVV(z, z, t)
}

// ─────────────────────────────────────────────────────────────────────────────
// Unbalanced operands
// ─────────────────────────────────────────────────────────────────────────────

// mulChunked multiplies a long x by a short y by splitting x into chunks of
// len(y) words, so that every partial product is balanced.
func mulChunked(z, x, y vec, th Thresholds) {
	m, n := len(x), len(y)
	z[:m+n].clear()
	p := vec(pool.AcquireUnsafe(2 * n))
	defer pool.Release(p)
	for i := 0; i < m; i += n {
		chunk := x[i:min(i+n, m)]
		prod := p[:len(chunk)+n]
		mulTo(prod, chunk, y, th)
		addAt(z, prod.norm(), i)
	}
}
