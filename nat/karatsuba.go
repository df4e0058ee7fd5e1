package nat

import (
	"github.com/agbru/bignum/internal/pool"
)

// karatsuba sets z = x*y for len(x) >= len(y) > len(x)/2.
//
// With x = x1*B + x0 and y = y1*B + y0, B = 2^(k*W):
//
//	x*y = z2*B² + (z0 + z2 + (x1-x0)(y0-y1))*B + z0
//
// where z0 = x0*y0 and z2 = x1*y1. The middle product is formed from the
// absolute differences and its sign is applied once.
func karatsuba(z, x, y vec, th Thresholds) {
	m, n := len(x), len(y)
	k := (m + 1) / 2
	z = z[:m+n]
	z.clear()

	x0, x1 := x[:k].norm(), x[k:].norm()
	ky := min(k, n)
	y0, y1 := y[:ky].norm(), y[ky:].norm()

	// z0 and z2 occupy disjoint ranges of z.
	mulTo(z[0:len(x0)+len(y0)], x0, y0, th)
	mulTo(z[2*k:2*k+len(x1)+len(y1)], x1, y1, th)

	buf := vec(pool.AcquireUnsafe(4*k + 4))
	defer pool.Release(buf)

	dx, xneg := buf[0:0:k+1].absDiff(x1, x0)
	dy, yneg := buf[k+1:k+1:2*k+2].absDiff(y0, y1)
	mid := buf[2*k+2 : 2*k+2+len(dx)+len(dy)]
	mulTo(mid, dx, dy, th)

	t := vec(pool.AcquireUnsafe(m + n + 2))
	defer pool.Release(t)
	t = t[:0].add(z[0:2*k].norm(), z[2*k:].norm())
	if xneg != yneg {
		t = t.sub(t, mid.norm())
	} else {
		t = t.add(t, mid.norm())
	}
	addAt(z, t, k)
}

// karatsubaSqr sets z = x*x using
//
//	x² = z2*B² + (z0 + z2 - (x1-x0)²)*B + z0.
func karatsubaSqr(z, x vec, th Thresholds) {
	n := len(x)
	k := (n + 1) / 2
	z = z[:2*n]
	z.clear()

	x0, x1 := x[:k].norm(), x[k:].norm()
	sqrTo(z[0:2*len(x0)], x0, th)
	sqrTo(z[2*k:2*k+2*len(x1)], x1, th)

	buf := vec(pool.AcquireUnsafe(3*k + 1))
	defer pool.Release(buf)
	d, _ := buf[0:0:k+1].absDiff(x1, x0)
	mid := buf[k+1 : k+1+2*len(d)]
	sqrTo(mid, d, th)

	t := vec(pool.AcquireUnsafe(2*n + 2))
	defer pool.Release(t)
	t = t[:0].add(z[0:2*k].norm(), z[2*k:].norm())
	t = t.sub(t, mid.norm())
	addAt(z, t, k)
}
