package nat

// snat is a signed magnitude used by the Toom-3 evaluation and
// interpolation steps. mag is normalized; zero is never negative.
type snat struct {
	neg bool
	mag vec
}

func pos(x vec) snat { return snat{mag: x} }

func (a snat) fix() snat {
	if len(a.mag) == 0 {
		a.neg = false
	}
	return a
}

func sadd(a, b snat) snat {
	if a.neg == b.neg {
		return snat{a.neg, vec(nil).add(a.mag, b.mag)}.fix()
	}
	if a.mag.cmp(b.mag) >= 0 {
		return snat{a.neg, vec(nil).sub(a.mag, b.mag)}.fix()
	}
	return snat{b.neg, vec(nil).sub(b.mag, a.mag)}.fix()
}

func ssub(a, b snat) snat {
	b.neg = !b.neg
	return sadd(a, b.fix())
}

func smul(a, b snat, th Thresholds) snat {
	return snat{a.neg != b.neg, mulVec(a.mag, b.mag, th)}.fix()
}

func ssqr(a snat, th Thresholds) snat {
	return pos(sqrVec(a.mag, th))
}

func sshl1(a snat) snat {
	return snat{a.neg, vec(nil).shl(a.mag, 1)}.fix()
}

// sdivExact returns a/d and panics when d does not divide a.
func sdivExact(a snat, d Word) snat {
	q, r := vec(nil).divW(a.mag, d)
	if r != 0 {
		panic("nat: inexact division in toom-3 interpolation")
	}
	return snat{a.neg, q}.fix()
}

// toomPoints evaluates the polynomial x0 + x1*t + x2*t² at t = 1, -1, -2.
func toomPoints(x0, x1, x2 vec) (p1, pm1, pm2 snat) {
	p0 := vec(nil).add(x0, x2)
	p1 = pos(vec(nil).add(p0, x1))
	pm1 = ssub(pos(p0), pos(x1))
	pm2 = ssub(sshl1(sadd(pm1, pos(x2))), pos(x0))
	return
}

// toomSplit cuts x into three pieces of k words, the last one possibly
// shorter or empty.
func toomSplit(x vec, k int) (x0, x1, x2 vec) {
	n := len(x)
	a, b := min(k, n), min(2*k, n)
	return x[:a].norm(), x[a:b].norm(), x[b:].norm()
}

// toom3 sets z = x*y with Toom-Cook 3-way splitting. The product polynomial
// is evaluated at 0, 1, -1, -2 and infinity and recovered with Bodrato's
// interpolation sequence, which needs only exact divisions by 2 and 3.
func toom3(z, x, y vec, th Thresholds) {
	toom3Core(z, x, y, th, false)
}

// toom3Sqr sets z = x*x. The five point products are squares.
func toom3Sqr(z, x vec, th Thresholds) {
	toom3Core(z, x, x, th, true)
}

func toom3Core(z, x, y vec, th Thresholds, square bool) {
	m, n := len(x), len(y)
	k := (max(m, n) + 2) / 3
	z = z[:m+n]

	x0, x1, x2 := toomSplit(x, k)
	y0, y1, y2 := toomSplit(y, k)

	var r0, r1, rm1, rm2, rinf snat
	if square {
		p1, pm1, pm2 := toomPoints(x0, x1, x2)
		r0 = ssqr(pos(x0), th)
		r1 = ssqr(p1, th)
		rm1 = ssqr(pm1, th)
		rm2 = ssqr(pm2, th)
		rinf = ssqr(pos(x2), th)
	} else {
		p1, pm1, pm2 := toomPoints(x0, x1, x2)
		q1, qm1, qm2 := toomPoints(y0, y1, y2)
		r0 = smul(pos(x0), pos(y0), th)
		r1 = smul(p1, q1, th)
		rm1 = smul(pm1, qm1, th)
		rm2 = smul(pm2, qm2, th)
		rinf = smul(pos(x2), pos(y2), th)
	}

	c3 := sdivExact(ssub(rm2, r1), 3)
	c1 := sdivExact(ssub(r1, rm1), 2)
	c2 := ssub(rm1, r0)
	c3 = sadd(sdivExact(ssub(c2, c3), 2), sshl1(rinf))
	c2 = ssub(sadd(c2, c1), rinf)
	c1 = ssub(c1, c3)

	z.clear()
	copy(z, r0.mag)
	if len(rinf.mag) > 0 {
		// x2 and y2 are both nonzero here, so 4k < len(z).
		copy(z[4*k:], rinf.mag)
	}
	for i, c := range []snat{c1, c2, c3} {
		if c.neg {
			panic("nat: negative toom-3 coefficient")
		}
		addAt(z, c.mag, (i+1)*k)
	}
}
