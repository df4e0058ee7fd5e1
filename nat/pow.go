package nat

// Pow returns x**e. Pow(0, 0) is 1.
func (x Nat) Pow(e uint) Nat {
	return fromVec(powVec(x.view(), e, CurrentThresholds().normalized()))
}

// powVec computes x**e by left-to-right binary exponentiation.
func powVec(x vec, e uint, th Thresholds) vec {
	switch {
	case e == 0:
		return vec(nil).setWord(1)
	case len(x) == 0:
		return nil
	case e == 1:
		return vec(nil).set(x)
	}
	if x.isPow2() {
		return vec(nil).setBit(nil, x.trailingZeroBits()*e, 1)
	}
	z := vec(nil).set(x)
	for i := bitLenUint(e) - 2; i >= 0; i-- {
		z = sqrVec(z, th)
		if e>>uint(i)&1 != 0 {
			z = mulVec(z, x, th)
		}
	}
	return z
}

func bitLenUint(e uint) int {
	n := 0
	for ; e != 0; e >>= 1 {
		n++
	}
	return n
}

// Sqrt returns ⌊√x⌋.
func (x Nat) Sqrt() Nat {
	return fromVec(sqrtVec(x.view(), CurrentThresholds().normalized()))
}

// SqrtRem returns s = ⌊√x⌋ and r = x - s².
func (x Nat) SqrtRem() (s, r Nat) {
	th := CurrentThresholds().normalized()
	sv := sqrtVec(x.view(), th)
	rv := vec(nil).sub(x.view(), sqrVec(sv, th))
	return fromVec(sv), fromVec(rv)
}

// sqrtVec computes the integer square root by Newton's method, starting
// above the root so that the iterates decrease monotonically.
func sqrtVec(x vec, th Thresholds) vec {
	if x.cmp(vec{1}) <= 0 {
		return vec(nil).set(x)
	}
	z1 := vec(nil).setBit(nil, uint(x.bitLen()+1)/2, 1)
	for {
		q, _ := divRemVec(x, z1, th)
		z2 := vec(nil).add(z1, q)
		z2 = z2.shr(z2, 1)
		if z2.cmp(z1) >= 0 {
			return z1
		}
		z1 = z2
	}
}
