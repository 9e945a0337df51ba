// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bigint

// DivRem returns the quotient and remainder of x divided by y, such that
// x == q*y + r, |r| < |y|, sign(q) == sign(x) XOR sign(y) when q is
// nonzero, and sign(r) == sign(x) when r is nonzero (spec.md §4.7). It
// returns ErrDivideByZero if y is zero.
func (x BigInt) DivRem(y BigInt) (q, r BigInt, err error) {
	if debugBigInt {
		x.validate()
		y.validate()
	}
	if y.IsZero() {
		return BigInt{}, BigInt{}, ErrDivideByZero
	}
	if x.IsZero() {
		return Zero, Zero, nil
	}

	switch cmpMagnitude(x.limbs, y.limbs) {
	case -1:
		// |y| > |x|: q = 0, r = x.
		return Zero, x, nil
	case 0:
		// |y| == |x|: q = sign-adjusted 1, r = 0.
		return One.withSign(quotientSign(x.sign, y.sign)), Zero, nil
	}

	var qLimbs, rLimbs []limb
	if len(y.limbs) == 1 {
		qLimbs = make([]limb, len(x.limbs))
		rLimbs = []limb{divWVW(qLimbs, 0, x.limbs, y.limbs[0])}
	} else {
		qLimbs, rLimbs = divMagnitudeKnuth(x.limbs, y.limbs)
	}
	q = normalize(quotientSign(x.sign, y.sign), qLimbs)
	r = normalize(x.sign, rLimbs)
	return q, r, nil
}

// Div returns x / y, truncated towards zero. It returns ErrDivideByZero
// if y is zero.
func (x BigInt) Div(y BigInt) (BigInt, error) {
	q, _, err := x.DivRem(y)
	return q, wrapf(err, "bigint: Div")
}

// Rem returns the remainder of x / y. The canonical choice documented in
// spec.md §7/§9 is to fail on a zero divisor, the same as Div and
// DivRem, rather than return x unchanged.
func (x BigInt) Rem(y BigInt) (BigInt, error) {
	_, r, err := x.DivRem(y)
	return r, wrapf(err, "bigint: Rem")
}

func quotientSign(dividend, divisor sign) sign {
	if dividend == divisor {
		return positive
	}
	return negative
}

// divMagnitudeKnuth divides the magnitude x by the magnitude y (len(y)
// >= 2) using Knuth's Algorithm D (TAOCP vol. 2, §4.3.1), adapted to
// base-`base` limbs instead of binary words. spec.md §4.7 describes the
// leading quotient digit (its step 2) and the remaining m digits (its
// step 3) as two phases; here they are computed by one uniform loop,
// since the leading digit is just the case where the two-word trial
// numerator happens to be small — the same multiply-subtract-and-correct
// procedure handles it without a special case.
func divMagnitudeKnuth(x, y []limb) (q, r []limb) {
	n := len(y)
	m := len(x) - n

	// Normalize: scale x and y by d so that y's leading limb is >=
	// base/2. This bounds the trial quotient's error to {0, 1, 2}.
	d := base / (y[n-1] + 1)

	v := make([]limb, n)
	if d == 1 {
		copy(v, y)
	} else {
		c := mulAddVWW(v, y, d, 0)
		if debugBigInt && c != 0 {
			panic("bigint: BUG: divisor normalization overflowed a limb")
		}
	}

	u := make([]limb, len(x)+1)
	if d == 1 {
		copy(u, x)
	} else {
		u[len(x)] = mulAddVWW(u[:len(x)], x, d, 0)
	}

	qd := make([]limb, m+1)
	for j := m; j >= 0; j-- {
		qhat := trialQuotient(u[j+n], u[j+n-1], v[n-1])
		win := u[j : j+n+1]
		corrections := 0
		if mulSubWindow(win, v, qhat) {
			for {
				qhat--
				corrections++
				if addBackWindow(win, v) {
					break
				}
			}
		}
		if corrections > 0 {
			activeLogger.Debug("algorithm D corrected trial quotient",
				Int("digit", j), Int("corrections", corrections))
		}
		qd[j] = qhat
	}

	rem := make([]limb, n)
	if d == 1 {
		copy(rem, u[:n])
	} else {
		rr := divWVW(rem, 0, u[:n], d)
		if debugBigInt && rr != 0 {
			panic("bigint: BUG: nonzero remainder undoing division normalization")
		}
	}
	return normLimbs(qd), normLimbs(rem)
}

// trialQuotient computes q̂ = min((hi*base+lo) / d, base-1), the
// two-word trial quotient digit of spec.md §4.7 step 3.
func trialQuotient(hi, lo, d limb) limb {
	if hi >= d {
		// The true quotient is >= base; Algorithm D's correction loop
		// will bring it down from the capped estimate.
		return base - 1
	}
	q, _ := divWW(hi, lo, d)
	if q >= base {
		return base - 1
	}
	return q
}

// mulSubWindow subtracts qhat*v from the (len(v)+1)-limb window win in
// place and reports whether the window went negative (i.e. qhat was too
// large and the caller must correct).
func mulSubWindow(win, v []limb, qhat limb) bool {
	n := len(v)
	prod := make([]limb, n)
	carry := mulAddVWW(prod, v, qhat, 0)
	borrow := subVV(win[:n], win[:n], prod)
	need := carry + borrow
	top := win[n]
	if top >= need {
		win[n] = top - need
		return false
	}
	win[n] = top - need + base
	return true
}

// addBackWindow adds v back into the (len(v)+1)-limb window win in
// place, undoing one unit of over-subtraction, and reports whether the
// addition carried out of the top limb, i.e. whether the window is
// non-negative again.
func addBackWindow(win, v []limb) bool {
	n := len(v)
	c := addVV(win[:n], win[:n], v)
	s := win[n] + c
	if s >= base {
		win[n] = s - base
		return true
	}
	win[n] = s
	return false
}
