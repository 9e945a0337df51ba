// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bigint

import "math/bits"

// A limb holds a value in [0, base). base is chosen so that the product
// of two limbs fits in 128 bits (the hi:lo pair bits.Mul64 returns) and
// the sum of two limbs plus a carry fits in a uint64, and so that
// formatting a limb never needs
// more than limbDecimalWidth zero-padded digits.
type limb = uint64

const (
	limbDecimalWidth = 18
	base             = 1_000_000_000_000_000_000 // 10^18
)

// addVV sets z[i] = x[i] + y[i] + carry for i in range and returns the
// carry out of the most significant limb. len(z) == len(x) == len(y).
func addVV(z, x, y []limb) (c limb) {
	for i := range z {
		s, carryOut := bits.Add64(x[i], y[i], c)
		if s >= base {
			s -= base
			carryOut = 1
		}
		z[i] = s
		c = carryOut
	}
	return c
}

// subVV sets z[i] = x[i] - y[i] - borrow for i in range and returns the
// borrow out of the most significant limb. If the magnitude of x is less
// than that of y, z holds x - y + base^len(z) and the borrow is 1.
func subVV(z, x, y []limb) (c limb) {
	for i := range z {
		d, borrowOut := bits.Sub64(x[i], y[i], c)
		if borrowOut != 0 {
			d += base
		}
		z[i] = d
		c = borrowOut
	}
	return c
}

// addVW adds the single limb y to x, writing the result to z, and
// returns the carry (0 or 1). len(z) == len(x).
func addVW(z, x []limb, y limb) (c limb) {
	c = y
	for i := range z {
		s := x[i] + c
		if s >= base {
			z[i] = s - base
			c = 1
		} else {
			z[i] = s
			c = 0
			copy(z[i+1:], x[i+1:])
			return 0
		}
	}
	return c
}

// subVW subtracts the single limb y from x, writing the result to z, and
// returns the borrow (0 or 1). Requires x's magnitude (as an n-limb
// number) to be >= y.
func subVW(z, x []limb, y limb) (c limb) {
	c = y
	for i := range z {
		if x[i] >= c {
			z[i] = x[i] - c
			copy(z[i+1:], x[i+1:])
			return 0
		}
		z[i] = x[i] + base - c
		c = 1
	}
	return c
}

// mulAddVWW sets z[i] = x[i]*y + c (carry propagated in base) and returns
// the final carry. len(z) == len(x).
func mulAddVWW(z, x []limb, y, c limb) limb {
	for i := range x {
		hi, lo := bits.Mul64(x[i], y)
		lo, carryOut := bits.Add64(lo, c, 0)
		hi += carryOut
		// (hi,lo) is the true 128-bit binary value of x[i]*y+c; hi is
		// always well under base (x[i],y,c < base), so dividing the
		// binary pair directly by base is exact.
		q, r := bits.Div64(hi, lo, base)
		z[i] = r
		c = q
	}
	return c
}

// addMulVVW sets z[i] += x[i]*y for i in range (z and x may overlap only
// if identical) and returns the carry out.
func addMulVVW(z, x []limb, y limb) limb {
	var c limb
	for i := range x {
		hi, lo := bits.Mul64(x[i], y)
		lo, carryOut := bits.Add64(lo, z[i], 0)
		hi += carryOut
		lo, carryOut = bits.Add64(lo, c, 0)
		hi += carryOut
		q, r := bits.Div64(hi, lo, base)
		z[i] = r
		c = q
	}
	return c
}

// divWVW divides the (xn, x...) multi-limb dividend by the single limb y,
// writing the quotient to z (len(z) == len(x)), and returns the
// remainder. xn is the carry-in from a more significant limb, and must
// be < y.
func divWVW(z []limb, xn limb, x []limb, y limb) (r limb) {
	r = xn
	for i := len(x) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return r
}

// divWW divides the two-digit decimal value N = hi*base + lo (hi and lo
// are each a single base-`base` digit, not a binary double-word) by y, a
// value in [1, base), returning q and r = N - q*y with 0 <= r < y. Every
// call site guarantees hi < y, which keeps N < y*base and therefore
// q < base, so q always fits in a limb.
func divWW(hi, lo, y limb) (q, r limb) {
	// Widen N to a genuine 128-bit binary value z1:z0 first (hi digits
	// are worth `base`, not 2^64, in this representation), then divide
	// that by y with the standard double-word division primitive.
	z1, z0 := bits.Mul64(hi, base)
	z0, carry := bits.Add64(z0, lo, 0)
	z1 += carry
	q, r = bits.Div64(z1, z0, y)
	return q, r
}

// shiftLimbs returns x shifted left by n limbs (i.e. multiplied by
// base^n), reusing buf if it has enough capacity.
func shiftLimbs(buf, x []limb, n int) []limb {
	if len(x) == 0 {
		return buf[:0]
	}
	z := makeLimbs(buf, len(x)+n)
	for i := 0; i < n; i++ {
		z[i] = 0
	}
	copy(z[n:], x)
	return z
}

// makeLimbs returns a []limb of length n, reusing buf's storage when it
// has enough capacity and allocating a fresh slice otherwise.
func makeLimbs(buf []limb, n int) []limb {
	if n <= cap(buf) {
		return buf[:n]
	}
	return make([]limb, n)
}

// cmpVV compares x and y as equal-length little-endian limb sequences,
// most significant limb first, returning -1, 0 or +1. len(x) == len(y).
func cmpVV(x, y []limb) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// normLimbs trims trailing zero limbs, keeping at least one limb.
func normLimbs(x []limb) []limb {
	i := len(x)
	for i > 1 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// isZeroLimbs reports whether x represents zero.
func isZeroLimbs(x []limb) bool {
	for _, w := range x {
		if w != 0 {
			return false
		}
	}
	return true
}
