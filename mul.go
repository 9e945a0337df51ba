// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bigint

// Mul returns x * y. The result's sign is the XOR of the operand signs;
// if either operand is zero the result is zero (spec.md §4.6).
func (x BigInt) Mul(y BigInt) BigInt {
	if debugBigInt {
		x.validate()
		y.validate()
	}
	if x.IsZero() || y.IsZero() {
		return Zero
	}
	s := positive
	if x.sign != y.sign {
		s = negative
	}
	return normalize(s, mulMagnitude(x.limbs, y.limbs, 0))
}

// Square returns x * x. It is equivalent to x.Mul(x), but skips the sign
// check (a square is never negative). The product itself goes through
// the same mulMagnitude path as Mul: the Karatsuba recursion forms the
// (x1+x0) and (y1+y0) sums separately even though both operands are x.
func (x BigInt) Square() BigInt {
	if x.IsZero() {
		return Zero
	}
	return normalize(positive, mulMagnitude(x.limbs, x.limbs, 0))
}

// mulMagnitude returns the little-endian limb slice for |x|*|y|, using
// schoolbook multiplication when the shorter operand has at most
// KaratsubaThreshold limbs and a Karatsuba recursion above that
// (spec.md §4.6). depth is purely a trace
// aid for the optional Logger hook (see logging.go); it has no effect on
// the result.
func mulMagnitude(x, y []limb, depth int) []limb {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) <= KaratsubaThreshold {
		return schoolbookMul(x, y)
	}
	return karatsubaMul(x, y, depth)
}

// schoolbookMul is the O(n*m) base case: for each limb of y, multiply
// the whole of x by it and add the shifted result into z. Grounded on
// the teacher's addMul10VVW_g-driven long multiplication.
func schoolbookMul(x, y []limb) []limb {
	z := make([]limb, len(x)+len(y))
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		z[i+len(x)] = addMulVVW(z[i:i+len(x)], x, yi)
	}
	return normLimbs(z)
}

// karatsubaMul implements the recursion of spec.md §4.6: split x and y
// at n = max(len(x), len(y))/2 limbs into (x1,x0) and (y1,y0), compute
// the three sub-products P2 = x1*y1, P0 = x0*y0 and
// P1 = (x1+x0)*(y1+y0) - P2 - P0, then combine
// P2*base^(2n) + P1*base^n + P0. len(x) >= len(y) > KaratsubaThreshold.
func karatsubaMul(x, y []limb, depth int) []limb {
	activeLogger.Debug("karatsuba recursed",
		Int("depth", depth), Int("len_x", len(x)), Int("len_y", len(y)))

	n := len(x) / 2
	x1, x0 := x[n:], normLimbs(x[:n])
	var y1, y0 []limb
	if n < len(y) {
		y1, y0 = y[n:], normLimbs(y[:n])
	} else {
		y1, y0 = []limb{0}, normLimbs(y)
	}

	p2 := mulMagnitude(x1, y1, depth+1)
	p0 := mulMagnitude(x0, y0, depth+1)

	xSum := addMagnitude(x1, x0)
	ySum := addMagnitude(y1, y0)
	cross := mulMagnitude(xSum, ySum, depth+1)
	cross = subMagnitude(cross, p2)
	cross = subMagnitude(cross, p0)

	result := shiftLimbs(nil, p2, 2*n)
	result = addMagnitude(result, shiftLimbs(nil, cross, n))
	result = addMagnitude(result, p0)
	return normLimbs(result)
}
