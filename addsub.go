// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bigint

// Add returns x + y.
func (x BigInt) Add(y BigInt) BigInt {
	if debugBigInt {
		x.validate()
		y.validate()
	}
	if x.sign == y.sign {
		return normalize(x.sign, addMagnitude(x.limbs, y.limbs))
	}
	// Signs differ: x + y == x - (-y), i.e. subtract the smaller
	// magnitude from the larger and take the larger's sign.
	switch cmpMagnitude(x.limbs, y.limbs) {
	case 0:
		return Zero
	case 1:
		return normalize(x.sign, subMagnitude(x.limbs, y.limbs))
	default:
		return normalize(y.sign, subMagnitude(y.limbs, x.limbs))
	}
}

// Sub returns x - y.
func (x BigInt) Sub(y BigInt) BigInt {
	return x.Add(y.Neg())
}

// addMagnitude returns the little-endian limb slice for |x|+|y|,
// schoolbook addition with carry propagation, per spec.md §4.4.
func addMagnitude(x, y []limb) []limb {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]limb, len(x)+1)
	c := addVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = addVW(z[len(y):len(x)], x[len(y):], c)
	}
	if c != 0 {
		z[len(x)] = c
		return z
	}
	return z[:len(x)]
}

// subMagnitude returns the little-endian limb slice for |x|-|y|,
// requiring |x| >= |y| (the caller pre-compares magnitudes), per
// spec.md §4.5.
func subMagnitude(x, y []limb) []limb {
	z := make([]limb, len(x))
	c := subVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = subVW(z[len(y):], x[len(y):], c)
	}
	if debugBigInt && c != 0 {
		panic("bigint: BUG: subMagnitude underflow, |x| < |y|")
	}
	return z
}
