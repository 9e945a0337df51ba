// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bigint

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x BigInt) Cmp(y BigInt) int {
	if debugBigInt {
		x.validate()
		y.validate()
	}
	if x.sign != y.sign {
		if x.IsZero() && y.IsZero() {
			return 0
		}
		if x.sign == negative {
			return -1
		}
		return 1
	}
	c := cmpMagnitude(x.limbs, y.limbs)
	if x.sign == negative {
		c = -c
	}
	return c
}

// cmpMagnitude compares the magnitudes of two limb slices: first by
// length (a longer normalized slice is always the larger magnitude),
// then limb by limb from the most significant end.
func cmpMagnitude(x, y []limb) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	return cmpVV(x, y)
}

// Eq reports whether x and y denote the same integer.
func (x BigInt) Eq(y BigInt) bool { return x.Cmp(y) == 0 }

// Lt reports whether x < y.
func (x BigInt) Lt(y BigInt) bool { return x.Cmp(y) < 0 }

// Le reports whether x <= y.
func (x BigInt) Le(y BigInt) bool { return x.Cmp(y) <= 0 }

// Gt reports whether x > y.
func (x BigInt) Gt(y BigInt) bool { return x.Cmp(y) > 0 }

// Ge reports whether x >= y.
func (x BigInt) Ge(y BigInt) bool { return x.Cmp(y) >= 0 }
