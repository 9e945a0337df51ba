// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bigint

// Pow returns x**exp, exp >= 0, computed by binary (square-and-multiply)
// exponentiation over BigInt.Mul (spec.md §4.8). It returns
// ErrInvalidArgument if exp is negative.
func (x BigInt) Pow(exp int64) (BigInt, error) {
	if exp < 0 {
		return BigInt{}, wrapf(ErrInvalidArgument, "bigint: Pow: negative exponent %d", exp)
	}
	if exp == 0 {
		return One, nil
	}
	if x.IsZero() {
		return Zero, nil
	}

	result := One
	b := x
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(b)
		}
		exp >>= 1
		if exp > 0 {
			b = b.Square()
		}
	}
	return result, nil
}
