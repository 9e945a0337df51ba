// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package bigint implements arbitrary-precision signed integer arithmetic.

Unlike math/big's Int, which stores its magnitude as a little-endian slice
of binary words, a BigInt stores its magnitude as a little-endian slice of
decimal limbs, each holding up to 18 digits (base 10^18). This makes
textual conversion trivial at the cost of using the machine's multiplier
and divider slightly less efficiently than a pure binary representation
would.

The zero value for a BigInt is not usable; use Zero, Parse, or one of the
FromXxx constructors. BigInt values are immutable: every operation
returns a freshly constructed value and never modifies its receiver or
arguments, so a BigInt can be freely shared between goroutines for
read-only use.

Arithmetic is written as ordinary method calls returning a new value:

	sum := a.Add(b)
	diff := a.Sub(b)
	prod := a.Mul(b)
	q, r, err := a.DivRem(b)

Multiplication above a size threshold uses a Karatsuba recursion instead
of schoolbook multiplication; division uses Knuth's Algorithm D with a
two-word trial quotient. Both are described in detail in mul.go and
div.go.
*/
package bigint
