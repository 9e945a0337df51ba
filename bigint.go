// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"
	"strconv"
)

// debugBigInt gates the internal invariant checks run by validate. It
// mirrors the teacher-pack's debugDecimal toggle: flip it to false to
// skip validation in a performance-sensitive build.
const debugBigInt = true

// sign records whether a BigInt is positive or negative. Zero is always
// positive; see BigInt's doc comment.
type sign uint8

const (
	positive sign = iota
	negative
)

func (s sign) String() string {
	if s == negative {
		return "-"
	}
	return ""
}

func (s sign) flip() sign {
	return positive + negative - s
}

// BigInt is an arbitrary-precision signed integer. The zero value is not
// a usable BigInt; construct one with Zero, Parse, FromInt64 or
// FromUint64.
//
// A BigInt's magnitude is stored as limbs, a little-endian slice of
// base-10^18 digits with no leading (most-significant) zero limb, except
// for the canonical representation of zero, which is the single limb
// [0]. BigInt values are immutable: no exported operation ever mutates
// the receiver or its arguments, and the limbs slice is never aliased
// into a result that a caller could then mutate to corrupt a shared
// value, so a BigInt is safe to share across goroutines for read-only
// use.
type BigInt struct {
	sign  sign
	limbs []limb
}

// Zero is the additive identity. It is also the canonical representation
// every operation normalizes to when the mathematical result is 0.
var Zero = BigInt{sign: positive, limbs: []limb{0}}

// One is the multiplicative identity.
var One = BigInt{sign: positive, limbs: []limb{1}}

// FromInt64 returns the BigInt equal to x.
func FromInt64(x int64) BigInt {
	s := positive
	u := uint64(x)
	if x < 0 {
		s = negative
		u = uint64(-x)
	}
	return FromUint64(u).withSign(s)
}

// FromUint64 returns the BigInt equal to x.
func FromUint64(x uint64) BigInt {
	if x < base {
		return BigInt{sign: positive, limbs: []limb{x}}
	}
	return BigInt{sign: positive, limbs: []limb{x % base, x / base}}
}

// withSign returns x with its sign set to s, forcing positive if x is
// zero (zero has no negative form).
func (x BigInt) withSign(s sign) BigInt {
	if isZeroLimbs(x.limbs) {
		s = positive
	}
	return BigInt{sign: s, limbs: x.limbs}
}

// normalize builds the canonical BigInt for the given sign and limbs,
// trimming any leading zero limbs and forcing the sign to positive when
// the magnitude is zero. It takes ownership of limbs: callers must not
// retain or mutate the slice afterwards.
func normalize(s sign, limbs []limb) BigInt {
	limbs = normLimbs(limbs)
	if isZeroLimbs(limbs) {
		return BigInt{sign: positive, limbs: limbs[:1]}
	}
	return BigInt{sign: s, limbs: limbs}
}

// validate panics if x violates one of BigInt's representation
// invariants. It is only ever called when debugBigInt is set, the same
// convention the teacher pack uses for its own validate() helper.
func (x BigInt) validate() {
	if !debugBigInt {
		panic("bigint: validate called but debugBigInt is not set")
	}
	if len(x.limbs) == 0 {
		panic("bigint: BUG: zero-length limb slice")
	}
	if len(x.limbs) > 1 && x.limbs[len(x.limbs)-1] == 0 {
		panic(fmt.Sprintf("bigint: BUG: leading zero limb in %v", x.limbs))
	}
	for _, w := range x.limbs {
		if w >= base {
			panic(fmt.Sprintf("bigint: BUG: limb %d out of range [0, %d)", w, base))
		}
	}
	if x.sign == negative && isZeroLimbs(x.limbs) {
		panic("bigint: BUG: negative zero")
	}
}

// IsZero reports whether x is zero.
func (x BigInt) IsZero() bool {
	return isZeroLimbs(x.limbs)
}

// Sign returns -1 if x < 0, 0 if x == 0, and +1 if x > 0.
func (x BigInt) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.sign == negative {
		return -1
	}
	return 1
}

// Neg returns -x.
func (x BigInt) Neg() BigInt {
	return x.withSign(x.sign.flip())
}

// Abs returns |x|.
func (x BigInt) Abs() BigInt {
	return x.withSign(positive)
}

// Inc returns x + 1.
func (x BigInt) Inc() BigInt {
	return x.Add(One)
}

// Dec returns x - 1.
func (x BigInt) Dec() BigInt {
	return x.Sub(One)
}

// String returns the unique shortest decimal representation of x, with a
// leading '-' iff x is negative and nonzero. It implements fmt.Stringer.
func (x BigInt) String() string {
	return string(x.decimalBytes())
}

// GoString implements fmt.GoStringer for %#v output in tests and
// debuggers.
func (x BigInt) GoString() string {
	return "bigint.MustParse(" + strconv.Quote(x.String()) + ")"
}
