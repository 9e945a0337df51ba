// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"
	"strconv"
)

// Parse parses s as a signed decimal integer and returns the
// corresponding BigInt. s may carry an optional leading '-'; a leading
// '+' is not accepted. The remainder must be one or more ASCII digits,
// per spec.md §4.2. Leading zeros in the digit run are permitted and
// simply normalize away.
func Parse(s string) (BigInt, error) {
	if s == "" {
		return BigInt{}, ErrEmptyInput
	}
	sg := positive
	digits := s
	if s[0] == '-' {
		sg = negative
		digits = s[1:]
	}
	if digits == "" {
		return BigInt{}, ErrEmptyInput
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			pos := i
			if sg == negative {
				pos++
			}
			return BigInt{}, &SyntaxError{Input: s, Pos: pos}
		}
	}

	n := (len(digits) + limbDecimalWidth - 1) / limbDecimalWidth
	limbs := make([]limb, n)
	end := len(digits)
	for i := 0; i < n; i++ {
		start := end - limbDecimalWidth
		if start < 0 {
			start = 0
		}
		v, err := strconv.ParseUint(digits[start:end], 10, 64)
		if err != nil {
			// Unreachable: the digit scan above already validated every
			// byte, but report it rather than panic if it ever happens.
			return BigInt{}, wrapf(err, "bigint: Parse %q", s)
		}
		limbs[i] = limb(v)
		end = start
	}
	return normalize(sg, limbs), nil
}

// MustParse is like Parse but panics if s is not a valid decimal
// integer. It is meant for tests and package-level literals, mirroring
// the teacher pack's MustParse-style helpers.
func MustParse(s string) BigInt {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// decimalBytes renders x in decimal, most significant digit first, with
// a leading '-' iff x is negative.
func (x BigInt) decimalBytes() []byte {
	top := x.limbs[len(x.limbs)-1]
	topStr := strconv.FormatUint(uint64(top), 10)

	n := len(topStr) + (len(x.limbs)-1)*limbDecimalWidth
	if x.sign == negative {
		n++
	}
	buf := make([]byte, n)
	p := 0
	if x.sign == negative {
		buf[p] = '-'
		p++
	}
	p += copy(buf[p:], topStr)
	for i := len(x.limbs) - 2; i >= 0; i-- {
		p += appendPaddedLimb(buf[p:], x.limbs[i])
	}
	return buf
}

// appendPaddedLimb writes w into buf as exactly limbDecimalWidth ASCII
// digits, left-padded with zeros, and returns the number of bytes
// written.
func appendPaddedLimb(buf []byte, w limb) int {
	for i := limbDecimalWidth - 1; i >= 0; i-- {
		buf[i] = byte('0' + w%10)
		w /= 10
	}
	return limbDecimalWidth
}

// Format implements fmt.Formatter, supporting the %s, %v, %d and %q
// verbs. Any other verb reports itself as unsupported, the same
// courtesy math/big.Int extends its callers.
func (x BigInt) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v', 'd':
		fmt.Fprint(f, x.String())
	case 'q':
		fmt.Fprint(f, strconv.Quote(x.String()))
	default:
		fmt.Fprintf(f, "%%!%c(bigint.BigInt=%s)", verb, x.String())
	}
}

// MarshalText implements encoding.TextMarshaler.
func (x BigInt) MarshalText() ([]byte, error) {
	return x.decimalBytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *BigInt) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}
