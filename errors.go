// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bigint

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package's fallible operations. Callers
// should test against these with errors.Is rather than comparing strings.
var (
	// ErrEmptyInput is returned by Parse when given an empty string, or a
	// string consisting only of a sign with no digits.
	ErrEmptyInput = errors.New("bigint: empty input")

	// ErrInvalidDigit is returned (wrapped in a *SyntaxError) by Parse
	// when the input contains a byte that is not an ASCII digit.
	ErrInvalidDigit = errors.New("bigint: invalid digit")

	// ErrDivideByZero is returned by DivRem, Div and Rem when the divisor
	// is zero.
	ErrDivideByZero = errors.New("bigint: division by zero")

	// ErrInvalidArgument is returned by Pow when given a negative
	// exponent.
	ErrInvalidArgument = errors.New("bigint: invalid argument")
)

// SyntaxError reports a malformed decimal string passed to Parse. It
// wraps ErrInvalidDigit so that errors.Is(err, ErrInvalidDigit) reports
// true for it.
type SyntaxError struct {
	Input string // the full input string that failed to parse
	Pos   int    // byte offset of the first offending character
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bigint: invalid digit %q at position %d in %q", e.Input[e.Pos], e.Pos, e.Input)
}

// Unwrap allows errors.Is(err, ErrInvalidDigit) to succeed for a
// *SyntaxError.
func (e *SyntaxError) Unwrap() error { return ErrInvalidDigit }

// wrapf wraps err with additional context, following the same
// fmt.Errorf("%w", ...)-based convention as the rest of the retrieved
// pack's WrapError helpers; it returns nil if err is nil.
func wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
