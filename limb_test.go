// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bigint

import (
	"reflect"
	"testing"
)

func TestAddVV(t *testing.T) {
	tests := []struct {
		x, y, z []limb
		carry   limb
	}{
		{[]limb{0}, []limb{0}, []limb{0}, 0},
		{[]limb{1}, []limb{1}, []limb{2}, 0},
		{[]limb{base - 1}, []limb{1}, []limb{0}, 1},
		{[]limb{base - 1, base - 1}, []limb{1, 0}, []limb{0, 0}, 1},
		{[]limb{5, 7}, []limb{6, 8}, []limb{11, 15}, 0},
	}
	for i, tt := range tests {
		z := make([]limb, len(tt.x))
		c := addVV(z, tt.x, tt.y)
		if c != tt.carry || !reflect.DeepEqual(z, tt.z) {
			t.Errorf("#%d: addVV(%v, %v) = %v, %d; want %v, %d", i, tt.x, tt.y, z, c, tt.z, tt.carry)
		}
	}
}

func TestSubVV(t *testing.T) {
	tests := []struct {
		x, y, z []limb
		borrow  limb
	}{
		{[]limb{0}, []limb{0}, []limb{0}, 0},
		{[]limb{2}, []limb{1}, []limb{1}, 0},
		{[]limb{0}, []limb{1}, []limb{base - 1}, 1},
		{[]limb{0, 1}, []limb{1, 0}, []limb{base - 1, 0}, 0},
	}
	for i, tt := range tests {
		z := make([]limb, len(tt.x))
		c := subVV(z, tt.x, tt.y)
		if c != tt.borrow || !reflect.DeepEqual(z, tt.z) {
			t.Errorf("#%d: subVV(%v, %v) = %v, %d; want %v, %d", i, tt.x, tt.y, z, c, tt.z, tt.borrow)
		}
	}
}

func TestMulAddVWW(t *testing.T) {
	tests := []struct {
		x     []limb
		y, c  limb
		z     []limb
		carry limb
	}{
		{[]limb{0}, 0, 0, []limb{0}, 0},
		{[]limb{2}, 3, 0, []limb{6}, 0},
		{[]limb{base - 1}, base - 1, 0, []limb{1}, base - 2},
		{[]limb{1, 1}, base - 1, 0, []limb{base - 1, base - 1}, 0},
	}
	for i, tt := range tests {
		z := make([]limb, len(tt.x))
		c := mulAddVWW(z, tt.x, tt.y, tt.c)
		if c != tt.carry || !reflect.DeepEqual(z, tt.z) {
			t.Errorf("#%d: mulAddVWW(%v, %d, %d) = %v, %d; want %v, %d", i, tt.x, tt.y, tt.c, z, c, tt.z, tt.carry)
		}
	}
}

func TestAddMulVVW(t *testing.T) {
	z := []limb{1, 1}
	x := []limb{2, 3}
	c := addMulVVW(z, x, 5)
	want := []limb{11, 16}
	if c != 0 || !reflect.DeepEqual(z, want) {
		t.Errorf("addMulVVW = %v, %d; want %v, 0", z, c, want)
	}
}

func TestDivWW(t *testing.T) {
	tests := []struct {
		hi, lo, y limb
		q, r      limb
	}{
		{0, 0, 1, 0, 0},
		{0, 10, 3, 3, 1},
		{1, 0, base - 1, 1, 1}, // base == 1*(base-1) + 1
		{3, 500, 7, 0, 0},      // filled in below
	}
	tests[3].q, tests[3].r = (3*base+500)/7, (3*base+500)%7
	for i, tt := range tests {
		q, r := divWW(tt.hi, tt.lo, tt.y)
		if q != tt.q || r != tt.r {
			t.Errorf("#%d: divWW(%d, %d, %d) = %d, %d; want %d, %d", i, tt.hi, tt.lo, tt.y, q, r, tt.q, tt.r)
		}
	}
}

func TestDivWVW(t *testing.T) {
	x := []limb{123, 456, 789}
	y := limb(97)
	z := make([]limb, len(x))
	r := divWVW(z, 0, x, y)

	// Reconstruct x's value the slow way and check q*y+r == x.
	got := makeLimbs(nil, len(z)+1)
	carry := mulAddVWW(got[:len(z)], z, y, 0)
	got[len(z)] = carry
	got = addVWChecked(got, r)
	got = normLimbs(got)
	want := normLimbs(append([]limb{}, x...))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("divWVW reconstruction mismatch: got %v, want %v", got, want)
	}
}

// addVWChecked is a tiny test helper performing z += r in place (r < base),
// growing z by one limb if the addition carries out of the top limb.
func addVWChecked(z []limb, r limb) []limb {
	c := addVW(z, z, r)
	if c != 0 {
		z = append(z, c)
	}
	return z
}

func TestCmpVV(t *testing.T) {
	tests := []struct {
		x, y []limb
		want int
	}{
		{[]limb{0}, []limb{0}, 0},
		{[]limb{1}, []limb{0}, 1},
		{[]limb{0}, []limb{1}, -1},
		{[]limb{1, 2}, []limb{1, 2}, 0},
		{[]limb{1, 3}, []limb{1, 2}, 1},
	}
	for i, tt := range tests {
		if got := cmpVV(tt.x, tt.y); got != tt.want {
			t.Errorf("#%d: cmpVV(%v, %v) = %d; want %d", i, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNormLimbs(t *testing.T) {
	tests := []struct {
		x, want []limb
	}{
		{[]limb{0}, []limb{0}},
		{[]limb{0, 0}, []limb{0}},
		{[]limb{1, 0, 0}, []limb{1}},
		{[]limb{1, 2, 0}, []limb{1, 2}},
		{[]limb{1, 2, 3}, []limb{1, 2, 3}},
	}
	for i, tt := range tests {
		if got := normLimbs(tt.x); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("#%d: normLimbs(%v) = %v; want %v", i, tt.x, got, tt.want)
		}
	}
}

func TestShiftLimbs(t *testing.T) {
	got := shiftLimbs(nil, []limb{1, 2}, 2)
	want := []limb{0, 0, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("shiftLimbs = %v; want %v", got, want)
	}
	if got := shiftLimbs(nil, nil, 3); len(got) != 0 {
		t.Errorf("shiftLimbs(nil) = %v; want empty", got)
	}
}
