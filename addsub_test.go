// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bigint

import "testing"

func TestAdd(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"1", "2", "3"},
		{"-1", "1", "0"},
		{"-1", "2", "1"},
		{"1", "-2", "-1"},
		{"-1", "-2", "-3"},
		{"999999999999999999", "1", "1000000000000000000"},
		{"999999999999999999", "999999999999999999", "1999999999999999998"},
		{"-999999999999999999", "-1", "-1000000000000000000"},
		{"1000000000000000000000000000000000000", "1", "1000000000000000000000000000000000001"},
		{"5", "-5", "0"},
	}
	for i, tt := range tests {
		x, y := MustParse(tt.x), MustParse(tt.y)
		if got := x.Add(y).String(); got != tt.want {
			t.Errorf("#%d: (%s)+(%s) = %s; want %s", i, tt.x, tt.y, got, tt.want)
		}
		// Addition commutes.
		if got := y.Add(x).String(); got != tt.want {
			t.Errorf("#%d: (%s)+(%s) [swapped] = %s; want %s", i, tt.y, tt.x, got, tt.want)
		}
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"5", "3", "2"},
		{"3", "5", "-2"},
		{"-3", "-5", "2"},
		{"1000000000000000000", "1", "999999999999999999"},
		{"0", "1", "-1"},
		{"0", "-1", "1"},
		{"5", "5", "0"},
		{"-5", "-5", "0"},
		{"1000000000000000000000000000000000000", "1", "999999999999999999999999999999999999"},
	}
	for i, tt := range tests {
		x, y := MustParse(tt.x), MustParse(tt.y)
		if got := x.Sub(y).String(); got != tt.want {
			t.Errorf("#%d: (%s)-(%s) = %s; want %s", i, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	xs := []string{"0", "1", "-1", "999999999999999999", "-999999999999999999999999999999999999", "123456789012345678901234567890"}
	ys := []string{"0", "1", "-1", "1000000000000000000", "42"}
	for _, xs := range xs {
		for _, ys := range ys {
			x, y := MustParse(xs), MustParse(ys)
			if got := x.Add(y).Sub(y); !got.Eq(x) {
				t.Errorf("(%s+%s)-%s = %s; want %s", xs, ys, ys, got, xs)
			}
		}
	}
}
