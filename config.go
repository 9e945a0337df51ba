// Copyright 2026 The bigint Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bigint

import (
	"os"
	"strconv"
)

// KaratsubaThreshold is the operand length, in limbs, at or below which
// Mul and Square use schoolbook multiplication instead of recursing with
// Karatsuba's algorithm. It is exported so a caller who has profiled
// their own workload can retune it, the same adaptive-threshold pattern
// the teacher pack uses for its own recursion cutovers.
//
// The default was picked empirically: below it, Karatsuba's recursion
// and allocation overhead outweighs the O(n^1.585) vs O(n^2) win.
var KaratsubaThreshold = defaultKaratsubaThreshold

const defaultKaratsubaThreshold = 24

// karatsubaThresholdEnvVar, when set to a positive integer, overrides
// KaratsubaThreshold at package initialization. It exists for the same
// reason the teacher pack's env.go lets deployments tune algorithm
// knobs without a code change.
const karatsubaThresholdEnvVar = "BIGINT_KARATSUBA_THRESHOLD"

func init() {
	v, ok := os.LookupEnv(karatsubaThresholdEnvVar)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	KaratsubaThreshold = n
}
