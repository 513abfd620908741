// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathtest

import (
	"math"
	"testing"
)

func TestAeq(t *testing.T) {
	inf := math.Inf(1)
	for _, tc := range []struct {
		a, b float64
		want bool
	}{
		{1, 1, true},
		{1, 1 + 1e-9, true},
		{1, 1 + 1e-6, false},
		{-2, -2 * (1 + 1e-9), true},
		{-2, 2, false},
		{0, 0, true},
		{0, 1e-300, false},
		{inf, inf, true},
		{-inf, -inf, true},
		{inf, -inf, false},
		{math.NaN(), math.NaN(), false},
	} {
		if got := Aeq(tc.a, tc.b); got != tc.want {
			t.Errorf("Aeq(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}

	old := SetAeqDigits(3)
	if !Aeq(1, 1.001) {
		t.Errorf("Aeq(1, 1.001) with 3 digits = false")
	}
	SetAeqDigits(old)
}

func TestIntegrate(t *testing.T) {
	exp := func(x float64) float64 { return math.Exp(-x) }
	if got := Integrate(exp, 0, 50); math.Abs(got-1) > 1e-12 {
		t.Errorf("integral of exp(-x) over [0, 50] = %v, want 1", got)
	}
	cauchy := func(x float64) float64 { return 1 / (math.Pi * (1 + x*x)) }
	if got, want := Integrate(cauchy, -1e8, 1e8), 2*math.Atan(1e8)/math.Pi; math.Abs(got-want) > 1e-12 {
		t.Errorf("integral of Cauchy density = %v, want %v", got, want)
	}
	if got := Integrate(exp, 0.5, 2.5); math.Abs(got-(math.Exp(-0.5)-math.Exp(-2.5))) > 1e-14 {
		t.Errorf("integral of exp(-x) over [0.5, 2.5] = %v", got)
	}
}
