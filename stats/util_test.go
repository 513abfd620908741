// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-statfn/statfn/internal/mathtest"
)

var aeq = mathtest.Aeq
var testFunc = mathtest.WantFunc

// testInvCDF checks InvCDF's domain and that it inverts CDF. If
// positive is true, dist's support is [0, +Inf); otherwise it is the
// whole real line.
func testInvCDF(t *testing.T, dist Dist, positive bool) {
	t.Helper()
	inv := dist.InvCDF
	name := fmt.Sprintf("InvCDF(%+v)", dist)

	// Test bounds.
	vals := map[float64]float64{-0.01: nan, 1.01: nan, 1: inf}
	if positive {
		vals[0] = 0
	} else {
		vals[0] = -inf
	}
	testFunc(t, name, inv, vals)

	// Test points between.
	vals = map[float64]float64{}
	for i := 1; i < 10; i++ {
		x := inv(float64(i) / 10)
		vals[x] = x
	}
	testFunc(t, fmt.Sprintf("InvCDF(CDF(%+v))", dist),
		func(x float64) float64 {
			return inv(dist.CDF(x))
		},
		vals)
}

// testLogPDF checks that LogPDF agrees with the log of PDF wherever
// PDF does not underflow.
func testLogPDF(t *testing.T, dist Dist, xs []float64) {
	t.Helper()
	for _, x := range xs {
		pdf, lpdf := dist.PDF(x), dist.LogPDF(x)
		if pdf == 0 {
			continue
		}
		if want := math.Log(pdf); math.Abs(want-lpdf) > 1e-12*math.Max(1, math.Abs(want)) {
			t.Errorf("%+v.LogPDF(%v) = %v, want log(PDF) = %v", dist, x, lpdf, want)
		}
	}
}

// testIntegral checks that dist's density integrates to 1 over
// [lo, hi] and matches the CDF over a few subintervals.
func testIntegral(t *testing.T, dist Dist, lo, hi float64) {
	t.Helper()
	total := mathtest.Integrate(dist.PDF, lo, hi)
	if math.Abs(total-1) > 1e-6 {
		t.Errorf("integral of %+v.PDF over [%v, %v] = %v, want 1", dist, lo, hi, total)
	}

	l, h := dist.Bounds()
	for i := 0; i < 4; i++ {
		a := l + float64(i)*(h-l)/4
		b := a + (h-l)/4
		got := mathtest.Integrate(dist.PDF, a, b)
		want := dist.CDF(b) - dist.CDF(a)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("integral of %+v.PDF over [%v, %v] = %v, want CDF difference %v", dist, a, b, got, want)
		}
	}
}
