// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathtest provides helpers for testing numerical functions.
package mathtest

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"

	"gonum.org/v1/gonum/integrate/quad"
)

var (
	aeqDigits int
	aeqFactor float64
)

// SetAeqDigits sets the number of significant digits Aeq compares and
// returns the previous setting.
func SetAeqDigits(digits int) int {
	old := aeqDigits
	aeqDigits = digits
	aeqFactor = 1 - math.Pow(10, float64(-digits+1))
	return old
}

func init() {
	SetAeqDigits(8)
}

// Aeq returns true if expect and got are equal up to the current
// number of aeq digits set by SetAeqDigits. By default, this is 8
// significant figures (1 part in 100 million). Infinities are equal
// only to themselves.
func Aeq(expect, got float64) bool {
	if expect == got {
		return true
	}
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*aeqFactor <= got && got*aeqFactor <= expect
}

// WantFunc checks f(x) against vals[x] for each key of vals, in
// increasing order of x. A NaN want matches a NaN result. If name
// contains "%v", it is formatted with x to label failures.
func WantFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || Aeq(want, got) {
			continue
		}
		var label string
		if strings.Contains(name, "%v") {
			label = fmt.Sprintf(name, x)
		} else {
			label = fmt.Sprintf("%s(%v)", name, x)
		}
		t.Errorf("want %s=%v, got %v", label, want, got)
	}
}

// Integrate returns the integral of f over [lo, hi], which must lie
// within [-1e8, 1e8]. It sums fixed Gauss-Legendre rules over each
// decade, so peaked and heavy-tailed densities are covered evenly.
func Integrate(f func(float64) float64, lo, hi float64) float64 {
	edges := []float64{0, lo, hi}
	for e := -8; e <= 8; e++ {
		p := math.Pow(10, float64(e))
		edges = append(edges, p, -p)
	}
	sort.Float64s(edges)

	sum := 0.0
	for i := 1; i < len(edges); i++ {
		a, b := edges[i-1], edges[i]
		if a < lo || b > hi || a == b {
			continue
		}
		sum += quad.Fixed(f, a, b, 32, nil, 0)
	}
	return sum
}
