// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/go-statfn/statfn/mathx"
	"golang.org/x/exp/rand"
)

// An FDist is an F-distribution (Fisher-Snedecor distribution) with
// D1 numerator and D2 denominator degrees of freedom.
//
// This is the distribution of the ratio of two independent
// chi-squared variates, each divided by its degrees of freedom. D1 and
// D2 must be positive and finite.
type FDist struct {
	D1, D2 float64
}

func (f FDist) valid() bool {
	return validDof(f.D1) && validDof(f.D2)
}

func (f FDist) PDF(x float64) float64 {
	return math.Exp(f.LogPDF(x))
}

func (f FDist) LogPDF(x float64) float64 {
	if !f.valid() || math.IsNaN(x) {
		return nan
	}
	switch {
	case x < 0 || math.IsInf(x, 1):
		return -inf
	case x == 0:
		// The density at 0 depends on the shape near the origin.
		switch {
		case f.D1 < 2:
			return inf
		case f.D1 == 2:
			return 0
		}
		return -inf
	}
	r := f.D1 * x / f.D2
	return -f.D1/2*math.Log1p(1/r) - f.D2/2*math.Log1p(r) -
		math.Log(x) - mathx.Lbeta(f.D1/2, f.D2/2)
}

func (f FDist) CDF(x float64) float64 {
	if !f.valid() || math.IsNaN(x) {
		return nan
	}
	if x <= 0 {
		return 0
	}
	// I_u(D1/2, D2/2) with u = D1x/(D1x+D2).
	r := f.D1 * x / f.D2
	if math.IsInf(r, 1) {
		return 1
	}
	return mathx.BetaIncXY(r/(1+r), 1/(1+r), f.D1/2, f.D2/2)
}

func (f FDist) InvCDF(p float64) float64 {
	if !f.valid() || !(0 <= p && p <= 1) {
		return nan
	}
	switch p {
	case 0:
		return 0
	case 1:
		return inf
	}
	a, b := f.D1/2, f.D2/2
	if p > 0.5 {
		// Solve for 1-u, which is precise in the upper tail.
		w := mathx.InvBetaInc(1-p, b, a)
		return f.D2 * (1 - w) / (f.D1 * w)
	}
	u := mathx.InvBetaInc(p, a, b)
	return f.D2 * u / (f.D1 * (1 - u))
}

// Rand returns an F-distributed variate, (χ²(D1)/D1)/(χ²(D2)/D2).
func (f FDist) Rand(r *rand.Rand) float64 {
	if !f.valid() {
		return nan
	}
	r = engine(r)
	x1 := randChiSquared(r, f.D1) / f.D1
	x2 := randChiSquared(r, f.D2) / f.D2
	return x1 / x2
}

// Mean returns the mean of f, D2/(D2-2), or NaN if D2 <= 2.
func (f FDist) Mean() float64 {
	if !f.valid() || f.D2 <= 2 {
		return nan
	}
	return f.D2 / (f.D2 - 2)
}

// Variance returns the variance of f. It is
//
//	2 D2² (D1+D2-2) / (D1 (D2-2)² (D2-4))
//
// for D2 > 4, +Inf for 2 < D2 <= 4, and NaN otherwise.
func (f FDist) Variance() float64 {
	switch {
	case !f.valid() || f.D2 <= 2:
		return nan
	case f.D2 <= 4:
		return inf
	}
	d1, d2 := f.D1, f.D2
	return 2 * d2 * d2 * (d1 + d2 - 2) / (d1 * (d2 - 2) * (d2 - 2) * (d2 - 4))
}

func (f FDist) Bounds() (float64, float64) {
	if !f.valid() {
		return nan, nan
	}
	return 0, f.InvCDF(0.999)
}
