// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/go-statfn/statfn/mathx"
	"golang.org/x/exp/rand"
)

// A TDist is a Student's t-distribution with V degrees of freedom.
//
// V must be positive. V = +Inf is the limiting standard normal
// distribution.
type TDist struct {
	V float64
}

const (
	// tExpandV is the V above which the t-distribution is computed
	// from its expansion about the normal. The incomplete beta
	// function starts to lose digits past here.
	tExpandV = 1e7

	// tinyLogY is -log(1e-200).
	tinyLogY = 460.517
)

func (t TDist) valid() bool {
	return t.V > 0
}

func (t TDist) PDF(x float64) float64 {
	return math.Exp(t.LogPDF(x))
}

func (t TDist) LogPDF(x float64) float64 {
	if !t.valid() || math.IsNaN(x) {
		return nan
	}
	if math.IsInf(t.V, 1) {
		return normLogPDF(x)
	}
	if math.IsInf(x, 0) {
		return -inf
	}
	// log1p(z²), switching to 2 log |z| before z² overflows.
	z := x / math.Sqrt(t.V)
	var l float64
	if math.Abs(z) > 1e8 {
		l = 2 * math.Log(math.Abs(z))
	} else {
		l = math.Log1p(z * z)
	}
	return -0.5*math.Log(t.V) - mathx.Lbeta(t.V/2, 0.5) - (t.V+1)/2*l
}

func (t TDist) CDF(x float64) float64 {
	if !t.valid() || math.IsNaN(x) {
		return nan
	}
	if t.V > tExpandV {
		return normCDF(normalFromT(x, t.V))
	}
	if x == 0 {
		return 0.5
	}

	// The tail beyond |x| is ½I_y(V/2, ½) with y = 1/(1+z²) and
	// z² = x²/V.
	a := t.V / 2
	var tail float64
	if lz2 := 2*math.Log(math.Abs(x)) - math.Log(t.V); lz2 > tinyLogY {
		// y is below 1e-200, where I_y(a, ½) is yᵃ/(a B(a, ½)) to
		// double precision. Working in logs keeps small V from
		// overflowing x².
		tail = 0.5 * math.Exp(-a*lz2-math.Log(a)-mathx.Lbeta(a, 0.5))
	} else {
		// Computing both y and 1-y from z² keeps the argument
		// exact for large V.
		z2 := x * x / t.V
		tail = 0.5 * mathx.BetaIncXY(1/(1+z2), z2/(1+z2), a, 0.5)
	}
	if x < 0 {
		return tail
	}
	return 1 - tail
}

func (t TDist) InvCDF(p float64) float64 {
	if !t.valid() || !(0 <= p && p <= 1) {
		return nan
	}
	switch p {
	case 0:
		return -inf
	case 0.5:
		return 0
	case 1:
		return inf
	}
	if t.V > tExpandV {
		return tFromNormal(normInvCDF(p), t.V)
	}

	// Work with the two-sided tail probability, which is exact for
	// p > ½ since 1-p is. Solve I_y(V/2, ½) = tail for
	// y = V/(V+x²).
	tail := 2 * math.Min(p, 1-p)
	a := t.V / 2
	var x float64
	// yᵃ/(a B(a, ½)) <= I_y(a, ½), so this bounds log y from above.
	ly := (math.Log(tail) + math.Log(a) + mathx.Lbeta(a, 0.5)) / a
	if ly < -tinyLogY {
		// The power law is exact here and y may not be
		// representable, so x² = V(1-y)/y is taken as V/y.
		x = math.Exp(0.5 * (math.Log(t.V) - ly))
	} else if y := mathx.InvBetaInc(tail, a, 0.5); y < 0.5 {
		x = math.Sqrt(t.V * (1 - y) / y)
	} else {
		// 1-y has lost digits. In the body the complement is well
		// conditioned; deep in the tails of large V, 1-tail is not.
		// Either way a couple of Newton steps on the CDF, which is
		// computed from x exactly, recover them.
		if tail > 1e-3 {
			w := mathx.InvBetaInc(1-tail, 0.5, a)
			x = math.Sqrt(t.V * w / (1 - w))
		} else {
			x = math.Sqrt(t.V * (1 - y) / y)
		}
		lo := tail / 2
		for i := 0; i < 2; i++ {
			pdf := t.PDF(x)
			if !(pdf > 0) {
				break
			}
			x += (t.CDF(-x) - lo) / pdf
		}
	}
	if p < 0.5 {
		return -x
	}
	return x
}

// Rand returns a t-distributed variate, Z/√(χ²(V)/V).
func (t TDist) Rand(r *rand.Rand) float64 {
	if !t.valid() {
		return nan
	}
	r = engine(r)
	z := r.NormFloat64()
	if math.IsInf(t.V, 1) {
		return z
	}
	return z / math.Sqrt(randChiSquared(r, t.V)/t.V)
}

// Mean returns the mean of t, which is 0 for V > 1 and undefined
// (NaN) otherwise.
func (t TDist) Mean() float64 {
	if !(t.V > 1) {
		return nan
	}
	return 0
}

// Variance returns the variance of t. It is V/(V-2) for V > 2, +Inf
// for 1 < V <= 2, and NaN otherwise.
func (t TDist) Variance() float64 {
	switch {
	case math.IsInf(t.V, 1):
		return 1
	case t.V > 2:
		return t.V / (t.V - 2)
	case t.V > 1:
		return inf
	}
	return nan
}

func (t TDist) Bounds() (float64, float64) {
	return t.InvCDF(0.0005), t.InvCDF(0.9995)
}

// tFromNormal maps a standard normal quantile z to the matching
// quantile of the t-distribution with v degrees of freedom, using the
// Cornish-Fisher expansion in 1/v (Abramowitz and Stegun 26.7.5)
// through the 1/v³ term.
func tFromNormal(z, v float64) float64 {
	u, z2 := 1/v, z*z
	g1 := (z2 + 1) / 4
	g2 := ((5*z2+16)*z2 + 3) / 96
	g3 := (((3*z2+19)*z2+17)*z2 - 15) / 384
	return z + z*u*(g1+u*(g2+u*g3))
}

// normalFromT inverts tFromNormal by fixed-point iteration.
func normalFromT(x, v float64) float64 {
	if math.Abs(x) > 100 {
		// Both tails are far below the smallest float64.
		return x
	}
	z := x
	for i := 0; i < 4; i++ {
		z -= tFromNormal(z, v) - x
	}
	return z
}
