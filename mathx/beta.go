// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Beta returns the value of the complete beta function B(a, b).
func Beta(a, b float64) float64 {
	return math.Exp(Lbeta(a, b))
}

// Lbeta returns the natural logarithm of the complete beta function
// B(a, b).
//
// The naive log Γ(a) + log Γ(b) - log Γ(a+b) loses most of its
// precision to cancellation once a or b is large, so for arguments
// of 10 or more Lbeta works from the Stirling series directly.
//
// If a or b is NaN or not positive, Lbeta returns NaN.
func Lbeta(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) || a <= 0 || b <= 0 {
		return nan
	}
	p, q := math.Min(a, b), math.Max(a, b)
	if math.IsInf(q, 1) {
		return -inf
	}
	switch {
	case p >= 10:
		corr := lgammaCorr(p) + lgammaCorr(q) - lgammaCorr(p+q)
		return -0.5*math.Log(q) + lnSqrt2Pi + corr +
			(p-0.5)*math.Log(p/(p+q)) + q*math.Log1p(-p/(p+q))
	case q >= 10:
		corr := lgammaCorr(q) - lgammaCorr(p+q)
		return Lgamma(p) + corr + p - p*math.Log(p+q) +
			(q-0.5)*math.Log1p(-p/(p+q))
	}
	return Lgamma(p) + Lgamma(q) - Lgamma(p+q)
}

// BetaInc returns the value of the regularized incomplete beta
// function Iₓ(a, b).
//
// This is not to be confused with the "incomplete beta function",
// which can be computed as BetaInc(x, a, b)*Beta(a, b).
//
// If x < 0 or x > 1, or a or b is not a positive finite number,
// BetaInc returns NaN.
func BetaInc(x, a, b float64) float64 {
	return BetaIncXY(x, 1-x, a, b)
}

// BetaIncXY is like BetaInc, but also takes y = 1-x. Callers that
// can compute y directly, without rounding x near 1, keep the
// precision that computing 1-x would lose.
func BetaIncXY(x, y, a, b float64) float64 {
	// Based on Numerical Recipes in C, section 6.4. This uses the
	// continued fraction definition of I:
	//
	//  (xᵃ*(1-x)ᵇ)/(a*B(a,b)) * (1/(1+(d₁/(1+(d₂/(1+...))))))
	//
	// where B(a,b) is the beta function and
	//
	//  d_{2m+1} = -(a+m)(a+b+m)x/((a+2m)(a+2m+1))
	//  d_{2m}   = m(b-m)x/((a+2m-1)(a+2m))
	if !(0 <= x && x <= 1) || !(0 <= y && y <= 1) || !validShape(a) || !validShape(b) {
		return nan
	}
	if x == 0 {
		return 0
	} else if y == 0 {
		return 1
	}
	if a > quadSwitch && b > quadSwitch {
		return betaIncQuad(x, a, b)
	}

	// Take each logarithm from whichever of x and y is smaller.
	var lx, ly float64
	if x < 0.5 {
		lx, ly = math.Log(x), math.Log1p(-x)
	} else {
		lx, ly = math.Log1p(-y), math.Log(y)
	}

	// Compute the coefficient before the continued fraction.
	bt := math.Exp(a*lx + b*ly - Lbeta(a, b))
	if x < (a+1)/(a+b+2) {
		// Compute continued fraction directly.
		return bt * betacf(x, y, a, b) / a
	}
	// Compute continued fraction after symmetry transform.
	return 1 - bt*betacf(y, x, b, a)/b
}

func validShape(a float64) bool {
	return a > 0 && !math.IsInf(a, 1)
}

// betacf is the continued fraction component of the regularized
// incomplete beta function Iₓ(a, b), where y = 1-x. It returns NaN if
// the fraction fails to converge.
func betacf(x, y, a, b float64) float64 {
	const epsilon = 1e-15

	// The fraction converges in O(√max(a, b)) steps.
	maxIterations := 200 + int(10*math.Sqrt(math.Min(math.Max(a, b), 1e12)))

	raiseZero := func(z float64) float64 {
		if math.Abs(z) < math.SmallestNonzeroFloat64 {
			return math.SmallestNonzeroFloat64
		}
		return z
	}

	c := 1.0
	// 1 - (a+b)x/(a+1), without cancellation near x = 1.
	d := 1 / raiseZero(((a+1)*y+(1-b)*x)/(a+1))
	h := d
	for m := 1; m <= maxIterations; m++ {
		mf := float64(m)

		// Even step of the recurrence.
		numer := mf * (b - mf) * x / ((a + 2*mf - 1) * (a + 2*mf))
		d = 1 / raiseZero(1+numer*d)
		c = raiseZero(1 + numer/c)
		h *= d * c

		// Odd step of the recurrence.
		numer = -(a + mf) * (a + b + mf) * x / ((a + 2*mf) * (a + 2*mf + 1))
		d = 1 / raiseZero(1+numer*d)
		c = raiseZero(1 + numer/c)
		hfac := d * c
		h *= hfac

		if math.Abs(hfac-1) < epsilon {
			return h
		}
	}
	return nan
}

// quadSwitch is the shape parameter above which (in both a and b)
// BetaInc switches from the continued fraction to quadrature.
const quadSwitch = 3000

// Gauss-Legendre nodes and weights on [0, 1] for betaIncQuad.
var quadX, quadW = legendre01(18)

func legendre01(n int) (x, w []float64) {
	x, w = make([]float64, n), make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, 0, 1)
	return x, w
}

// betaIncQuad computes Iₓ(a, b) for large a and b by integrating the
// beta density between x and a point far enough into the tail that
// the remaining mass is negligible. See Numerical Recipes, 3rd ed.,
// section 6.4.
func betaIncQuad(x, a, b float64) float64 {
	a1, b1 := a-1, b-1
	mu := a / (a + b)
	lnmu, lnmuc := math.Log(mu), math.Log1p(-mu)
	sd := math.Sqrt(a * b / ((a + b) * (a + b) * (a + b + 1)))

	// Integrate toward whichever tail x is in.
	var xu float64
	if x > mu {
		xu = math.Min(1, math.Max(mu+10*sd, x+5*sd))
	} else {
		xu = math.Max(0, math.Min(mu-10*sd, x-5*sd))
	}

	// The integrand is scaled by the density at the mode to keep
	// the exponent small.
	sum := 0.0
	for i, y := range quadX {
		t := x + (xu-x)*y
		sum += quadW[i] * math.Exp(a1*(math.Log(t)-lnmu)+b1*(math.Log1p(-t)-lnmuc))
	}
	// Far in either tail the integral underflows to zero, so the
	// side is taken from x rather than from the sign of the result.
	ans := sum * (xu - x) * math.Exp(a1*lnmu+b1*lnmuc-Lbeta(a, b))
	if x > mu {
		return 1 - ans
	}
	return math.Max(0, -ans)
}
