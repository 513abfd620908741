// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// InvBetaInc returns the inverse of the regularized incomplete beta
// function in x. That is, it returns x such that BetaInc(x, a, b) == p.
//
// If p < 0 or p > 1, or a or b is not a positive finite number,
// InvBetaInc returns NaN.
func InvBetaInc(p, a, b float64) float64 {
	if !(0 <= p && p <= 1) || !validShape(a) || !validShape(b) {
		return nan
	}
	if p == 0 {
		return 0
	} else if p == 1 {
		return 1
	}

	// Based on Numerical Recipes, 3rd ed., section 6.4: an initial
	// approximation refined with Halley's method.
	lb := Lbeta(a, b)
	x := invBetaIncGuess(p, a, b, lb)

	const (
		maxIterations = 64
		epsilon       = 1e-12
	)
	a1, b1 := a-1, b-1
	for j := 0; j < maxIterations; j++ {
		if x == 0 || x == 1 {
			return x
		}
		err := BetaInc(x, a, b) - p
		// Beta density at x.
		pdf := math.Exp(a1*math.Log(x) + b1*math.Log1p(-x) - lb)
		if pdf == 0 || math.IsNaN(err) {
			break
		}
		u := err / pdf
		t := u / (1 - 0.5*math.Min(1, u*(a1/x-b1/(1-x))))
		x -= t
		if x <= 0 {
			x = 0.5 * (x + t)
		}
		if x >= 1 {
			x = 0.5 * (x + t + 1)
		}
		if math.Abs(t) < epsilon*x && j > 0 {
			break
		}
	}
	return x
}

// invBetaIncGuess returns a starting point for InvBetaInc. lb is
// Lbeta(a, b).
func invBetaIncGuess(p, a, b, lb float64) float64 {
	var x float64
	if a >= 1 && b >= 1 {
		// Normal approximation (Abramowitz and Stegun 26.5.22).
		pp := p
		if p >= 0.5 {
			pp = 1 - p
		}
		t := math.Sqrt(-2 * math.Log(pp))
		z := (2.30753+t*0.27061)/(1+t*(0.99229+t*0.04481)) - t
		if p < 0.5 {
			z = -z
		}
		al := (z*z - 3) / 6
		h := 2 / (1/(2*a-1) + 1/(2*b-1))
		w := z*math.Sqrt(al+h)/h - (1/(2*b-1)-1/(2*a-1))*(al+5.0/6-2/(3*h))
		x = a / (a + b*math.Exp(2*w))
	} else {
		lna, lnb := math.Log(a/(a+b)), math.Log(b/(a+b))
		t := math.Exp(a*lna) / a
		u := math.Exp(b*lnb) / b
		w := t + u
		if p < t/w {
			x = math.Pow(a*w*p, 1/a)
		} else {
			x = 1 - math.Pow(b*w*(1-p), 1/b)
		}
	}

	// Far in either tail the approximations above can be poor
	// enough that Halley's method wanders off. Compare them against
	// the leading terms of the tail expansions,
	//
	//	Iₓ(a, b) ≈ xᵃ/(a B(a,b))            as x → 0
	//	Iₓ(a, b) ≈ 1 - (1-x)ᵇ/(b B(a,b))    as x → 1
	//
	// and keep whichever lands closest to p.
	cands := [...]float64{
		x,
		math.Exp((math.Log(p) + math.Log(a) + lb) / a),
		-math.Expm1((math.Log1p(-p) + math.Log(b) + lb) / b),
	}
	best, bestDist := x, inf
	for _, c := range cands {
		if !(0 < c && c < 1) {
			continue
		}
		v := BetaInc(c, a, b)
		var dist float64
		if p < 0.5 {
			dist = math.Abs(math.Log(v / p))
		} else {
			dist = math.Abs(math.Log((1 - v) / (1 - p)))
		}
		if dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best
}
