// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// log(sqrt(2 * pi))
const lnSqrt2Pi = 0.91893853320467274178032973640561763986139747363778341281715154

// Lgamma returns the natural logarithm of |Γ(x)|.
func Lgamma(x float64) float64 {
	y, _ := math.Lgamma(x)
	return y
}

// lgammaCorr returns the remainder of Stirling's series for log Γ(x),
//
//	log Γ(x) - ((x-½)log x - x + log √(2π)),
//
// for x >= 10.
func lgammaCorr(x float64) float64 {
	// 1/(12x) - 1/(360x³) + 1/(1260x⁵) - 1/(1680x⁷) + 1/(1188x⁹).
	// The next term is below 2e-14 at x = 10.
	const (
		c0 = 1.0 / 12
		c1 = 1.0 / 360
		c2 = 1.0 / 1260
		c3 = 1.0 / 1680
		c4 = 1.0 / 1188
	)
	x2 := 1 / (x * x)
	return (c0 - x2*(c1-x2*(c2-x2*(c3-x2*c4)))) / x
}
