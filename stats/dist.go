// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/go-statfn/statfn/elem"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// LogPDF returns the natural logarithm of PDF(x). It is
	// accurate where PDF underflows.
	LogPDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from -inf to x.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for y. That is,
	// InvCDF(CDF(x)) = x. The value of y must be in [0, 1].
	InvCDF(y float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// A Sampler draws random variates.
type Sampler interface {
	// Rand returns a random variate using r as the source of
	// randomness. If r is nil, Rand uses a new engine seeded from
	// system entropy.
	Rand(r *rand.Rand) float64
}

// Density returns d's density at x, or its logarithm if log is true.
func Density[T constraints.Float](d Dist, x T, log bool) T {
	if log {
		return T(d.LogPDF(float64(x)))
	}
	return T(d.PDF(float64(x)))
}

// PDFEach returns Density(d, xs[i], log) for each i.
func PDFEach[T constraints.Float](d Dist, xs []T, log bool) []T {
	if log {
		return elem.Map(xs, d.LogPDF)
	}
	return elem.Map(xs, d.PDF)
}

// CDFEach returns d.CDF(xs[i]) for each i.
func CDFEach[T constraints.Float](d Dist, xs []T) []T {
	return elem.Map(xs, d.CDF)
}

// InvCDFEach returns d.InvCDF(ys[i]) for each i.
func InvCDFEach[T constraints.Float](d Dist, ys []T) []T {
	return elem.Map(ys, d.InvCDF)
}
