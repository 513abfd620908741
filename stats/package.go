// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements Student's t and F distributions: their
// densities, cumulative distribution functions, quantile functions,
// and random variate generation.
//
// Invalid parameters are not errors. Every function of a distribution
// with invalid parameters returns NaN.
package stats // import "github.com/go-statfn/statfn/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// validDof reports whether v is a usable finite degrees of freedom.
func validDof(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
