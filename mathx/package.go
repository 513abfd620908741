// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions not provided by the
// standard library.
//
// Functions in this package report domain errors by returning NaN
// rather than panicking, so they can be used directly in elementwise
// evaluation over large inputs.
package mathx // import "github.com/go-statfn/statfn/mathx"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
