// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elem

import "errors"

// ErrShape is the panic value of MapMatrix when the destination and
// source dimensions differ.
var ErrShape = errors.New("elem: dimension mismatch")

// A Matrix is a two-dimensional container of float64 values.
//
// gonum's mat.Matrix satisfies this interface.
type Matrix interface {
	// Dims returns the number of rows and columns.
	Dims() (r, c int)

	// At returns the element at row i, column j.
	At(i, j int) float64
}

// A Mutable is a Matrix whose elements can be set.
//
// gonum's mat.Mutable satisfies this interface.
type Mutable interface {
	Matrix

	// Set sets the element at row i, column j to v.
	Set(i, j int, v float64)
}

// MapMatrix sets each element of dst to f applied to the
// corresponding element of src. dst and src may be the same matrix.
//
// If dst and src have different dimensions, MapMatrix panics with
// ErrShape.
func MapMatrix(dst Mutable, src Matrix, f func(float64) float64) {
	r, c := src.Dims()
	if dr, dc := dst.Dims(); dr != r || dc != c {
		panic(ErrShape)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(i, j, f(src.At(i, j)))
		}
	}
}
