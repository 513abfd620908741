// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elem

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Dense is a row-major matrix of floating-point values.
//
// The zero value is an empty 0×0 matrix.
type Dense[T constraints.Float] struct {
	rows, cols int
	data       []T
}

// NewDense returns a rows×cols matrix backed by data, which is used
// directly and must have length rows*cols. If data is nil, NewDense
// allocates a zeroed backing slice.
func NewDense[T constraints.Float](rows, cols int, data []T) *Dense[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("elem: negative dimension %d×%d", rows, cols))
	}
	if data == nil {
		data = make([]T, rows*cols)
	} else if len(data) != rows*cols {
		panic(ErrShape)
	}
	return &Dense[T]{rows, cols, data}
}

// Dims returns the number of rows and columns of m.
func (m *Dense[T]) Dims() (r, c int) {
	return m.rows, m.cols
}

// At returns the element at row i, column j, converted to float64.
func (m *Dense[T]) At(i, j int) float64 {
	return float64(m.data[m.index(i, j)])
}

// Set sets the element at row i, column j to v.
func (m *Dense[T]) Set(i, j int, v float64) {
	m.data[m.index(i, j)] = T(v)
}

// Raw returns the row-major backing slice of m.
func (m *Dense[T]) Raw() []T {
	return m.data
}

func (m *Dense[T]) index(i, j int) int {
	if uint(i) >= uint(m.rows) || uint(j) >= uint(m.cols) {
		panic(fmt.Sprintf("elem: index (%d, %d) out of range for %d×%d matrix", i, j, m.rows, m.cols))
	}
	return i*m.cols + j
}

// MapDense returns a new matrix with the dimensions of m holding f
// applied to each element of m.
func MapDense[T constraints.Float](m *Dense[T], f func(float64) float64) *Dense[T] {
	return &Dense[T]{m.rows, m.cols, Map(m.data, f)}
}
