// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gonummat adapts elementwise evaluation and sampling to
// gonum matrices and vectors.
package gonummat // import "github.com/go-statfn/statfn/elem/gonummat"

import (
	"fmt"

	"github.com/go-statfn/statfn/elem"
	"github.com/go-statfn/statfn/stats"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Map returns a new matrix with the dimensions of m holding f applied
// to each element of m. If m has no elements, Map returns an empty
// matrix.
func Map(m mat.Matrix, f func(float64) float64) *mat.Dense {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	if rm, ok := m.(mat.RawMatrixer); ok {
		raw := rm.RawMatrix()
		data := make([]float64, r*c)
		for i := 0; i < r; i++ {
			row := raw.Data[i*raw.Stride : i*raw.Stride+c]
			elem.Apply(data[i*c:(i+1)*c], row, f)
		}
		return mat.NewDense(r, c, data)
	}
	out := mat.NewDense(r, c, nil)
	elem.MapMatrix(out, m, f)
	return out
}

// MapVec returns a new vector holding f applied to each element of v.
func MapVec(v mat.Vector, f func(float64) float64) *mat.VecDense {
	n := v.Len()
	if n == 0 {
		return &mat.VecDense{}
	}
	data := make([]float64, n)
	if rv, ok := v.(mat.RawVectorer); ok {
		raw := rv.RawVector()
		for i := range data {
			data[i] = f(raw.Data[i*raw.Inc])
		}
	} else {
		for i := range data {
			data[i] = f(v.AtVec(i))
		}
	}
	return mat.NewVecDense(n, data)
}

// Sample returns a rows×cols matrix of variates drawn from s using r.
// Elements are filled in row-major order, so the result matches
// stats.SampleInto over a slice of rows*cols elements from the same
// engine state. If r is nil, Sample seeds a new engine from entropy.
func Sample(s stats.Sampler, r *rand.Rand, rows, cols int) *mat.Dense {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("gonummat: negative dimension %d×%d", rows, cols))
	}
	if rows == 0 || cols == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, rows*cols)
	stats.SampleInto(s, r, data)
	return mat.NewDense(rows, cols, data)
}
