// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elem applies scalar functions elementwise over slices and
// matrix containers.
//
// Every function here evaluates f in float64 and converts the result
// back to the element type, so float32 containers get float32 results
// computed at float64 precision.
//
// Destination and source may be the same slice, but must not
// otherwise overlap.
package elem // import "github.com/go-statfn/statfn/elem"

import (
	"runtime"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// Apply sets dst[i] = f(src[i]) for each i < len(src). dst must be at
// least as long as src.
func Apply[T constraints.Float](dst, src []T, f func(float64) float64) {
	for i, x := range src {
		dst[i] = T(f(float64(x)))
	}
}

// Map returns a new slice holding f(src[i]) for each i.
func Map[T constraints.Float](src []T, f func(float64) float64) []T {
	out := make([]T, len(src))
	Apply(out, src, f)
	return out
}

// minChunk is the smallest number of elements MapConcurrent hands to
// a single goroutine.
const minChunk = 1024

// MapConcurrent is like Map, but evaluates f over contiguous chunks of
// src using up to workers goroutines. If workers <= 0, it uses
// GOMAXPROCS. f must be safe for concurrent use.
func MapConcurrent[T constraints.Float](src []T, f func(float64) float64, workers int) []T {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if n := (len(src) + minChunk - 1) / minChunk; workers > n {
		workers = n
	}
	if workers <= 1 {
		return Map(src, f)
	}

	out := make([]T, len(src))
	chunk := (len(src) + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < len(src); lo += chunk {
		hi := min(lo+chunk, len(src))
		g.Go(func() error {
			Apply(out[lo:hi], src[lo:hi], f)
			return nil
		})
	}
	g.Wait()
	return out
}
