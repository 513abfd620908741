// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	randv2 "math/rand/v2"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

// NewRand returns a random engine seeded with seed. Engines with the
// same seed produce the same sequence of variates.
//
// A *rand.Rand is not safe for concurrent use.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// newEntropyRand returns an engine seeded from system entropy.
func newEntropyRand() *rand.Rand {
	return NewRand(randv2.Uint64())
}

func engine(r *rand.Rand) *rand.Rand {
	if r == nil {
		return newEntropyRand()
	}
	return r
}

// Sample draws one variate from s. If r is nil, Sample uses a new
// engine seeded from system entropy.
func Sample[T constraints.Float](s Sampler, r *rand.Rand) T {
	return T(s.Rand(engine(r)))
}

// SampleInto fills out with variates drawn from s, in order. If r is
// nil, SampleInto seeds one new engine from system entropy for the
// whole call.
func SampleInto[T constraints.Float](s Sampler, r *rand.Rand, out []T) {
	if len(out) == 0 {
		return
	}
	r = engine(r)
	for i := range out {
		out[i] = T(s.Rand(r))
	}
}

// randChiSquared returns a chi-squared variate with k degrees of
// freedom.
func randChiSquared(r *rand.Rand, k float64) float64 {
	return 2 * randGamma(r, k/2)
}

// randGamma returns a variate from the gamma distribution with shape
// alpha and unit scale. alpha must be positive.
func randGamma(r *rand.Rand, alpha float64) float64 {
	// The 0.2 threshold is from
	// https://www4.stat.ncsu.edu/~rmartin/Codes/rgamss.R,
	// described in detail in https://arxiv.org/abs/1302.1884.
	const smallAlphaThresh = 0.2

	switch {
	case alpha == 1:
		return r.ExpFloat64()
	case alpha < smallAlphaThresh:
		// Liu, Chuanhai, Martin, Ryan and Syring, Nick. "Simulating
		// from a gamma distribution with small shape parameter",
		// worked in log space as much as possible.
		lambda := 1/alpha - 1
		lr := -math.Log1p(1 / lambda / math.E)
		for {
			e := r.ExpFloat64()
			var z float64
			if e >= -lr {
				z = e + lr
			} else {
				z = -r.ExpFloat64() / lambda
			}
			eza := math.Exp(-z / alpha)
			lh := -z - eza
			var lEta float64
			if z >= 0 {
				lEta = -z
			} else {
				lEta = -1 + lambda*z
			}
			if lh-lEta > -r.ExpFloat64() {
				return eza
			}
		}
	}

	// Marsaglia, George, and Wai Wan Tsang. "A simple method for
	// generating gamma variables." ACM Transactions on Mathematical
	// Software (TOMS) 26.3 (2000): 363-372. For alpha < 1, draw
	// Gamma(alpha+1) and scale by U^(1/alpha).
	d := alpha - 1.0/3
	m := 1.0
	if alpha < 1 {
		d += 1.0
		m = math.Pow(r.Float64(), 1/alpha)
	}
	c := 1 / (3 * math.Sqrt(d))
	for {
		x := r.NormFloat64()
		v := 1 + x*c
		if v <= 0.0 {
			continue
		}
		v = v * v * v
		u := r.Float64()
		if u < 1.0-0.0331*(x*x)*(x*x) {
			return m * d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return m * d * v
		}
	}
}
