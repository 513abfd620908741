// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mathext"
)

var shapes = []float64{0.1, 0.5, 1, 2, 3.5, 10, 25, 100, 1000}

func TestLbeta(t *testing.T) {
	for _, a := range shapes {
		for _, b := range shapes {
			want := mathext.Lbeta(a, b)
			got := Lbeta(a, b)
			if !scalar.EqualWithinAbsOrRel(got, want, 1e-12, 1e-9) {
				t.Errorf("Lbeta(%v, %v) = %v, want %v", a, b, got, want)
			}
		}
	}
	if e, g := math.Log(0.5), Lbeta(1, 2); !scalar.EqualWithinAbs(e, g, 1e-15) {
		t.Errorf("Lbeta(1, 2) = %v, want %v", g, e)
	}
	for _, ab := range [][2]float64{{0, 1}, {1, -1}, {nan, 1}, {1, nan}} {
		if g := Lbeta(ab[0], ab[1]); !math.IsNaN(g) {
			t.Errorf("Lbeta(%v, %v) = %v, want NaN", ab[0], ab[1], g)
		}
	}
	if g := Beta(2, 3); !scalar.EqualWithinAbs(g, 1.0/12, 1e-15) {
		t.Errorf("Beta(2, 3) = %v, want %v", g, 1.0/12)
	}
}

func TestBetaInc(t *testing.T) {
	// Exact values.
	for _, tc := range []struct{ x, a, b, want float64 }{
		{0.3, 2, 3, 0.3483},
		{0.5, 0.5, 0.5, 0.5},
		{0.25, 1, 1, 0.25},
		{0, 2, 3, 0},
		{1, 2, 3, 1},
	} {
		if got := BetaInc(tc.x, tc.a, tc.b); !scalar.EqualWithinAbs(got, tc.want, 1e-13) {
			t.Errorf("BetaInc(%v, %v, %v) = %v, want %v", tc.x, tc.a, tc.b, got, tc.want)
		}
	}

	for _, a := range shapes {
		for _, b := range shapes {
			for _, x := range []float64{1e-6, 0.01, 0.1, 0.3, 0.5, 0.7, 0.9, 0.99} {
				want := mathext.RegIncBeta(a, b, x)
				got := BetaInc(x, a, b)
				if !scalar.EqualWithinAbsOrRel(got, want, 1e-13, 1e-8) {
					t.Errorf("BetaInc(%v, %v, %v) = %v, want %v", x, a, b, got, want)
				}
			}
		}
	}
}

func TestBetaIncLarge(t *testing.T) {
	// Both shapes above quadSwitch exercise the quadrature path.
	for _, ab := range [][2]float64{{4000, 5000}, {1e4, 3500}, {1e5, 1e5}} {
		a, b := ab[0], ab[1]
		mu := a / (a + b)
		sd := math.Sqrt(a * b / ((a + b) * (a + b) * (a + b + 1)))
		for _, k := range []float64{-6, -3, -1, 0, 0.5, 2, 4} {
			x := mu + k*sd
			want := mathext.RegIncBeta(a, b, x)
			got := BetaInc(x, a, b)
			if !scalar.EqualWithinAbsOrRel(got, want, 1e-9, 1e-7) {
				t.Errorf("BetaInc(%v, %v, %v) = %v, want %v", x, a, b, got, want)
			}
		}
	}

	// With b == 1, Iₓ(a, 1) == xᵃ. One huge shape stays on the
	// continued fraction.
	for _, a := range []float64{1e4, 1e6, 1e9} {
		x := 1 - 1/a
		want := math.Pow(x, a)
		if got := BetaInc(x, a, 1); !scalar.EqualWithinRel(got, want, 1e-9) {
			t.Errorf("BetaInc(%v, %v, 1) = %v, want %v", x, a, got, want)
		}
		if got := BetaInc(1-x, 1, a); !scalar.EqualWithinRel(got, 1-want, 1e-9) {
			t.Errorf("BetaInc(%v, 1, %v) = %v, want %v", 1-x, a, got, 1-want)
		}
	}
}

func TestBetaIncLargeTails(t *testing.T) {
	// Far from the mean the quadrature underflows. The result must
	// still saturate to the correct side.
	for _, ab := range [][2]float64{{5000, 4000}, {4000, 5000}, {1e4, 3500}, {5000, 5000}} {
		a, b := ab[0], ab[1]
		mu := a / (a + b)
		sd := math.Sqrt(a * b / ((a + b) * (a + b) * (a + b + 1)))
		prev := 0.0
		for k := -50.0; k <= 50; k++ {
			x := mu + k*sd
			got := BetaInc(x, a, b)
			if got < prev {
				t.Errorf("BetaInc(%v, %v, %v) = %v, less than %v at %v sd", x, a, b, got, prev, k-1)
			}
			prev = got
			if k >= 10 && got != 1 && !scalar.EqualWithinAbs(got, 1, 1e-15) {
				t.Errorf("BetaInc(%v, %v, %v) = %v, want 1", x, a, b, got)
			}
			if k <= -10 && (got > 1e-15 || math.Signbit(got)) {
				t.Errorf("BetaInc(%v, %v, %v) = %v, want +0", x, a, b, got)
			}
		}
		for _, x := range []float64{0.01, 0.99} {
			want := 0.0
			if x > mu {
				want = 1
			}
			if got := BetaInc(x, a, b); got != want || math.Signbit(got) {
				t.Errorf("BetaInc(%v, %v, %v) = %v, want %v", x, a, b, got, want)
			}
		}
	}
	if got := BetaInc(0.9, 5000, 4000); got != 1 {
		t.Errorf("BetaInc(0.9, 5000, 4000) = %v, want 1", got)
	}
}

func TestBetaIncXY(t *testing.T) {
	// y carries precision that 1-x rounds away. For huge a,
	// I_w(½, a) tends to erf(√(a w)).
	const a, b = 5e11, 0.5
	for _, w := range []float64{1e-13, 1e-12, 2e-12} {
		want := math.Erfc(math.Sqrt(a * w))
		got := BetaIncXY(1-w, w, a, b)
		if !scalar.EqualWithinAbsOrRel(got, want, 1e-14, 1e-8) {
			t.Errorf("BetaIncXY(1-%v, %v, %v, %v) = %v, want %v", w, w, a, b, got, want)
		}
	}
	for _, x := range []float64{0, 0.2, 0.5, 0.8, 1} {
		if g, w := BetaIncXY(x, 1-x, 2, 3), BetaInc(x, 2, 3); g != w {
			t.Errorf("BetaIncXY(%v, %v, 2, 3) = %v, want %v", x, 1-x, g, w)
		}
	}
}

func TestBetaIncDomain(t *testing.T) {
	for _, tc := range [][3]float64{
		{-0.1, 1, 1},
		{1.1, 1, 1},
		{nan, 1, 1},
		{0.5, 0, 1},
		{0.5, 1, -2},
		{0.5, inf, 1},
		{0.5, 1, nan},
	} {
		if g := BetaInc(tc[0], tc[1], tc[2]); !math.IsNaN(g) {
			t.Errorf("BetaInc(%v, %v, %v) = %v, want NaN", tc[0], tc[1], tc[2], g)
		}
		if g := InvBetaInc(tc[0], tc[1], tc[2]); !math.IsNaN(g) {
			t.Errorf("InvBetaInc(%v, %v, %v) = %v, want NaN", tc[0], tc[1], tc[2], g)
		}
	}
}

func TestInvBetaInc(t *testing.T) {
	probs := []float64{1e-10, 1e-4, 0.01, 0.2, 0.5, 0.8, 0.99}
	for _, a := range shapes[1:] {
		for _, b := range shapes[1:] {
			for _, p := range probs {
				x := InvBetaInc(p, a, b)
				if !(0 <= x && x <= 1) {
					t.Errorf("InvBetaInc(%v, %v, %v) = %v, want value in [0, 1]", p, a, b, x)
					continue
				}
				if got := BetaInc(x, a, b); !scalar.EqualWithinAbsOrRel(got, p, 1e-13, 1e-8) {
					t.Errorf("BetaInc(InvBetaInc(%v, %v, %v)) = %v", p, a, b, got)
				}
			}
		}
	}

	// Cross-check moderate shapes against gonum.
	for _, a := range []float64{0.5, 1, 2, 3.5, 10, 25} {
		for _, b := range []float64{0.5, 1, 2, 3.5, 10, 25} {
			for _, p := range probs[1:] {
				t.Run(fmt.Sprintf("p=%v,a=%v,b=%v", p, a, b), func(t *testing.T) {
					want := mathext.InvRegIncBeta(a, b, p)
					if got := InvBetaInc(p, a, b); !scalar.EqualWithinAbsOrRel(got, want, 1e-12, 1e-6) {
						t.Errorf("got %v, want %v", got, want)
					}
				})
			}
		}
	}

	if g := InvBetaInc(0, 2, 3); g != 0 {
		t.Errorf("InvBetaInc(0, 2, 3) = %v, want 0", g)
	}
	if g := InvBetaInc(1, 2, 3); g != 1 {
		t.Errorf("InvBetaInc(1, 2, 3) = %v, want 1", g)
	}
}

func TestInvBetaIncExtremeTail(t *testing.T) {
	// The normal-approximation guess alone lands far from the root
	// here.
	const p = 2.138516786133969e-74
	x := InvBetaInc(p, 50, 1.5)
	if g := BetaInc(x, 50, 1.5); !scalar.EqualWithinRel(g, p, 1e-8) {
		t.Errorf("BetaInc(InvBetaInc(%v)) = %v", p, g)
	}
}

func TestLgammaCorr(t *testing.T) {
	for _, x := range []float64{10, 12.5, 20, 50} {
		want := Lgamma(x) - ((x-0.5)*math.Log(x) - x + lnSqrt2Pi)
		if got := lgammaCorr(x); !scalar.EqualWithinAbs(got, want, 1e-11) {
			t.Errorf("lgammaCorr(%v) = %v, want %v", x, got, want)
		}
	}
}
