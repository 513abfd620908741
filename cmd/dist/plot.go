// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/go-statfn/statfn/elem"
	"github.com/go-statfn/statfn/stats"
	"gonum.org/v1/gonum/floats"
)

const (
	// plotSamples is the number of points on the X axis to
	// sample the density at.
	plotSamples = 500

	// plotWidth is the width of the plot area in dots.
	plotWidth = 70 * 2
	// plotHeight is the height of the plot area in dots.
	plotHeight = 3 * 4

	plotXMargin = 1
	plotYMargin = 1
)

// fprintPDF prints a Unicode Braille plot of d's density over
// d.Bounds() to w, followed by an X axis.
func fprintPDF(w io.Writer, d stats.Dist) error {
	lo, hi := d.Bounds()
	xs := floats.Span(make([]float64, plotSamples), lo, hi)
	ys := elem.Map(xs, d.PDF)
	xscale := newLinear(lo, hi, plotXMargin, plotWidth-plotXMargin)
	if err := fprintFn(w, xs, ys, xscale); err != nil {
		return err
	}
	return fprintAxis(w, xscale)
}

// A linear maps [x1, x2] onto the dots [y1, y2), clamping.
type linear struct {
	x1, x2 float64
	y1, y2 float64
}

func newLinear(x1, x2 float64, y1, y2 int) linear {
	return linear{x1, x2, float64(y1), float64(y2) - 1e-10}
}

func (s linear) Map(x float64) int {
	t := (x - s.x1) / (s.x2 - s.x1)
	if !(t > 0) {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return int(s.y1 + t*(s.y2-s.y1))
}

// ticks returns round-numbered positions in [lo, hi], about n of them.
func ticks(lo, hi float64, n int) []float64 {
	if !(hi > lo) {
		return nil
	}
	span := (hi - lo) / float64(n)
	step := math.Pow(10, math.Floor(math.Log10(span)))
	for _, m := range []float64{1, 2, 5, 10} {
		if step*m >= span {
			step *= m
			break
		}
	}
	var ts []float64
	for k := int(math.Ceil(lo / step)); float64(k)*step <= hi; k++ {
		ts = append(ts, float64(k)*step)
	}
	return ts
}

func fprintFn(w io.Writer, xs, ys []float64, xscale linear) error {
	yl, yh := math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		if math.IsInf(y, 0) || math.IsNaN(y) {
			continue
		}
		yl, yh = math.Min(yl, y), math.Max(yh, y)
	}
	if yl > yh {
		return nil
	}
	if yl > 0 && yl-(yh-yl)*0.1 <= 0 {
		yl = 0
	}
	yscale := newLinear(yh, yl, plotYMargin, plotHeight-plotYMargin)

	// Render the function to an image. Points where the density is
	// infinite, such as the origin of some F distributions, are
	// left out.
	img := make([][]bool, plotWidth+2)
	for i := range img {
		img[i] = make([]bool, plotHeight)
	}
	for i, x := range xs {
		if math.IsInf(ys[i], 0) || math.IsNaN(ys[i]) {
			continue
		}
		img[xscale.Map(x)][yscale.Map(ys[i])] = true
	}

	// Render Y axis.
	ypos := plotWidth
	for y := plotYMargin; y < plotHeight-plotYMargin; y++ {
		img[ypos][y] = true
	}
	img[ypos+1][plotYMargin] = true
	img[ypos+1][len(img[0])-1-plotYMargin] = true

	trail := make([]string, (plotHeight+3)/4)
	trail[0] = fmt.Sprintf(" %.3g", yh)
	trail[len(trail)-1] = fmt.Sprintf(" %.3g", yl)

	return fprintImage(w, img, trail)
}

func fprintAxis(w io.Writer, xscale linear) error {
	img := make([][]bool, plotWidth)
	for i := range img {
		if i < plotXMargin || i >= plotWidth-plotXMargin {
			img[i] = make([]bool, 2)
		} else {
			img[i] = []bool{true, false}
		}
	}
	major := ticks(xscale.x1, xscale.x2, 3)
	labels := make([]string, len(major))
	lpos := make([]int, len(major))
	for i, tick := range major {
		x := xscale.Map(tick)
		img[x][1] = true
		labels[i] = fmt.Sprintf("%.6g", tick)
		width := len(labels[i])
		lpos[i] = min(max(x/2-width/2, 0), (plotWidth+1)/2-width)
	}
	if err := fprintImage(w, img, []string{""}); err != nil {
		return err
	}
	curpos := 0
	for i, label := range labels {
		gap := lpos[i] - curpos
		if i > 0 {
			gap = max(gap, 1)
		}
		if _, err := fmt.Fprintf(w, "%*s%s", gap, "", label); err != nil {
			return err
		}
		curpos += gap + len(label)
	}
	_, err := fmt.Fprintf(w, "\n")
	return err
}

func fprintImage(w io.Writer, img [][]bool, trail []string) error {
	var x, y int
	bit := func(ox, oy int) byte {
		if x+ox < len(img) && y+oy < len(img[x+ox]) && img[x+ox][y+oy] {
			return 1
		}
		return 0
	}

	maxTrail := 0
	for _, t := range trail {
		maxTrail = max(maxTrail, len(t))
	}
	buf := make([]byte, 3*(len(img)+1)/2+maxTrail+1)
	for y = 0; y < len(img[0]); y += 4 {
		bufpos := 0
		for x = 0; x < len(img); x += 2 {
			// Each 2x4 cell of dots is one Braille character,
			// with bits laid out as
			//  0 3
			//  1 4
			//  2 5
			//  6 7
			cell := bit(0, 0)<<0 | bit(1, 0)<<3
			cell |= bit(0, 1)<<1 | bit(1, 1)<<4
			cell |= bit(0, 2)<<2 | bit(1, 2)<<5
			cell |= bit(0, 3)<<6 | bit(1, 3)<<7
			bufpos += utf8.EncodeRune(buf[bufpos:], 0x2800+rune(cell))
		}
		bufpos += copy(buf[bufpos:], trail[y/4])
		buf[bufpos] = '\n'
		if _, err := w.Write(buf[:bufpos+1]); err != nil {
			return err
		}
	}
	return nil
}
