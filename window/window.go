// Copyright (c) 2026, The PEAQ-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window precomputes the scaled Hann analysis window: the
// loudness-calibration gain GL folded into a standard Hann window of
// length NF.
package window

import (
	"math"

	"github.com/kmj1117/peaq-go/config"
)

// Window is a precomputed, loudness-scaled Hann window of length
// cfg.NF. Built once per Config and reused every frame.
type Window struct {
	GL float64
	Hw []float64
}

// New computes the Hann window scaled so that a full-scale sinusoid
// at cfg.FcL produces SPL cfg.Lp.
func New(cfg config.Config) *Window {
	nf := cfg.NF
	w := float64(nf - 1)
	gp := peakFactor(cfg.FcL/float64(cfg.Fs), nf, w)
	gl := math.Pow(10, cfg.Lp/20) / (gp * cfg.Amax / 4 * w)

	hw := make([]float64, nf)
	for n := 0; n < nf; n++ {
		hw[n] = gl * 0.5 * (1 - math.Cos(2*math.Pi*float64(n)/w))
	}
	return &Window{GL: gl, Hw: hw}
}

// peakFactor computes gp, the ratio of the largest DFT bin magnitude
// to the continuous-frequency peak of a Hann-windowed sinusoid whose
// normalized frequency fcN falls between two bins.
func peakFactor(fcN float64, nf int, w float64) float64 {
	df := 1.0 / float64(nf)
	k := math.Floor(fcN / df)
	dfN := math.Min((k+1)*df-fcN, fcN-k*df)
	dfW := dfN * w
	return math.Sin(math.Pi*dfW) / (math.Pi * dfW * (1 - dfW*dfW))
}

// Apply multiplies src (length len(w.Hw)) by the window in place into
// dst, zero-padding src if it is shorter than the window.
func (w *Window) Apply(dst, src []float64) {
	n := len(w.Hw)
	for i := 0; i < n; i++ {
		if i < len(src) {
			dst[i] = w.Hw[i] * src[i]
		} else {
			dst[i] = 0
		}
	}
}
