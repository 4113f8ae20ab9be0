// Copyright (c) 2026, The PEAQ-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectrum computes the real-input DFT and squared-magnitude
// spectrum used throughout the pipeline: pack the real signal into a
// complex128 slice with zero imaginary parts, run a full complex FFT,
// and read back the real/imaginary halves.
package spectrum

import "gonum.org/v1/gonum/dsp/fourier"

// RealDFT computes squared-magnitude spectra of length n/2+1 for
// real-valued signals of length n, reusing one gonum CmplxFFT plan.
type RealDFT struct {
	n    int
	fft  *fourier.CmplxFFT
	buf  []complex128
	out  []complex128
}

// New builds a RealDFT for real signals of length n.
func New(n int) *RealDFT {
	return &RealDFT{
		n:   n,
		fft: fourier.NewCmplxFFT(n),
		buf: make([]complex128, n),
		out: make([]complex128, n),
	}
}

// SquaredMagnitude computes X2[k] = |FFT(x)[k]|^2 for k in [0, n/2],
// given a real signal x of length n: X2[0]=Re[0]^2, X2[n/2]=Re[n/2]^2,
// X2[k]=Re[k]^2+Im[k]^2 otherwise. dst must have length n/2+1.
func (r *RealDFT) SquaredMagnitude(dst, x []float64) {
	for i, v := range x {
		r.buf[i] = complex(v, 0)
	}
	coeffs := r.fft.Coefficients(r.out, r.buf)

	half := r.n / 2
	for k := 0; k <= half; k++ {
		re := real(coeffs[k])
		im := imag(coeffs[k])
		dst[k] = re*re + im*im
	}
}

// N returns the transform length this RealDFT was built for.
func (r *RealDFT) N() int { return r.n }
