package movs

import (
	"math"

	"github.com/kmj1117/peaq-go/config"
	"github.com/kmj1117/peaq-go/spectrum"
)

// EHSRejected is the sentinel EHS value for a frame with insufficient
// energy to evaluate the error-harmonic structure. Aggregation
// filters it out.
const EHSRejected = -1.0

// EHS computes the error-harmonic-structure MOV: it detects
// periodicity in the log-spectral difference between the test and
// reference signal, a signature of coding artifacts like pre-echo or
// block-boundary distortion that plain NMR/loudness MOVs miss.
type EHS struct {
	nl  int
	m   int
	hw  []float64
	dft *spectrum.RealDFT
}

// NewEHS builds the EHS extractor for cfg: NL is the largest power of
// two not exceeding NF*Fmax/Fs (256 at the default 48kHz/2048 config).
func NewEHS(cfg config.Config) *EHS {
	nl := 1
	limit := float64(cfg.NF) * 9000.0 / float64(cfg.Fs)
	for float64(nl*2) <= limit {
		nl *= 2
	}
	m := nl

	hw := make([]float64, m)
	scale := (1.0 / float64(m)) * math.Sqrt(8.0/3.0)
	for n := 0; n < m; n++ {
		hw[n] = scale * 0.5 * (1 - math.Cos(2*math.Pi*float64(n)/float64(m-1)))
	}

	return &EHS{nl: nl, m: m, hw: hw, dft: spectrum.New(nl)}
}

// Compute returns the EHS value for one frame, or EHSRejected if
// both signals' trailing-half energy falls below the 8000 threshold.
// xR, xT are the (unwindowed) reference/test frames of length NF;
// x2R, x2T are their squared-magnitude spectra of length NF/2+1.
func (e *EHS) Compute(xR, xT, x2R, x2T []float64) float64 {
	nf := len(xR)
	nadv := nf / 2

	enRef, enTest := 0.0, 0.0
	for n := nadv; n < nf; n++ {
		enRef += xR[n] * xR[n]
		enTest += xT[n] * xT[n]
	}
	if enRef < 8000 && enTest < 8000 {
		return EHSRejected
	}

	d := make([]float64, len(x2R))
	for k := range d {
		d[k] = math.Log(x2T[k] / x2R[k])
	}

	nl, m := e.nl, e.m
	c := make([]float64, nl)
	for i := 0; i < nl; i++ {
		s := 0.0
		for j := 0; j < m; j++ {
			s += d[j] * d[i+j]
		}
		c[i] = s
	}

	cn := make([]float64, nl)
	cn[0] = 1
	s0 := c[0]
	sj := s0
	for i := 1; i < nl; i++ {
		sj += d[i+m-1]*d[i+m-1] - d[i-1]*d[i-1]
		dd := s0 * sj
		if dd <= 0 {
			cn[i] = 1
		} else {
			cn[i] = c[i] / math.Sqrt(dd)
		}
	}

	cnm := 0.0
	for i := 0; i < nl; i++ {
		cnm += cn[i]
	}
	cnm /= float64(nl)

	cw := make([]float64, m)
	for n := 0; n < m; n++ {
		cw[n] = e.hw[n] * (cn[n] - cnm)
	}

	c2 := make([]float64, nl/2+1)
	e.dft.SquaredMagnitude(c2, cw)

	return findPeak(c2, nl/2+1)
}

// findPeak performs the EHS peak search: the largest value in
// c2[1:n] that both exceeds its immediate predecessor and the running
// maximum of qualifying peaks. cprev tracks the previous sample on
// every iteration, so a plateau or a later larger rise is never
// missed.
func findPeak(c2 []float64, n int) float64 {
	cmax := 0.0
	cprev := c2[0]
	for i := 1; i < n; i++ {
		if c2[i] > cprev && c2[i] > cmax {
			cmax = c2[i]
		}
		cprev = c2[i]
	}
	return cmax
}
