// Copyright (c) 2026, The PEAQ-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aggregate reduces the per-frame MOV sequences collected by
// the orchestrator into the fixed-length Basic feature vector:
// positive-averages, windowed/weighted averages, RMS, and thresholded
// counts.
package aggregate

import (
	"math"

	"github.com/kmj1117/peaq-go/config"
)

// Frames holds the per-frame MOV sequences accumulated over a
// (reference, test) signal pair, each of length Np.
type Frames struct {
	BWRef, BWTest           []float64
	NMRavg, NMRmax          []float64
	MDiffMt1B, MDiffMt2B    []float64
	MDiffWt                 []float64
	NLoudNL                 []float64
	PDp, PDq                []float64
	EHS                     []float64
	LoudNRef, LoudNTest     []float64
}

// Result holds the Basic-version MOV aggregates, in the order
// nnet.Forward expects them.
type Result struct {
	AvgBWRef, AvgBWTest   float64
	TotalNMRB             float64
	WinModDiff1B          float64
	ADBB                  float64
	EHSB                  float64
	AvgModDiff1B          float64
	AvgModDiff2B          float64
	RmsNoiseLoudB         float64
	MFPDB                 float64
	RelDistFramesB        float64
}

// Vector returns the 11 MOVs in the fixed feature-vector order.
func (r Result) Vector() []float64 {
	return []float64{
		r.AvgBWRef, r.AvgBWTest, r.TotalNMRB, r.WinModDiff1B, r.ADBB,
		r.EHSB, r.AvgModDiff1B, r.AvgModDiff2B, r.RmsNoiseLoudB,
		r.MFPDB, r.RelDistFramesB,
	}
}

// Aggregate reduces f into a Result.
func Aggregate(cfg config.Config, f Frames, np int) Result {
	var r Result
	r.AvgBWRef = meanNonNegative(f.BWRef)
	r.AvgBWTest = meanNonNegative(f.BWTest)
	r.TotalNMRB, r.RelDistFramesB = avgNMR(f.NMRavg, f.NMRmax)

	fss := cfg.Fss()

	// Delay used for the modulation-difference aggregates: 0.5s,
	// converted to frames.
	ndel := int(math.Ceil(0.5 * fss))
	if ndel < 0 {
		ndel = 0
	}
	if ndel > np {
		ndel = np
	}
	r.WinModDiff1B, r.AvgModDiff1B, r.AvgModDiff2B = avgModDiff(fss, ndel, f.MDiffMt1B, f.MDiffMt2B, f.MDiffWt)

	r.ADBB, r.MFPDB = avgPD(f.PDp, f.PDq)

	// Delay used for the noise-loudness aggregate: wait for both
	// channels to exceed the 0.1 loudness threshold, plus 50ms.
	n50ms := int(math.Ceil(0.05 * fss))
	nloud := loudnessThreshold(f.LoudNRef, f.LoudNTest, np)
	ndelNL := nloud + n50ms
	if ndelNL < ndel {
		ndelNL = ndel
	}
	r.RmsNoiseLoudB = rmsFrom(f.NLoudNL, ndelNL)
	r.EHSB = avgEHS(f.EHS)
	return r
}

// meanNonNegative averages the values of x that are >= 0. Negative
// values are "not applicable" sentinels (EHS uses -1 for rejected
// frames) that must be excluded, not treated as zero.
func meanNonNegative(x []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range x {
		if v >= 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func avgNMR(nmrAvg, nmrMax []float64) (totalNMRB, relDistFramesB float64) {
	sum := 0.0
	for _, v := range nmrAvg {
		sum += v
	}
	mean := sum / float64(len(nmrAvg))
	totalNMRB = 10 * math.Log10(mean)

	thr := math.Pow(10, 1.5/10)
	count := 0
	for _, v := range nmrMax {
		if v > thr {
			count++
		}
	}
	relDistFramesB = float64(count) / float64(len(nmrMax))
	return totalNMRB, relDistFramesB
}

func avgModDiff(fss float64, ndel int, mt1B, mt2B, wt []float64) (winModDiff1B, avgModDiff1B, avgModDiff2B float64) {
	x1 := sliceFrom(mt1B, ndel)
	x2 := sliceFrom(mt2B, ndel)
	w := sliceFrom(wt, ndel)

	l := int(math.Floor(0.1 * fss))
	winModDiff1B = windowedQuadAvg(l, x1)
	avgModDiff1B = weightedAvg(x1, w)
	avgModDiff2B = weightedAvg(x2, w)
	return
}

// windowedQuadAvg computes WinModDiff1B: a windowed RMS of fourth
// powers of a running average of square roots.
func windowedQuadAvg(l int, x []float64) float64 {
	n := len(x)
	if n < l || l <= 0 {
		return 0
	}
	s := 0.0
	for i := l - 1; i < n; i++ {
		t := 0.0
		for m := 0; m < l; m++ {
			t += math.Sqrt(x[i-m])
		}
		v := t / float64(l)
		s += v * v * v * v
	}
	return math.Sqrt(s / float64(n-l+1))
}

func weightedAvg(x, w []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	s, sw := 0.0, 0.0
	for i := 0; i < n; i++ {
		s += w[i] * x[i]
		sw += w[i]
	}
	if sw == 0 {
		return 0
	}
	return s / sw
}

func avgPD(pdP, pdQ []float64) (adbb, mfpdb float64) {
	const c0 = 0.9
	phc, pcmax := 0.0, 0.0
	nd, qsum := 0.0, 0.0
	for i := range pdP {
		phc = c0*phc + (1-c0)*pdP[i]
		if phc > pcmax {
			pcmax = phc
		}
		if pdP[i] > 0.5 {
			nd++
			qsum += pdQ[i]
		}
	}
	switch {
	case nd == 0:
		adbb = 0
	case qsum > 0:
		adbb = math.Log10(qsum / nd)
	default:
		adbb = -0.5
	}
	mfpdb = pcmax
	return adbb, mfpdb
}

func rmsFrom(nl []float64, ndel int) float64 {
	x := sliceFrom(nl, ndel)
	if len(x) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

func avgEHS(ehs []float64) float64 {
	return 1000 * meanNonNegative(ehs)
}

// loudnessThreshold returns the first frame index where both
// loud_NRef and loud_NTest exceed 0.1, or np if no such frame exists.
func loudnessThreshold(loudNRef, loudNTest []float64, np int) int {
	for i := 0; i < np; i++ {
		if loudNRef[i] > 0.1 && loudNTest[i] > 0.1 {
			return i
		}
	}
	return np
}

func sliceFrom(x []float64, from int) []float64 {
	if from < 0 {
		from = 0
	}
	if from > len(x) {
		from = len(x)
	}
	return x[from:]
}
