// Copyright (c) 2026, The PEAQ-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analyzer is the PEAQ Basic orchestrator: it wires the
// window, spectrum, ear model, spreading, adaptation, modulation, and
// MOV-extractor packages into the per-frame pipeline, then reduces
// the collected per-frame sequences through aggregate and nnet into
// an Objective Difference Grade.
package analyzer

import (
	"math"

	"github.com/kmj1117/peaq-go/adaptation"
	"github.com/kmj1117/peaq-go/aggregate"
	"github.com/kmj1117/peaq-go/config"
	"github.com/kmj1117/peaq-go/constants"
	"github.com/kmj1117/peaq-go/earmodel"
	"github.com/kmj1117/peaq-go/errs"
	"github.com/kmj1117/peaq-go/modulation"
	"github.com/kmj1117/peaq-go/movs"
	"github.com/kmj1117/peaq-go/nnet"
	"github.com/kmj1117/peaq-go/spectrum"
	"github.com/kmj1117/peaq-go/spreading"
	"github.com/kmj1117/peaq-go/window"
)

// MOVRecord holds one (reference, test) pair's aggregated Model
// Output Variables and the Objective Difference Grade derived from
// them.
type MOVRecord struct {
	AvgBWRef       float64
	AvgBWTest      float64
	TotalNMRB      float64
	WinModDiff1B   float64
	ADBB           float64
	EHSB           float64
	AvgModDiff1B   float64
	AvgModDiff2B   float64
	RmsNoiseLoudB  float64
	MFPDB          float64
	RelDistFramesB float64
	ODG            float64
}

// Analyzer runs the Basic-version pipeline against successive
// (reference, test) signal pairs. Not safe for concurrent Process
// calls on the same instance; independent Analyzer values may run on
// separate goroutines.
type Analyzer struct {
	cfg config.Config

	win       *window.Window
	dft       *spectrum.RealDFT
	ear       *earmodel.Model
	freqSpr   *spreading.FreqSpreader
	timeSprR  *spreading.TimeSpreader
	timeSprT  *spreading.TimeSpreader
	adapter   *adaptation.Adapter
	modExtr   *modulation.Extractor
	bandwidth *movs.Bandwidth
	ehsExtr   *movs.EHS

	half int

	// Per-frame scratch, reused every iteration.
	rawR, rawT       []float64
	winR, winT       []float64
	x2R, x2T         []float64
	xw2R, xw2T       []float64
	xwN2             []float64
	ebR, ebT, ebN    [constants.Nc]float64
	eR, eT           [constants.Nc]float64
	es               [2][constants.Nc]float64 // [0]=ref, [1]=test, frequency-spread
	ehsR, ehsT       [constants.Nc]float64
	ep               [2][constants.Nc]float64
	m                [2][constants.Nc]float64
	eRavg            [constants.Nc]float64

	// Per-frame collected sequences, allocated once Np is known.
	frames aggregate.Frames
	np     int
}

// New validates cfg and builds an Analyzer for it.
func New(cfg config.Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	half := cfg.NF / 2
	a := &Analyzer{
		cfg:       cfg,
		win:       window.New(cfg),
		dft:       spectrum.New(cfg.NF),
		ear:       earmodel.New(cfg),
		freqSpr:   spreading.NewFreqSpreader(),
		timeSprR:  spreading.NewTimeSpreader(cfg),
		timeSprT:  spreading.NewTimeSpreader(cfg),
		adapter:   adaptation.New(cfg),
		modExtr:   modulation.New(cfg),
		bandwidth: movs.NewBandwidth(cfg),
		ehsExtr:   movs.NewEHS(cfg),
		half:      half,
		rawR:      make([]float64, cfg.NF),
		rawT:      make([]float64, cfg.NF),
		winR:      make([]float64, cfg.NF),
		winT:      make([]float64, cfg.NF),
		x2R:       make([]float64, half+1),
		x2T:       make([]float64, half+1),
		xw2R:      make([]float64, half+1),
		xw2T:      make([]float64, half+1),
		xwN2:      make([]float64, half+1),
	}
	return a, nil
}

// Reset clears all persistent cross-frame state, so the Analyzer can
// be reused for a new (reference, test) pair without reallocating.
func (a *Analyzer) Reset() {
	a.timeSprR.Reset()
	a.timeSprT.Reset()
	a.adapter.Reset()
	a.modExtr.Reset()
}

// Process runs the full pipeline over one (reference, test) pair,
// populating the per-frame MOV sequences consumed by Aggregate.
// sigR and sigT must have equal, positive length and contain only
// finite samples in [-Amax, Amax]; Process validates this before
// mutating any state.
func (a *Analyzer) Process(sigR, sigT []float64) error {
	if len(sigR) != len(sigT) {
		return &errs.InputError{Reason: "reference and test signals must have equal length"}
	}
	if len(sigR) == 0 {
		return &errs.InputError{Reason: "signals must not be empty"}
	}
	if err := checkFinite(sigR, a.cfg.Amax); err != nil {
		return err
	}
	if err := checkFinite(sigT, a.cfg.Amax); err != nil {
		return err
	}

	nadv := a.cfg.Nadv()
	np := len(sigR) / nadv
	if np == 0 {
		return &errs.InputError{Reason: "signal shorter than one hop"}
	}

	if a.cfg.NormalizeAmplitude {
		peak := 0.0
		for _, v := range sigR {
			if av := math.Abs(v); av > peak {
				peak = av
			}
		}
		if peak > 0 {
			scale := a.cfg.Amax / peak
			sigR, sigT = scaled(sigR, scale), scaled(sigT, scale)
		}
	}

	a.Reset()
	a.np = np
	a.frames = aggregate.Frames{
		BWRef:     make([]float64, np),
		BWTest:    make([]float64, np),
		NMRavg:    make([]float64, np),
		NMRmax:    make([]float64, np),
		MDiffMt1B: make([]float64, np),
		MDiffMt2B: make([]float64, np),
		MDiffWt:   make([]float64, np),
		NLoudNL:   make([]float64, np),
		PDp:       make([]float64, np),
		PDq:       make([]float64, np),
		EHS:       make([]float64, np),
		LoudNRef:  make([]float64, np),
		LoudNTest: make([]float64, np),
	}
	for i := 0; i < np; i++ {
		start := i * nadv
		extractFrame(a.rawR, sigR, start)
		extractFrame(a.rawT, sigT, start)

		a.win.Apply(a.winR, a.rawR)
		a.win.Apply(a.winT, a.rawT)

		a.dft.SquaredMagnitude(a.x2R, a.winR)
		a.dft.SquaredMagnitude(a.x2T, a.winT)

		a.ear.WeightSpectrum(a.xw2R, a.x2R)
		a.ear.WeightSpectrum(a.xw2T, a.x2T)
		for k := range a.xwN2 {
			d := math.Sqrt(a.xw2R[k]*a.xw2T[k])
			a.xwN2[k] = a.xw2R[k] - 2*d + a.xw2T[k]
		}

		a.ear.GroupCB(a.xw2R, &a.ebR)
		a.ear.GroupCB(a.xw2T, &a.ebT)
		a.ear.GroupCB(a.xwN2, &a.ebN)

		a.ear.PitchPattern(&a.eR, &a.ebR)
		a.ear.PitchPattern(&a.eT, &a.ebT)

		a.freqSpr.Spread(&a.eR, &a.es[0])
		a.freqSpr.Spread(&a.eT, &a.es[1])

		a.timeSprR.Spread(&a.es[0], &a.ehsR)
		a.timeSprT.Spread(&a.es[1], &a.ehsT)

		// Adaptation runs before modulation-pattern extraction for this
		// frame. Adaptation reads Ehs and its EP output feeds noise
		// loudness; modulation is computed from the frequency-spread
		// (not time-spread) patterns Es.
		a.adapter.Adapt(&a.ehsR, &a.ehsT, &a.ep)
		a.modExtr.Extract(&a.es, &a.m, &a.eRavg)

		a.frames.LoudNRef[i] = movs.Loudness(&a.ehsR)
		a.frames.LoudNTest[i] = movs.Loudness(&a.ehsT)

		a.frames.MDiffMt1B[i], a.frames.MDiffMt2B[i], a.frames.MDiffWt[i] = movs.ModDiff(&a.m, &a.eRavg, &a.ear.EIN)
		a.frames.NLoudNL[i] = movs.NoiseLoudness(&a.m, &a.ep, &a.ear.EIN)
		a.frames.BWRef[i], a.frames.BWTest[i] = a.bandwidth.Compute(a.x2R, a.x2T)
		a.frames.PDp[i], a.frames.PDq[i] = movs.PD(&a.ehsR, &a.ehsT, a.cfg.PDTruncateEdB)
		a.frames.EHS[i] = a.ehsExtr.Compute(a.rawR, a.rawT, a.x2R, a.x2T)
		a.frames.NMRavg[i], a.frames.NMRmax[i] = movs.NMR(&a.ebN, &a.ehsR)
	}
	return nil
}

// Aggregate reduces the per-frame sequences collected by the most
// recent Process call into a MOVRecord, including the ODG.
func (a *Analyzer) Aggregate() (MOVRecord, error) {
	if a.np == 0 {
		return MOVRecord{}, &errs.InputError{Reason: "Aggregate called before a successful Process"}
	}
	res := aggregate.Aggregate(a.cfg, a.frames, a.np)
	odg, _ := nnet.Forward(constants.BasicNet, res.Vector())
	return MOVRecord{
		AvgBWRef:       res.AvgBWRef,
		AvgBWTest:      res.AvgBWTest,
		TotalNMRB:      res.TotalNMRB,
		WinModDiff1B:   res.WinModDiff1B,
		ADBB:           res.ADBB,
		EHSB:           res.EHSB,
		AvgModDiff1B:   res.AvgModDiff1B,
		AvgModDiff2B:   res.AvgModDiff2B,
		RmsNoiseLoudB:  res.RmsNoiseLoudB,
		MFPDB:          res.MFPDB,
		RelDistFramesB: res.RelDistFramesB,
		ODG:            odg,
	}, nil
}

func scaled(x []float64, factor float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = v * factor
	}
	return y
}

func extractFrame(dst, src []float64, start int) {
	n := len(dst)
	for i := 0; i < n; i++ {
		if start+i < len(src) {
			dst[i] = src[start+i]
		} else {
			dst[i] = 0
		}
	}
}

func checkFinite(x []float64, amax float64) error {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &errs.InputError{Reason: "signal contains NaN or Inf samples"}
		}
		if v < -amax-1e-9 || v > amax+1e-9 {
			return &errs.InputError{Reason: "signal sample exceeds Amax"}
		}
	}
	return nil
}
