// Copyright (c) 2026, The PEAQ-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spreading implements frequency (Bark-domain) spreading and
// time spreading of excitation patterns.
package spreading

import (
	"math"

	"github.com/kmj1117/peaq-go/config"
	"github.com/kmj1117/peaq-go/constants"
)

const freqSpreadExp = 0.4

// FreqSpreader precomputes the per-band normalization Bs by running
// the same spreading procedure on a flat unit excitation with Bs≡1,
// so that the normalized result maps E≡1 to Es≡1.
type FreqSpreader struct {
	aL   float64
	aUC  [constants.Nc]float64
	bs   [constants.Nc]float64
}

// NewFreqSpreader builds a FreqSpreader, precomputing Bs.
func NewFreqSpreader() *FreqSpreader {
	fs := &FreqSpreader{aL: math.Pow(10, 2.7*constants.Dz)}
	for l := 0; l < constants.Nc; l++ {
		fs.aUC[l] = math.Pow(10, (-2.4-23/constants.Fc[l])*constants.Dz)
	}
	unit := [constants.Nc]float64{}
	ones := [constants.Nc]float64{}
	for i := range unit {
		unit[i] = 1
		ones[i] = 1
	}
	fs.spread(&unit, &ones, &fs.bs)
	return fs
}

// Spread computes Es from a pitch pattern E.
func (fs *FreqSpreader) Spread(e *[constants.Nc]float64, es *[constants.Nc]float64) {
	fs.spread(e, &fs.bs, es)
}

// spread is the shared procedure behind Bs precomputation and normal
// spreading: only the normalization divisor differs.
func (fs *FreqSpreader) spread(e *[constants.Nc]float64, bs *[constants.Nc]float64, es *[constants.Nc]float64) {
	const e04 = freqSpreadExp
	var aUCEe, ene [constants.Nc]float64

	for l := 0; l < constants.Nc; l++ {
		aUCE := fs.aUC[l] * math.Pow(e[l], 0.2*constants.Dz)
		gIL := (1 - math.Pow(fs.aL, -float64(l+1))) / (1 - 1/fs.aL)
		gIU := (1 - math.Pow(aUCE, float64(constants.Nc-l))) / (1 - aUCE)
		en := e[l] / (gIL + gIU - 1)
		aUCEe[l] = math.Pow(aUCE, e04)
		ene[l] = math.Pow(en, e04)
	}

	// Lower spreading.
	es[constants.Nc-1] = ene[constants.Nc-1]
	aLe := math.Pow(fs.aL, -e04)
	for i := constants.Nc - 2; i >= 0; i-- {
		es[i] = aLe*es[i+1] + ene[i]
	}

	// Upper spreading (i > m).
	for i := 0; i < constants.Nc-1; i++ {
		r := ene[i]
		a := aUCEe[i]
		for l := i + 1; l < constants.Nc; l++ {
			r *= a
			es[l] += r
		}
	}

	for i := 0; i < constants.Nc; i++ {
		es[i] = math.Pow(es[i], 1/e04) / bs[i]
	}
}

const (
	timeSpreadTau100 = 0.030
	timeSpreadTauMin = 0.008
)

// TimeSpreader holds the persistent per-band envelope state Ef for
// one channel (reference or test) and the precomputed alpha for its
// time constant.
type TimeSpreader struct {
	alpha [constants.Nc]float64
	Ef    [constants.Nc]float64
}

// NewTimeSpreader builds a TimeSpreader for the given Config.
func NewTimeSpreader(cfg config.Config) *TimeSpreader {
	return &TimeSpreader{alpha: constants.TauAlpha(timeSpreadTau100, timeSpreadTauMin, cfg.Fss())}
}

// Reset zeroes the persistent Ef state. Must be called per new
// signal pair.
func (t *TimeSpreader) Reset() {
	t.Ef = [constants.Nc]float64{}
}

// Spread advances the time-domain smoothing state with this frame's
// Es and writes Ehs = max(Ef, Es).
func (t *TimeSpreader) Spread(es *[constants.Nc]float64, ehs *[constants.Nc]float64) {
	for i := 0; i < constants.Nc; i++ {
		t.Ef[i] = t.alpha[i]*t.Ef[i] + (1-t.alpha[i])*es[i]
		if t.Ef[i] > es[i] {
			ehs[i] = t.Ef[i]
		} else {
			ehs[i] = es[i]
		}
	}
}
