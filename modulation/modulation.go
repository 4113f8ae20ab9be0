// Copyright (c) 2026, The PEAQ-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package modulation extracts the per-band modulation patterns: an
// envelope-slope term M and an average-envelope term ERavg, derived
// from the frequency-spread (not time-spread) patterns Es.
package modulation

import (
	"math"

	"github.com/kmj1117/peaq-go/config"
	"github.com/kmj1117/peaq-go/constants"
)

const (
	exp    = 0.3
	tau100 = 0.050
	tauMin = 0.008
)

// Extractor holds the persistent modulation state (DE, Ese, Eavg),
// reset per new reference/test pair and advanced once per frame.
// The analyzer calls Extract after adaptation has processed the same
// frame; Extract itself reads only that frame's Es and its own state.
type Extractor struct {
	alpha [constants.Nc]float64
	beta  [constants.Nc]float64
	fss   float64

	DE   [2][constants.Nc]float64
	Ese  [2][constants.Nc]float64
	Eavg [2][constants.Nc]float64
}

// New builds an Extractor for the given Config.
func New(cfg config.Config) *Extractor {
	ex := &Extractor{alpha: constants.TauAlpha(tau100, tauMin, cfg.Fss()), fss: cfg.Fss()}
	for i := range ex.beta {
		ex.beta[i] = 1 - ex.alpha[i]
	}
	return ex
}

// Reset zeroes all persistent state.
func (ex *Extractor) Reset() {
	ex.DE = [2][constants.Nc]float64{}
	ex.Ese = [2][constants.Nc]float64{}
	ex.Eavg = [2][constants.Nc]float64{}
}

// Extract advances the modulation state with this frame's frequency-
// spread patterns Es (reference and test) and writes M (envelope
// slope) and ERavg (reference-channel average envelope).
func (ex *Extractor) Extract(es *[2][constants.Nc]float64, m *[2][constants.Nc]float64, eRavg *[constants.Nc]float64) {
	for c := 0; c < 2; c++ {
		for i := 0; i < constants.Nc; i++ {
			ee := math.Pow(es[c][i], exp)
			ex.DE[c][i] = ex.alpha[i]*ex.DE[c][i] + ex.beta[i]*ex.fss*math.Abs(ee-ex.Ese[c][i])
			ex.Eavg[c][i] = ex.alpha[i]*ex.Eavg[c][i] + ex.beta[i]*ee
			ex.Ese[c][i] = ee
			m[c][i] = ex.DE[c][i] / (1 + ex.Eavg[c][i]/exp)
		}
	}
	*eRavg = ex.Eavg[0]
}
