// Copyright (c) 2026, The PEAQ-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package earmodel implements the outer/middle-ear weighting,
// critical-band grouping, and internal-noise floor of the FFT-based
// ear model.
package earmodel

import (
	"math"

	"github.com/kmj1117/peaq-go/config"
	"github.com/kmj1117/peaq-go/constants"
)

// BandRange is the sparse per-band grouping weight list: band i only
// receives energy from DFT bins [Lo, Hi], with Weights[k-Lo] giving
// U[k,i]. This avoids materializing the dense [NF/2+1][Nc] matrix.
type BandRange struct {
	Lo, Hi  int
	Weights []float64
}

// Model holds the precomputed outer/middle-ear response, grouping
// ranges, and internal-noise floor for one Config. Built once per
// (Fs, NF) and reused every frame.
type Model struct {
	W2       []float64 // length NF/2+1
	Grouping [constants.Nc]BandRange
	EIN      [constants.Nc]float64
}

// New precomputes W2, the grouping ranges, and EIN for cfg.
func New(cfg config.Config) *Model {
	half := cfg.NF / 2
	df := float64(cfg.Fs) / float64(cfg.NF)

	m := &Model{W2: make([]float64, half+1)}
	for k := 1; k <= half; k++ {
		fkHz := float64(k) * df / 1000
		adB := -2.184*math.Pow(fkHz, -0.8) + 6.5*math.Exp(-0.6*(fkHz-3.3)*(fkHz-3.3)) - 1e-3*math.Pow(fkHz, 3.6)
		m.W2[k] = math.Pow(10, adB/10)
	}
	// m.W2[0], the DC bin, is left at 0: it carries no audible energy.

	for i := 0; i < constants.Nc; i++ {
		fl, fu := constants.Fl[i], constants.Fu[i]
		kLo := int(math.Ceil(fl/df - 0.5))
		if kLo < 0 {
			kLo = 0
		}
		kHi := int(math.Floor(fu/df + 0.5))
		if kHi > half {
			kHi = half
		}
		weights := make([]float64, 0, kHi-kLo+1)
		lo, hi := -1, -1
		for k := kLo; k <= kHi; k++ {
			lower := math.Max(fl, (float64(k)-0.5)*df)
			upper := math.Min(fu, (float64(k)+0.5)*df)
			w := (upper - lower) / df
			if w <= 0 {
				continue
			}
			if lo < 0 {
				lo = k
			}
			hi = k
			weights = append(weights, w)
		}
		m.Grouping[i] = BandRange{Lo: lo, Hi: hi, Weights: weights}
		m.EIN[i] = math.Pow(10, 0.1*1.456*math.Pow(constants.Fc[i]/1000, -0.8))
	}
	return m
}

// GroupCB groups a DFT energy vector xw2 (length NF/2+1) into
// critical bands, flooring each band at constants.Emin.
func (m *Model) GroupCB(xw2 []float64, eb *[constants.Nc]float64) {
	for i := 0; i < constants.Nc; i++ {
		br := m.Grouping[i]
		sum := 0.0
		for k := br.Lo; k <= br.Hi; k++ {
			sum += br.Weights[k-br.Lo] * xw2[k]
		}
		if sum < constants.Emin {
			sum = constants.Emin
		}
		eb[i] = sum
	}
}

// WeightSpectrum multiplies X2 by the outer/middle-ear response W2
// in place into dst (Xw2 = W2 * X2).
func (m *Model) WeightSpectrum(dst, x2 []float64) {
	for k := range dst {
		dst[k] = m.W2[k] * x2[k]
	}
}

// PitchPattern adds the internal-noise floor to grouped band energy:
// E = Eb + EIN.
func (m *Model) PitchPattern(e *[constants.Nc]float64, eb *[constants.Nc]float64) {
	for i := 0; i < constants.Nc; i++ {
		e[i] = eb[i] + m.EIN[i]
	}
}
