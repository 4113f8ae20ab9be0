// Copyright (c) 2026, The PEAQ-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package movs implements the per-frame Model Output Variable
// extractors: loudness, bandwidth, NMR, modulation difference, noise
// loudness, probability of detection, and EHS.
package movs

import (
	"math"

	"github.com/kmj1117/peaq-go/constants"
)

const (
	loudnessC  = 1.07664
	loudnessE  = 0.23
	loudnessE0 = 1e4
)

var (
	loudnessEt  [constants.Nc]float64
	loudnessS   [constants.Nc]float64
	loudnessEts [constants.Nc]float64
)

func init() {
	for i := 0; i < constants.Nc; i++ {
		fcKHz := constants.Fc[i] / 1000
		loudnessEt[i] = math.Pow(10, 0.1*3.64*math.Pow(fcKHz, -0.8))
		loudnessS[i] = math.Pow(10, 0.1*(-2-2.05*math.Atan(constants.Fc[i]/4000)-0.75*math.Atan(math.Pow(constants.Fc[i]/1600, 2))))
		loudnessEts[i] = loudnessC * math.Pow(loudnessEt[i]/(loudnessS[i]*loudnessE0), loudnessE)
	}
}

// Loudness computes Ntot, the total loudness of a time-spread
// excitation pattern Ehs, using the FFT-model ear.
func Loudness(ehs *[constants.Nc]float64) float64 {
	sum := 0.0
	for i := 0; i < constants.Nc; i++ {
		v := loudnessEts[i] * (math.Pow(1-loudnessS[i]+loudnessS[i]*ehs[i]/loudnessEt[i], loudnessE) - 1)
		if v > 0 {
			sum += v
		}
	}
	return (24.0 / constants.Nc) * sum
}
