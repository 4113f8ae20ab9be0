// Copyright (c) 2026, The PEAQ-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nnet maps an aggregated MOV feature vector to the Objective
// Difference Grade via the fixed one-hidden-layer sigmoid network
// trained into the Basic version.
package nnet

import (
	"math"

	"github.com/kmj1117/peaq-go/constants"
)

// Version selects which trained network a feature vector targets.
// Only Basic is ever passed to Forward by this package's callers;
// Advanced is named here because constants.AdvancedNet is carried
// for documentation even though nothing in this repo builds its
// 5-MOV input vector.
type Version int

const (
	Basic Version = iota
	Advanced
)

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Forward runs the network in p against mov, a feature vector of
// len(p.Amin) raw MOV values, and returns (odg, distortionIndex). The
// distortion index is the raw sigmoid output before the final
// Bmin/Bmax affine rescale; it is not independently meaningful but is
// useful for diagnostics.
func Forward(p constants.NNetParams, mov []float64) (odg, distortionIndex float64) {
	n := len(p.Amin)
	movx := make([]float64, n)
	for i := 0; i < n; i++ {
		movx[i] = (mov[i] - p.Amin[i]) / (p.Amax[i] - p.Amin[i])
	}

	nHidden := len(p.Wxb)
	hidden := make([]float64, nHidden)
	for h := 0; h < nHidden; h++ {
		s := p.Wxb[h]
		for i := 0; i < n; i++ {
			s += movx[i] * p.Wx[i][h]
		}
		hidden[h] = sigmoid(s)
	}

	y := p.Wyb
	for h := 0; h < nHidden; h++ {
		y += hidden[h] * p.Wy[h]
	}
	distortionIndex = sigmoid(y)
	odg = p.Bmin + (p.Bmax-p.Bmin)*distortionIndex
	return odg, distortionIndex
}
