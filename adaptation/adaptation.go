// Copyright (c) 2026, The PEAQ-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adaptation implements level equalization and pattern
// adaptation, producing the level-adapted excitation pattern EP from
// the time-spread patterns Ehs.
package adaptation

import (
	"math"

	"github.com/kmj1117/peaq-go/config"
	"github.com/kmj1117/peaq-go/constants"
)

const (
	tau100 = 0.050
	tauMin = 0.008
	m1     = 3
	m2     = 4
)

// Adapter holds the persistent adaptation state (P, Rn, Rd, PC) that
// must be reset for each new reference/test pair and advanced exactly
// once per frame.
type Adapter struct {
	alpha [constants.Nc]float64
	beta  [constants.Nc]float64

	P  [2][constants.Nc]float64
	Rn [constants.Nc]float64
	Rd [constants.Nc]float64
	PC [2][constants.Nc]float64
}

// New builds an Adapter for the given Config.
func New(cfg config.Config) *Adapter {
	a := &Adapter{alpha: constants.TauAlpha(tau100, tauMin, cfg.Fss())}
	for i := range a.beta {
		a.beta[i] = 1 - a.alpha[i]
	}
	return a
}

// Reset zeroes all persistent state.
func (a *Adapter) Reset() {
	a.P = [2][constants.Nc]float64{}
	a.Rn = [constants.Nc]float64{}
	a.Rd = [constants.Nc]float64{}
	a.PC = [2][constants.Nc]float64{}
}

// Adapt advances the adaptation state with this frame's Ehs and
// writes the level-adapted excitation pattern EP.
func (a *Adapter) Adapt(ehsR, ehsT *[constants.Nc]float64, ep *[2][constants.Nc]float64) {
	for i := 0; i < constants.Nc; i++ {
		a.P[0][i] = a.alpha[i]*a.P[0][i] + a.beta[i]*ehsR[i]
		a.P[1][i] = a.alpha[i]*a.P[1][i] + a.beta[i]*ehsT[i]
	}

	sn, sd := 0.0, 0.0
	for i := 0; i < constants.Nc; i++ {
		sn += math.Sqrt(a.P[0][i] * a.P[1][i])
		sd += a.P[1][i]
	}
	cl := (sn / sd) * (sn / sd)

	if cl > 1 {
		for i := 0; i < constants.Nc; i++ {
			ep[0][i] = ehsR[i] / cl
			ep[1][i] = ehsT[i]
		}
	} else {
		for i := 0; i < constants.Nc; i++ {
			ep[0][i] = ehsR[i]
			ep[1][i] = ehsT[i] * cl
		}
	}

	var r [2][constants.Nc]float64
	for i := 0; i < constants.Nc; i++ {
		a.Rn[i] = a.alpha[i]*a.Rn[i] + ep[1][i]*ep[0][i]
		a.Rd[i] = a.alpha[i]*a.Rd[i] + ep[0][i]*ep[0][i]
		if a.Rn[i] >= a.Rd[i] {
			r[0][i] = 1
			r[1][i] = a.Rd[i] / a.Rn[i]
		} else {
			r[0][i] = a.Rn[i] / a.Rd[i]
			r[1][i] = 1
		}
	}

	for m := 0; m < constants.Nc; m++ {
		lo := m - m1
		if lo < 0 {
			lo = 0
		}
		hi := m + m2
		if hi > constants.Nc-1 {
			hi = constants.Nc - 1
		}
		n := float64(hi - lo + 1)

		s0, s1 := 0.0, 0.0
		for k := lo; k <= hi; k++ {
			s0 += r[0][k]
			s1 += r[1][k]
		}
		a.PC[0][m] = a.alpha[m]*a.PC[0][m] + a.beta[m]*s0/n
		a.PC[1][m] = a.alpha[m]*a.PC[1][m] + a.beta[m]*s1/n

		ep[0][m] *= a.PC[0][m]
		ep[1][m] *= a.PC[1][m]
	}
}
