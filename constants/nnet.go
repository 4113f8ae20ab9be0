// Copyright (c) 2026, The PEAQ-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constants

// NNetParams holds the fixed weights of a one-hidden-layer sigmoid
// network that maps a normalized MOV feature vector to ODG. MOVx[i] =
// (MOV[i]-Amin[i])/(Amax[i]-Amin[i]); the hidden layer has
// len(Wxb) units.
type NNetParams struct {
	Amin, Amax []float64
	Wx         [][]float64 // [feature][hidden]
	Wxb        []float64   // [hidden]
	Wy         []float64   // [hidden]
	Wyb        float64
	Bmin, Bmax float64
}

// BasicNet is the Basic-version (11-MOV) network. Values are ground
// truth from ITU-R BS.1387 / Kabal's reimplementation and must not be
// recomputed.
var BasicNet = NNetParams{
	Amin: []float64{393.916656, 361.965332, -24.045116, 1.110661, -0.206623, 0.074318, 1.113683, 0.950345, 0.029985, 0.000101, 0},
	Amax: []float64{921, 881.131226, 16.212030, 107.137772, 2.886017, 13.933351, 63.257874, 1145.018555, 14.819740, 1, 1},
	Wx: [][]float64{
		{-0.502657, 0.436333, 1.219602},
		{4.307481, 3.246017, 1.123743},
		{4.984241, -2.211189, -0.192096},
		{0.051056, -1.762424, 4.331315},
		{2.321580, 1.789971, -0.754560},
		{-5.303901, -3.452257, -10.814982},
		{2.730991, -6.111805, 1.519223},
		{0.624950, -1.331523, -5.955151},
		{3.102889, 0.871260, -5.922878},
		{-1.051468, -0.939882, -0.142913},
		{-1.804679, -0.503610, -0.620456},
	},
	Wxb:  []float64{-2.518254, 0.654841, -2.207228},
	Wy:   []float64{-3.817048, 4.107138, 4.629582},
	Wyb:  -0.307594,
	Bmin: -3.98,
	Bmax: 0.22,
}

// AdvancedNet is the Advanced-version (5-MOV) network, carried for
// completeness only: the Advanced ear model and MOV set are out of
// scope for this analyzer, so nnet.Forward never selects this table.
// It documents why BasicNet has the shape it does and costs nothing
// to keep alongside it.
var AdvancedNet = NNetParams{
	Amin: []float64{13.298751, 0.041073, -25.018791, 0.061560, 0.024523},
	Amax: []float64{2166.5, 13.24326, 13.46708, 10.226771, 14.224874},
	Wx: [][]float64{
		{21.211773, -39.913052, -1.382553, -14.545348, -0.320899},
		{-8.981803, 19.956049, 0.935389, -1.686586, -3.238586},
		{1.633830, -2.877505, -7.442935, 5.606502, -1.783120},
		{6.103821, 19.587435, -0.240284, 1.088213, -0.511314},
		{11.556344, 3.892028, 9.720441, -3.287205, -11.031250},
	},
	Wxb:  []float64{1.330890, 2.686103, 2.096598, -1.327851, 3.087055},
	Wy:   []float64{-4.696996, -3.289959, 7.004782, 6.651897, 4.009144},
	Wyb:  -1.360308,
	Bmin: -3.98,
	Bmax: 0.22,
}

// PDCoeffs are the polynomial coefficients c[0..4] used by the
// probability-of-detection MOV's "s" formula.
var PDCoeffs = [5]float64{-0.198719, 0.0550197, -1.02438e-3, 5.05622e-6, 9.01033e-11}

const (
	PDd1 = 5.95072
	PDd2 = 6.39468
	PDg  = 1.71332
	PDbP = 4.0
	PDbM = 6.0
)
