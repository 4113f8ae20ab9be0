package constants

import "math"

// TauAlpha computes the per-band first-order IIR coefficient used by
// every time-smoothing stage in the pipeline (time spreading,
// level/pattern adaptation, modulation patterns) -- they share the
// same tau/alpha formula with different (tau100, tauMin) pairs.
//
//	tau[i]   = tauMin + (100/Fc[i])*(tau100-tauMin)
//	alpha[i] = exp(-1/(fss*tau[i]))
func TauAlpha(tau100, tauMin, fss float64) [Nc]float64 {
	var alpha [Nc]float64
	for i := 0; i < Nc; i++ {
		tau := tauMin + (100/Fc[i])*(tau100-tauMin)
		alpha[i] = math.Exp(-1 / (fss * tau))
	}
	return alpha
}
