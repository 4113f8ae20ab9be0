package constants

import "math"

// Gm holds the per-band masking offset used by the NMR MOV:
// gm[k] = 10^(-0.1*mdB), mdB=3 for k<=12/dz, else 0.25*k*dz.
var Gm [Nc]float64

func init() {
	for k := 0; k < Nc; k++ {
		var mdB float64
		if float64(k) <= 12/Dz {
			mdB = 3
		} else {
			mdB = 0.25 * float64(k) * Dz
		}
		Gm[k] = math.Pow(10, -0.1*mdB)
	}
}
