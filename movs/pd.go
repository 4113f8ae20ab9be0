package movs

import (
	"math"

	"github.com/kmj1117/peaq-go/constants"
)

// PD computes the per-frame probability-of-detection MOVs Pc (channel
// detection probability) and Qc (summed distortion index). If
// truncateEdB is true, edB is truncated to an integer before
// computing q, a fixed-point-derived quirk some reference
// implementations carry; the untruncated, real-valued edB is used by
// default.
func PD(ehsR, ehsT *[constants.Nc]float64, truncateEdB bool) (pc, qc float64) {
	prod := 1.0
	for k := 0; k < constants.Nc; k++ {
		edBR := 10 * math.Log10(ehsR[k])
		edBT := 10 * math.Log10(ehsT[k])
		edB := edBR - edBT

		var l, b float64
		if edB > 0 {
			l = 0.3*edBR + 0.7*edBT
			b = constants.PDbP
		} else {
			l = edBT
			b = constants.PDbM
		}

		var s float64
		if l > 0 {
			c := constants.PDCoeffs
			s = constants.PDd1*math.Pow(constants.PDd2/l, constants.PDg) +
				c[0] + l*(c[1]+l*(c[2]+l*(c[3]+l*c[4])))
		} else {
			s = 1e30
		}

		p := 1 - math.Pow(0.5, math.Pow(edB/s, b))
		qEdB := edB
		if truncateEdB {
			qEdB = math.Trunc(edB)
		}
		q := math.Abs(qEdB) / s

		prod *= 1 - p
		qc += q
	}
	pc = 1 - prod
	return pc, qc
}
