package movs

import (
	"github.com/kmj1117/peaq-go/constants"
)

// NMR computes the average and max noise-to-mask ratio for one frame,
// given the grouped noise-band energy EbN and the reference channel's
// time-spread excitation pattern EhsR.
func NMR(ebN, ehsR *[constants.Nc]float64) (avg, max float64) {
	sum := 0.0
	for k := 0; k < constants.Nc; k++ {
		nmrm := ebN[k] / (constants.Gm[k] * ehsR[k])
		sum += nmrm
		if nmrm > max {
			max = nmrm
		}
	}
	avg = sum / constants.Nc
	return avg, max
}
