package movs

import (
	"math"

	"github.com/kmj1117/peaq-go/constants"
)

const (
	nloudAlpha = 1.5
	nloudTF0   = 0.15
	nloudS0    = 0.5
	nloudE     = 0.23
)

// NoiseLoudness computes the per-frame noise-loudness MOV NL from the
// modulation M and level-adapted excitation pattern EP.
func NoiseLoudness(m *[2][constants.Nc]float64, ep *[2][constants.Nc]float64, ein *[constants.Nc]float64) float64 {
	sum := 0.0
	for i := 0; i < constants.Nc; i++ {
		sref := nloudTF0*m[0][i] + nloudS0
		stest := nloudTF0*m[1][i] + nloudS0
		beta := math.Exp(-nloudAlpha * (ep[1][i] - ep[0][i]) / ep[0][i])
		a := stest*ep[1][i] - sref*ep[0][i]
		if a < 0 {
			a = 0
		}
		b := ein[i] + sref*ep[0][i]*beta
		sum += math.Pow(ein[i]/stest, nloudE) * (math.Pow(1+a/b, nloudE) - 1)
	}
	nl := (24.0 / constants.Nc) * sum
	if nl < 0 {
		return 0
	}
	return nl
}
