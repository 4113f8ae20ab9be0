package movs

import (
	"math"

	"github.com/kmj1117/peaq-go/constants"
)

const (
	modDiffNegWt2B  = 0.1
	modDiffOffset1B = 1.0
	modDiffOffset2B = 0.01
	modDiffLevWt    = 100.0
)

// ModDiff computes the per-frame modulation-difference MOVs: Mt1B,
// Mt2B (linearly and asymmetrically weighted modulation difference)
// and Wt (the per-frame weight used by the aggregator).
func ModDiff(m *[2][constants.Nc]float64, eRavg *[constants.Nc]float64, ein *[constants.Nc]float64) (mt1B, mt2B, wt float64) {
	s1, s2, w := 0.0, 0.0, 0.0
	for i := 0; i < constants.Nc; i++ {
		num1 := math.Abs(m[0][i] - m[1][i])
		num2 := num1
		if m[0][i] > m[1][i] {
			num2 = modDiffNegWt2B * num1
		}
		s1 += num1 / (modDiffOffset1B + m[0][i])
		s2 += num2 / (modDiffOffset2B + m[0][i])
		w += eRavg[i] / (eRavg[i] + modDiffLevWt*math.Pow(ein[i], 0.3))
	}
	mt1B = (100.0 / constants.Nc) * s1
	mt2B = (100.0 / constants.Nc) * s2
	wt = w
	return mt1B, mt2B, wt
}
