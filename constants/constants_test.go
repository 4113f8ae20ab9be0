package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandEdgesAreOrdered(t *testing.T) {
	for i := 0; i < Nc; i++ {
		assert.Less(t, Fl[i], Fc[i])
		assert.Less(t, Fc[i], Fu[i])
		if i > 0 {
			assert.LessOrEqual(t, Fl[i-1], Fl[i])
		}
	}
}

func TestTauAlphaIsStable(t *testing.T) {
	alpha := TauAlpha(0.050, 0.008, 1000.0/1024.0*48000.0/1024.0)
	for _, a := range alpha {
		assert.Greater(t, a, 0.0)
		assert.Less(t, a, 1.0)
	}
}

func TestMaskOffsetLowBandsAre3dB(t *testing.T) {
	assert.InDelta(t, -0.3, -0.1*3, 1e-9)
	assert.InDelta(t, 0.501187, Gm[0], 1e-5)
}
