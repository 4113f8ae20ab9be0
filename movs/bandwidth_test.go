package movs

import (
	"testing"

	"github.com/kmj1117/peaq-go/config"
	"github.com/stretchr/testify/assert"
)

// The >= comparison against a zero threshold means a silent frame
// (noise floor Xth=0) reports its widest possible bandwidth rather
// than zero -- a deliberately preserved quirk of the reference
// algorithm, not a bug.
func TestBandwidthOfSilenceIsMaximal(t *testing.T) {
	b := NewBandwidth(config.Default())
	half := config.Default().NF/2 + 1
	x2R := make([]float64, half)
	x2T := make([]float64, half)
	bwRef, bwTest := b.Compute(x2R, x2T)
	assert.Equal(t, float64(b.kx), bwRef)
	assert.Equal(t, float64(b.kx-1), bwTest)
}

func TestBandwidthTracksHighestQualifyingBin(t *testing.T) {
	b := NewBandwidth(config.Default())
	half := config.Default().NF/2 + 1
	x2R := make([]float64, half)
	x2T := make([]float64, half)
	for k := b.kx; k < half; k++ {
		x2T[k] = 1.0
	}
	x2R[500] = 20.0
	x2T[300] = 5.0

	bwRef, bwTest := b.Compute(x2R, x2T)
	assert.Equal(t, 501.0, bwRef)
	assert.Equal(t, 301.0, bwTest)
}
