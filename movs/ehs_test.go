package movs

import (
	"math"
	"testing"

	"github.com/kmj1117/peaq-go/config"
	"github.com/stretchr/testify/assert"
)

func TestEHSRejectsLowEnergyFrame(t *testing.T) {
	e := NewEHS(config.Default())
	cfg := config.Default()
	x := make([]float64, cfg.NF)
	x2 := make([]float64, cfg.NF/2+1)
	for k := range x2 {
		x2[k] = 1
	}
	assert.Equal(t, EHSRejected, e.Compute(x, x, x2, x2))
}

func TestEHSZeroForIdenticalSpectra(t *testing.T) {
	e := NewEHS(config.Default())
	cfg := config.Default()
	x := make([]float64, cfg.NF)
	for n := cfg.NF / 2; n < cfg.NF; n++ {
		x[n] = 200
	}
	x2 := make([]float64, cfg.NF/2+1)
	for k := range x2 {
		x2[k] = 10 + float64(k)
	}
	got := e.Compute(x, x, x2, x2)
	assert.False(t, math.IsNaN(got))
	assert.Equal(t, 0.0, got)
}

func TestFindPeakTracksRisingEdges(t *testing.T) {
	c2 := []float64{0, 1, 3, 2, 5, 4}
	assert.Equal(t, 5.0, findPeak(c2, len(c2)))
}
