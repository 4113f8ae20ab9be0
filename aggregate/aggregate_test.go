package aggregate

import (
	"testing"

	"github.com/kmj1117/peaq-go/config"
	"github.com/stretchr/testify/assert"
)

func identicalFrames(np int) Frames {
	f := Frames{
		BWRef: make([]float64, np), BWTest: make([]float64, np),
		NMRavg: make([]float64, np), NMRmax: make([]float64, np),
		MDiffMt1B: make([]float64, np), MDiffMt2B: make([]float64, np), MDiffWt: make([]float64, np),
		NLoudNL: make([]float64, np),
		PDp:     make([]float64, np), PDq: make([]float64, np),
		EHS:       make([]float64, np),
		LoudNRef:  make([]float64, np),
		LoudNTest: make([]float64, np),
	}
	for i := 0; i < np; i++ {
		f.BWRef[i], f.BWTest[i] = 900, 900
		f.NMRavg[i], f.NMRmax[i] = 0.01, 0.02
		f.MDiffWt[i] = 1
		f.EHS[i] = 0.5
		f.LoudNRef[i], f.LoudNTest[i] = 1, 1
	}
	return f
}

func TestAggregateOfIdenticalSignalsHasNoDistortionMOVs(t *testing.T) {
	np := 200
	r := Aggregate(config.Default(), identicalFrames(np), np)
	assert.Equal(t, 0.0, r.WinModDiff1B)
	assert.Equal(t, 0.0, r.AvgModDiff1B)
	assert.Equal(t, 0.0, r.ADBB)
	assert.Equal(t, 0.0, r.MFPDB)
	assert.InDelta(t, 900, r.AvgBWRef, 1e-9)
	assert.InDelta(t, 500, r.EHSB, 1e-9)
}

func TestAggregateExcludesRejectedEHSFrames(t *testing.T) {
	np := 4
	f := identicalFrames(np)
	f.EHS[0] = -1
	f.EHS[1] = -1
	r := Aggregate(config.Default(), f, np)
	assert.InDelta(t, 500, r.EHSB, 1e-9)
}

func TestAggregateRelDistFramesCountsExceedances(t *testing.T) {
	np := 10
	f := identicalFrames(np)
	for i := 0; i < 3; i++ {
		f.NMRmax[i] = 10
	}
	r := Aggregate(config.Default(), f, np)
	assert.InDelta(t, 0.3, r.RelDistFramesB, 1e-9)
}
