package movs

import (
	"testing"

	"github.com/kmj1117/peaq-go/constants"
	"github.com/stretchr/testify/assert"
)

func TestPDZeroForIdenticalChannels(t *testing.T) {
	var ehsR, ehsT [constants.Nc]float64
	for i := range ehsR {
		ehsR[i] = 100
		ehsT[i] = 100
	}
	pc, qc := PD(&ehsR, &ehsT, false)
	assert.InDelta(t, 0, pc, 1e-9)
	assert.InDelta(t, 0, qc, 1e-6)
}

func TestPDGrowsWithChannelDivergence(t *testing.T) {
	var ehsR, ehsT [constants.Nc]float64
	for i := range ehsR {
		ehsR[i] = 100
		ehsT[i] = 1
	}
	pc, qc := PD(&ehsR, &ehsT, false)
	assert.Greater(t, pc, 0.0)
	assert.Greater(t, qc, 0.0)
}

func TestPDTruncateEdBChangesQ(t *testing.T) {
	var ehsR, ehsT [constants.Nc]float64
	for i := range ehsR {
		ehsR[i] = 137
		ehsT[i] = 9
	}
	_, qcReal := PD(&ehsR, &ehsT, false)
	_, qcTrunc := PD(&ehsR, &ehsT, true)
	assert.NotEqual(t, qcReal, qcTrunc)
}
