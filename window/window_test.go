package window

import (
	"testing"

	"github.com/kmj1117/peaq-go/config"
	"github.com/stretchr/testify/assert"
)

func TestNewProducesSymmetricWindow(t *testing.T) {
	w := New(config.Default())
	require := assert.New(t)
	require.Len(w.Hw, config.Default().NF)
	n := len(w.Hw)
	for i := 0; i < n/2; i++ {
		require.InDelta(w.Hw[i], w.Hw[n-1-i], 1e-9)
	}
	require.Greater(w.GL, 0.0)
}

func TestApplyZeroPadsShortFrames(t *testing.T) {
	w := New(config.Default())
	src := []float64{1, 1, 1}
	dst := make([]float64, len(w.Hw))
	w.Apply(dst, src)
	assert.Equal(t, 0.0, dst[len(dst)-1])
	assert.NotEqual(t, 0.0, dst[1])
}
