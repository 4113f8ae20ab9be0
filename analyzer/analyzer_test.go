package analyzer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kmj1117/peaq-go/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(fs int, freq, amp, seconds float64) []float64 {
	n := int(seconds * float64(fs))
	x := make([]float64, n)
	for i := range x {
		x[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/float64(fs))
	}
	return x
}

func broadband(fs int, amp, seconds float64, freqs []float64) []float64 {
	n := int(seconds * float64(fs))
	x := make([]float64, n)
	for i := range x {
		s := 0.0
		for _, f := range freqs {
			s += math.Sin(2 * math.Pi * f * float64(i) / float64(fs))
		}
		x[i] = amp * s / float64(len(freqs))
	}
	return x
}

func TestSilenceVsSilenceIsTransparent(t *testing.T) {
	cfg := config.Default()
	a, err := New(cfg)
	require.NoError(t, err)

	sig := make([]float64, 10*cfg.Fs)
	require.NoError(t, a.Process(sig, sig))
	mov, err := a.Aggregate()
	require.NoError(t, err)

	assert.InDelta(t, 0.0, mov.AvgModDiff1B, 1e-6)
	assert.InDelta(t, 0.0, mov.AvgModDiff2B, 1e-6)
	assert.InDelta(t, 0.0, mov.MFPDB, 1e-6)
	assert.InDelta(t, 0.0, mov.ADBB, 1e-6)
	assert.InDelta(t, 0.0, mov.RelDistFramesB, 1e-6)
	assert.Greater(t, mov.ODG, 0.0)
}

func TestIdenticalSinusoidHasNoDistortionMOVs(t *testing.T) {
	cfg := config.Default()
	a, err := New(cfg)
	require.NoError(t, err)

	sig := sine(cfg.Fs, 1000, 0.5, 5)
	require.NoError(t, a.Process(sig, sig))
	mov, err := a.Aggregate()
	require.NoError(t, err)

	assert.InDelta(t, 0.0, mov.AvgModDiff1B, 1e-6)
	assert.InDelta(t, 0.0, mov.MFPDB, 1e-6)
	assert.InDelta(t, 0.0, mov.RelDistFramesB, 1e-6)
	assert.Greater(t, mov.ODG, 0.0)
}

func TestNoiseDegradesODGRelativeToIdentity(t *testing.T) {
	cfg := config.Default()
	ref := sine(cfg.Fs, 1000, 0.5, 3)

	rng := rand.New(rand.NewSource(7))
	noisy := make([]float64, len(ref))
	for i, v := range ref {
		noisy[i] = v + 0.05*rng.NormFloat64()
		if noisy[i] > cfg.Amax {
			noisy[i] = cfg.Amax
		}
		if noisy[i] < -cfg.Amax {
			noisy[i] = -cfg.Amax
		}
	}

	identity, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, identity.Process(ref, ref))
	identityMOV, err := identity.Aggregate()
	require.NoError(t, err)

	degraded, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, degraded.Process(ref, noisy))
	degradedMOV, err := degraded.Aggregate()
	require.NoError(t, err)

	assert.Less(t, degradedMOV.ODG, identityMOV.ODG)
	assert.Greater(t, degradedMOV.TotalNMRB, identityMOV.TotalNMRB)
}

func TestBandwidthReflectsMissingHighFrequencyContent(t *testing.T) {
	cfg := config.Default()
	a, err := New(cfg)
	require.NoError(t, err)

	ref := broadband(cfg.Fs, 0.5, 2, []float64{500, 4000, 12000, 18000})
	test := broadband(cfg.Fs, 0.5, 2, []float64{500})

	require.NoError(t, a.Process(ref, test))
	mov, err := a.Aggregate()
	require.NoError(t, err)

	assert.Less(t, mov.AvgBWTest, mov.AvgBWRef)
	assert.Less(t, mov.ODG, 0.22)
}

func TestProcessRejectsMismatchedLengths(t *testing.T) {
	cfg := config.Default()
	a, err := New(cfg)
	require.NoError(t, err)
	err = a.Process(make([]float64, 100), make([]float64, 50))
	assert.Error(t, err)
}

func TestProcessRejectsEmptyInput(t *testing.T) {
	cfg := config.Default()
	a, err := New(cfg)
	require.NoError(t, err)
	err = a.Process(nil, nil)
	assert.Error(t, err)
}

func TestProcessRejectsOutOfRangeAmplitude(t *testing.T) {
	cfg := config.Default()
	a, err := New(cfg)
	require.NoError(t, err)
	sig := make([]float64, cfg.NF*2)
	sig[0] = cfg.Amax * 2
	err = a.Process(sig, make([]float64, len(sig)))
	assert.Error(t, err)
}

func TestProcessRejectsNonFiniteSamples(t *testing.T) {
	cfg := config.Default()
	a, err := New(cfg)
	require.NoError(t, err)
	sig := make([]float64, cfg.NF*2)
	sig[3] = math.NaN()
	err = a.Process(sig, make([]float64, len(sig)))
	assert.Error(t, err)
}

func TestAggregateBeforeProcessErrors(t *testing.T) {
	cfg := config.Default()
	a, err := New(cfg)
	require.NoError(t, err)
	_, err = a.Aggregate()
	assert.Error(t, err)
}

func TestNewRejectsUnsupportedConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Fs = 44100
	_, err := New(cfg)
	assert.Error(t, err)
}
