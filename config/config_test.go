package config

import (
	"testing"

	"github.com/kmj1117/peaq-go/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsUnsupportedFs(t *testing.T) {
	cfg := Default()
	cfg.Fs = 44100
	err := cfg.Validate()
	require.Error(t, err)
	assert.IsType(t, &errs.ConfigError{}, err)
}

func TestValidateRejectsUnsupportedNF(t *testing.T) {
	cfg := Default()
	cfg.NF = 1024
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveAmax(t *testing.T) {
	cfg := Default()
	cfg.Amax = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsFcLOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.FcL = float64(cfg.Fs) / 2
	assert.Error(t, cfg.Validate())
}

func TestNadvAndFss(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1024, cfg.Nadv())
	assert.InDelta(t, 46.875, cfg.Fss(), 1e-6)
}
