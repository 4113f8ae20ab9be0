package movs

import (
	"math"

	"github.com/kmj1117/peaq-go/config"
	"gonum.org/v1/gonum/floats"
)

const (
	bwFreqRef  = 21586.0
	bwFreqLow  = 8109.0
	bwFRdB     = 10.0
	bwFTdB     = 5.0
)

// Bandwidth computes per-frame bandwidth MOVs from the un-weighted
// squared-magnitude spectra of the reference and test signals.
type Bandwidth struct {
	kx, kl int
}

// NewBandwidth precomputes the fixed bin indices kx, kl for cfg.
func NewBandwidth(cfg config.Config) *Bandwidth {
	fs := float64(cfg.Fs)
	nf := float64(cfg.NF)
	return &Bandwidth{
		kx: int(math.Round(nf * bwFreqRef / fs)),
		kl: int(math.Round(nf * bwFreqLow / fs)),
	}
}

// Compute returns BWRef and BWTest for one frame's X2R, X2T (each of
// length NF/2+1).
func (b *Bandwidth) Compute(x2R, x2T []float64) (bwRef, bwTest float64) {
	half := len(x2T) - 1
	xth := floats.Max(x2T[b.kx:half])
	thrR := math.Pow(10, bwFRdB/10) * xth
	thrT := math.Pow(10, bwFTdB/10) * xth

	foundRef := 0
	for k := b.kl + 1; k < b.kx; k++ {
		if x2R[k] >= thrR {
			foundRef = k
		}
	}
	bwRef = float64(foundRef) + 1

	foundTest := 0
	limit := int(bwRef) - 1
	for k := 0; k < limit; k++ {
		if x2T[k] >= thrT {
			foundTest = k
		}
	}
	bwTest = float64(foundTest) + 1
	return bwRef, bwTest
}
