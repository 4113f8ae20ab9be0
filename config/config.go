// Copyright (c) 2026, The PEAQ-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the PEAQ analyzer's configuration and its
// validation against the hardcoded constant tables: a small struct of
// fields plus a Default/Validate method pair.
package config

import "github.com/kmj1117/peaq-go/errs"

// Config is the analyzer's Fs/NF/Amax/Lp/fcL configuration. All other
// quantities are derived from these.
type Config struct {
	// Fs is the sample rate in Hz. Only 48000 is supported: the
	// critical-band tables and the NL=256 EHS window are hardcoded
	// for it.
	Fs int
	// NF is the analysis frame length in samples. Only 2048 is
	// supported, for the same reason as Fs.
	NF int
	// Amax is the peak amplitude a full-scale sample can reach.
	Amax float64
	// Lp is the calibration SPL, in dB, that a full-scale sinusoid at
	// FcL produces.
	Lp float64
	// FcL is the calibration frequency in Hz.
	FcL float64

	// NormalizeAmplitude, if true, rescales both signals by
	// Amax/max(|sigR|) before framing. Reference implementations of
	// this algorithm are known to compute that scale factor but never
	// apply it; this flag exposes genuine normalization as an opt-in.
	NormalizeAmplitude bool

	// PDTruncateEdB, if true, truncates edB to an integer before
	// computing PD_q, matching a quirk some reference implementations
	// carry over from fixed-point arithmetic. Default false uses the
	// real-valued edB.
	PDTruncateEdB bool
}

// Default returns the recommended default configuration.
func Default() Config {
	return Config{
		Fs:   48000,
		NF:   2048,
		Amax: 1.0,
		Lp:   92.0,
		FcL:  1019.5,
	}
}

// Validate checks cfg against the hardcoded tables this core ships.
// Fs and NF must match the Basic band tables exactly; any other
// combination is a ConfigError because the band edges, EIN, W2, and
// the NL=256 EHS window length are all derived only for Fs=48000,
// NF=2048.
func (c Config) Validate() error {
	if c.Fs != 48000 {
		return &errs.ConfigError{Reason: "Fs must be 48000: the critical-band tables are hardcoded for this rate"}
	}
	if c.NF != 2048 {
		return &errs.ConfigError{Reason: "NF must be 2048: the EHS window length and spreading tables are derived for this frame size"}
	}
	if c.NF%2 != 0 {
		return &errs.ConfigError{Reason: "NF must be even"}
	}
	if c.Amax <= 0 {
		return &errs.ConfigError{Reason: "Amax must be positive"}
	}
	if c.Lp <= 0 {
		return &errs.ConfigError{Reason: "Lp must be positive"}
	}
	if c.FcL <= 0 || c.FcL >= float64(c.Fs)/2 {
		return &errs.ConfigError{Reason: "FcL must lie strictly between 0 and Fs/2"}
	}
	return nil
}

// Nadv is the hop size in samples (NF/2).
func (c Config) Nadv() int { return c.NF / 2 }

// Fss is the frame rate in Hz (Fs/Nadv).
func (c Config) Fss() float64 { return float64(c.Fs) / float64(c.Nadv()) }
