// Copyright (c) 2026, The PEAQ-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs defines the error kinds the PEAQ core distinguishes.
// Numeric underflow and rejected EHS frames are not modeled as errors:
// the former is handled locally by flooring at Emin, the latter is
// encoded as EHS = -1 and filtered during aggregation.
package errs

import "fmt"

// ConfigError reports a Config that the hardcoded band tables and
// constants cannot support.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("peaq: config error: %s", e.Reason)
}

// InputError reports malformed reference/test signal buffers.
// Process returns InputError before mutating any analyzer state.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("peaq: input error: %s", e.Reason)
}

// UnsupportedError reports a request for a code path this core does
// not implement (the Advanced model, or the inverse-FFT direction).
type UnsupportedError struct {
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("peaq: unsupported: %s", e.Feature)
}
