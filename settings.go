// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package apfloat

import "sync/atomic"

// Settings carries the tunable constants the kernel's iterative engines
// depend on, so they live in one place instead of as magic numbers
// scattered across inverseroot.go, agm.go, and pi.go.
type Settings struct {
	// ExtraPrecision is the safety margin added to a working precision
	// before an iterative computation starts, to absorb round-off in
	// intermediate steps.
	ExtraPrecision uint64
	// ConvergingDigits bounds how many digits of agreement AGM's
	// pre-convergence phase waits for before switching to its quadratic
	// phase.
	ConvergingDigits uint64
}

// DefaultSettings is the zero-configuration default every exported function
// uses unless told otherwise.
var DefaultSettings = Settings{
	ExtraPrecision:   10,
	ConvergingDigits: 1000,
}

var defaultRadix int32 = 10

// DefaultRadix returns the process-wide default radix consulted by
// functions like Pi that can be called without an explicit radix.
func DefaultRadix() int {
	return int(atomic.LoadInt32(&defaultRadix))
}

// SetDefaultRadix sets the process-wide default radix. It panics if radix
// is outside [2,36], the same range Number construction enforces.
func SetDefaultRadix(radix int) {
	if radix < 2 || radix > 36 {
		panic("apfloat: invalid default radix")
	}
	atomic.StoreInt32(&defaultRadix, int32(radix))
}
