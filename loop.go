// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file is adapted from https://github.com/robpike/ivy/blob/master/value/loop.go.

package apfloat

import (
	"github.com/apfloat-go/apfloat/number"
	"github.com/pkg/errors"
)

// loop detects stalled or non-converging iteration in the AGM, which uses
// one checker across both its pre-convergence and its doubling phase; it
// is the only caller.
type loop struct {
	name          string
	i             uint64
	maxIterations uint64
	stallCount    int
	prevZ         *number.Number
	prevDelta     *number.Number
}

// newLoop returns a new loop checker for a computation named name, bounded
// to maxIterations before giving up.
func newLoop(name string, radix int, maxIterations uint64) *loop {
	return &loop{
		name:          name,
		maxIterations: maxIterations,
		prevZ:         number.Zero(radix),
		prevDelta:     number.Zero(radix),
	}
}

// done reports whether the loop has converged on z. If it has not
// converged after maxIterations, it returns an error.
func (l *loop) done(z *number.Number) (bool, error) {
	delta := new(number.Number).Sub(l.prevZ, z)
	if delta.Sign() == 0 {
		return true, nil
	}
	if delta.Sign() < 0 {
		delta.Neg(delta)
	}
	if delta.Cmp(l.prevDelta) == 0 {
		l.stallCount++
		if l.stallCount > 3 {
			return true, nil
		}
	} else {
		l.stallCount = 0
	}
	l.i++
	if l.i == l.maxIterations {
		return false, errors.Errorf("%s: did not converge after %d iterations", l.name, l.maxIterations)
	}
	l.prevDelta.Set(delta)
	l.prevZ.Set(z)
	return false, nil
}
