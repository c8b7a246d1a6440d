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

import (
	"math"

	"github.com/apfloat-go/apfloat/number"
)

// InverseRoot computes x^(-1/n) to targetPrecision significant radix
// digits, the central primitive every other transcendental routine in this
// package is built from. initialGuess/initialGuessPrecision let a caller
// that already has a nearby value (e.g. the pi engine reusing a previous
// invRoot(640320)) skip the native-float64 seeding step; pass nil/0 to let
// InverseRoot seed itself.
func InverseRoot(
	x *number.Number, n int64, targetPrecision uint64, initialGuess *number.Number, initialGuessPrecision uint64,
) (*number.Number, error) {
	if x.Sign() == 0 {
		return nil, invalidOperation("apfloat: inverse root of zero")
	}
	if n == 0 {
		return number.One(x.Radix()), nil
	}
	if n%2 == 0 && x.Sign() < 0 {
		return nil, invalidOperation("apfloat: even inverse root of a negative number would be complex")
	}
	if targetPrecision == 0 {
		return nil, unsupported("apfloat: invalid target precision")
	}
	if targetPrecision == number.Unlimited {
		return nil, unsupported("apfloat: inverse root requires finite target precision")
	}
	if isOne(x) {
		return x.WithPrecision(targetPrecision), nil
	}
	if n == math.MinInt64 {
		half := n / 2
		r1, err := InverseRoot(x, half, targetPrecision+DefaultSettings.ExtraPrecision, nil, 0)
		if err != nil {
			return nil, err
		}
		return Root(r1, 2, targetPrecision)
	}
	if n < 0 {
		r1, err := InverseRoot(x, -n, targetPrecision, nil, 0)
		if err != nil {
			return nil, err
		}
		return InverseRoot(r1, 1, targetPrecision, nil, 0)
	}

	radix := x.Radix()

	var y *number.Number
	var seedPrecision uint64
	if initialGuess != nil && initialGuessPrecision > 0 {
		y = initialGuess.Clone()
		seedPrecision = initialGuessPrecision
	} else {
		y, seedPrecision = seedInverseRoot(x, n, radix)
	}
	if seedPrecision >= targetPrecision {
		return newtonRefine(x, n, y, targetPrecision, targetPrecision)
	}

	// Count doublings k such that seedPrecision*2^k >= targetPrecision, and
	// pick a precising iteration m somewhere past the midpoint of the
	// schedule: once doubling has produced more raw precision than the
	// extra safety margin can hide, a second back-to-back Newton step at
	// that same working precision cleans up the accumulated round-off
	// before later iterations carry it forward.
	k := uint64(0)
	p := seedPrecision
	for p < targetPrecision {
		p *= 2
		k++
	}
	if k == 0 {
		k = 1
	}
	m := uint64(1)
	p = seedPrecision
	for i := k; i >= 1; i-- {
		p *= 2
		if p > DefaultSettings.ExtraPrecision && p-DefaultSettings.ExtraPrecision < targetPrecision {
			m = i
		}
	}

	for i := k; i >= 1; i-- {
		workPrecision := seedPrecision
		for j := uint64(0); j < (k - i + 1); j++ {
			workPrecision *= 2
		}
		if workPrecision > targetPrecision {
			workPrecision = targetPrecision
		}
		y = y.WithPrecision(minUint64(workPrecision, targetPrecision))

		var err error
		y, err = newtonStep(x, n, y, workPrecision, i != m)
		if err != nil {
			return nil, err
		}
		if i == m {
			y, err = newtonStep(x, n, y, workPrecision, false)
			if err != nil {
				return nil, err
			}
		}
	}
	return y.WithPrecision(targetPrecision), nil
}

// newtonStep performs y <- y + y*(1 - x*y^n)/n at workPrecision. When
// halveT is true, t = 1 - x*y^n is rounded to half of workPrecision once
// it has been formed (t is small, so spending full precision on it wastes
// work until the final iterations).
func newtonStep(x *number.Number, n int64, y *number.Number, workPrecision uint64, halveT bool) (*number.Number, error) {
	tPrecision := workPrecision
	if halveT && tPrecision > 1 {
		tPrecision /= 2
	}
	yn, err := Pow(y, n)
	if err != nil {
		return nil, err
	}
	xyn := new(number.Number).Mul(x, yn).WithPrecision(workPrecision)
	t := new(number.Number).Sub(number.One(x.Radix()).WithPrecision(workPrecision), xyn).WithPrecision(tPrecision)
	correction, err := new(number.Number).QuoInt64(new(number.Number).Mul(y, t), n, workPrecision)
	if err != nil {
		return nil, err
	}
	return new(number.Number).Add(y, correction), nil
}

// newtonRefine runs a single full-precision Newton step, used when the
// seed (or caller-supplied initial guess) already meets or exceeds the
// target precision and only a cleanup pass is needed.
func newtonRefine(x *number.Number, n int64, y *number.Number, workPrecision, targetPrecision uint64) (*number.Number, error) {
	y, err := newtonStep(x, n, y.WithPrecision(workPrecision), workPrecision, false)
	if err != nil {
		return nil, err
	}
	return y.WithPrecision(targetPrecision), nil
}

// seedInverseRoot builds a native-float64 seed for x^(-1/n), handling
// scales far outside float64's exponent range by factoring x's scale (the
// exponent of its leading digit, plus one) as n*scaleQuot + scaleRem: x is
// divided by radix^(n*scaleQuot) before the float64 computation, leaving
// only scaleRem for float64 to carry, and the float64 result is multiplied
// by radix^-scaleQuot after it.
func seedInverseRoot(x *number.Number, n int64, radix int) (*number.Number, uint64) {
	scale := x.Exponent() + x.NumDigits()
	scaleQuot := scale / n
	scaleRem := scale - n*scaleQuot

	rescaled, err := Scale(x, scaleRem-scale)
	if err != nil {
		rescaled = x
	}
	val := rescaled.Float64()
	y0 := math.Copysign(math.Pow(math.Abs(val), -1.0/float64(n)), val)

	digits := doublePrecision(radix)
	seed := number.FromFloat64(y0, radix, digits)
	seed, err = Scale(seed, -scaleQuot)
	if err != nil {
		return number.FromFloat64(y0, radix, digits), digits
	}
	return seed, digits
}

func isOne(x *number.Number) bool {
	return x.Cmp(number.One(x.Radix())) == 0
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
