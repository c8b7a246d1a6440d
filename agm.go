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
	"github.com/apfloat-go/apfloat/number"
)

// Agm computes the arithmetic-geometric mean of a and b, the engine the
// log routine builds on.
func Agm(a, b *number.Number) (*number.Number, error) {
	if a.Sign() == 0 || b.Sign() == 0 {
		return number.Zero(a.Radix()), nil
	}
	if a.Precision() == number.Unlimited && b.Precision() == number.Unlimited {
		return nil, unsupported("apfloat: agm requires at least one finite-precision operand")
	}

	workingPrecision := extendPrecision(minFinite(a.Precision(), b.Precision()), DefaultSettings)
	target := maxFinite(a.Precision(), b.Precision())

	x := ensureMinPrecision(a.Clone(), workingPrecision)
	y := ensureMinPrecision(b.Clone(), workingPrecision)

	converging := DefaultSettings.ConvergingDigits
	if half := workingPrecision / 2; half < converging {
		converging = half
	}

	l := newLoop("agm", a.Radix(), 10+4*workingPrecision)

	// Pre-convergence phase: plain linear convergence until the two
	// values agree on enough leading digits for the quadratic phase to
	// take over.
	for uint64(x.EqualDigits(y)) < converging {
		nx, ny, err := agmStep(x, y, workingPrecision)
		if err != nil {
			return nil, err
		}
		x, y = nx, ny
		if done, err := l.done(x); err != nil {
			return nil, err
		} else if done {
			break
		}
	}

	// Quadratic phase: the agreement count roughly doubles each
	// iteration now, so few further steps are needed to reach
	// workingPrecision/2 digits of agreement.
	half := workingPrecision / 2
	for uint64(x.EqualDigits(y)) <= half {
		nx, ny, err := agmStep(x, y, workingPrecision)
		if err != nil {
			return nil, err
		}
		x, y = nx, ny
		if done, err := l.done(x); err != nil {
			return nil, err
		} else if done {
			break
		}
	}

	result := new(number.Number).Add(x, y)
	result, err := result.QuoInt64(result, 2, workingPrecision)
	if err != nil {
		return nil, err
	}
	return result.WithPrecision(target), nil
}

func agmStep(x, y *number.Number, workingPrecision uint64) (*number.Number, *number.Number, error) {
	sum := new(number.Number).Add(x, y)
	na, err := new(number.Number).QuoInt64(sum, 2, workingPrecision)
	if err != nil {
		return nil, nil, err
	}
	product := new(number.Number).Mul(x, y)
	nb, err := Sqrt(product, workingPrecision)
	if err != nil {
		return nil, nil, err
	}
	return ensureMinPrecision(na, workingPrecision), ensureMinPrecision(nb, workingPrecision), nil
}

func minFinite(a, b uint64) uint64 {
	if a == number.Unlimited {
		return b
	}
	if b == number.Unlimited {
		return a
	}
	if a < b {
		return a
	}
	return b
}

func maxFinite(a, b uint64) uint64 {
	if a == number.Unlimited || b == number.Unlimited {
		return number.Unlimited
	}
	if a > b {
		return a
	}
	return b
}
