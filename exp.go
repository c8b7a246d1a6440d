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
	"strconv"

	"github.com/apfloat-go/apfloat/number"
)

// Exp returns e^x at x's own tracked precision, by Newton iteration on log
// (the inverse function this package already has a precise AGM-based
// implementation of), except for arguments of very small magnitude, for
// which it returns the Taylor shortcut 1+x. In that case the result's
// precision is capped at -2*scale digits (scale being the exponent of x's
// leading digit, plus one), the digits 1+x gets right.
func Exp(x *number.Number) (*number.Number, error) {
	radix := x.Radix()
	if x.Sign() == 0 {
		return number.One(radix), nil
	}
	targetPrecision := x.Precision()
	if targetPrecision == number.Unlimited {
		return nil, unsupported("apfloat: exp requires finite precision")
	}

	lnRadix := math.Log(float64(radix))
	xf := x.Float64()
	if xf >= float64(math.MaxInt64)*lnRadix {
		return nil, overflow("apfloat: exp overflow")
	}

	scale := x.Exponent() + x.NumDigits()
	dp := doublePrecision(radix)
	if scale <= math.MinInt64/2+int64(DefaultSettings.ExtraPrecision) {
		one := number.One(radix).WithPrecision(targetPrecision)
		return new(number.Number).Add(one, x).WithPrecision(targetPrecision), nil
	}
	if scale < -int64(dp)/2 {
		taylorPrecision := uint64(-2 * scale)
		one := number.One(radix).WithPrecision(taylorPrecision)
		return new(number.Number).Add(one, x).WithPrecision(minUint64(targetPrecision, taylorPrecision)), nil
	}

	ratio := xf / lnRadix
	ip := int64(math.Floor(ratio))
	fp := ratio - float64(ip)
	seedVal := math.Pow(float64(radix), fp)
	y := number.FromFloat64(seedVal, radix, dp)
	y, err := Scale(y, ip)
	if err != nil {
		return nil, err
	}

	digitsOfIP := uint64(len(strconv.FormatInt(absInt64(ip), 10)))
	seedPrecision := uint64(1)
	if dp > digitsOfIP {
		seedPrecision = dp - digitsOfIP
	}

	if _, err := logRadix(targetPrecision+DefaultSettings.ExtraPrecision, radix); err != nil {
		return nil, err
	}

	if seedPrecision >= targetPrecision {
		return expNewtonStep(y, x, targetPrecision)
	}

	k := uint64(0)
	p := seedPrecision
	for p < targetPrecision {
		p *= 2
		k++
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
		y, err = expNewtonStep(y, x, workPrecision)
		if err != nil {
			return nil, err
		}
		if i == m {
			y, err = expNewtonStep(y, x, workPrecision)
			if err != nil {
				return nil, err
			}
		}
	}
	return y.WithPrecision(targetPrecision), nil
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// expNewtonStep performs one y <- y + y*(x - log(y)) correction at
// workPrecision.
func expNewtonStep(y, x *number.Number, workPrecision uint64) (*number.Number, error) {
	yAtPrec := y.WithPrecision(workPrecision)
	t, err := Log(yAtPrec)
	if err != nil {
		return nil, err
	}
	diff := new(number.Number).Sub(x.WithPrecision(workPrecision), t)
	correction := new(number.Number).Mul(yAtPrec, diff).WithPrecision(workPrecision)
	return new(number.Number).Add(yAtPrec, correction), nil
}
