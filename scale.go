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

// Scale returns x * radix^k. Since Number stores an explicit radix
// exponent, this is exact for any k: it never costs a multiplication, only
// an exponent addition. The one hazard is k landing near the int64
// extremes, where x.Exponent()+k could itself overflow; in that case the
// shift is split into two halves that are each safe to add.
func Scale(x *number.Number, k int64) (*number.Number, error) {
	if k == 0 || x.Sign() == 0 {
		return x.Clone(), nil
	}
	if newExp, ok := addInt64(x.Exponent(), k); ok {
		return x.ScaleExponent(newExp - x.Exponent()), nil
	}
	k1 := k / 2
	k2 := k - k1
	y, err := Scale(x, k1)
	if err != nil {
		return nil, err
	}
	return Scale(y, k2)
}

// addInt64 returns a+b and whether that sum did not overflow int64.
func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// Pow computes x^n for an integer exponent n by binary exponentiation,
// first squaring out n's trailing zero bits before any multiplication into
// the accumulator, then proceeding right-to-left.
func Pow(x *number.Number, n int64) (*number.Number, error) {
	if x.Sign() == 0 && n == 0 {
		return nil, invalidOperation("apfloat: zero to the power zero")
	}
	if n == 0 {
		return number.One(x.Radix()).WithPrecision(x.Precision()), nil
	}
	if n == math.MinInt64 {
		half, err := Pow(x, n/2)
		if err != nil {
			return nil, err
		}
		squared := new(number.Number).Mul(half, half)
		if x.Precision() == number.Unlimited {
			return squared, nil
		}
		return squared.WithPrecision(x.Precision()), nil
	}
	if n < 0 {
		if x.Precision() == number.Unlimited {
			return nil, unsupported("apfloat: negative integer power requires finite precision")
		}
		inv, err := InverseRoot(x, 1, x.Precision(), nil, 0)
		if err != nil {
			return nil, err
		}
		return Pow(inv, -n)
	}

	// Each squaring is rounded to a working precision as it goes: left
	// unrounded, the coefficient would double in digit count on every one
	// of up to 63 squarings, long before the loop finishes.
	precision := x.Precision()
	workingPrecision := precision
	if workingPrecision != number.Unlimited {
		workingPrecision += DefaultSettings.ExtraPrecision
	}
	roundStep := func(v *number.Number) *number.Number {
		if workingPrecision == number.Unlimited {
			return v
		}
		return v.WithPrecision(workingPrecision)
	}

	base := x.Clone()
	for n&1 == 0 {
		base = roundStep(new(number.Number).Mul(base, base))
		n >>= 1
	}
	result := base.Clone()
	n >>= 1
	for n > 0 {
		base = roundStep(new(number.Number).Mul(base, base))
		if n&1 == 1 {
			result = roundStep(new(number.Number).Mul(result, base))
		}
		n >>= 1
	}
	if precision == number.Unlimited {
		return result, nil
	}
	return result.WithPrecision(precision), nil
}
