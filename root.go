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

// Root computes the n-th root of x to targetPrecision significant radix
// digits. Every case but the degenerate ones reduces to one or two calls
// into InverseRoot, the primitive this whole package is built around.
func Root(x *number.Number, n int64, targetPrecision uint64) (*number.Number, error) {
	if n == 0 && x.Sign() == 0 {
		return nil, invalidOperation("apfloat: zeroth root of zero")
	}
	if n == 0 {
		return number.One(x.Radix()), nil
	}
	if x.Sign() == 0 {
		return number.Zero(x.Radix()), nil
	}
	if n == 1 {
		return x.WithPrecision(targetPrecision), nil
	}
	if n == math.MinInt64 {
		r1, err := Root(x, n/2, targetPrecision+DefaultSettings.ExtraPrecision)
		if err != nil {
			return nil, err
		}
		return Root(r1, 2, targetPrecision)
	}
	if n < 0 {
		return InverseRoot(x, -n, targetPrecision, nil, 0)
	}
	if n == 2 {
		inv, err := InverseRoot(x, 2, targetPrecision+DefaultSettings.ExtraPrecision, nil, 0)
		if err != nil {
			return nil, err
		}
		return new(number.Number).Mul(x, inv).WithPrecision(targetPrecision), nil
	}
	if n == 3 {
		sq := new(number.Number).Mul(x, x)
		inv, err := InverseRoot(sq, 3, targetPrecision+DefaultSettings.ExtraPrecision, nil, 0)
		if err != nil {
			return nil, err
		}
		return new(number.Number).Mul(x, inv).WithPrecision(targetPrecision), nil
	}
	e := &errNumber{}
	inv1 := e.InverseRoot(x, n, targetPrecision+DefaultSettings.ExtraPrecision)
	result := e.InverseRoot(inv1, 1, targetPrecision)
	return result, e.Err
}

// Sqrt computes the square root of x to targetPrecision significant radix
// digits.
func Sqrt(x *number.Number, targetPrecision uint64) (*number.Number, error) {
	return Root(x, 2, targetPrecision)
}

// Cbrt computes the cube root of x to targetPrecision significant radix
// digits.
func Cbrt(x *number.Number, targetPrecision uint64) (*number.Number, error) {
	return Root(x, 3, targetPrecision)
}
