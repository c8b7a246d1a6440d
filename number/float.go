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

package number

import (
	"math"
	"math/big"
)

// FromFloat64 converts a native float64 into a Number in the given radix,
// keeping up to digits significant radix digits (or a safe default if
// digits is 0 or Unlimited). This is the seed step every Newton iteration
// in the kernel depends on: a lossy but cheap first approximation that
// later doublings refine.
func FromFloat64(v float64, radix int, digits uint64) *Number {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Zero(radix)
	}
	if digits == 0 || digits == Unlimited {
		digits = 17
	}
	neg := math.Signbit(v)
	av := math.Abs(v)

	e := int64(math.Floor(math.Log(av)/math.Log(float64(radix)))) - int64(digits) + 1

	const workPrec = 200
	bv := new(big.Float).SetPrec(workPrec).SetFloat64(av)
	scale := new(big.Float).SetPrec(workPrec).SetInt(radixPow(radix, absInt64(e)))
	scaled := new(big.Float).SetPrec(workPrec)
	if e >= 0 {
		scaled.Quo(bv, scale)
	} else {
		scaled.Mul(bv, scale)
	}
	coeff, _ := scaled.Int(nil)
	if coeff.Sign() == 0 {
		return Zero(radix)
	}
	if neg {
		coeff.Neg(coeff)
	}
	n := &Number{exponent: e, radix: radix, precision: digits}
	n.coeff.SetBig(coeff)
	return n
}
