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

import "github.com/apfloat-go/apfloat/number"

// MultiplyAdd returns a*b + c*d, computing each product only to the
// precision that can still influence the sum.
func MultiplyAdd(a, b, c, d *number.Number) (*number.Number, error) {
	return fusedMultiply(a, b, c, d, false)
}

// MultiplySubtract returns a*b - c*d, computing each product only to the
// precision that can still influence the difference.
func MultiplySubtract(a, b, c, d *number.Number) (*number.Number, error) {
	return fusedMultiply(a, b, c, d, true)
}

func fusedMultiply(a, b, c, d *number.Number, subtract bool) (*number.Number, error) {
	radix := a.Radix()
	pOut := minFinite(minFinite(a.Precision(), b.Precision()), minFinite(c.Precision(), d.Precision()))

	pAB, pCD, pFinal := matchPrecisions(a.Exponent()+b.Exponent(), c.Exponent()+d.Exponent(), pOut)

	ab := number.Zero(radix)
	if pAB != 0 {
		ab = new(number.Number).Mul(a, b)
		if pAB != number.Unlimited {
			ab = ab.WithPrecision(pAB)
		}
	}

	cd := number.Zero(radix)
	if pCD != 0 {
		cd = new(number.Number).Mul(c, d)
		if pCD != number.Unlimited {
			cd = cd.WithPrecision(pCD)
		}
	}

	var result *number.Number
	if subtract {
		result = new(number.Number).Sub(ab, cd)
	} else {
		result = new(number.Number).Add(ab, cd)
	}

	if result.Sign() == 0 || pFinal == number.Unlimited {
		return result, nil
	}
	return result.WithPrecision(pFinal), nil
}
