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

// Fmod returns x - trunc(x/y)*y, sharing x's sign and with magnitude less
// than |y|. The quotient's truncation toward zero can be off by one unit
// in the last digit near the boundary; rather than trust that it only
// ever slips once, the correction below iterates until the remainder is
// actually within range.
func Fmod(x, y *number.Number) (*number.Number, error) {
	if y.Sign() == 0 {
		return y.Clone(), nil
	}
	if x.Sign() == 0 {
		return x.Clone(), nil
	}
	absX := new(number.Number).Abs(x)
	absY := new(number.Number).Abs(y)
	if absX.Cmp(absY) < 0 {
		return x.Clone(), nil
	}

	deltaScale := x.Exponent() - y.Exponent()
	if x.Precision() != number.Unlimited && int64(x.Precision()) <= deltaScale {
		return number.Zero(x.Radix()), nil
	}

	ws := deltaScale
	if ws < 0 {
		ws = 0
	}
	workingPrecision := uint64(ws) + DefaultSettings.ExtraPrecision

	q, err := new(number.Number).Quo(x, y, workingPrecision)
	if err != nil {
		return nil, err
	}
	q = new(number.Number).TruncateToInteger(q)

	remainder := new(number.Number).Sub(x, new(number.Number).Mul(q, y))
	for {
		absRem := new(number.Number).Abs(remainder)
		if absRem.Cmp(absY) < 0 {
			break
		}
		if remainder.Sign() >= 0 {
			remainder = new(number.Number).Sub(remainder, absY)
		} else {
			remainder = new(number.Number).Add(remainder, absY)
		}
	}

	finalPrecision := x.Precision()
	if yp := y.Precision(); yp != number.Unlimited {
		extended := yp + uint64(ws)
		finalPrecision = minFinite(finalPrecision, extended)
	}
	return remainder.WithPrecision(finalPrecision), nil
}
