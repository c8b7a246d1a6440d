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

// float64Mantissa is the number of bits float64's mantissa can represent
// exactly (52 stored + the implicit leading 1).
const float64Mantissa = 53

// doublePrecision returns the number of radix-r digits representable
// without loss by a native float64, used to seed Newton iterations and to
// decide when an argument is small enough for a Taylor shortcut.
func doublePrecision(radix int) uint64 {
	d := float64Mantissa / (math.Log(float64(radix)) / math.Ln2)
	if d < 1 {
		d = 1
	}
	return uint64(d)
}

// extendPrecision returns p plus the configured safety margin, the working
// precision an iterative routine should actually compute at so that
// round-off in intermediate steps doesn't erode the final requested digits.
func extendPrecision(p uint64, s Settings) uint64 {
	if p == number.Unlimited {
		return p
	}
	return p + s.ExtraPrecision
}

// ensureMinPrecision extends x to at least p significant digits, never
// truncating x if it already carries more.
func ensureMinPrecision(x *number.Number, p uint64) *number.Number {
	if x.Precision() != number.Unlimited && x.Precision() >= p {
		return x
	}
	return x.WithPrecision(p)
}

// matchPrecisions plans the precisions at which a*b and c*d should each be
// computed for a fused multiply-add so that no digit is spent on a product
// that would not survive the final addition. ea and eb are the exponents
// the two products would land at (a.Exponent()+b.Exponent() and
// c.Exponent()+d.Exponent()); pOut is the caller's requested output
// precision. It returns the precision to use for each product and for the
// final result; a returned product precision of 0 means that product
// should be treated as zero.
func matchPrecisions(ea, eb int64, pOut uint64) (pAB, pCD, pFinal uint64) {
	if pOut == number.Unlimited {
		return number.Unlimited, number.Unlimited, number.Unlimited
	}
	diff := ea - eb
	if diff < 0 {
		diff = -diff
	}
	// The smaller-magnitude product only contributes digits that survive
	// the addition if its exponent isn't swamped by the larger one.
	if uint64(diff) > pOut {
		if ea >= eb {
			return pOut, 0, pOut
		}
		return 0, pOut, pOut
	}
	extra := uint64(diff)
	return pOut + extra, pOut + extra, pOut
}
