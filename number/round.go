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

import "math/big"

// roundHalfEven returns true if 1 should be added to the absolute value of
// result. half is -1 if the discarded digits are < half the divisor, 0 if
// exactly half, or 1 if greater. Round-half-even rounds a genuine tie toward
// whichever neighbor makes the kept integer even -- evenness is a property
// of the stored integer value itself, not of the display radix, so this
// needs no radix parameter.
func roundHalfEven(result *big.Int, half int) bool {
	if half > 0 {
		return true
	}
	if half < 0 {
		return false
	}
	return result.Bit(0) == 1
}

// roundAddOne adds one unit of magnitude to b (which carries its own sign)
// and, if that carries into an extra radix digit (e.g. 99 -> 100), shaves
// the new trailing digit off and bumps *diff.
func roundAddOne(b *big.Int, diff *int64, radix int) {
	nd := numDigits(b, radix)
	if b.Sign() >= 0 {
		b.Add(b, big.NewInt(1))
	} else {
		b.Sub(b, big.NewInt(1))
	}
	if numDigits(b, radix) > nd {
		b.Quo(b, big.NewInt(int64(radix)))
		*diff++
	}
}
