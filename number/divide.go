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
	"math/big"

	"github.com/pkg/errors"
)

// Quo sets the receiver to the quotient x/y computed to precision
// significant radix digits and returns it. precision must be > 0 and
// finite; the kernel is responsible for picking a working precision before
// calling down into Number, since division cannot be exact at Unlimited
// precision.
//
// This is a long-division algorithm generalized from a hardcoded base 10
// to an arbitrary radix.
func (n *Number) Quo(x, y *Number, precision uint64) (*Number, error) {
	if x.radix != y.radix {
		panic("number: mixed radix operation")
	}
	if precision == 0 || precision == Unlimited {
		return nil, errors.New("number: Quo requires a finite, positive precision")
	}
	radix := x.radix
	bigRadix := big.NewInt(int64(radix))

	if y.Sign() == 0 {
		if x.Sign() == 0 {
			return nil, errors.New("number: division of zero by zero is undefined")
		}
		return nil, errors.New("number: division by zero")
	}

	var adjust int64
	quo := new(big.Int)
	var diff int64

	if x.Sign() != 0 {
		dividend := new(big.Int).Abs(x.coeff.inner())
		divisor := new(big.Int).Abs(y.coeff.inner())

		for dividend.Cmp(divisor) < 0 {
			dividend.Mul(dividend, bigRadix)
			adjust++
		}
		for tmp := new(big.Int); ; {
			tmp.Mul(divisor, bigRadix)
			if dividend.Cmp(tmp) < 0 {
				break
			}
			divisor.Set(tmp)
			adjust--
		}

		prec := int64(precision)
		one := big.NewInt(1)
		for {
			for divisor.Cmp(dividend) <= 0 {
				dividend.Sub(dividend, divisor)
				quo.Add(quo, one)
			}
			if (dividend.Sign() == 0 && adjust >= 0) || numDigits(quo, radix) == prec {
				break
			}
			quo.Mul(quo, bigRadix)
			dividend.Mul(dividend, bigRadix)
			adjust++
		}

		if dividend.Sign() != 0 {
			dividend.Mul(dividend, big.NewInt(2))
			half := dividend.Cmp(divisor)
			if roundHalfEven(quo, half) {
				roundAddOne(quo, &diff, radix)
			}
		}

		if (x.Sign() < 0) != (y.Sign() < 0) {
			quo.Neg(quo)
		}
	}

	n.radix = radix
	n.coeff.SetBig(quo)
	n.exponent = x.exponent - y.exponent - adjust + diff
	n.precision = precision
	return n, nil
}

// QuoInt64 sets the receiver to x divided by a small integer d (as used by
// the inverse-root Newton step y <- y + y*t/n) at the given precision, and
// returns it.
func (n *Number) QuoInt64(x *Number, d int64, precision uint64) (*Number, error) {
	return n.Quo(x, New(d, 0, x.radix), precision)
}
