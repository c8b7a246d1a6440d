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

// Log returns the natural logarithm of x at x's own tracked precision.
func Log(x *number.Number) (*number.Number, error) {
	if x.Sign() <= 0 {
		return nil, invalidOperation("apfloat: log of a non-positive number")
	}
	if isOne(x) {
		return number.Zero(x.Radix()), nil
	}
	precision := x.Precision()
	if precision == number.Unlimited {
		return nil, unsupported("apfloat: log requires finite precision")
	}
	radix := x.Radix()

	// Arguments near 1 cancel almost entirely in rawLog's AGM difference,
	// so the working precision needs enough extra digits to still leave
	// `precision` trustworthy ones after that cancellation.
	extra := uint64(x.EqualDigits(number.One(radix)))
	workingPrecision := precision + extra + DefaultSettings.ExtraPrecision

	s := x.Exponent() + x.NumDigits()
	m, err := Scale(x, -s)
	if err != nil {
		return nil, err
	}
	m = m.WithPrecision(workingPrecision)

	raw, err := rawLog(m, workingPrecision)
	if err != nil {
		return nil, err
	}
	if s == 0 {
		return raw.WithPrecision(precision), nil
	}

	lr, err := logRadix(workingPrecision, radix)
	if err != nil {
		return nil, err
	}
	term := new(number.Number).Mul(number.New(s, 0, radix), lr)
	result := new(number.Number).Add(raw, term)
	return result.WithPrecision(precision), nil
}

// rawLog computes log(x) via the AGM, valid for any positive x but most
// accurate for 1/radix <= x < 1 (the range Log and logRadix call it with).
func rawLog(x *number.Number, precision uint64) (*number.Number, error) {
	radix := x.Radix()
	n := int64(precision/2 + 25)

	one := number.One(radix).WithPrecision(precision)
	e, err := Scale(one, -n)
	if err != nil {
		return nil, err
	}
	xPrime, err := Scale(x, -n)
	if err != nil {
		return nil, err
	}
	e = e.WithPrecision(precision)
	xPrime = xPrime.WithPrecision(precision)

	eb := &errNumber{}
	agm1 := eb.Agm(one, e)
	agm2 := eb.Agm(one, xPrime)
	if eb.Err != nil {
		return nil, eb.Err
	}
	pi, err := PiRadix(precision, radix)
	if err != nil {
		return nil, err
	}

	numerator := new(number.Number).Mul(pi, new(number.Number).Sub(agm2, agm1))
	denominator := new(number.Number).Mul(agm1, agm2)
	denominator = new(number.Number).Mul(denominator, number.New(2, 0, radix))

	return eb.Quo(new(number.Number), numerator, denominator, precision), eb.Err
}

// logRadix returns log(radix) to precision significant digits, refreshing
// the per-radix cache entry when the stored value falls short. The lock
// covers only the cache read and the cache write, not the (possibly
// recursive, through Pi) computation in between, since rawLog calls down
// into PiRadix which takes the same per-radix token.
func logRadix(precision uint64, radix int) (*number.Number, error) {
	tok := token(radix)

	tok.mu.Lock()
	if tok.cache.logRadix != nil && tok.cache.logRadixPrecision >= precision {
		r := tok.cache.logRadix.WithPrecision(precision)
		tok.mu.Unlock()
		return r, nil
	}
	tok.mu.Unlock()

	workingPrecision := extendPrecision(precision, DefaultSettings)
	oneOverRadix, err := number.NewFromString("0.1", radix)
	if err != nil {
		return nil, err
	}
	oneOverRadix = oneOverRadix.WithPrecision(workingPrecision)
	raw, err := rawLog(oneOverRadix, workingPrecision)
	if err != nil {
		return nil, err
	}
	result := new(number.Number).Neg(raw)

	tok.mu.Lock()
	if tok.cache.logRadix == nil || tok.cache.logRadixPrecision < workingPrecision {
		tok.cache.logRadix = result
		tok.cache.logRadixPrecision = workingPrecision
	}
	tok.mu.Unlock()

	return result.WithPrecision(precision), nil
}
