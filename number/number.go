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

// Package number implements the arbitrary-radix, arbitrary-precision
// floating-point value (the "Number" ADT) that the apfloat kernel is built
// on. It plays the role the caller's big-number library plays in the
// kernel: the kernel's arithmetic goes through methods on *Number, except
// the pi routine's binary splitting, which works on math/big integers.
package number

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Unlimited is the sentinel Precision value meaning "exact".
const Unlimited = ^uint64(0)

// Number is an arbitrary-precision signed value in a fixed radix:
//
//	value = Coeff * Radix^Exponent
//
// All operands in an expression must share a Radix; mixing radices is
// undefined.
type Number struct {
	coeff     BigInt
	exponent  int64
	radix     int
	precision uint64
}

// New creates a Number with the given integer coefficient and exponent in
// the given radix.
func New(coeff int64, exponent int64, radix int) *Number {
	n := &Number{exponent: exponent, radix: radix, precision: Unlimited}
	n.coeff.SetInt64(coeff)
	return n
}

// NewWithPrecision is New but with an explicit tracked precision.
func NewWithPrecision(coeff int64, exponent int64, radix int, precision uint64) *Number {
	n := New(coeff, exponent, radix)
	n.precision = precision
	return n
}

// Zero returns 0 in the given radix.
func Zero(radix int) *Number { return New(0, 0, radix) }

// One returns 1 in the given radix.
func One(radix int) *Number { return New(1, 0, radix) }

// NewFromString parses s as a Number in the given radix. Only radices <= 14
// support the "e" exponent marker (above that, 'e' is an ordinary digit), as
// by convention.
func NewFromString(s string, radix int) (*Number, error) {
	if radix < 2 || radix > 36 {
		return nil, errors.Errorf("invalid radix %d", radix)
	}
	mantissa := s
	var exp int64
	if radix <= 14 {
		if i := strings.IndexAny(s, "eE"); i >= 0 {
			e, err := strconv.ParseInt(s[i+1:], 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "parse exponent: %s", s[i+1:])
			}
			exp = e
			mantissa = s[:i]
		}
	}
	fracDigits := int64(0)
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		fracDigits = int64(len(mantissa) - i - 1)
		mantissa = mantissa[:i] + mantissa[i+1:]
	}
	neg := false
	if strings.HasPrefix(mantissa, "-") {
		neg = true
		mantissa = mantissa[1:]
	} else if strings.HasPrefix(mantissa, "+") {
		mantissa = mantissa[1:]
	}
	if mantissa == "" {
		mantissa = "0"
	}
	c := new(big.Int)
	if _, ok := c.SetString(mantissa, radix); !ok {
		return nil, errors.Errorf("parse mantissa: %s (radix %d)", s, radix)
	}
	if neg {
		c.Neg(c)
	}
	n := &Number{exponent: exp - fracDigits, radix: radix, precision: Unlimited}
	n.coeff.SetBig(c)
	return n, nil
}

// NewFromBigInt wraps an exact big.Int value as a Number with the given
// radix, exponent 0, and Unlimited precision. Used by the pi engine to
// turn a binary-splitting triple's T/Q components into Numbers without a
// lossy round trip through a digit string.
func NewFromBigInt(v *big.Int, radix int) *Number {
	n := &Number{radix: radix, precision: Unlimited}
	n.coeff.SetBig(new(big.Int).Set(v))
	return n
}

// Set sets n to x and returns n.
func (n *Number) Set(x *Number) *Number {
	n.coeff.Set(&x.coeff)
	n.exponent = x.exponent
	n.radix = x.radix
	n.precision = x.precision
	return n
}

// Clone returns a deep copy of n.
func (n *Number) Clone() *Number {
	return new(Number).Set(n)
}

// Radix returns n's radix.
func (n *Number) Radix() int { return n.radix }

// Exponent returns n's scale exponent (such that n ~= coeff * radix^exponent).
func (n *Number) Exponent() int64 { return n.exponent }

// Precision returns n's tracked precision, or Unlimited.
func (n *Number) Precision() uint64 { return n.precision }

// Sign returns -1, 0, or 1.
func (n *Number) Sign() int { return n.coeff.Sign() }

// Signum is an alias for Sign.
func (n *Number) Signum() int { return n.Sign() }

// NumDigits returns the number of radix digits in n's coefficient. Zero has
// one digit, by convention.
func (n *Number) NumDigits() int64 {
	return numDigits(n.coeff.inner(), n.radix)
}

func numDigits(c *big.Int, radix int) int64 {
	if c.Sign() == 0 {
		return 1
	}
	abs := new(big.Int).Abs(c)
	return int64(len(abs.Text(radix)))
}

// WithPrecision returns n truncated/rounded to p significant radix digits,
// idempotent at p and monotone under min: calling it with p greater than
// n's own known digits never fabricates new digits, it just raises the
// tracked Precision attribute.
func (n *Number) WithPrecision(p uint64) *Number {
	if p == Unlimited {
		r := n.Clone()
		return r
	}
	nd := uint64(n.NumDigits())
	if nd <= p {
		r := n.Clone()
		r.precision = p
		return r
	}
	diff := int64(nd - p)
	r := new(Number)
	r.radix = n.radix
	divisor := radixPow(n.radix, diff)
	q, m := new(big.Int), new(big.Int)
	q.QuoRem(n.coeff.inner(), divisor, m)
	if m.Sign() != 0 {
		half := new(big.Int).Abs(m)
		half.Mul(half, big.NewInt(2))
		cmp := half.Cmp(divisor)
		if roundHalfEven(q, cmp) {
			roundAddOne(q, &diff, n.radix)
		}
	}
	r.coeff.SetBig(q)
	r.exponent = n.exponent + diff
	r.precision = p
	return r
}

// Truncate returns n with its coefficient reduced to p digits by truncation
// (round toward zero), rather than WithPrecision's round-half-even.
func (n *Number) Truncate(p uint64) *Number {
	if p == Unlimited {
		return n.Clone()
	}
	nd := uint64(n.NumDigits())
	if nd <= p {
		r := n.Clone()
		r.precision = p
		return r
	}
	diff := int64(nd - p)
	divisor := radixPow(n.radix, diff)
	q := new(big.Int).Quo(n.coeff.inner(), divisor)
	r := new(Number)
	r.radix = n.radix
	r.coeff.SetBig(q)
	r.exponent = n.exponent + diff
	r.precision = p
	return r
}

// upscale returns x and y's coefficients aligned to a common exponent, the
// common exponent, and the radix.
func upscale(x, y *Number) (*big.Int, *big.Int, int64, int) {
	if x.radix != y.radix {
		panic("number: mixed radix operation")
	}
	if x.exponent == y.exponent {
		return x.coeff.inner(), y.coeff.inner(), x.exponent, x.radix
	}
	a, b := x, y
	if a.exponent < b.exponent {
		a, b = b, a
	}
	diff := a.exponent - b.exponent
	e := radixPow(x.radix, diff)
	ac := new(big.Int).Mul(a.coeff.inner(), e)
	bc := b.coeff.inner()
	if a == y {
		ac, bc = bc, ac
	}
	return ac, bc, b.exponent, x.radix
}

func minPrecision(x, y uint64) uint64 {
	if x == Unlimited {
		return y
	}
	if y == Unlimited {
		return x
	}
	if x < y {
		return x
	}
	return y
}

// Add sets the receiver to x+y and returns it.
func (n *Number) Add(x, y *Number) *Number {
	a, b, exp, radix := upscale(x, y)
	sum := new(big.Int).Add(a, b)
	n.coeff.SetBig(sum)
	n.exponent = exp
	n.radix = radix
	n.precision = minPrecision(x.precision, y.precision)
	return n
}

// Sub sets the receiver to x-y and returns it.
func (n *Number) Sub(x, y *Number) *Number {
	a, b, exp, radix := upscale(x, y)
	diff := new(big.Int).Sub(a, b)
	n.coeff.SetBig(diff)
	n.exponent = exp
	n.radix = radix
	n.precision = minPrecision(x.precision, y.precision)
	return n
}

// Mul sets the receiver to x*y and returns it.
func (n *Number) Mul(x, y *Number) *Number {
	if x.radix != y.radix {
		panic("number: mixed radix operation")
	}
	prod := new(big.Int).Mul(x.coeff.inner(), y.coeff.inner())
	n.coeff.SetBig(prod)
	n.exponent = x.exponent + y.exponent
	n.radix = x.radix
	n.precision = minPrecision(x.precision, y.precision)
	return n
}

// Negate returns 0 - x.
func Negate(x *Number) *Number {
	return new(Number).Sub(Zero(x.radix), x)
}

// Neg sets the receiver to -x and returns it.
func (n *Number) Neg(x *Number) *Number {
	n.Set(x)
	n.coeff.Neg(&n.coeff)
	return n
}

// Abs sets the receiver to |x| and returns it.
func (n *Number) Abs(x *Number) *Number {
	n.Set(x)
	n.coeff.Abs(&n.coeff)
	return n
}

// Cmp compares n and x: -1, 0, or 1.
func (n *Number) Cmp(x *Number) int {
	ns, xs := n.Sign(), x.Sign()
	if ns != xs {
		if ns < xs {
			return -1
		}
		return 1
	}
	if ns == 0 {
		return 0
	}
	nn := n.NumDigits() + n.exponent
	xn := x.NumDigits() + x.exponent
	if nn != xn {
		if (nn < xn) == (ns > 0) {
			return -1
		}
		return 1
	}
	a, b, _, _ := upscale(n, x)
	return a.Cmp(b)
}

// Equal reports whether n and x compare equal.
func (n *Number) Equal(x *Number) bool { return n.Cmp(x) == 0 }

// EqualDigits returns the count of leading radix digits n and x agree on,
// treating their values as aligned at the same (smaller) exponent. This
// drives AGM/log convergence detection. Near zero this returns 0 whenever
// the two values don't share a sign or either is zero while the other is
// not.
func (n *Number) EqualDigits(x *Number) int64 {
	if n.radix != x.radix {
		panic("number: mixed radix operation")
	}
	if n.Sign() != x.Sign() {
		return 0
	}
	if n.Sign() == 0 {
		return 0
	}
	a, b, _, radix := upscale(n, x)
	as, bs := new(big.Int).Abs(a).Text(radix), new(big.Int).Abs(b).Text(radix)
	// Pad the shorter representation on the left so positions line up.
	for len(as) < len(bs) {
		as = "0" + as
	}
	for len(bs) < len(as) {
		bs = "0" + bs
	}
	var i int64
	for i = 0; int(i) < len(as) && as[i] == bs[i]; i++ {
	}
	return i
}

// Modf sets integ to the integral part of n and frac to the fractional part
// such that n = integ + frac, with frac in (-1,1) and sharing n's sign
// (the integral part is truncated toward zero).
func (n *Number) Modf(integ, frac *Number) {
	integ.radix, frac.radix = n.radix, n.radix
	if n.exponent >= 0 {
		frac.exponent = 0
		frac.coeff.SetInt64(0)
		frac.precision = Unlimited
		integ.Set(n)
		return
	}
	nd := n.NumDigits()
	exp := -n.exponent
	if exp > nd {
		integ.exponent = 0
		integ.coeff.SetInt64(0)
		integ.precision = Unlimited
		frac.Set(n)
		return
	}
	e := radixPow(n.radix, exp)
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(n.coeff.inner(), e, r)
	integ.coeff.SetBig(q)
	integ.exponent = 0
	integ.precision = Unlimited
	frac.coeff.SetBig(r)
	frac.exponent = n.exponent
	frac.precision = Unlimited
}

// Floor sets the receiver to the largest integer <= x.
func (n *Number) Floor(x *Number) *Number {
	integ, frac := new(Number), new(Number)
	x.Modf(integ, frac)
	if frac.Sign() < 0 {
		return n.Sub(integ, One(x.radix))
	}
	return n.Set(integ)
}

// Ceil sets the receiver to the smallest integer >= x.
func (n *Number) Ceil(x *Number) *Number {
	integ, frac := new(Number), new(Number)
	x.Modf(integ, frac)
	if frac.Sign() > 0 {
		return n.Add(integ, One(x.radix))
	}
	return n.Set(integ)
}

// TruncateToInteger sets the receiver to x's integral part (round toward
// zero), the "truncate" operation from the external interface list.
func (n *Number) TruncateToInteger(x *Number) *Number {
	integ, frac := new(Number), new(Number)
	x.Modf(integ, frac)
	return n.Set(integ)
}

// ScaleExponent returns n with delta added to its exponent: since a
// Number's value is coeff*radix^exponent, this exactly multiplies n by
// radix^delta without touching the coefficient or losing any digits,
// regardless of sign of delta.
func (n *Number) ScaleExponent(delta int64) *Number {
	r := n.Clone()
	r.exponent += delta
	return r
}

// Float64 returns a lossy float64 view of n, used only for seeding native
// double-precision Newton iterations.
func (n *Number) Float64() float64 {
	c := new(big.Float).SetInt(n.coeff.inner())
	scale := new(big.Float).SetInt(radixPow(n.radix, absInt64(n.exponent)))
	v := new(big.Float)
	if n.exponent >= 0 {
		v.Mul(c, scale)
	} else {
		v.Quo(c, scale)
	}
	f, _ := v.Float64()
	return f
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// radixPow returns radix^n for n >= 0 as a *big.Int, by squaring.
func radixPow(radix int, n int64) *big.Int {
	if n == 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(n), nil)
}
