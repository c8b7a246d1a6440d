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

// Package complexnum provides a minimal complex number built on the
// apfloat kernel's Number type. apfloat's trigonometric functions are
// defined as Re/Im of a complex exponential, and its inverse trig and
// atan2 go through Angle (the angle term of this package's complex
// logarithm), so this package is apfloat's
// external collaborator for both directions rather than an independent
// complex-arithmetic library.
//
// Exp is self-contained: it sums the complex Taylor series directly
// (with scaling-and-squaring argument reduction), so it does not need
// real cos/sin to already exist - apfloat derives its real Cos and Sin
// from Exp, not the other way around. Log's angle term (Angle, below) is
// likewise self-contained, computed by Newton's method using Exp rather
// than a circular call back to atan2. Only Log's modulus term needs the
// AGM-based real Log and Sqrt, which it takes through an injected
// RealOps rather than an import of apfloat, since apfloat imports this
// package for Complex and a direct import back would cycle.
package complexnum

import (
	"math"

	"github.com/apfloat-go/apfloat/number"
	"github.com/pkg/errors"
)

// RealOps bundles the real-valued kernel functions Complex.Log needs for
// its modulus term. The angle term is computed internally by Angle,
// which does not need an AGM-based log and so stays self-contained;
// apfloat's own Atan2 is in fact defined in terms of Angle, not the
// other way around, so Log cannot depend on apfloat's Atan2 without
// creating the very cycle this injection is meant to avoid.
type RealOps struct {
	Log  func(x *number.Number) (*number.Number, error)
	Sqrt func(x *number.Number, targetPrecision uint64) (*number.Number, error)
}

// Complex is an immutable re+im*i pair sharing a single radix.
type Complex struct {
	Re, Im *number.Number
	ops    RealOps
}

// New builds a Complex from its real and imaginary parts. ops may be the
// zero value if only Exp, Add, Sub or Mul will be used.
func New(re, im *number.Number, ops RealOps) *Complex {
	return &Complex{Re: re, Im: im, ops: ops}
}

// Real returns c's real part.
func (c *Complex) Real() *number.Number { return c.Re }

// Imag returns c's imaginary part.
func (c *Complex) Imag() *number.Number { return c.Im }

// Add returns a+b.
func Add(a, b *Complex) *Complex {
	return New(new(number.Number).Add(a.Re, b.Re), new(number.Number).Add(a.Im, b.Im), a.ops)
}

// Sub returns a-b.
func Sub(a, b *Complex) *Complex {
	return New(new(number.Number).Sub(a.Re, b.Re), new(number.Number).Sub(a.Im, b.Im), a.ops)
}

// Mul returns a*b via the standard (ac-bd) + (ad+bc)i expansion.
func Mul(a, b *Complex) *Complex {
	ac := new(number.Number).Mul(a.Re, b.Re)
	bd := new(number.Number).Mul(a.Im, b.Im)
	ad := new(number.Number).Mul(a.Re, b.Im)
	bc := new(number.Number).Mul(a.Im, b.Re)
	re := new(number.Number).Sub(ac, bd)
	im := new(number.Number).Add(ad, bc)
	return New(re, im, a.ops)
}

// Exp returns e^c via the complex Taylor series, reduced by halving c
// until its magnitude is comfortably small and restored by squaring the
// reduced result back up.
func (c *Complex) Exp() (*Complex, error) {
	radix := c.Re.Radix()
	precision := c.Re.Precision()
	if p := c.Im.Precision(); p != number.Unlimited && (precision == number.Unlimited || p < precision) {
		precision = p
	}
	if precision == number.Unlimited {
		precision = 34
	}
	workingPrecision := precision + 10

	mag := math.Hypot(c.Re.Float64(), c.Im.Float64())
	k := 0
	for mag > 0.5 {
		mag /= 2
		k++
	}

	re, im := c.Re.WithPrecision(workingPrecision), c.Im.WithPrecision(workingPrecision)
	two := int64(2)
	for i := 0; i < k; i++ {
		var err error
		re, err = new(number.Number).QuoInt64(re, two, workingPrecision)
		if err != nil {
			return nil, err
		}
		im, err = new(number.Number).QuoInt64(im, two, workingPrecision)
		if err != nil {
			return nil, err
		}
	}

	sumRe, sumIm := taylorExp(re, im, workingPrecision, radix)

	for i := 0; i < k; i++ {
		newRe := new(number.Number).Sub(new(number.Number).Mul(sumRe, sumRe), new(number.Number).Mul(sumIm, sumIm))
		newIm := new(number.Number).Mul(new(number.Number).Mul(sumRe, sumIm), number.New(2, 0, radix))
		sumRe, sumIm = newRe.WithPrecision(workingPrecision), newIm.WithPrecision(workingPrecision)
	}

	return New(sumRe.WithPrecision(precision), sumIm.WithPrecision(precision), c.ops), nil
}

// taylorExp sums z^n/n! for z=re+im*i, stopping once the remaining terms
// can no longer affect precision significant digits of the result.
func taylorExp(re, im *number.Number, precision uint64, radix int) (*number.Number, *number.Number) {
	sumRe := number.One(radix).WithPrecision(precision)
	sumIm := number.Zero(radix)
	termRe := number.One(radix).WithPrecision(precision)
	termIm := number.Zero(radix)

	argMag := math.Hypot(re.Float64(), im.Float64())
	n := taylorTermCount(argMag, precision, radix)

	for i := int64(1); i <= n; i++ {
		newRe := new(number.Number).Sub(new(number.Number).Mul(termRe, re), new(number.Number).Mul(termIm, im))
		newIm := new(number.Number).Add(new(number.Number).Mul(termRe, im), new(number.Number).Mul(termIm, re))
		termRe, _ = new(number.Number).QuoInt64(newRe, i, precision)
		termIm, _ = new(number.Number).QuoInt64(newIm, i, precision)
		sumRe = new(number.Number).Add(sumRe, termRe)
		sumIm = new(number.Number).Add(sumIm, termIm)
	}
	return sumRe, sumIm
}

// taylorTermCount estimates, via Stirling's approximation, how many terms
// of the exponential series are needed for argMag^n/n! to fall below
// radix^-precision.
func taylorTermCount(argMag float64, precision uint64, radix int) int64 {
	if argMag < 1e-12 {
		argMag = 1e-12
	}
	target := float64(precision) * math.Log(float64(radix))
	n := int64(1)
	for {
		logFact, _ := math.Lgamma(float64(n + 1))
		if logFact-float64(n)*math.Log(argMag) > target {
			return n
		}
		n++
		if n > 1<<20 {
			return n
		}
	}
}

// Log returns log(c) = log(|c|) + i*atan2(Im(c), Re(c)).
func (c *Complex) Log() (*Complex, error) {
	precision := c.Re.Precision()
	re2 := new(number.Number).Mul(c.Re, c.Re)
	im2 := new(number.Number).Mul(c.Im, c.Im)
	modSq := new(number.Number).Add(re2, im2)
	modulus, err := c.ops.Sqrt(modSq, precision)
	if err != nil {
		return nil, err
	}
	logMod, err := c.ops.Log(modulus)
	if err != nil {
		return nil, err
	}
	angle, err := Angle(c.Im, c.Re)
	if err != nil {
		return nil, err
	}
	return New(logMod, angle, c.ops), nil
}

// Angle returns atan2(y, x): the angle, in (-pi, pi], of the vector
// (x, y) from the positive x-axis. It is computed directly by Newton's
// method on f(theta) = x*sin(theta) - y*cos(theta), using Exp's own
// complex Taylor series for cos/sin rather than a previously computed
// log, which is what lets apfloat's Atan2 and inverse trig be defined in
// terms of this function without apfloat needing to hand it a callback.
func Angle(y, x *number.Number) (*number.Number, error) {
	if y.Sign() == 0 && x.Sign() == 0 {
		return nil, errors.New("complexnum: atan2 of (0,0) is undefined")
	}
	radix := x.Radix()
	precision := x.Precision()
	if p := y.Precision(); p != number.Unlimited && (precision == number.Unlimited || p < precision) {
		precision = p
	}
	if precision == number.Unlimited {
		precision = 34
	}

	dp := anglePrecisionSeed(radix)
	seed := math.Atan2(y.Float64(), x.Float64())
	theta := number.FromFloat64(seed, radix, dp)

	work := dp
	var err error
	for work < precision {
		next := work * 2
		if next > precision+10 {
			next = precision + 10
		}
		theta, err = angleNewtonStep(theta, y, x, next)
		if err != nil {
			return nil, err
		}
		work = next
	}
	theta, err = angleNewtonStep(theta, y, x, precision+10)
	if err != nil {
		return nil, err
	}
	return theta.WithPrecision(precision), nil
}

// angleNewtonStep performs one correction theta <- theta -
// (x*sin(theta)-y*cos(theta)) / (x*cos(theta)+y*sin(theta)).
func angleNewtonStep(theta, y, x *number.Number, workPrecision uint64) (*number.Number, error) {
	thetaAtPrec := theta.WithPrecision(workPrecision)
	z := New(number.Zero(x.Radix()).WithPrecision(workPrecision), thetaAtPrec, RealOps{})
	e, err := z.Exp()
	if err != nil {
		return nil, err
	}
	cos, sin := e.Re, e.Im
	xAtPrec, yAtPrec := x.WithPrecision(workPrecision), y.WithPrecision(workPrecision)

	f := new(number.Number).Sub(new(number.Number).Mul(xAtPrec, sin), new(number.Number).Mul(yAtPrec, cos))
	fp := new(number.Number).Add(new(number.Number).Mul(xAtPrec, cos), new(number.Number).Mul(yAtPrec, sin))
	correction, err := new(number.Number).Quo(f, fp, workPrecision)
	if err != nil {
		return nil, err
	}
	return new(number.Number).Sub(thetaAtPrec, correction), nil
}

// anglePrecisionSeed mirrors apfloat's doublePrecision: how many radix-r
// digits a float64 seed carries. Duplicated rather than imported to keep
// this package's only dependency on apfloat's types, not its functions.
func anglePrecisionSeed(radix int) uint64 {
	d := 53 / (math.Log(float64(radix)) / math.Ln2)
	if d < 1 {
		d = 1
	}
	return uint64(d)
}
