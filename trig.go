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
	"github.com/apfloat-go/apfloat/complexnum"
	"github.com/apfloat-go/apfloat/number"
)

// realOps builds the RealOps a complexnum.Complex needs for Log, from
// this package's own Log and Sqrt.
func realOps() complexnum.RealOps {
	return complexnum.RealOps{Log: Log, Sqrt: Sqrt}
}

// cosSin returns cos(x) and sin(x) together as Re/Im of exp(i*x).
func cosSin(x *number.Number, precision uint64) (cos, sin *number.Number, err error) {
	radix := x.Radix()
	z := complexnum.New(number.Zero(radix).WithPrecision(precision), x.WithPrecision(precision), realOps())
	e, err := z.Exp()
	if err != nil {
		return nil, nil, err
	}
	return e.Real(), e.Imag(), nil
}

// Cos returns cos(x) = Re(exp(i*x)) at x's own tracked precision.
func Cos(x *number.Number) (*number.Number, error) {
	precision := x.Precision()
	if precision == number.Unlimited {
		return nil, unsupported("apfloat: cos requires finite precision")
	}
	cos, _, err := cosSin(x, precision+DefaultSettings.ExtraPrecision)
	if err != nil {
		return nil, err
	}
	return cos.WithPrecision(precision), nil
}

// Sin returns sin(x) = Im(exp(i*x)) at x's own tracked precision.
func Sin(x *number.Number) (*number.Number, error) {
	precision := x.Precision()
	if precision == number.Unlimited {
		return nil, unsupported("apfloat: sin requires finite precision")
	}
	_, sin, err := cosSin(x, precision+DefaultSettings.ExtraPrecision)
	if err != nil {
		return nil, err
	}
	return sin.WithPrecision(precision), nil
}

// Tan returns sin(x)/cos(x).
func Tan(x *number.Number) (*number.Number, error) {
	precision := x.Precision()
	if precision == number.Unlimited {
		return nil, unsupported("apfloat: tan requires finite precision")
	}
	cos, sin, err := cosSin(x, precision+DefaultSettings.ExtraPrecision)
	if err != nil {
		return nil, err
	}
	if cos.Sign() == 0 {
		return nil, invalidOperation("apfloat: tan at a pole")
	}
	return new(number.Number).Quo(sin, cos, precision)
}

// Atan2 returns the angle, in (-pi, pi], of the vector (x, y) from the
// positive x-axis, computed directly by complexnum.Angle's Newton
// iteration rather than by first forming a complex logarithm, since
// Angle is what apfloat's own complex logarithm's angle term is built
// from. atan2(0,0) is flagged InvalidOperation here, at the boundary of
// this package's Condition-tagged error model, rather than inside
// complexnum, which stays independent of apfloat's error types.
func Atan2(y, x *number.Number) (*number.Number, error) {
	if y.Sign() == 0 && x.Sign() == 0 {
		return nil, invalidOperation("apfloat: atan2 of (0,0) is undefined")
	}
	return complexnum.Angle(y, x)
}

// Atan returns atan(t) = atan2(t, 1).
func Atan(t *number.Number) (*number.Number, error) {
	return Atan2(t, number.One(t.Radix()).WithPrecision(t.Precision()))
}

// Asin returns asin(x) = atan2(x, sqrt(1-x^2)) for x in [-1, 1].
func Asin(x *number.Number) (*number.Number, error) {
	radix := x.Radix()
	precision := x.Precision()
	one := number.One(radix).WithPrecision(precision)
	if new(number.Number).Abs(x).Cmp(one) > 0 {
		return nil, invalidOperation("apfloat: asin argument out of [-1, 1]")
	}
	sq := new(number.Number).Sub(one, new(number.Number).Mul(x, x))
	cos, err := Sqrt(sq, precision+DefaultSettings.ExtraPrecision)
	if err != nil {
		return nil, err
	}
	return Atan2(x, cos)
}

// Acos returns acos(x) = atan2(sqrt(1-x^2), x) for x in [-1, 1].
func Acos(x *number.Number) (*number.Number, error) {
	radix := x.Radix()
	precision := x.Precision()
	one := number.One(radix).WithPrecision(precision)
	if new(number.Number).Abs(x).Cmp(one) > 0 {
		return nil, invalidOperation("apfloat: acos argument out of [-1, 1]")
	}
	sq := new(number.Number).Sub(one, new(number.Number).Mul(x, x))
	sin, err := Sqrt(sq, precision+DefaultSettings.ExtraPrecision)
	if err != nil {
		return nil, err
	}
	return Atan2(sin, x)
}
