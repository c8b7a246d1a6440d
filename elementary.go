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

// PowNumber returns x^y for a real exponent y, computed as
// exp(y*log(x)). It is named distinctly from the integer Pow in scale.go
// since Go has no overloading on argument type.
func PowNumber(x, y *number.Number) (*number.Number, error) {
	radix := x.Radix()
	if y.Sign() == 0 {
		if x.Sign() == 0 {
			return nil, invalidOperation("apfloat: zero to power zero")
		}
		return number.One(radix).WithPrecision(x.Precision()), nil
	}
	if x.Sign() == 0 {
		return x.Clone(), nil
	}
	if isOne(x) {
		return x.Clone(), nil
	}
	if isOne(y) {
		return x.Clone(), nil
	}
	if x.Sign() < 0 {
		return nil, invalidOperation("apfloat: pow of a negative base requires the integer form")
	}

	precision := minFinite(x.Precision(), y.Precision())
	if precision == number.Unlimited {
		return nil, unsupported("apfloat: pow requires finite precision")
	}
	one := number.One(radix)
	extra := uint64(x.EqualDigits(one))
	workingPrecision := precision + extra + DefaultSettings.ExtraPrecision

	e := &errNumber{}
	lx := e.Log(x.WithPrecision(workingPrecision))
	product := new(number.Number).Mul(lx, y.WithPrecision(workingPrecision))
	product = product.WithPrecision(workingPrecision)
	result := e.Exp(product)
	if e.Err != nil {
		return nil, e.Err
	}
	return result.WithPrecision(precision), nil
}

// Cosh returns (e^x + e^-x)/2.
func Cosh(x *number.Number) (*number.Number, error) {
	precision := x.Precision()
	ex, err := Exp(x.WithPrecision(precision + DefaultSettings.ExtraPrecision))
	if err != nil {
		return nil, err
	}
	nx := new(number.Number).Neg(x.WithPrecision(precision + DefaultSettings.ExtraPrecision))
	enx, err := Exp(nx)
	if err != nil {
		return nil, err
	}
	sum := new(number.Number).Add(ex, enx)
	half, err := new(number.Number).QuoInt64(sum, 2, precision)
	if err != nil {
		return nil, err
	}
	return half, nil
}

// Sinh returns (e^x - e^-x)/2.
func Sinh(x *number.Number) (*number.Number, error) {
	precision := x.Precision()
	ex, err := Exp(x.WithPrecision(precision + DefaultSettings.ExtraPrecision))
	if err != nil {
		return nil, err
	}
	nx := new(number.Number).Neg(x.WithPrecision(precision + DefaultSettings.ExtraPrecision))
	enx, err := Exp(nx)
	if err != nil {
		return nil, err
	}
	diff := new(number.Number).Sub(ex, enx)
	half, err := new(number.Number).QuoInt64(diff, 2, precision)
	if err != nil {
		return nil, err
	}
	return half, nil
}

// Tanh returns (e^2|x| - 1)/(e^2|x| + 1) with x's sign restored, which
// stays numerically well-behaved for large |x| where Sinh/Cosh would each
// individually overflow towards the same infinity.
func Tanh(x *number.Number) (*number.Number, error) {
	radix := x.Radix()
	precision := x.Precision()
	if x.Sign() == 0 {
		return number.Zero(radix), nil
	}
	workingPrecision := precision + DefaultSettings.ExtraPrecision
	twoAbsX := new(number.Number).Mul(new(number.Number).Abs(x), number.New(2, 0, radix)).WithPrecision(workingPrecision)
	e2x, err := Exp(twoAbsX)
	if err != nil {
		return nil, err
	}
	one := number.One(radix).WithPrecision(workingPrecision)
	num := new(number.Number).Sub(e2x, one)
	den := new(number.Number).Add(e2x, one)
	result, err := new(number.Number).Quo(num, den, precision)
	if err != nil {
		return nil, err
	}
	if x.Sign() < 0 {
		result = new(number.Number).Neg(result)
	}
	return result, nil
}

// Asinh returns log(x + sqrt(x^2+1)).
func Asinh(x *number.Number) (*number.Number, error) {
	radix := x.Radix()
	precision := x.Precision()
	workingPrecision := precision + DefaultSettings.ExtraPrecision
	one := number.One(radix).WithPrecision(workingPrecision)
	sq := new(number.Number).Add(new(number.Number).Mul(x, x), one)
	root, err := Sqrt(sq, workingPrecision)
	if err != nil {
		return nil, err
	}
	arg := new(number.Number).Add(x.WithPrecision(workingPrecision), root)
	result, err := Log(arg)
	if err != nil {
		return nil, err
	}
	return result.WithPrecision(precision), nil
}

// Acosh returns log(x + sqrt(x^2-1)) for x >= 1.
func Acosh(x *number.Number) (*number.Number, error) {
	radix := x.Radix()
	precision := x.Precision()
	one := number.One(radix).WithPrecision(precision)
	if x.Cmp(one) < 0 {
		return nil, invalidOperation("apfloat: acosh argument must be >= 1")
	}
	workingPrecision := precision + DefaultSettings.ExtraPrecision
	sq := new(number.Number).Sub(new(number.Number).Mul(x, x), number.One(radix).WithPrecision(workingPrecision))
	root, err := Sqrt(sq, workingPrecision)
	if err != nil {
		return nil, err
	}
	arg := new(number.Number).Add(x.WithPrecision(workingPrecision), root)
	result, err := Log(arg)
	if err != nil {
		return nil, err
	}
	return result.WithPrecision(precision), nil
}

// Atanh returns 0.5*log((1+x)/(1-x)) for x in (-1, 1).
func Atanh(x *number.Number) (*number.Number, error) {
	radix := x.Radix()
	precision := x.Precision()
	one := number.One(radix).WithPrecision(precision)
	if new(number.Number).Abs(x).Cmp(one) >= 0 {
		return nil, invalidOperation("apfloat: atanh argument out of (-1, 1)")
	}
	workingPrecision := precision + DefaultSettings.ExtraPrecision
	xw := x.WithPrecision(workingPrecision)
	ow := number.One(radix).WithPrecision(workingPrecision)
	num := new(number.Number).Add(ow, xw)
	den := new(number.Number).Sub(ow, xw)
	ratio, err := new(number.Number).Quo(num, den, workingPrecision)
	if err != nil {
		return nil, err
	}
	lr, err := Log(ratio)
	if err != nil {
		return nil, err
	}
	half, err := new(number.Number).QuoInt64(lr, 2, precision)
	if err != nil {
		return nil, err
	}
	return half, nil
}
