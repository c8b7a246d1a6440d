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

package complexnum

import (
	"math"
	"testing"

	"github.com/apfloat-go/apfloat/number"
)

func mustN(t *testing.T, s string, radix int, precision uint64) *number.Number {
	t.Helper()
	n, err := number.NewFromString(s, radix)
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	return n.WithPrecision(precision)
}

func TestExpOfZeroIsOne(t *testing.T) {
	zero := mustN(t, "0", 10, 20)
	c := New(zero, zero, RealOps{})
	e, err := c.Exp()
	if err != nil {
		t.Fatal(err)
	}
	if e.Real().Float64() != 1 {
		t.Errorf("exp(0) real part = %v, want 1", e.Real().Float64())
	}
	if e.Imag().Float64() != 0 {
		t.Errorf("exp(0) imag part = %v, want 0", e.Imag().Float64())
	}
}

func TestExpOfPureImaginaryMatchesCosSin(t *testing.T) {
	theta := mustN(t, "1.2", 10, 25)
	zero := mustN(t, "0", 10, 25)
	c := New(zero, theta, RealOps{})
	e, err := c.Exp()
	if err != nil {
		t.Fatal(err)
	}
	wantRe, wantIm := math.Cos(1.2), math.Sin(1.2)
	if d := math.Abs(e.Real().Float64() - wantRe); d > 1e-12 {
		t.Errorf("cos(1.2) = %v, want %v", e.Real().Float64(), wantRe)
	}
	if d := math.Abs(e.Imag().Float64() - wantIm); d > 1e-12 {
		t.Errorf("sin(1.2) = %v, want %v", e.Imag().Float64(), wantIm)
	}
}

func TestExpReductionAgreesAcrossMagnitudes(t *testing.T) {
	// exp(2z) should equal exp(z)^2 whether or not the scaling-and-squaring
	// reduction kicks in for either argument.
	small := mustN(t, "0.1", 10, 25)
	large := mustN(t, "5", 10, 25)
	zero := mustN(t, "0", 10, 25)
	for _, re := range []*number.Number{small, large} {
		c1 := New(re, zero, RealOps{})
		e1, err := c1.Exp()
		if err != nil {
			t.Fatal(err)
		}
		doubled := New(new(number.Number).Mul(re, mustN(t, "2", 10, 25)).WithPrecision(25), zero, RealOps{})
		e2, err := doubled.Exp()
		if err != nil {
			t.Fatal(err)
		}
		squared := Mul(e1, e1)
		if d := math.Abs(squared.Real().Float64() - e2.Real().Float64()); d > 1e-10 {
			t.Errorf("exp(2*%v) real mismatch: squared=%v direct=%v", re.Float64(), squared.Real().Float64(), e2.Real().Float64())
		}
	}
}

func TestAngleCardinalDirections(t *testing.T) {
	one := mustN(t, "1", 10, 25)
	zero := mustN(t, "0", 10, 25)
	negOne := mustN(t, "-1", 10, 25)

	tests := []struct {
		y, x *number.Number
		want float64
	}{
		{zero, one, 0},
		{one, zero, math.Pi / 2},
		{zero, negOne, math.Pi},
		{negOne, zero, -math.Pi / 2},
	}
	for _, tc := range tests {
		got, err := Angle(tc.y, tc.x)
		if err != nil {
			t.Fatal(err)
		}
		if d := math.Abs(got.Float64() - tc.want); d > 1e-12 {
			t.Errorf("Angle(%v,%v) = %v, want %v", tc.y.Float64(), tc.x.Float64(), got.Float64(), tc.want)
		}
	}
}

func TestAngleOfOriginFails(t *testing.T) {
	zero := mustN(t, "0", 10, 25)
	if _, err := Angle(zero, zero); err == nil {
		t.Error("Angle(0,0) should fail")
	}
}

func TestAngleMatchesMathAtan2(t *testing.T) {
	y := mustN(t, "3", 10, 25)
	x := mustN(t, "-4", 10, 25)
	got, err := Angle(y, x)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Atan2(3, -4)
	if d := math.Abs(got.Float64() - want); d > 1e-12 {
		t.Errorf("Angle(3,-4) = %v, want %v", got.Float64(), want)
	}
}

func TestLogUsesInjectedRealOps(t *testing.T) {
	radix := 10
	ops := RealOps{
		Log: func(x *number.Number) (*number.Number, error) {
			v := math.Log(x.Float64())
			return number.FromFloat64(v, radix, x.Precision()), nil
		},
		Sqrt: func(x *number.Number, targetPrecision uint64) (*number.Number, error) {
			v := math.Sqrt(x.Float64())
			return number.FromFloat64(v, radix, targetPrecision), nil
		},
	}
	re := mustN(t, "3", 10, 20)
	im := mustN(t, "4", 10, 20)
	c := New(re, im, ops)
	l, err := c.Log()
	if err != nil {
		t.Fatal(err)
	}
	wantMod := math.Log(5)
	wantAngle := math.Atan2(4, 3)
	if d := math.Abs(l.Real().Float64() - wantMod); d > 1e-9 {
		t.Errorf("log modulus = %v, want %v", l.Real().Float64(), wantMod)
	}
	if d := math.Abs(l.Imag().Float64() - wantAngle); d > 1e-9 {
		t.Errorf("log angle = %v, want %v", l.Imag().Float64(), wantAngle)
	}
}

func TestAddSubMul(t *testing.T) {
	a := New(mustN(t, "1", 10, 20), mustN(t, "2", 10, 20), RealOps{})
	b := New(mustN(t, "3", 10, 20), mustN(t, "-1", 10, 20), RealOps{})

	sum := Add(a, b)
	if sum.Real().Float64() != 4 || sum.Imag().Float64() != 1 {
		t.Errorf("(1+2i)+(3-i) = %v+%vi, want 4+1i", sum.Real().Float64(), sum.Imag().Float64())
	}

	diff := Sub(a, b)
	if diff.Real().Float64() != -2 || diff.Imag().Float64() != 3 {
		t.Errorf("(1+2i)-(3-i) = %v+%vi, want -2+3i", diff.Real().Float64(), diff.Imag().Float64())
	}

	// (1+2i)(3-i) = 3 - i + 6i - 2i^2 = 3 + 5i + 2 = 5 + 5i
	prod := Mul(a, b)
	if prod.Real().Float64() != 5 || prod.Imag().Float64() != 5 {
		t.Errorf("(1+2i)*(3-i) = %v+%vi, want 5+5i", prod.Real().Float64(), prod.Imag().Float64())
	}
}
