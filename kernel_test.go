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
	"testing"

	"github.com/apfloat-go/apfloat/number"
)

func mustN(t *testing.T, s string, radix int, precision uint64) *number.Number {
	t.Helper()
	n, err := number.NewFromString(s, radix)
	if err != nil {
		t.Fatalf("NewFromString(%q): %v", s, err)
	}
	return n.WithPrecision(precision)
}

func TestPowInteger(t *testing.T) {
	two := mustN(t, "2", 10, number.Unlimited)
	got, err := Pow(two, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := number.NewWithPrecision(1024, 0, 10, number.Unlimited)
	if got.Cmp(want) != 0 {
		t.Errorf("2^10 = %s, want 1024", got.String())
	}
}

func TestPowZeroExponent(t *testing.T) {
	x := mustN(t, "5", 10, 20)
	got, err := Pow(x, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(number.One(10)) != 0 {
		t.Errorf("x^0 = %s, want 1", got.String())
	}
}

func TestPowZeroToZeroFails(t *testing.T) {
	zero := number.Zero(10)
	if _, err := Pow(zero, 0); err == nil {
		t.Error("Pow(0, 0) should fail")
	}
}

func TestPowNegativeExponent(t *testing.T) {
	half := mustN(t, "0.5", 10, 40)
	got, err := Pow(half, -2)
	if err != nil {
		t.Fatal(err)
	}
	want := number.NewWithPrecision(4, 0, 10, number.Unlimited)
	if got.WithPrecision(30).Cmp(want.WithPrecision(30)) != 0 {
		t.Errorf("0.5^-2 = %s, want 4", got.String())
	}
}

func TestSqrtRoundTrip(t *testing.T) {
	x := mustN(t, "2", 10, 40)
	root, err := Sqrt(x, 40)
	if err != nil {
		t.Fatal(err)
	}
	squared := new(number.Number).Mul(root, root).WithPrecision(30)
	if squared.EqualDigits(x.WithPrecision(30)) < 28 {
		t.Errorf("sqrt(2)^2 = %s, want approximately 2", squared.String())
	}
}

func TestCbrtRoundTrip(t *testing.T) {
	x := mustN(t, "27", 10, 40)
	root, err := Cbrt(x, 40)
	if err != nil {
		t.Fatal(err)
	}
	want := mustN(t, "3", 10, 30)
	if root.WithPrecision(30).EqualDigits(want) < 28 {
		t.Errorf("cbrt(27) = %s, want 3", root.String())
	}
}

func TestInverseRootOfOne(t *testing.T) {
	one := mustN(t, "1", 10, 30)
	got, err := InverseRoot(one, 5, 30, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(one) != 0 {
		t.Errorf("inverseRoot(1,5) = %s, want 1", got.String())
	}
}

func TestInverseRootEvenRootOfNegativeFails(t *testing.T) {
	neg := mustN(t, "-4", 10, 30)
	if _, err := InverseRoot(neg, 2, 30, nil, 0); err == nil {
		t.Error("inverseRoot of a negative number to an even root should fail")
	}
}

func TestPiKnownDigits(t *testing.T) {
	pi, err := PiRadix(25, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := mustN(t, "3.141592653589793238462643", 10, 25)
	if pi.EqualDigits(want) < 24 {
		t.Errorf("pi(25) = %s, want 3.141592653589793238462643...", pi.String())
	}
}

func TestPiCacheExtends(t *testing.T) {
	if _, err := PiRadix(20, 7); err != nil {
		t.Fatal(err)
	}
	pi40, err := PiRadix(40, 7)
	if err != nil {
		t.Fatal(err)
	}
	if pi40.Precision() != 40 {
		t.Errorf("PiRadix(40,7).Precision() = %d, want 40", pi40.Precision())
	}
	found := false
	for _, r := range cachedRadices() {
		if r == 7 {
			found = true
		}
	}
	if !found {
		t.Error("radix 7 should appear in cachedRadices after use")
	}
}

func TestLogOfTen(t *testing.T) {
	ten := mustN(t, "10", 10, 25)
	got, err := Log(ten)
	if err != nil {
		t.Fatal(err)
	}
	want := mustN(t, "2.302585092994045684017991", 10, 25)
	if got.EqualDigits(want) < 23 {
		t.Errorf("log(10) = %s, want 2.302585092994045684017991...", got.String())
	}
}

func TestLogOfOneIsZero(t *testing.T) {
	one := mustN(t, "1", 10, 20)
	got, err := Log(one)
	if err != nil {
		t.Fatal(err)
	}
	if got.Sign() != 0 {
		t.Errorf("log(1) = %s, want 0", got.String())
	}
}

func TestLogOfNonPositiveFails(t *testing.T) {
	neg := mustN(t, "-1", 10, 20)
	if _, err := Log(neg); err == nil {
		t.Error("log of a negative number should fail")
	}
}

func TestExpOfOne(t *testing.T) {
	one := mustN(t, "1", 10, 25)
	got, err := Exp(one)
	if err != nil {
		t.Fatal(err)
	}
	want := mustN(t, "2.718281828459045235360287", 10, 25)
	if got.EqualDigits(want) < 23 {
		t.Errorf("exp(1) = %s, want 2.718281828459045235360287...", got.String())
	}
}

func TestExpLogInverse(t *testing.T) {
	x := mustN(t, "3.75", 10, 30)
	l, err := Log(x)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Exp(l.WithPrecision(30))
	if err != nil {
		t.Fatal(err)
	}
	if back.EqualDigits(x) < 27 {
		t.Errorf("exp(log(3.75)) = %s, want approximately 3.75", back.String())
	}
}

func TestAgmOfEqualArguments(t *testing.T) {
	x := mustN(t, "5", 10, 20)
	got, err := Agm(x, x.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(x) != 0 {
		t.Errorf("agm(x,x) = %s, want %s", got.String(), x.String())
	}
}

func TestAgmOneTwo(t *testing.T) {
	one := mustN(t, "1", 10, 20)
	two := mustN(t, "2", 10, 20)
	got, err := Agm(one, two)
	if err != nil {
		t.Fatal(err)
	}
	want := mustN(t, "1.4567910310469068691", 10, 20)
	if got.EqualDigits(want) < 17 {
		t.Errorf("agm(1,2) = %s, want 1.4567910310469068691...", got.String())
	}
}

func TestFmodBasic(t *testing.T) {
	x := mustN(t, "7", 10, 20)
	y := mustN(t, "3", 10, 20)
	got, err := Fmod(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(mustN(t, "1", 10, 20)) != 0 {
		t.Errorf("fmod(7,3) = %s, want 1", got.String())
	}
}

func TestFmodNegative(t *testing.T) {
	x := mustN(t, "-7", 10, 20)
	y := mustN(t, "3", 10, 20)
	got, err := Fmod(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(mustN(t, "-1", 10, 20)) != 0 {
		t.Errorf("fmod(-7,3) = %s, want -1", got.String())
	}
}

func TestFmodDivisorLargerThanDividend(t *testing.T) {
	x := mustN(t, "2", 10, 20)
	y := mustN(t, "5", 10, 20)
	got, err := Fmod(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if got.Cmp(x) != 0 {
		t.Errorf("fmod(2,5) = %s, want 2", got.String())
	}
}

func TestFmodByZero(t *testing.T) {
	x := mustN(t, "2", 10, 20)
	zero := number.Zero(10)
	got, err := Fmod(x, zero)
	if err != nil {
		t.Fatal(err)
	}
	if got.Sign() != 0 {
		t.Errorf("fmod(2,0) = %s, want 0", got.String())
	}
}

func TestMultiplyAdd(t *testing.T) {
	a := mustN(t, "2", 10, 20)
	b := mustN(t, "3", 10, 20)
	c := mustN(t, "4", 10, 20)
	d := mustN(t, "5", 10, 20)
	got, err := MultiplyAdd(a, b, c, d)
	if err != nil {
		t.Fatal(err)
	}
	want := mustN(t, "26", 10, 20)
	if got.Cmp(want) != 0 {
		t.Errorf("fma(2,3,4,5) = %s, want 26", got.String())
	}
}

func TestMultiplySubtract(t *testing.T) {
	a := mustN(t, "2", 10, 20)
	b := mustN(t, "3", 10, 20)
	c := mustN(t, "4", 10, 20)
	d := mustN(t, "5", 10, 20)
	got, err := MultiplySubtract(a, b, c, d)
	if err != nil {
		t.Fatal(err)
	}
	want := mustN(t, "-14", 10, 20)
	if got.Cmp(want) != 0 {
		t.Errorf("fms(2,3,4,5) = %s, want -14", got.String())
	}
}

func TestPowNumberMatchesIntegerPow(t *testing.T) {
	x := mustN(t, "2", 10, 30)
	y := mustN(t, "3", 10, 30)
	got, err := PowNumber(x, y)
	if err != nil {
		t.Fatal(err)
	}
	want := mustN(t, "8", 10, 20)
	if got.WithPrecision(20).EqualDigits(want) < 19 {
		t.Errorf("pow(2,3) = %s, want approximately 8", got.String())
	}
}

func TestAtan2Cardinal(t *testing.T) {
	radix := 10
	precision := uint64(25)
	zero := number.Zero(radix).WithPrecision(precision)
	one := number.One(radix).WithPrecision(precision)
	got, err := Atan2(zero, one)
	if err != nil {
		t.Fatal(err)
	}
	if got.Sign() != 0 {
		t.Errorf("atan2(0,1) = %s, want 0", got.String())
	}
}

func TestAtan2OfOrigin(t *testing.T) {
	zero := number.Zero(10)
	if _, err := Atan2(zero, zero); err == nil {
		t.Error("atan2(0,0) should fail")
	}
}

func TestSinCosPythagorean(t *testing.T) {
	x := mustN(t, "0.7", 10, 25)
	cos, err := Cos(x)
	if err != nil {
		t.Fatal(err)
	}
	sin, err := Sin(x)
	if err != nil {
		t.Fatal(err)
	}
	sum := new(number.Number).Add(new(number.Number).Mul(cos, cos), new(number.Number).Mul(sin, sin))
	one := number.One(10).WithPrecision(20)
	if sum.WithPrecision(20).EqualDigits(one) < 18 {
		t.Errorf("cos^2+sin^2 = %s, want 1", sum.String())
	}
}

func TestAtan2RecoversAngle(t *testing.T) {
	theta := mustN(t, "0.9", 10, 25)
	cos, err := Cos(theta)
	if err != nil {
		t.Fatal(err)
	}
	sin, err := Sin(theta)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Atan2(sin, cos)
	if err != nil {
		t.Fatal(err)
	}
	if back.WithPrecision(20).EqualDigits(theta.WithPrecision(20)) < 18 {
		t.Errorf("atan2(sin theta, cos theta) = %s, want %s", back.String(), theta.String())
	}
}

func TestAsinAcosComplementary(t *testing.T) {
	x := mustN(t, "0.4", 10, 25)
	asin, err := Asin(x)
	if err != nil {
		t.Fatal(err)
	}
	acos, err := Acos(x)
	if err != nil {
		t.Fatal(err)
	}
	sum := new(number.Number).Add(asin, acos).WithPrecision(20)
	halfPi, err := PiRadix(20, 10)
	if err != nil {
		t.Fatal(err)
	}
	halfPi, err = new(number.Number).QuoInt64(halfPi, 2, 20)
	if err != nil {
		t.Fatal(err)
	}
	if sum.EqualDigits(halfPi) < 18 {
		t.Errorf("asin(x)+acos(x) = %s, want pi/2 = %s", sum.String(), halfPi.String())
	}
}

func TestCoshSinhIdentity(t *testing.T) {
	x := mustN(t, "1.3", 10, 25)
	cosh, err := Cosh(x)
	if err != nil {
		t.Fatal(err)
	}
	sinh, err := Sinh(x)
	if err != nil {
		t.Fatal(err)
	}
	diff := new(number.Number).Sub(new(number.Number).Mul(cosh, cosh), new(number.Number).Mul(sinh, sinh))
	one := number.One(10).WithPrecision(20)
	if diff.WithPrecision(20).EqualDigits(one) < 18 {
		t.Errorf("cosh^2-sinh^2 = %s, want 1", diff.String())
	}
}

func TestAtanhLogInverse(t *testing.T) {
	x := mustN(t, "0.3", 10, 25)
	a, err := Atanh(x)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Tanh(a.WithPrecision(25))
	if err != nil {
		t.Fatal(err)
	}
	if back.WithPrecision(20).EqualDigits(x.WithPrecision(20)) < 18 {
		t.Errorf("tanh(atanh(0.3)) = %s, want 0.3", back.String())
	}
}

func TestScaleExact(t *testing.T) {
	x := mustN(t, "1.5", 10, 20)
	got, err := Scale(x, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := mustN(t, "1500", 10, 20)
	if got.Cmp(want) != 0 {
		t.Errorf("scale(1.5,3) = %s, want 1500", got.String())
	}
}

func TestDefaultRadixRoundTrip(t *testing.T) {
	old := DefaultRadix()
	defer SetDefaultRadix(old)
	SetDefaultRadix(16)
	if DefaultRadix() != 16 {
		t.Errorf("DefaultRadix() = %d, want 16", DefaultRadix())
	}
}

func TestSetDefaultRadixRejectsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetDefaultRadix(1) should panic")
		}
	}()
	SetDefaultRadix(1)
}

func TestAsConditionInvalidOperation(t *testing.T) {
	zero := mustN(t, "0", 10, 20)
	_, err := Log(zero)
	if err == nil {
		t.Fatal("Log(0) should fail")
	}
	cond, ok := AsCondition(err)
	if !ok {
		t.Fatalf("Log(0) error %v does not carry a Condition", err)
	}
	if !cond.InvalidOperation() {
		t.Errorf("Log(0) condition = %s, want InvalidOperation", cond)
	}
}

func TestAsConditionUnsupported(t *testing.T) {
	x := mustN(t, "1.5", 10, number.Unlimited)
	_, err := Exp(x)
	if err == nil {
		t.Fatal("Exp at Unlimited precision should fail")
	}
	cond, ok := AsCondition(err)
	if !ok {
		t.Fatalf("Exp error %v does not carry a Condition", err)
	}
	if !cond.Unsupported() {
		t.Errorf("Exp condition = %s, want Unsupported", cond)
	}
}

func TestAsConditionOverflow(t *testing.T) {
	huge := number.NewWithPrecision(1, 25, 10, 20)
	_, err := Exp(huge)
	if err == nil {
		t.Fatal("Exp of a huge argument should overflow")
	}
	cond, ok := AsCondition(err)
	if !ok {
		t.Fatalf("Exp overflow error %v does not carry a Condition", err)
	}
	if !cond.Overflow() {
		t.Errorf("Exp condition = %s, want Overflow", cond)
	}
}

func TestAsConditionAtan2Origin(t *testing.T) {
	zero := mustN(t, "0", 10, 20)
	_, err := Atan2(zero, zero)
	if err == nil {
		t.Fatal("Atan2(0,0) should fail")
	}
	cond, ok := AsCondition(err)
	if !ok || !cond.InvalidOperation() {
		t.Errorf("Atan2(0,0) condition = %v (ok=%v), want InvalidOperation", cond, ok)
	}
}

func TestAsConditionPiInvalidPrecision(t *testing.T) {
	_, err := PiRadix(0, 10)
	if err == nil {
		t.Fatal("PiRadix(0, _) should fail")
	}
	cond, ok := AsCondition(err)
	if !ok || !cond.Unsupported() {
		t.Errorf("PiRadix(0, _) condition = %v (ok=%v), want Unsupported", cond, ok)
	}
}

func TestConditionGoErrorRespectsTraps(t *testing.T) {
	cond := InvalidOperation
	if _, err := cond.GoError(Unsupported); err != nil {
		t.Errorf("GoError with untrapped flag should return nil, got %v", err)
	}
	if _, err := cond.GoError(InvalidOperation); err == nil {
		t.Error("GoError with trapped flag should return an error")
	}
}
