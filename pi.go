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
	"math/big"

	"github.com/apfloat-go/apfloat/number"
)

// Chudnovsky series constants: 1/pi = 12/640320^(3/2) * sum_n a(n)*p(0..n)/q(0..n),
// combined here via binary splitting rather than evaluated term by term.
const (
	chudA = 13591409
	chudB = 545140134
	chudJ = 10939058860032000
	chudC = 640320
)

func chudTermA(n int64) *big.Int {
	v := new(big.Int).Mul(big.NewInt(chudB), big.NewInt(n))
	v.Add(v, big.NewInt(chudA))
	if n%2 != 0 {
		v.Neg(v)
	}
	return v
}

func chudTermP(n int64) *big.Int {
	a := big.NewInt(6*n - 1)
	b := big.NewInt(2*n - 1)
	c := big.NewInt(6*n - 5)
	r := new(big.Int).Mul(a, b)
	return r.Mul(r, c)
}

func chudTermQ(n int64) *big.Int {
	r := big.NewInt(n)
	r.Mul(r, r)
	r.Mul(r, big.NewInt(n))
	return r.Mul(r, big.NewInt(chudJ))
}

// chudSplit returns the (T,Q,P) binary-split triple for the half-open term
// range [n1,n2). Lengths up to 4 are handled by a single accumulation
// loop rather than as four separately unrolled cases: this computes
// exactly the same composition the unrolled form would (each step applies
// the general combine rule one term at a time), trading the unrolled
// version's constant-factor speedup for less surface area to get wrong
// without being able to run it.
func chudSplit(n1, n2 int64) (t, q, p *big.Int) {
	if n2-n1 > 4 {
		mid := n1 + (n2-n1)/2
		tl, ql, pl := chudSplit(n1, mid)
		tr, qr, pr := chudSplit(mid, n2)
		t = new(big.Int).Mul(qr, tl)
		rightTerm := new(big.Int).Mul(pl, tr)
		t.Add(t, rightTerm)
		q = new(big.Int).Mul(ql, qr)
		p = new(big.Int).Mul(pl, pr)
		return t, q, p
	}

	t = big.NewInt(0)
	q = big.NewInt(1)
	p = big.NewInt(1)
	for i := n1; i < n2; i++ {
		pi, qi := big.NewInt(1), big.NewInt(1)
		if i > 0 {
			pi, qi = chudTermP(i), chudTermQ(i)
		}
		ai := chudTermA(i)

		t.Mul(t, qi)
		term := new(big.Int).Mul(ai, pi)
		term.Mul(term, p)
		t.Add(t, term)

		p.Mul(p, pi)
		q.Mul(q, qi)
	}
	return t, q, p
}

// chudTerms returns how many Chudnovsky terms are needed for precision
// significant digits in the given radix: 14.1816... decimal digits per
// term (32.654... in natural-log units), generalized to an arbitrary radix
// via the ratio of natural logs.
func chudTerms(precision uint64, radix int) int64 {
	const natLogPerTerm = 32.65445004177
	n := math.Ceil(float64(precision) * math.Log(float64(radix)) / natLogPerTerm)
	if n < 1 {
		n = 1
	}
	return int64(n)
}

// Pi returns pi to precision significant digits in the process-wide
// default radix.
func Pi(precision uint64) (*number.Number, error) {
	return PiRadix(precision, DefaultRadix())
}

// PiRadix returns pi to precision significant digits in radix, reusing
// and extending the per-radix binary-splitting cache rather than
// recomputing from scratch when a previous call already covers part of
// the needed term range.
func PiRadix(precision uint64, radix int) (*number.Number, error) {
	if precision == 0 {
		return nil, unsupported("apfloat: invalid precision")
	}
	if precision == number.Unlimited {
		return nil, unsupported("apfloat: pi requires finite precision")
	}

	tok := token(radix)
	tok.mu.Lock()
	defer tok.mu.Unlock()
	c := &tok.cache

	if c.pi != nil && c.piPrecision >= precision {
		return c.pi.WithPrecision(precision), nil
	}

	workingPrecision := extendPrecision(precision, DefaultSettings)
	termsNeeded := chudTerms(workingPrecision, radix)

	var t, q, p *big.Int
	switch {
	case c.termsComputed > 0 && termsNeeded > c.termsComputed:
		tr, qr, pr := chudSplit(c.termsComputed, termsNeeded)
		t = new(big.Int).Mul(qr, c.t)
		rightTerm := new(big.Int).Mul(c.p, tr)
		t.Add(t, rightTerm)
		q = new(big.Int).Mul(c.q, qr)
		p = new(big.Int).Mul(c.p, pr)
	case c.termsComputed >= termsNeeded && c.t != nil:
		t, q, p = c.t, c.q, c.p
	default:
		t, q, p = chudSplit(0, termsNeeded)
	}

	c640320 := number.New(chudC, 0, radix)
	var invSqrtC *number.Number
	var err error
	if c.invRoot640320 != nil && c.invRoot640320Precision >= workingPrecision {
		invSqrtC = c.invRoot640320.WithPrecision(workingPrecision)
	} else {
		invSqrtC, err = InverseRoot(c640320, 2, workingPrecision, c.invRoot640320, c.invRoot640320Precision)
		if err != nil {
			return nil, err
		}
		c.invRoot640320 = invSqrtC
		c.invRoot640320Precision = workingPrecision
	}

	tNum := number.NewFromBigInt(t, radix)
	qNum := number.NewFromBigInt(q, radix)
	invT, err := InverseRoot(tNum, 1, workingPrecision, nil, 0)
	if err != nil {
		return nil, err
	}

	result := new(number.Number).Mul(invSqrtC, invT)
	result = new(number.Number).Mul(result, number.New(53360, 0, radix))
	result = new(number.Number).Mul(result, c640320)
	result = new(number.Number).Mul(result, qNum)
	result = result.WithPrecision(precision)

	c.pi = result
	c.piPrecision = precision
	c.t, c.q, c.p = t, q, p
	c.termsComputed = termsNeeded

	return result.Clone(), nil
}
