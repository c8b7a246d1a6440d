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

import "github.com/apfloat-go/apfloat/number"

// errNumber accumulates the first error across a chain of kernel
// sub-operations. AGM, log, exp, and binary splitting each perform a dozen
// or more Number/kernel calls per iteration; only the first failure
// matters, and checking each one individually would drown the algorithm in
// boilerplate.
type errNumber struct {
	Err error
}

// Quo performs n.Quo(x, y, precision) and returns n, skipping the call
// entirely once an error has been recorded.
func (e *errNumber) Quo(n, x, y *number.Number, precision uint64) *number.Number {
	if e.Err != nil {
		return n
	}
	_, e.Err = n.Quo(x, y, precision)
	return n
}

// InverseRoot performs InverseRoot(x, nth, precision) and returns the
// result, or x unchanged once an error has been recorded.
func (e *errNumber) InverseRoot(x *number.Number, nth int64, precision uint64) *number.Number {
	if e.Err != nil {
		return x
	}
	r, err := InverseRoot(x, nth, precision, nil, 0)
	if err != nil {
		e.Err = err
		return x
	}
	return r
}

// Agm performs Agm(a, b) and returns the result, or a unchanged once an
// error has been recorded.
func (e *errNumber) Agm(a, b *number.Number) *number.Number {
	if e.Err != nil {
		return a
	}
	r, err := Agm(a, b)
	if err != nil {
		e.Err = err
		return a
	}
	return r
}

// Log performs Log(x) and returns the result, or x unchanged once an error
// has been recorded.
func (e *errNumber) Log(x *number.Number) *number.Number {
	if e.Err != nil {
		return x
	}
	r, err := Log(x)
	if err != nil {
		e.Err = err
		return x
	}
	return r
}

// Exp performs Exp(x) and returns the result, or x unchanged once an error
// has been recorded.
func (e *errNumber) Exp(x *number.Number) *number.Number {
	if e.Err != nil {
		return x
	}
	r, err := Exp(x)
	if err != nil {
		e.Err = err
		return x
	}
	return r
}
