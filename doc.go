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

// Package apfloat implements an arbitrary-precision, arbitrary-radix
// transcendental math kernel: roots, logarithms, exponentials,
// trigonometric and hyperbolic functions, and pi, all built from a single
// Newton-iteration primitive (InverseRoot) and an AGM engine.
//
// Values are represented by *number.Number, a sign-magnitude coefficient
// in math/big.Int paired with a signed exponent and a runtime radix in
// [2,36]. Apart from pi's Chudnovsky binary splitting, which accumulates
// its series terms in math/big integers, every multiplication, division,
// and comparison the kernel performs is a Number method call.
package apfloat
