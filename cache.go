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
	"math/big"
	"sync"

	"github.com/apfloat-go/apfloat/number"
	"golang.org/x/exp/maps"
)

// radixCache holds everything worth remembering about a single radix's
// pi/log computations across calls: the best pi found so far, logRadix,
// and the Chudnovsky binary-splitting state needed to extend pi to a
// higher precision without starting over.
type radixCache struct {
	pi          *number.Number
	piPrecision uint64

	logRadix          *number.Number
	logRadixPrecision uint64

	termsComputed int64
	t, q, p       *big.Int

	invRoot640320          *number.Number
	invRoot640320Precision uint64
}

// radixToken is the per-radix synchronization unit: obtaining it (through
// the coordinator lock below) grants exclusive read/write access to its
// cache record. Two goroutines computing at different radices never
// contend on the same token.
type radixToken struct {
	mu    sync.Mutex
	cache radixCache
}

var (
	coordinatorMu sync.Mutex
	radixTokens   = map[int]*radixToken{}
)

// token returns the canonical token for radix, creating its cache record
// on first use. Only obtaining the token is serialized by coordinatorMu;
// the token's own mutex guards the actual cache reads/writes, so distinct
// radices never block one another.
func token(radix int) *radixToken {
	coordinatorMu.Lock()
	defer coordinatorMu.Unlock()
	t, ok := radixTokens[radix]
	if !ok {
		t = &radixToken{}
		radixTokens[radix] = t
	}
	return t
}

// cachedRadices returns the radices exercised so far, for tests and
// diagnostics that want to observe cache population without reaching
// into a specific token's lock.
func cachedRadices() []int {
	coordinatorMu.Lock()
	snapshot := maps.Clone(radixTokens)
	coordinatorMu.Unlock()
	return maps.Keys(snapshot)
}
