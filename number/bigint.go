// Copyright 2022 The Cockroach Authors.
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

package number

import (
	"math/big"
	"unsafe"
)

// BigInt is a wrapper around big.Int that inlines the backing "nat" array
// for small values, avoiding a heap allocation for every Number coefficient
// that fits in a handful of words -- most of them, since the kernel spends
// almost all of its time at a handful of significant digits per Newton
// step before precision doubles. The zero value is ready to use. A BigInt
// must not be copied after first use.
type BigInt struct {
	_inner big.Int

	// _inline backs _inner's digit slice until a value too large for it is
	// stored, at which point big.Int reallocates on its own.
	_inline [inlineWords]big.Word

	_noCopy noCopy
	_addr   *BigInt
}

// inlineWords accommodates any coefficient up to 128 bits without
// allocating.
const inlineWords = 2

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}

func (b *BigInt) copyCheck() {
	if b._addr == nil {
		b._addr = (*BigInt)(noescape(unsafe.Pointer(b)))
	} else if b._addr != b {
		panic("number: illegal use of non-zero BigInt copied by value")
	}
}

func (b *BigInt) lazyInit() {
	if b._inner.Bits() == nil {
		b._inline = [inlineWords]big.Word{}
		inline := (*[inlineWords]big.Word)(noescape(unsafe.Pointer(&b._inline[0])))
		b._inner.SetBits(inline[:0])
	}
}

func (b *BigInt) inner() *big.Int {
	b.copyCheck()
	return &b._inner
}

// SetBig sets b to the value of x, which may alias any other *big.Int.
func (b *BigInt) SetBig(x *big.Int) *BigInt {
	b.lazyInit()
	b.inner().Set(x)
	return b
}

// SetInt64 sets b to x.
func (b *BigInt) SetInt64(x int64) *BigInt {
	b.lazyInit()
	b.inner().SetInt64(x)
	return b
}

// SetString sets b to the value of s in the given base and reports success.
func (b *BigInt) SetString(s string, base int) (*BigInt, bool) {
	b.lazyInit()
	if _, ok := b.inner().SetString(s, base); !ok {
		return nil, false
	}
	return b, true
}

// Set sets b to x.
func (b *BigInt) Set(x *BigInt) *BigInt {
	b.lazyInit()
	b.inner().Set(x.inner())
	return b
}

// Abs sets b to |x|.
func (b *BigInt) Abs(x *BigInt) *BigInt {
	b.lazyInit()
	b.inner().Abs(x.inner())
	return b
}

// Neg sets b to -x.
func (b *BigInt) Neg(x *BigInt) *BigInt {
	b.lazyInit()
	b.inner().Neg(x.inner())
	return b
}

// Sign returns -1, 0, or 1.
func (b *BigInt) Sign() int { return b.inner().Sign() }

// Cmp compares b and y.
func (b *BigInt) Cmp(y *BigInt) int { return b.inner().Cmp(y.inner()) }

// Int64 returns b as an int64, truncated if it doesn't fit.
func (b *BigInt) Int64() int64 { return b.inner().Int64() }

// String returns the base-10 string form of b, used only for debugging.
func (b *BigInt) String() string { return b.inner().String() }

// Text returns the string form of b in the given base.
func (b *BigInt) Text(base int) string { return b.inner().Text(base) }
