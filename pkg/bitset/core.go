// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package bitset provides the owning and view bitset containers (C6): a
// typed façade over pkg/bit's element-wise policy (C2) which adds
// allocation, sub-range views and the usual set-algebra surface.  Storage
// word width is a type parameter; uint64 is the canonical instantiation, the
// one this package's tests use.
package bitset

import (
	"fmt"
	"strings"

	"github.com/vecbitset/vecbitset/pkg/bit"
)

// core holds everything shared between an owning Bitset and a View: a
// backing word slice, the logical bit offset of index 0 within that slice,
// and the logical bit count.  Bits outside [offset, offset+size) are not
// observable through this type's methods, but may hold arbitrary values —
// bulk operations must never clobber them, since they may belong to a
// sibling view over the same storage.
type core[T bit.Word] struct {
	data   []T
	offset uint
	size   uint
}

// Len returns the number of logical bits in this range.
func (c *core[T]) Len() uint { return c.size }

// Empty reports whether this range is empty.
func (c *core[T]) Empty() bool { return c.size == 0 }

// Get reads the bit at logical index i.
func (c *core[T]) Get(i uint) bool {
	checkIndex(i, c.size)
	return bit.Read(c.data, c.offset+i, 1) != 0
}

// Proxy returns a mutable bit-proxy onto logical index i, for callers that
// want `b.Proxy(i).Flip()`-style ergonomics instead of Set/Reset/Flip calls.
func (c *core[T]) Proxy(i uint) bit.Proxy[T] {
	checkIndex(i, c.size)

	var (
		w       = bit.Bits[T]()
		abs     = c.offset + i
		wordIdx = abs / w
		bitPos  = abs % w
	)

	return bit.NewProxy(&c.data[wordIdx], bitPos)
}

// SetAt forces bit i to one.
func (c *core[T]) SetAt(i uint) {
	checkIndex(i, c.size)
	bit.Set(c.data, c.offset+i, 1)
}

// ResetAt forces bit i to zero.
func (c *core[T]) ResetAt(i uint) {
	checkIndex(i, c.size)
	bit.Reset(c.data, c.offset+i, 1)
}

// FlipAt complements bit i.
func (c *core[T]) FlipAt(i uint) {
	checkIndex(i, c.size)
	bit.Flip(c.data, c.offset+i, 1)
}

// SetValAt assigns value to bit i.
func (c *core[T]) SetValAt(i uint, value bool) {
	checkIndex(i, c.size)
	bit.Fill(c.data, c.offset+i, 1, value)
}

// Set fills the whole range with ones.
func (c *core[T]) Set() { bit.Set(c.data, c.offset, c.size) }

// Reset fills the whole range with zeroes.
func (c *core[T]) Reset() { bit.Reset(c.data, c.offset, c.size) }

// Flip complements the whole range.
func (c *core[T]) Flip() { bit.Flip(c.data, c.offset, c.size) }

// All reports whether every bit is set.
func (c *core[T]) All() bool { return bit.All(c.data, c.offset, c.size) }

// None reports whether every bit is clear.
func (c *core[T]) None() bool { return bit.None(c.data, c.offset, c.size) }

// Any reports whether some bit is set.
func (c *core[T]) Any() bool { return !c.None() }

// Count returns the population count of the range.
func (c *core[T]) Count() uint { return bit.Count(c.data, c.offset, c.size) }

// FindFirst returns the index of the first set bit, or bit.NotFound.
func (c *core[T]) FindFirst() uint { return bit.Find(c.data, c.offset, c.size, 0) }

// FindNext returns the index of the smallest set bit strictly greater than
// from, or bit.NotFound.
func (c *core[T]) FindNext(from uint) uint {
	if from == bit.NotFound {
		return bit.NotFound
	}

	return bit.Find(c.data, c.offset, c.size, from+1)
}

// FindNextMany drains up to len(out) ascending set-bit positions starting at
// from, returning the resume cursor and count written.  Batched form of
// FindNext for callers scanning many set bits.
func (c *core[T]) FindNextMany(from uint, out []uint) (uint, int) {
	return bit.FindMany(c.data, c.offset, c.size, from, out)
}

func (c *core[T]) requireSameSize(o *core[T]) {
	if c.size != o.size {
		panic(fmt.Sprintf("bitset: size mismatch %d != %d", c.size, o.size))
	}
}

// InplaceAnd computes this &= other over equal-sized ranges.
func (c *core[T]) InplaceAnd(o *core[T]) {
	c.requireSameSize(o)
	bit.And(c.data, o.data, c.offset, o.offset, c.size)
}

// InplaceOr computes this |= other over equal-sized ranges.
func (c *core[T]) InplaceOr(o *core[T]) {
	c.requireSameSize(o)
	bit.Or(c.data, o.data, c.offset, o.offset, c.size)
}

// InplaceXor computes this ^= other over equal-sized ranges.
func (c *core[T]) InplaceXor(o *core[T]) {
	c.requireSameSize(o)
	bit.Xor(c.data, o.data, c.offset, o.offset, c.size)
}

// InplaceSub computes this &= ^other over equal-sized ranges.
func (c *core[T]) InplaceSub(o *core[T]) {
	c.requireSameSize(o)
	bit.Sub(c.data, o.data, c.offset, o.offset, c.size)
}

// Eq reports set-algebraic equality: equal size and identical bits.
func (c *core[T]) Eq(o *core[T]) bool {
	if c.size != o.size {
		return false
	}

	return bit.Equal(c.data, o.data, c.offset, o.offset, c.size)
}

// CopyFrom bit-copies o's range into this range.  Sizes need not match; the
// shorter of the two bounds the number of bits copied.
func (c *core[T]) CopyFrom(o *core[T]) uint {
	n := c.size
	if o.size < n {
		n = o.size
	}

	bit.Copy(o.data, o.offset, c.data, c.offset, n)

	return n
}

func (c *core[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	first := true

	from := uint(0)

	for {
		idx := bit.Find(c.data, c.offset, c.size, from)
		if idx == bit.NotFound {
			break
		}

		if !first {
			sb.WriteString(", ")
		}

		first = false

		fmt.Fprintf(&sb, "%d", idx)

		from = idx + 1
	}

	sb.WriteByte(']')

	return sb.String()
}

func wordsNeeded[T bit.Word](bits uint) uint {
	w := bit.Bits[T]()
	return (bits + w - 1) / w
}
