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
package bitset

import "github.com/vecbitset/vecbitset/pkg/bit"

// Bitset is the owning bitset container: it holds the storage buffer
// backing its logical range, and additionally supports resize/append/
// clear/reserve/clone on top of core's read/write/algebra surface.
//
// Resizing or reallocating a Bitset invalidates every View taken into it
// beforehand; this is a documented rule, not one the implementation
// enforces at runtime (see the Non-goals in the data model).
type Bitset[T bit.Word] struct {
	core[T]
}

// Core exposes this bitset's underlying range handle, for passing to the
// algebra methods (InplaceAnd, Or, Eq, ...) which operate on *core[T].
func (b *Bitset[T]) Core() *core[T] { return &b.core }

// New constructs an owning bitset of the given size.  An optional fill
// value initializes every bit (default false/zero).
func New[T bit.Word](size uint, fill ...bool) *Bitset[T] {
	b := &Bitset[T]{core[T]{data: make([]T, wordsNeeded[T](size)), offset: 0, size: size}}

	if len(fill) > 0 && fill[0] {
		b.Set()
	}

	return b
}

// FromBitmask wraps a packed bitmask (as produced by pkg/kernel/vecpolicy)
// as an owning Bitset[uint8] of n logical bits, without copying: this is
// the "user -> C6 -> C5" half of a predicate call's data flow, letting a
// predicate-kernel result be used directly against the bitset's own
// set-algebra surface (AND-ing two predicate results together, and so on).
func FromBitmask(mask []byte, n uint) *Bitset[uint8] {
	return &Bitset[uint8]{core[uint8]{data: mask, offset: 0, size: n}}
}

// Reserve ensures the backing storage can hold at least capacityBits
// without reallocating on a subsequent Resize/Append.
func (b *Bitset[T]) Reserve(capacityBits uint) {
	need := wordsNeeded[T](capacityBits)
	if uint(len(b.data)) >= need {
		return
	}

	grown := make([]T, need)
	copy(grown, b.data)
	b.data = grown
}

// Resize changes the logical size of the bitset.  Growing appends bits
// initialized to init (default false); shrinking simply truncates (freed
// bits are not guaranteed to be cleared, since they are no longer
// observable, but a subsequent grow past them will re-clear as needed to
// preserve the invariant that they read as init until explicitly set).
func (b *Bitset[T]) Resize(newSize uint, init ...bool) {
	fillVal := false
	if len(init) > 0 {
		fillVal = init[0]
	}

	oldSize := b.size

	need := wordsNeeded[T](b.offset + newSize)
	if uint(len(b.data)) < need {
		grown := make([]T, need)
		copy(grown, b.data)
		b.data = grown
	}

	b.size = newSize

	if newSize > oldSize {
		bit.Fill(b.data, b.offset+oldSize, newSize-oldSize, fillVal)
	}
}

// Clear truncates the bitset to size 0, releasing no capacity (matching
// Go's usual clear-keeps-capacity convention).
func (b *Bitset[T]) Clear() {
	b.size = 0
}

// Clone creates a true copy of this bitset: no aliasing with the original,
// and mutations to the clone never affect it.
func (b *Bitset[T]) Clone() *Bitset[T] {
	c := New[T](b.size)
	c.CopyFrom(&b.core)

	return c
}

// Append copies count bits of other (starting at start, default the whole
// range) onto the end of this bitset, growing it by count bits.  After
// Append, b.View(oldSize) reads back bitwise identical to the copied range.
func (b *Bitset[T]) Append(other *core[T], startAndCount ...uint) {
	start, count := uint(0), other.size
	if len(startAndCount) > 0 {
		start = startAndCount[0]
	}

	if len(startAndCount) > 1 {
		count = startAndCount[1]
	}

	checkRange(start, count, other.size)

	oldSize := b.size
	b.Resize(oldSize + count)
	bit.Copy(other.data, other.offset+start, b.data, b.offset+oldSize, count)
}

// View carves out a sub-range [start, start+length) of this bitset, where
// length defaults to the remainder.  The returned View borrows storage; it
// must not outlive this Bitset, and is invalidated by a subsequent resize.
func (b *Bitset[T]) View(start uint, length ...uint) View[T] {
	off, n := subrange(b.offset, b.size, start, length)
	return View[T]{core[T]{data: b.data, offset: off, size: n}}
}

// Or returns a new bitset holding this | other, leaving both inputs
// unmodified.  Derived from Clone + InplaceOr.
func (b *Bitset[T]) Or(other *core[T]) *Bitset[T] {
	result := b.Clone()
	result.InplaceOr(other)

	return result
}

// Sub returns a new bitset holding this &^ other, leaving both inputs
// unmodified.  Derived from Clone + InplaceSub.
func (b *Bitset[T]) Sub(other *core[T]) *Bitset[T] {
	result := b.Clone()
	result.InplaceSub(other)

	return result
}

// And returns a new bitset holding this & other, leaving both inputs
// unmodified.
func (b *Bitset[T]) And(other *core[T]) *Bitset[T] {
	result := b.Clone()
	result.InplaceAnd(other)

	return result
}

// Xor returns a new bitset holding this ^ other, leaving both inputs
// unmodified.
func (b *Bitset[T]) Xor(other *core[T]) *Bitset[T] {
	result := b.Clone()
	result.InplaceXor(other)

	return result
}
