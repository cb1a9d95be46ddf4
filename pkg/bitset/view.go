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

// View is a non-owning bitset over a sub-range of another bitset's (or
// view's) storage.  It shares the full read/write/algebra surface of core,
// but has no Resize/Append/Reserve/Clear/Clone — those would be meaningless
// (or dangerous) without ownership of the backing storage.
//
// A View has the lifetime of the caller's borrow: creating one does not
// extend the owner's lifetime, and resizing the owning Bitset invalidates
// every View taken before the resize (this is documented, not enforced
// dynamically, per the data model's lifecycle rule).
type View[T bit.Word] struct {
	core[T]
}

// Core exposes this view's underlying range handle, for passing to the
// algebra methods (InplaceAnd, Or, Eq, ...) which operate on *core[T].
func (v *View[T]) Core() *core[T] { return &v.core }

func subrange(offset, size uint, start uint, length []uint) (uint, uint) {
	checkIndex(start, size+1)

	n := size - start
	if len(length) > 0 {
		n = length[0]
	}

	checkRange(start, n, size)

	return offset + start, n
}

// View carves out a sub-range [start, start+length) of this view, where
// length defaults to the remainder of the range.  Views compose: chaining
// View(k) calls shifts the window by successive offsets.
func (v *View[T]) View(start uint, length ...uint) View[T] {
	off, n := subrange(v.offset, v.size, start, length)
	return View[T]{core[T]{data: v.data, offset: off, size: n}}
}
