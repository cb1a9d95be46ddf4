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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setAll(t *testing.T, b *Bitset[uint64], indices ...uint) {
	t.Helper()

	for _, i := range indices {
		b.SetAt(i)
	}
}

// Scenario 1 from the spec: build a size-64 bitset, set {0,3,63}.
func Test_Scenario_FindFirstNext(t *testing.T) {
	b := New[uint64](64)
	setAll(t, b, 0, 3, 63)

	require.EqualValues(t, 3, b.Count())
	require.EqualValues(t, 0, b.FindFirst())
	require.EqualValues(t, 3, b.FindNext(0))
	require.EqualValues(t, 63, b.FindNext(3))

	const notFound = ^uint(0)
	require.EqualValues(t, notFound, b.FindNext(63))
}

// Scenario 2 from the spec: two size-128 bitsets and the four set-algebra ops.
func Test_Scenario_SetAlgebra(t *testing.T) {
	a := New[uint64](128)
	setAll(t, a, 1, 2, 64, 100)

	b := New[uint64](128)
	setAll(t, b, 2, 3, 100, 127)

	and := a.And(b.Core())
	require.True(t, bitsEqual(and, []uint{2, 100}))

	or := a.Or(b.Core())
	require.True(t, bitsEqual(or, []uint{1, 2, 3, 64, 100, 127}))

	xor := a.Xor(b.Core())
	require.True(t, bitsEqual(xor, []uint{1, 3, 64, 127}))

	sub := a.Sub(b.Core())
	require.True(t, bitsEqual(sub, []uint{1, 64}))
}

func bitsEqual(b *Bitset[uint64], want []uint) bool {
	if b.Count() != uint(len(want)) {
		return false
	}

	for _, w := range want {
		if !b.Get(w) {
			return false
		}
	}

	return true
}

// Testable property: count over a view plus its complement equals the whole.
func Test_Property_ViewCountAdditive(t *testing.T) {
	b := New[uint64](200)
	setAll(t, b, 0, 1, 5, 63, 64, 127, 199)

	for o := uint(0); o <= 200; o++ {
		tail := b.View(o)
		head := b.View(0, o)
		require.EqualValues(t, b.Count(), tail.Count()+head.Count(), "offset=%d", o)
	}
}

// Testable property: union/intersection/symmetric-difference cardinalities.
func Test_Property_SetAlgebraCardinality(t *testing.T) {
	a := New[uint64](256)
	setAll(t, a, 1, 2, 3, 100, 200, 255)

	b := New[uint64](256)
	setAll(t, b, 2, 3, 4, 200, 250)

	or := a.Or(b.Core())
	and := a.And(b.Core())
	xor := a.Xor(b.Core())

	require.EqualValues(t, a.Count()+b.Count(), or.Count()+and.Count())
	require.EqualValues(t, or.Count()-and.Count(), xor.Count())
}

// Testable property: clone has no aliasing with the original.
func Test_Property_CloneNoAliasing(t *testing.T) {
	b := New[uint64](64)
	setAll(t, b, 3, 10)

	c := b.Clone()
	require.True(t, c.Eq(b.Core()))

	c.SetAt(20)
	require.False(t, b.Get(20))
	require.True(t, c.Get(20))
}

// Testable property: append followed by a view of the appended tail reads
// back bitwise identical to the source.
func Test_Property_AppendThenView(t *testing.T) {
	a := New[uint64](40)
	setAll(t, a, 1, 39)

	b := New[uint64](10)
	setAll(t, b, 0, 9)

	oldSize := a.Len()
	a.Append(b.Core())

	tail := a.View(oldSize)
	require.True(t, tail.Eq(b.Core()))
}

// Testable idempotence law: sub then union equals union.
func Test_Property_SubThenOrEqualsOr(t *testing.T) {
	a := New[uint64](70)
	setAll(t, a, 1, 40, 69)

	b := New[uint64](70)
	setAll(t, b, 1, 2, 69)

	lhs := a.Clone()
	lhs.InplaceSub(b.Core())
	lhs.InplaceOr(b.Core())

	rhs := a.Clone()
	rhs.InplaceOr(b.Core())

	require.True(t, lhs.Eq(rhs.Core()))
}

func Test_DoubleFlip_Identity(t *testing.T) {
	b := New[uint64](140)
	setAll(t, b, 3, 64, 139)

	orig := b.Clone()

	b.Flip()
	b.Flip()

	require.True(t, b.Eq(orig.Core()))
}

// Scenario 6 from the spec: resize across a non-trivial boundary.
func Test_Scenario_ResizeGrow(t *testing.T) {
	b := New[uint64](1000)

	for i := uint(0); i < 1000; i += 3 {
		b.SetAt(i)
	}

	require.EqualValues(t, 334, b.Count())

	b.Resize(2000, true)

	require.EqualValues(t, 334+1000, b.Count())
	require.EqualValues(t, 0, b.FindFirst())
}

func Test_Views_DoNotMutateSiblings(t *testing.T) {
	b := New[uint64](20)

	left := b.View(0, 10)
	right := b.View(10, 10)

	left.Set()

	require.True(t, left.All())
	require.True(t, right.None())
}

func Test_ViewOfView_Composes(t *testing.T) {
	b := New[uint64](100)
	b.SetAt(55)

	outer := b.View(50)    // [50,100)
	inner := outer.View(5) // [55,100)

	require.True(t, inner.Get(0))
}

func Test_Boundary_Sizes(t *testing.T) {
	sizes := []uint{0, 0x08, 0x40, 0x1000, 0x1040}

	for _, size := range sizes {
		b := New[uint64](size)
		require.EqualValues(t, 0, b.Count())
		require.True(t, b.None())

		if size > 0 {
			b.SetAt(size - 1)
			require.EqualValues(t, 1, b.Count())
		}
	}
}
