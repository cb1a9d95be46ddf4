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
package scalar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vecbitset/vecbitset/pkg/kernel"
)

// Scenario 3: compare_val<i8,EQ> over a 72-element repeating sequence.
func Test_Scenario_CompareValI8(t *testing.T) {
	col := make([]int8, 72)
	for i := range col {
		col[i] = int8(i % 5)
	}

	out := make([]byte, kernel.BitmaskBytes(72))
	CompareValI8(col, 72, kernel.EQ, 1, out, 0)

	for i := 0; i < 72; i++ {
		want := i%5 == 1
		require.Equal(t, want, kernel.GetBit(out, i), "index %d", i)
	}
}

// Scenario 4: within_range_val<f32,IncExc> over an 8-element column.
func Test_Scenario_WithinRangeValF32(t *testing.T) {
	x := []float32{0.5, 1.0, 1.5, 2.999, 3.0, 3.5, 1.0, 2.0}
	out := make([]byte, 1)

	WithinRangeValF32(1.0, 3.0, x, 8, kernel.IncExc, out, 0)

	require.EqualValues(t, 0b11001110, out[0])
}

// Scenario 5: arith_compare<i32,Add,EQ> with r=10, v=15, padded to 8 with zeros.
func Test_Scenario_ArithCompareI32_Add(t *testing.T) {
	col := []int32{5, 6, 4, 5, 0, 0, 0, 0}
	out := make([]byte, 1)

	ArithCompareI32(col, 8, kernel.Add, 10, 15, kernel.EQ, out, 0)

	require.True(t, kernel.GetBit(out, 0))
	require.False(t, kernel.GetBit(out, 1))
	require.False(t, kernel.GetBit(out, 2))
	require.True(t, kernel.GetBit(out, 3))

	for i := 4; i < 8; i++ {
		require.False(t, kernel.GetBit(out, i))
	}
}

func Test_ArithCompareFloat_DivReformulation(t *testing.T) {
	col := []float32{10, 20, 30}
	out := make([]byte, 1)

	// 10/2==5, 20/2==10, 30/2==15 -> EQ 5 at index 0 only.
	ArithCompareF32(col, 3, kernel.Div, 2, 5, kernel.EQ, out, 0)

	require.True(t, kernel.GetBit(out, 0))
	require.False(t, kernel.GetBit(out, 1))
	require.False(t, kernel.GetBit(out, 2))
}

func Test_ArithCompareInt_Mod(t *testing.T) {
	col := []int64{10, 11, 12, 13}
	out := make([]byte, 1)

	ArithCompareI64(col, 4, kernel.Mod, 3, 1, kernel.EQ, out, 0)

	require.True(t, kernel.GetBit(out, 0))
	require.False(t, kernel.GetBit(out, 1))
	require.False(t, kernel.GetBit(out, 2))
	require.True(t, kernel.GetBit(out, 3))
}

func Test_CompareColumn_WriteAtNonZeroStart(t *testing.T) {
	a := []int16{1, 2, 3, 4}
	b := []int16{1, 0, 3, 0}

	out := make([]byte, 2)
	CompareColumnI16(a, b, 4, kernel.EQ, out, 5)

	require.True(t, kernel.GetBit(out, 5))
	require.False(t, kernel.GetBit(out, 6))
	require.True(t, kernel.GetBit(out, 7))
	require.False(t, kernel.GetBit(out, 8))
}

func Test_WithinRangeColumn(t *testing.T) {
	lo := []int32{0, 0, 10}
	hi := []int32{5, 5, 20}
	x := []int32{3, 6, 15}

	out := make([]byte, 1)
	WithinRangeColumnI32(lo, hi, x, 3, kernel.IncInc, out, 0)

	require.True(t, kernel.GetBit(out, 0))
	require.False(t, kernel.GetBit(out, 1))
	require.True(t, kernel.GetBit(out, 2))
}
