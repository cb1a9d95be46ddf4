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
package vecpolicy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vecbitset/vecbitset/pkg/kernel"
	"github.com/vecbitset/vecbitset/pkg/kernel/scalar"
)

// Scenario 3, run through the full dispatcher rather than directly against
// the scalar package. n=72 is a multiple of 8, so all 72 elements form the
// SIMD-eligible body and there is no scalar-only tail.
func Test_Scenario_CompareValI8_ThroughDispatch(t *testing.T) {
	col := make([]int8, 72)
	for i := range col {
		col[i] = int8(i % 5)
	}

	got := CompareVal(col, 72, kernel.EQ, 1)

	for i := 0; i < 72; i++ {
		want := i%5 == 1
		require.Equal(t, want, kernel.GetBit(got, i), "index %d", i)
	}
}

func Test_Scenario_WithinRangeValF32_ThroughDispatch(t *testing.T) {
	x := []float32{0.5, 1.0, 1.5, 2.999, 3.0, 3.5, 1.0, 2.0}

	got := WithinRangeVal[float32](1.0, 3.0, x, 8, kernel.IncExc)

	require.EqualValues(t, 0b11001110, got[0])
}

func Test_Scenario_ArithCompareI32_Add_ThroughDispatch(t *testing.T) {
	col := []int32{5, 6, 4, 5, 0, 0, 0, 0}

	got := ArithCompareInt(col, 8, kernel.Add, 10, 15, kernel.EQ)

	require.True(t, kernel.GetBit(got, 0))
	require.False(t, kernel.GetBit(got, 1))
	require.False(t, kernel.GetBit(got, 2))
	require.True(t, kernel.GetBit(got, 3))
}

// Property: for every arithmetic op (including ones every SIMD backend
// declines, like Mod), the dispatcher's output matches the scalar oracle
// exactly, whether it ran on SIMD or fell back.
func Test_Property_MatchesScalarOracle_ArithCompareInt(t *testing.T) {
	col := make([]int64, 40)
	for i := range col {
		col[i] = int64(i) - 13
	}

	for _, aop := range []kernel.ArithOp{kernel.Add, kernel.Sub, kernel.Mul, kernel.Div, kernel.Mod} {
		got := ArithCompareInt(col, uint(len(col)), aop, 3, 7, kernel.EQ)

		want := make([]byte, kernel.BitmaskBytes(len(col)))
		scalar.ArithCompareI64(col, uint(len(col)), aop, 3, 7, kernel.EQ, want, 0)

		require.Equal(t, want, got, "aop=%s", aop)
	}
}

func Test_Property_MatchesScalarOracle_CompareColumn(t *testing.T) {
	a := make([]float64, 37)
	b := make([]float64, 37)

	for i := range a {
		a[i] = float64(i)
		b[i] = float64(37 - i)
	}

	for _, op := range []kernel.CmpOp{kernel.EQ, kernel.NE, kernel.LT, kernel.LE, kernel.GT, kernel.GE} {
		got := CompareColumn(a, b, uint(len(a)), op)

		want := make([]byte, kernel.BitmaskBytes(len(a)))
		scalar.CompareColumnF64(a, b, uint(len(a)), op, want, 0)

		require.Equal(t, want, got, "op=%s", op)
	}
}

func Test_NonMultipleOf8_TailHandledCorrectly(t *testing.T) {
	col := []int16{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	got := CompareVal(col, 11, kernel.GT, 5)

	for i, c := range col {
		require.Equal(t, c > 5, kernel.GetBit(got, i), "index %d", i)
	}
}
