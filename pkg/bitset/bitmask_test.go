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

	"github.com/vecbitset/vecbitset/pkg/kernel"
	"github.com/vecbitset/vecbitset/pkg/kernel/vecpolicy"
)

// A predicate-kernel result, once wrapped by FromBitmask, behaves like any
// other Bitset: it can be combined with set-algebra against a second
// predicate's result.
func Test_FromBitmask_ComposesWithSetAlgebra(t *testing.T) {
	col := make([]int32, 20)
	for i := range col {
		col[i] = int32(i)
	}

	gt10 := vecpolicy.CompareVal(col, uint(len(col)), kernel.GT, 10)
	even := make([]byte, kernel.BitmaskBytes(len(col)))

	for i := range col {
		if col[i]%2 == 0 {
			kernel.SetBit(even, i)
		}
	}

	a := FromBitmask(gt10, uint(len(col)))
	b := FromBitmask(even, uint(len(col)))

	both := a.And(b.Core())

	for i := range col {
		want := col[i] > 10 && col[i]%2 == 0
		require.Equal(t, want, both.Get(uint(i)), "index %d", i)
	}
}
