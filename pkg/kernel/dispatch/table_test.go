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
package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vecbitset/vecbitset/pkg/kernel"
)

// Every slot binds exactly once and stays bound to the same backend: the
// one-shot Unbound -> Bound(backend) state machine of spec.md §4.7.
func Test_Bound_IsStableAcrossCalls(t *testing.T) {
	table := &Table{}

	first := table.Bound(kernel.FamilyCompareVal, kernel.I32)
	second := table.Bound(kernel.FamilyCompareVal, kernel.I32)

	require.Equal(t, first, second)
}

// If no SIMD backend is compiled in for this architecture, every slot falls
// back to scalar, never panicking or returning an unrecognized value.
func Test_Bound_EveryKnownFamilyAndKind(t *testing.T) {
	table := &Table{}

	families := []kernel.OpFamily{
		kernel.FamilyCompareColumn,
		kernel.FamilyCompareVal,
		kernel.FamilyWithinRangeColumn,
		kernel.FamilyWithinRangeVal,
		kernel.FamilyArithCompare,
	}

	for _, family := range families {
		for _, kind := range kernel.AllElementKinds {
			backend := table.Bound(family, kind)
			require.Contains(t, []Backend{Scalar, AVX2, AVX512, SVE}, backend)
		}
	}
}
