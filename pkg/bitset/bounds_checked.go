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

//go:build !bitset_nobounds

package bitset

import "fmt"

// checkIndex panics on an out-of-range access.  Range checking is the
// default build; compile with -tags bitset_nobounds to drop it.
func checkIndex(i, size uint) {
	if i >= size {
		panic(fmt.Sprintf("bitset: index %d out of range [0,%d)", i, size))
	}
}

// checkRange panics if [start,start+n) is not contained in [0,size).
func checkRange(start, n, size uint) {
	if start > size || n > size-start {
		panic(fmt.Sprintf("bitset: range [%d,%d) out of range [0,%d)", start, start+n, size))
	}
}
