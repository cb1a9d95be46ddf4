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

// Package dispatch is the CPU-feature detection and dispatcher (C7). It
// probes hardware capabilities once, on first use, and binds each
// (operator-family, element-type) slot to the widest/fastest backend that
// supports it, defaulting to the scalar reference. The vectorized policy
// wrapper (C5, pkg/kernel/vecpolicy) calls through the resulting table.
package dispatch

// Backend names a concrete predicate-kernel implementation family.
type Backend uint8

const (
	// Scalar is the non-vectorized reference (C3); always available, never
	// declines, and is the terminal fallback for every slot.
	Scalar Backend = iota
	AVX2
	AVX512
	SVE
)

func (b Backend) String() string {
	switch b {
	case Scalar:
		return "scalar"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case SVE:
		return "sve"
	default:
		return "Backend(?)"
	}
}
