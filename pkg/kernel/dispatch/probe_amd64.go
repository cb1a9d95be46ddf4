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

//go:build amd64

package dispatch

import "golang.org/x/sys/cpu"

// widestAvailable returns the fastest backend this process can use, probed
// once via golang.org/x/sys/cpu. AVX-512 (masked, widest) is preferred over
// AVX2 when the full feature set (F+BW+VL) this library's masked-store
// strategy needs is present.
func widestAvailable() Backend {
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL {
		return AVX512
	}

	if cpu.X86.HasAVX2 {
		return AVX2
	}

	return Scalar
}
