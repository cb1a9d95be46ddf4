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

//go:build !amd64 && !arm64

package dispatch

// widestAvailable is scalar-only on architectures with no compiled-in SIMD
// backend: "if no backend supports a given slot, it remains bound to the
// scalar reference" (spec.md §4.7), and cross-arch is the degenerate case
// of that rule.
func widestAvailable() Backend {
	return Scalar
}
