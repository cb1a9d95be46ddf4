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

package vecpolicy

import (
	"github.com/vecbitset/vecbitset/pkg/kernel"
	"github.com/vecbitset/vecbitset/pkg/kernel/dispatch"
)

// No compiled-in SIMD backend on this architecture; the dispatch table
// never binds anything but Scalar here (see dispatch/probe_other.go), so
// these always report "no SIMD, use scalar".

func simdCompareVal[T kernel.Numeric](_ dispatch.Backend, _ []T, _ uint, _ kernel.CmpOp, _ T, _ []byte) bool {
	return false
}

func simdCompareColumn[T kernel.Numeric](_ dispatch.Backend, _, _ []T, _ uint, _ kernel.CmpOp, _ []byte) bool {
	return false
}

func simdWithinRangeVal[T kernel.Numeric](_ dispatch.Backend, _, _ T, _ []T, _ uint, _ kernel.Range, _ []byte) bool {
	return false
}

func simdWithinRangeColumn[T kernel.Numeric](_ dispatch.Backend, _, _, _ []T, _ uint, _ kernel.Range, _ []byte) bool {
	return false
}

func simdArithCompareInt[T kernel.Integer](_ dispatch.Backend, _ []T, _ uint, _ kernel.ArithOp, _, _ int64, _ kernel.CmpOp, _ []byte) bool {
	return false
}

func simdArithCompareFloat[T kernel.Float](_ dispatch.Backend, _ []T, _ uint, _ kernel.ArithOp, _, _ T, _ kernel.CmpOp, _ []byte) bool {
	return false
}
