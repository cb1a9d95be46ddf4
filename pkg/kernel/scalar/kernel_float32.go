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
	"github.com/vecbitset/vecbitset/pkg/bit"
	"github.com/vecbitset/vecbitset/pkg/kernel"
)

// CompareValF32 evaluates op(col[i], v) for the float32 element type.
func CompareValF32[O bit.Word](col []float32, n uint, op kernel.CmpOp, v float32, out []O, outStart uint) {
	CompareVal(col, n, op, v, out, outStart)
}

// CompareColumnF32 evaluates op(a[i], b[i]) for the float32 element type.
func CompareColumnF32[O bit.Word](a, b []float32, n uint, op kernel.CmpOp, out []O, outStart uint) {
	CompareColumn(a, b, n, op, out, outStart)
}

// WithinRangeValF32 evaluates r(lo, x[i], hi) for the float32 element type.
func WithinRangeValF32[O bit.Word](lo, hi float32, x []float32, n uint, r kernel.Range, out []O, outStart uint) {
	WithinRangeVal(lo, hi, x, n, r, out, outStart)
}

// WithinRangeColumnF32 evaluates r(lo[i], x[i], hi[i]) for the float32 element type.
func WithinRangeColumnF32[O bit.Word](lo, hi, x []float32, n uint, r kernel.Range, out []O, outStart uint) {
	WithinRangeColumn(lo, hi, x, n, r, out, outStart)
}

// ArithCompareF32 evaluates cop(aop(col[i], r), v) for the float32 element
// type, without widening.
func ArithCompareF32[O bit.Word](col []float32, n uint, aop kernel.ArithOp, r, v float32, cop kernel.CmpOp, out []O, outStart uint) {
	ArithCompareFloat(col, n, aop, r, v, cop, out, outStart)
}
