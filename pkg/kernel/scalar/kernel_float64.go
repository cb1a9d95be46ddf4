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

// CompareValF64 evaluates op(col[i], v) for the float64 element type.
func CompareValF64[O bit.Word](col []float64, n uint, op kernel.CmpOp, v float64, out []O, outStart uint) {
	CompareVal(col, n, op, v, out, outStart)
}

// CompareColumnF64 evaluates op(a[i], b[i]) for the float64 element type.
func CompareColumnF64[O bit.Word](a, b []float64, n uint, op kernel.CmpOp, out []O, outStart uint) {
	CompareColumn(a, b, n, op, out, outStart)
}

// WithinRangeValF64 evaluates r(lo, x[i], hi) for the float64 element type.
func WithinRangeValF64[O bit.Word](lo, hi float64, x []float64, n uint, r kernel.Range, out []O, outStart uint) {
	WithinRangeVal(lo, hi, x, n, r, out, outStart)
}

// WithinRangeColumnF64 evaluates r(lo[i], x[i], hi[i]) for the float64 element type.
func WithinRangeColumnF64[O bit.Word](lo, hi, x []float64, n uint, r kernel.Range, out []O, outStart uint) {
	WithinRangeColumn(lo, hi, x, n, r, out, outStart)
}

// ArithCompareF64 evaluates cop(aop(col[i], r), v) for the float64 element
// type, without widening.
func ArithCompareF64[O bit.Word](col []float64, n uint, aop kernel.ArithOp, r, v float64, cop kernel.CmpOp, out []O, outStart uint) {
	ArithCompareFloat(col, n, aop, r, v, cop, out, outStart)
}
