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

// CompareValI8 evaluates op(col[i], v) for the int8 element type.
func CompareValI8[O bit.Word](col []int8, n uint, op kernel.CmpOp, v int8, out []O, outStart uint) {
	CompareVal(col, n, op, v, out, outStart)
}

// CompareColumnI8 evaluates op(a[i], b[i]) for the int8 element type.
func CompareColumnI8[O bit.Word](a, b []int8, n uint, op kernel.CmpOp, out []O, outStart uint) {
	CompareColumn(a, b, n, op, out, outStart)
}

// WithinRangeValI8 evaluates r(lo, x[i], hi) for the int8 element type.
func WithinRangeValI8[O bit.Word](lo, hi int8, x []int8, n uint, r kernel.Range, out []O, outStart uint) {
	WithinRangeVal(lo, hi, x, n, r, out, outStart)
}

// WithinRangeColumnI8 evaluates r(lo[i], x[i], hi[i]) for the int8 element type.
func WithinRangeColumnI8[O bit.Word](lo, hi, x []int8, n uint, r kernel.Range, out []O, outStart uint) {
	WithinRangeColumn(lo, hi, x, n, r, out, outStart)
}

// ArithCompareI8 evaluates cop(aop(col[i], r), v) for the int8 element type,
// widening to an int64 accumulator.
func ArithCompareI8[O bit.Word](col []int8, n uint, aop kernel.ArithOp, r, v int64, cop kernel.CmpOp, out []O, outStart uint) {
	ArithCompareInt(col, n, aop, r, v, cop, out, outStart)
}
